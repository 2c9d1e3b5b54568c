package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	o, err := parseFlags([]string{"-seed", "7", "-width", "30", "-dump"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), o.seed)
	assert.Equal(t, 30, o.width)
	assert.True(t, o.dump)
	assert.Equal(t, "data/tilesets.yaml", o.configPath)

	_, err = parseFlags([]string{"-bogus"})
	assert.Error(t, err)
}

func TestRunDump(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-config", filepath.Join(t.TempDir(), "missing.yaml"),
		"-seed", "3", "-width", "24", "-height", "12", "-dump",
	}, &out)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Len(t, lines, 12)
	for _, l := range lines {
		assert.LessOrEqual(t, len(l), 24*2)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sets:\n  - id: 1\n    algorithm: hex\n"), 0644))
	err := run([]string{"-config", path, "-dump"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, `unknown algorithm "hex"`)
}

func TestRunRejectsTinyMap(t *testing.T) {
	err := run([]string{"-config", "missing.yaml", "-width", "2", "-dump"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "too small")
}
