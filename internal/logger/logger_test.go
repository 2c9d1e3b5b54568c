package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{" warn ", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), tc.in)
	}
}

func TestConsoleTextRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Level = "INFO"
	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("applied", "set", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=applied")
	assert.Contains(t, out, "set=3")
}

func TestConsoleJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleFormat = "json"
	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	log.Warn("unknown set", "set", 9)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "unknown set", rec["msg"])
	assert.Equal(t, float64(9), rec["set"])
}

func TestFileAndConsole(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "tilesmith.log")
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = path
	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	log.With("component", "preview").Error("render failed")

	assert.Contains(t, buf.String(), "component=preview")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `"component":"preview"`), "file log: %s", data)
}

func TestFileWithoutPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FileEnabled = true
	cfg.FilePath = ""
	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestNoOutputsDiscards(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.ConsoleEnabled = false
	log, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)
	log.Error("dropped")
	assert.Zero(t, buf.Len())
}
