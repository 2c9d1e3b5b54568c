// tilesmith previews auto-tiled layers. It loads tile sets from YAML,
// generates a sample layer, resolves every set over it and shows the result.
//
// Usage:
//
//	tilesmith [-config data/tilesets.yaml] [-seed 42] [-set 1] [-width 80] [-height 40] [-dump]
//
// In the interactive view arrows pan, r regenerates, a re-applies, c
// recentres and q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"tilesmith/internal/config"
	"tilesmith/internal/logger"
	"tilesmith/internal/preview"

	"github.com/gdamore/tcell/v2"
)

type options struct {
	configPath string
	seed       int64
	set        int
	width      int
	height     int
	dump       bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("tilesmith", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&o.configPath, "config", "data/tilesets.yaml", "Path to the tile set YAML file")
	fs.Int64Var(&o.seed, "seed", 0, "Generator seed (0 picks one from the clock)")
	fs.IntVar(&o.set, "set", 0, "Tile set painted into rooms and corridors")
	fs.IntVar(&o.width, "width", 0, "Sample layer width")
	fs.IntVar(&o.height, "height", 0, "Sample layer height")
	fs.BoolVar(&o.dump, "dump", false, "Print the layer as text instead of opening the preview")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	return o, nil
}

// apply folds command-line overrides into cfg.
func (o options) apply(cfg *config.Config) {
	if o.set != 0 {
		cfg.Map.Set = o.set
	}
	if o.width > 0 {
		cfg.Map.Width = o.width
	}
	if o.height > 0 {
		cfg.Map.Height = o.height
	}
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	opts.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	p, err := preview.New(cfg, seed, log)
	if err != nil {
		return err
	}
	if opts.dump {
		return p.WriteText(out)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	p.Run(screen)
	return nil
}
