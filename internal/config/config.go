// Package config loads tile set definitions and preview settings from YAML
// and replays them into an autotile.Registry.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"tilesmith/internal/autotile"
	"tilesmith/internal/generate"
	"tilesmith/internal/logger"

	"gopkg.in/yaml.v3"
)

// Config is the root of a tilesmith YAML file.
type Config struct {
	Sets []SetConfig   `yaml:"sets"`
	Map  MapConfig     `yaml:"map"`
	Log  logger.Config `yaml:"log"`
}

// SetConfig describes one tile set. Its id doubles as the group id painted
// into the sample map.
type SetConfig struct {
	ID        int             `yaml:"id"`
	Name      string          `yaml:"name"`
	Algorithm string          `yaml:"algorithm"`
	Glyph     string          `yaml:"glyph"` // shown for cells that got no asset
	Variants  []VariantConfig `yaml:"variants"`
}

// VariantConfig describes one tile variant.
type VariantConfig struct {
	Library     int      `yaml:"library"`
	Image       int      `yaml:"image"`
	Type        string   `yaml:"type"`
	Connections []string `yaml:"connections"`
	// Weight defaults to autotile.DefaultWeight when omitted.
	Weight float64 `yaml:"weight"`
	Glyph  string  `yaml:"glyph"`
}

// MapConfig drives the sample layer generator.
type MapConfig struct {
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	MinLeafSize  int    `yaml:"min_leaf_size"`
	MaxLeafSize  int    `yaml:"max_leaf_size"`
	MinRoomSize  int    `yaml:"min_room_size"`
	RoomPadding  int    `yaml:"room_padding"`
	Corridor     string `yaml:"corridor"` // l, z or straight
	Set          int    `yaml:"set"`      // set painted into rooms and corridors
	DecorSet     int    `yaml:"decor_set"`
	DecorCount   int    `yaml:"decor_count"`
	DecorMaxSize int    `yaml:"decor_max_size"`
}

// DefaultConfig returns a small two-set demo.
func DefaultConfig() *Config {
	return &Config{
		Sets: []SetConfig{
			{
				ID:        1,
				Name:      "Stone",
				Algorithm: "wang2corner",
				Glyph:     ".",
				Variants: []VariantConfig{
					{Library: 0, Image: 0, Type: "single", Glyph: "o"},
					{Library: 0, Image: 1, Type: "center", Connections: []string{"all"}, Glyph: "#"},
					{Library: 0, Image: 2, Type: "edge_n", Connections: []string{"e", "s", "w"}, Glyph: "="},
					{Library: 0, Image: 3, Type: "edge_w", Connections: []string{"n", "e", "s"}, Glyph: "|"},
				},
			},
			{
				ID:        2,
				Name:      "Water",
				Algorithm: "simple",
				Variants: []VariantConfig{
					{Library: 1, Image: 0, Type: "center", Glyph: "~"},
				},
			},
		},
		Map: MapConfig{
			Width:        60,
			Height:       30,
			MinLeafSize:  8,
			MaxLeafSize:  20,
			MinRoomSize:  4,
			RoomPadding:  1,
			Corridor:     "l",
			Set:          1,
			DecorSet:     2,
			DecorCount:   6,
			DecorMaxSize: 3,
		},
		Log: logger.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, returns the default config.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. A file
// that lists sets replaces the demo sets entirely.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Sets = nil
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config: %w", err)
	}
	if len(cfg.Sets) == 0 {
		cfg.Sets = DefaultConfig().Sets
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports every unknown name and duplicate set id.
func (c *Config) Validate() error {
	var errs []error
	seen := make(map[int]bool)
	for _, s := range c.Sets {
		if seen[s.ID] {
			errs = append(errs, fmt.Errorf("set %d: duplicate id", s.ID))
		}
		seen[s.ID] = true
		if _, err := s.algorithm(); err != nil {
			errs = append(errs, fmt.Errorf("set %d: %w", s.ID, err))
		}
		for i, v := range s.Variants {
			if _, err := v.variant(); err != nil {
				errs = append(errs, fmt.Errorf("set %d variant %d: %w", s.ID, i, err))
			}
		}
	}
	if _, err := parseCorridor(c.Map.Corridor); err != nil {
		errs = append(errs, fmt.Errorf("map: %w", err))
	}
	if c.Map.Width <= 2 || c.Map.Height <= 2 {
		errs = append(errs, fmt.Errorf("map: size %dx%d is too small", c.Map.Width, c.Map.Height))
	}
	return errors.Join(errs...)
}

// Apply registers every set and variant in reg, in file order.
func (c *Config) Apply(reg *autotile.Registry) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, s := range c.Sets {
		alg, _ := s.algorithm()
		reg.CreateSet(s.ID, s.Name, alg)
		for _, vc := range s.Variants {
			v, _ := vc.variant()
			reg.AddWeightedVariant(s.ID, v.Asset, v.Type, v.Connections, v.Weight)
		}
	}
	return nil
}

// Set returns the set configuration with the given id.
func (c *Config) Set(id int) (SetConfig, bool) {
	for _, s := range c.Sets {
		if s.ID == id {
			return s, true
		}
	}
	return SetConfig{}, false
}

// Glyphs collects the preview glyph of every variant and set. When two
// variants share an asset the later one wins.
func (c *Config) Glyphs() (assets map[autotile.AssetRef]string, groups map[int]string) {
	assets = make(map[autotile.AssetRef]string)
	groups = make(map[int]string)
	for _, s := range c.Sets {
		if s.Glyph != "" {
			groups[s.ID] = s.Glyph
		}
		for _, v := range s.Variants {
			if v.Glyph != "" {
				assets[autotile.AssetRef{Library: v.Library, Image: v.Image}] = v.Glyph
			}
		}
	}
	return assets, groups
}

// Generator converts the map section into generator settings.
func (c *Config) Generator(rng *rand.Rand) *generate.Config {
	style, _ := parseCorridor(c.Map.Corridor)
	g := generate.DefaultConfig(rng)
	g.MapWidth = c.Map.Width
	g.MapHeight = c.Map.Height
	if c.Map.MinLeafSize > 0 {
		g.MinLeafSize = c.Map.MinLeafSize
	}
	if c.Map.MaxLeafSize > 0 {
		g.MaxLeafSize = c.Map.MaxLeafSize
	}
	if c.Map.MinRoomSize > 0 {
		g.MinRoomSize = c.Map.MinRoomSize
	}
	g.RoomPadding = c.Map.RoomPadding
	g.CorridorStyle = style
	g.Group = c.Map.Set
	g.DecorGroup = c.Map.DecorSet
	g.DecorCount = c.Map.DecorCount
	g.DecorMaxSize = c.Map.DecorMaxSize
	return g
}

// algorithm parses the set's algorithm name; an empty name means simple.
func (s SetConfig) algorithm() (autotile.Algorithm, error) {
	if s.Algorithm == "" {
		return autotile.Simple, nil
	}
	return autotile.ParseAlgorithm(s.Algorithm)
}

func (v VariantConfig) variant() (autotile.TileVariant, error) {
	typ := autotile.TileCenter
	if v.Type != "" {
		var err error
		if typ, err = autotile.ParseTileType(v.Type); err != nil {
			return autotile.TileVariant{}, err
		}
	}
	conns, err := autotile.ParseConnectionMask(v.Connections)
	if err != nil {
		return autotile.TileVariant{}, err
	}
	return autotile.TileVariant{
		Asset:       autotile.AssetRef{Library: v.Library, Image: v.Image},
		Type:        typ,
		Connections: conns,
		Weight:      v.Weight,
	}, nil
}

func parseCorridor(s string) (generate.CorridorStyle, error) {
	switch s {
	case "", "l", "L", "lshaped":
		return generate.CorridorLShaped, nil
	case "z", "Z", "zshaped":
		return generate.CorridorZShaped, nil
	case "straight":
		return generate.CorridorStraight, nil
	default:
		return generate.CorridorLShaped, fmt.Errorf("unknown corridor style %q", s)
	}
}
