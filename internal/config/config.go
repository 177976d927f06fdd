package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/OCharnyshevich/tileworld/internal/gen"
)

// Config holds the sandbox configuration.
type Config struct {
	Seed        int64      `json:"seed" yaml:"seed"` // 0 = derive from the clock
	Origin      [3]float64 `json:"origin" yaml:"origin"`
	TileSize    float64    `json:"tile_size" yaml:"tile_size"`
	Earth       Band       `json:"earth" yaml:"earth"`
	Underground Band       `json:"underground" yaml:"underground"`
	Noise       string     `json:"noise" yaml:"noise"` // "sine", "simplex" or "perlin"
	Mountains   Mountains  `json:"mountains" yaml:"mountains"`
	Trees       int        `json:"trees" yaml:"trees"`
	SpriteLimit int        `json:"sprite_limit" yaml:"sprite_limit"` // 0 = unlimited

	Assets Assets `json:"assets" yaml:"assets"`
	Sim    Sim    `json:"sim" yaml:"sim"`

	DumpPath string `json:"dump_path" yaml:"dump_path"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

// Band is a terrain region size in tiles.
type Band struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type Mountains struct {
	Count    int     `json:"count" yaml:"count"`
	Spacing  float64 `json:"spacing" yaml:"spacing"`
	Width    int     `json:"width" yaml:"width"`
	Height   int     `json:"height" yaml:"height"`
	Lift     float64 `json:"lift" yaml:"lift"`
	Symmetry string  `json:"symmetry" yaml:"symmetry"` // "all" or "middle"
}

// Assets locates the texture pack. Source, when set, is fetched into Dir
// before loading.
type Assets struct {
	Dir    string `json:"dir" yaml:"dir"`
	Source string `json:"source" yaml:"source"`
}

type Sim struct {
	Tick     time.Duration `json:"tick" yaml:"tick"`
	Duration time.Duration `json:"duration" yaml:"duration"` // 0 = until cancelled
	Script   string        `json:"script" yaml:"script"`
}

// DefaultConfig returns a Config with the standard world layout.
func DefaultConfig() *Config {
	return &Config{
		Origin:      [3]float64{-900, -1000, -10},
		TileSize:    20,
		Earth:       Band{Width: 600, Height: 60},
		Underground: Band{Width: 600, Height: 200},
		Noise:       gen.FieldSine,
		Mountains: Mountains{
			Count:    10,
			Spacing:  2000,
			Width:    40,
			Height:   50,
			Lift:     780,
			Symmetry: string(gen.SymmetryAll),
		},
		Trees:    6,
		Assets:   Assets{Dir: "assets"},
		Sim:      Sim{Tick: time.Second / 60, Duration: 10 * time.Second},
		LogLevel: "info",
	}
}

// Load reads a YAML (or JSON) file over DefaultConfig. Keys absent from
// the file keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Merge applies file-loaded config values into cfg, but only for fields
// that were NOT explicitly set via CLI flags. explicitFlags contains the
// flag names that were explicitly provided on the command line.
func Merge(cfg *Config, fromFile *Config, explicitFlags map[string]bool) {
	if !explicitFlags["seed"] {
		cfg.Seed = fromFile.Seed
	}
	if !explicitFlags["noise"] {
		cfg.Noise = fromFile.Noise
	}
	if !explicitFlags["symmetry"] {
		cfg.Mountains.Symmetry = fromFile.Mountains.Symmetry
	}
	if !explicitFlags["assets"] {
		cfg.Assets.Dir = fromFile.Assets.Dir
	}
	if !explicitFlags["assets-source"] {
		cfg.Assets.Source = fromFile.Assets.Source
	}
	if !explicitFlags["tick"] {
		cfg.Sim.Tick = fromFile.Sim.Tick
	}
	if !explicitFlags["duration"] {
		cfg.Sim.Duration = fromFile.Sim.Duration
	}
	if !explicitFlags["script"] {
		cfg.Sim.Script = fromFile.Sim.Script
	}
	if !explicitFlags["dump"] {
		cfg.DumpPath = fromFile.DumpPath
	}
	if !explicitFlags["log-level"] {
		cfg.LogLevel = fromFile.LogLevel
	}

	// No flags for these.
	cfg.Origin = fromFile.Origin
	cfg.TileSize = fromFile.TileSize
	cfg.Earth = fromFile.Earth
	cfg.Underground = fromFile.Underground
	cfg.Mountains.Count = fromFile.Mountains.Count
	cfg.Mountains.Spacing = fromFile.Mountains.Spacing
	cfg.Mountains.Width = fromFile.Mountains.Width
	cfg.Mountains.Height = fromFile.Mountains.Height
	cfg.Mountains.Lift = fromFile.Mountains.Lift
	cfg.Trees = fromFile.Trees
	cfg.SpriteLimit = fromFile.SpriteLimit
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.TileSize <= 0 {
		return errors.New("tile_size must be positive")
	}
	if c.Earth.Width <= 0 || c.Earth.Height <= 0 {
		return errors.New("earth band dimensions must be positive")
	}
	if c.Underground.Width <= 0 || c.Underground.Height <= 0 {
		return errors.New("underground band dimensions must be positive")
	}
	switch c.Noise {
	case "", gen.FieldSine, gen.FieldSimplex, gen.FieldPerlin:
	default:
		return fmt.Errorf("noise %q invalid", c.Noise)
	}
	if c.Mountains.Count < 0 {
		return errors.New("mountains.count cannot be negative")
	}
	if c.Mountains.Count > 0 && (c.Mountains.Width <= 0 || c.Mountains.Height <= 0) {
		return errors.New("mountain dimensions must be positive")
	}
	if _, err := gen.ParseSymmetryMode(c.Mountains.Symmetry); err != nil {
		return fmt.Errorf("mountains.symmetry invalid: %w", err)
	}
	if c.Trees < 0 {
		return errors.New("trees cannot be negative")
	}
	if c.Sim.Tick <= 0 {
		return errors.New("sim.tick must be positive")
	}
	if c.Sim.Duration < 0 {
		return errors.New("sim.duration cannot be negative")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log_level invalid: %w", err)
	}
	return lvl, nil
}
