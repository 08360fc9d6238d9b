package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"dualgrid/internal/core"
	"dualgrid/internal/dualgrid"
)

type Config struct {
	Grid     GridConfig     `toml:"grid"`
	Tileset  TilesetConfig  `toml:"tileset"`
	Generate GenerateConfig `toml:"generate"`
	Display  DisplayConfig  `toml:"display"`
	Logging  LoggingConfig  `toml:"logging"`
}

type GridConfig struct {
	HalfOffset     float64 `toml:"half_offset"` // -0.5 or 0.5
	DefaultTerrain int     `toml:"default_terrain"`
	MinX           int     `toml:"min_x"`
	MinY           int     `toml:"min_y"`
	Width          int     `toml:"width"`
	Height         int     `toml:"height"`
	Sparse         bool    `toml:"sparse"`
}

type TilesetConfig struct {
	Name string `toml:"name"`
	File string `toml:"file"` // YAML authoring file, overrides Name when set
}

type GenerateConfig struct {
	Density     float64 `toml:"density"`
	SmoothSteps int     `toml:"smooth_steps"`
}

type DisplayConfig struct {
	Scale int   `toml:"scale"` // pixels per cell
	TPS   int   `toml:"tps"`
	Seed  int64 `toml:"seed"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := dualgrid.OffsetsFor(dualgrid.HalfOffset(c.Grid.HalfOffset)); err != nil {
		return err
	}
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid size must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.DefaultTerrain < 0 || c.Grid.DefaultTerrain >= core.MaxTerrainTypes {
		return fmt.Errorf("default_terrain %d out of range", c.Grid.DefaultTerrain)
	}
	if c.Generate.Density < 0 || c.Generate.Density > 1 {
		return fmt.Errorf("density %v out of range [0,1]", c.Generate.Density)
	}
	return nil
}

// Default returns the built-in configuration.
func Default() *Config {
	def := dualgrid.DefaultConfig()
	return &Config{
		Grid: GridConfig{
			HalfOffset:     float64(def.HalfOffset),
			DefaultTerrain: int(def.DefaultTerrain),
			MinX:           def.Region.Min.X,
			MinY:           def.Region.Min.Y,
			Width:          def.Region.W,
			Height:         def.Region.H,
		},
		Tileset: TilesetConfig{
			Name: def.Tileset,
		},
		Generate: GenerateConfig{
			Density:     def.Density,
			SmoothSteps: def.SmoothSteps,
		},
		Display: DisplayConfig{
			Scale: 16,
			TPS:   60,
			Seed:  42,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DualGrid converts the file settings into an engine configuration.
func (c *Config) DualGrid() dualgrid.Config {
	return dualgrid.Config{
		HalfOffset:     dualgrid.HalfOffset(c.Grid.HalfOffset),
		DefaultTerrain: core.TerrainType(c.Grid.DefaultTerrain),
		Region: core.Region{
			Min: core.Coord{X: c.Grid.MinX, Y: c.Grid.MinY},
			W:   c.Grid.Width,
			H:   c.Grid.Height,
		},
		Sparse:      c.Grid.Sparse,
		Tileset:     c.Tileset.Name,
		Seed:        c.Display.Seed,
		Density:     c.Generate.Density,
		SmoothSteps: c.Generate.SmoothSteps,
	}
}
