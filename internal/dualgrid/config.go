package dualgrid

import (
	"strconv"

	"dualgrid/internal/core"
)

// Config controls the dual grid field.
type Config struct {
	HalfOffset     HalfOffset
	DefaultTerrain core.TerrainType
	Region         core.Region
	Sparse         bool

	Tileset string

	Seed        int64
	Density     float64
	SmoothSteps int
}

// DefaultConfig returns the standard configuration: a 32x32 grass field
// centred on the origin rendered with the grass-dirt set.
func DefaultConfig() Config {
	return Config{
		HalfOffset:     HalfOffsetNegative,
		DefaultTerrain: core.TerrainBase,
		Region:         core.Square(32),
		Tileset:        "grass-dirt",
		Seed:           0,
		Density:        0.45,
		SmoothSteps:    4,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overrides fields of c with the values present in cfg.
func ApplyMap(c Config, cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["half_offset"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			if _, err := OffsetsFor(HalfOffset(parsed)); err == nil {
				c.HalfOffset = HalfOffset(parsed)
			}
		}
	}
	if v, ok := cfg["default"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 && parsed < core.MaxTerrainTypes {
			c.DefaultTerrain = core.TerrainType(parsed)
		}
	}
	if v, ok := cfg["min_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Region.Min.X = parsed
		}
	}
	if v, ok := cfg["min_y"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Region.Min.Y = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Region.W = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Region.H = parsed
		}
	}
	if v, ok := cfg["sparse"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Sparse = parsed
		}
	}
	if v, ok := cfg["tileset"]; ok && v != "" {
		c.Tileset = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	if v, ok := cfg["smooth"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SmoothSteps = parsed
		}
	}
	return c
}

// NewStore allocates the store described by c.
func (c Config) NewStore() core.Store {
	if c.Sparse {
		return core.NewSparseStore(c.DefaultTerrain)
	}
	return core.NewDenseStore(c.Region, c.DefaultTerrain)
}
