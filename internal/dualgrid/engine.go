package dualgrid

import (
	"fmt"
	"strconv"

	"dualgrid/internal/core"
	"dualgrid/internal/terrain"
	"dualgrid/internal/tileset"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stats counts the work done by an Engine since it was configured.
type Stats struct {
	Edits    int
	Resolves int
	Applied  int
	Missing  int
}

// Engine keeps the render grid of a Store consistent with its terrain grid.
// It is not safe for concurrent use: each edit and its re-resolves finish
// before the call returns.
type Engine struct {
	cfg     Config
	offsets Offsets
	dict    *tileset.Dictionary
	store   core.Store
	log     *zap.Logger

	states int
	brush  core.TerrainType
	stats  Stats
}

// Configure builds the tile dictionary from patterns and materializes the
// render grid over cfg.Region. A nil store is replaced by cfg.NewStore(); a
// nil logger discards output.
func Configure(cfg Config, patterns []tileset.Pattern, store core.Store, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}
	offsets, err := OffsetsFor(cfg.HalfOffset)
	if err != nil {
		return nil, err
	}
	dict, err := tileset.Build(patterns)
	if err != nil {
		return nil, fmt.Errorf("build tile dictionary: %w", err)
	}
	if store == nil {
		store = cfg.NewStore()
	}

	e := &Engine{
		cfg:     cfg,
		offsets: offsets,
		dict:    dict,
		store:   store,
		log:     log,
		states:  alphabetSize(dict, cfg.DefaultTerrain),
	}
	e.brush = e.defaultBrush()

	applied := e.BulkResolve(cfg.Region)
	log.Info("dual grid configured",
		zap.String("tileset", cfg.Tileset),
		zap.Int("patterns", len(patterns)),
		zap.Int("keys", dict.Len()),
		zap.Float64("half_offset", float64(cfg.HalfOffset)),
		zap.Int("cells", cfg.Region.Len()),
		zap.Int("applied", applied),
	)
	if missing := dict.Missing(e.states); len(missing) > 0 {
		log.Info("tile set leaves keys unmapped", zap.Strings("keys", missing))
	}
	return e, nil
}

// alphabetSize returns the number of terrain types the dictionary mentions.
func alphabetSize(d *tileset.Dictionary, def core.TerrainType) int {
	top := int(def)
	for _, k := range d.Keys() {
		for i := 0; i < len(k); i++ {
			if v := int(k[i] - '0'); v > top {
				top = v
			}
		}
	}
	return top + 1
}

func (e *Engine) defaultBrush() core.TerrainType {
	for t := 0; t < e.states; t++ {
		if core.TerrainType(t) != e.cfg.DefaultTerrain {
			return core.TerrainType(t)
		}
	}
	return e.cfg.DefaultTerrain
}

// ResolveOne recomputes the render cell at r from its four terrain
// neighbors and reports whether a tile was applied. A neighborhood with no
// dictionary entry leaves the render cell untouched.
func (e *Engine) ResolveOne(r core.Coord) bool {
	vals := e.sample(r)
	e.stats.Resolves++

	entry, ok := e.lookup(vals)
	if !ok {
		e.stats.Missing++
		if ce := e.log.Check(zapcore.DebugLevel, "no tile for pattern"); ce != nil {
			ce.Write(zap.String("key", keyOf(vals)), zap.Int("x", r.X), zap.Int("y", r.Y))
		}
		return false
	}
	if e.store.SetRender(r, core.RenderCell{Tile: entry.Tile, Rotation: entry.Rotation}) {
		e.stats.Applied++
	}
	return true
}

func (e *Engine) sample(r core.Coord) [4]core.TerrainType {
	var vals [4]core.TerrainType
	for i, c := range Corners {
		vals[i] = e.store.Terrain(e.offsets.Neighbor(r, c))
	}
	return vals
}

func (e *Engine) lookup(vals [4]core.TerrainType) (tileset.Entry, bool) {
	for _, v := range vals {
		if int(v) >= core.MaxTerrainTypes {
			return tileset.Entry{}, false
		}
	}
	if pk, ok := tileset.Pack(vals[0], vals[1], vals[2], vals[3]); ok {
		return e.dict.LookupPacked(pk)
	}
	return e.dict.Lookup(keyOf(vals))
}

func keyOf(vals [4]core.TerrainType) string {
	var b [4]byte
	for i, v := range vals {
		if int(v) >= core.MaxTerrainTypes {
			b[i] = '?'
			continue
		}
		b[i] = '0' + byte(v)
	}
	return string(b[:])
}

// ApplyEdit sets the terrain at t and re-resolves every render cell whose
// neighborhood includes t. It returns those render coordinates in corner
// order.
func (e *Engine) ApplyEdit(t core.Coord, typ core.TerrainType) [4]core.Coord {
	e.store.SetTerrain(t, typ)
	e.stats.Edits++
	affected := e.offsets.Affected(t)
	for _, r := range affected {
		e.ResolveOne(r)
	}
	if ce := e.log.Check(zapcore.DebugLevel, "terrain edit"); ce != nil {
		ce.Write(zap.Int("x", t.X), zap.Int("y", t.Y), zap.Uint8("type", uint8(typ)))
	}
	return affected
}

// BulkResolve resolves every render coordinate in region and returns how
// many received a tile.
func (e *Engine) BulkResolve(region core.Region) int {
	applied := 0
	region.Each(func(r core.Coord) {
		if e.ResolveOne(r) {
			applied++
		}
	})
	return applied
}

// Reset clears the terrain of the configured region back to the default
// type and, for a non-zero seed, scatters and smooths alt terrain before
// re-resolving every render cell that samples the region, including the
// ring just outside it. A zero seed falls back to the configured seed; both
// zero leaves a blank field.
func (e *Engine) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	region := e.cfg.Region
	region.Each(func(c core.Coord) {
		e.store.SetTerrain(c, e.cfg.DefaultTerrain)
	})
	painted := 0
	if seed != 0 {
		alt := e.defaultBrush()
		painted = terrain.Scatter(e.store, region, alt, e.cfg.Density, core.NewRNG(seed))
		terrain.Smooth(e.store, region, alt, e.cfg.DefaultTerrain, e.cfg.SmoothSteps)
	}
	applied := e.BulkResolve(e.offsets.Cover(region))
	e.log.Info("field reset",
		zap.Int64("seed", seed),
		zap.Int("scattered", painted),
		zap.Int("applied", applied),
	)
}

// RenderCell returns the tile shown at render coordinate r.
func (e *Engine) RenderCell(r core.Coord) (core.RenderCell, bool) {
	return e.store.Render(r)
}

// Terrain returns the terrain type at t.
func (e *Engine) Terrain(t core.Coord) core.TerrainType {
	return e.store.Terrain(t)
}

// PatternKey returns the key currently sampled around render coordinate r.
func (e *Engine) PatternKey(r core.Coord) string {
	return keyOf(e.sample(r))
}

// Name returns the tile set name.
func (e *Engine) Name() string { return e.cfg.Tileset }

// Region returns the configured field.
func (e *Engine) Region() core.Region { return e.cfg.Region }

// Offsets returns the corner table in use.
func (e *Engine) Offsets() Offsets { return e.offsets }

// Store returns the backing store.
func (e *Engine) Store() core.Store { return e.store }

// Dictionary returns the tile dictionary.
func (e *Engine) Dictionary() *tileset.Dictionary { return e.dict }

// States returns the number of terrain types the tile set covers.
func (e *Engine) States() int { return e.states }

// Stats returns the work counters.
func (e *Engine) Stats() Stats { return e.stats }

// Brush returns the terrain type painted by the primary input action.
func (e *Engine) Brush() core.TerrainType { return e.brush }

// ParameterControls exposes the brush selector.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "brush", Label: "Brush", Min: 0, Max: e.states - 1},
	}
}

// SetIntParameter updates an adjustable parameter.
func (e *Engine) SetIntParameter(key string, value int) bool {
	if key != "brush" || value < 0 || value >= e.states {
		return false
	}
	e.brush = core.TerrainType(value)
	return true
}

// Parameters returns a snapshot of the engine state for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	itoa := strconv.Itoa
	r := e.cfg.Region
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Tile set",
			Params: []core.Parameter{
				{Key: "tileset", Label: "Name", Type: core.ParamTypeText, Value: e.cfg.Tileset},
				{Key: "keys", Label: "Keys", Type: core.ParamTypeText, Value: itoa(e.dict.Len())},
				{Key: "missing", Label: "Unmapped", Type: core.ParamTypeText, Value: itoa(len(e.dict.Missing(e.states)))},
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				{Key: "region", Label: "Region", Type: core.ParamTypeText, Value: fmt.Sprintf("%dx%d @ %d,%d", r.W, r.H, r.Min.X, r.Min.Y)},
				{Key: "half_offset", Label: "Offset", Type: core.ParamTypeText, Value: strconv.FormatFloat(float64(e.cfg.HalfOffset), 'f', 1, 64)},
				{Key: "brush", Label: "Brush", Type: core.ParamTypeInt, Value: itoa(int(e.brush))},
			},
		},
		{
			Name: "Stats",
			Params: []core.Parameter{
				{Key: "edits", Label: "Edits", Type: core.ParamTypeText, Value: itoa(e.stats.Edits)},
				{Key: "resolves", Label: "Resolves", Type: core.ParamTypeText, Value: itoa(e.stats.Resolves)},
				{Key: "misses", Label: "Misses", Type: core.ParamTypeText, Value: itoa(e.stats.Missing)},
			},
		},
	}}
}
