package tileset

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"dualgrid/internal/core"
	"dualgrid/internal/pattern"
)

var (
	// ErrDuplicatePattern reports two authored patterns claiming the same key,
	// either directly or through one of their rotations.
	ErrDuplicatePattern = errors.New("tileset: duplicate pattern")
	// ErrEmptyTile reports an authored pattern without a tile identifier.
	ErrEmptyTile = errors.New("tileset: empty tile id")
)

// Pattern is one authored base pattern: a 2x2 key in top-left, top-right,
// bottom-left, bottom-right order and the tile drawn for it unrotated.
type Pattern struct {
	Key  string `yaml:"key"`
	Tile string `yaml:"tile"`
}

// Entry is the tile and rotation rendered for one pattern key.
type Entry struct {
	Tile     string
	Rotation core.Rotation
}

// PackedKey encodes a 2x2 neighborhood as 2 bits per corner, top-left in the
// high bits. Only terrain values below 4 can be packed.
type PackedKey uint8

// Pack returns the packed form of four corner values.
func Pack(tl, tr, bl, br core.TerrainType) (PackedKey, bool) {
	if tl > 3 || tr > 3 || bl > 3 || br > 3 {
		return 0, false
	}
	return PackedKey(tl)<<6 | PackedKey(tr)<<4 | PackedKey(bl)<<2 | PackedKey(br), true
}

// Dictionary maps every pattern key reachable from an authored set to the
// entry rendered for it. It is immutable once built.
type Dictionary struct {
	entries   map[string]Entry
	packed    [256]Entry
	hasPacked [256]bool
	baseKeys  map[string]string
}

// Build expands each authored 2x2 pattern into all of its distinct clockwise
// rotations. A pattern rotated i times maps to the same tile at -90*i
// degrees, so the drawn tile turns back to match the rotated terrain. The
// build fails without partial results on a malformed key, an empty tile or a
// key produced twice.
func Build(patterns []Pattern) (*Dictionary, error) {
	d := &Dictionary{
		entries:  make(map[string]Entry, len(patterns)*4),
		baseKeys: make(map[string]string, len(patterns)),
	}
	for _, p := range patterns {
		if p.Tile == "" {
			return nil, fmt.Errorf("%w: pattern %q", ErrEmptyTile, p.Key)
		}
		m, err := pattern.Decode(p.Key)
		if err != nil {
			return nil, fmt.Errorf("tile %q: %w", p.Tile, err)
		}
		if m.Rows() != 2 {
			return nil, fmt.Errorf("tile %q: %w: key %q is not 2x2", p.Tile, pattern.ErrInvalidFormat, p.Key)
		}
		if err := d.add(m.Encode(), Entry{Tile: p.Tile}); err != nil {
			return nil, err
		}
		for i := 1; i <= pattern.RotationCount(m); i++ {
			m = m.RotateClockwise()
			if err := d.add(m.Encode(), Entry{Tile: p.Tile, Rotation: core.Rotation(-90 * i)}); err != nil {
				return nil, err
			}
		}
		if _, ok := d.baseKeys[p.Tile]; !ok {
			d.baseKeys[p.Tile] = p.Key
		}
	}
	return d, nil
}

func (d *Dictionary) add(key string, e Entry) error {
	if prev, ok := d.entries[key]; ok {
		return fmt.Errorf("%w: key %s maps to %q and %q", ErrDuplicatePattern, key, prev.Tile, e.Tile)
	}
	d.entries[key] = e
	if len(key) == 4 {
		pk, ok := Pack(
			core.TerrainType(key[0]-'0'), core.TerrainType(key[1]-'0'),
			core.TerrainType(key[2]-'0'), core.TerrainType(key[3]-'0'),
		)
		if ok {
			d.packed[pk] = e
			d.hasPacked[pk] = true
		}
	}
	return nil
}

// Lookup returns the entry for key.
func (d *Dictionary) Lookup(key string) (Entry, bool) {
	e, ok := d.entries[key]
	return e, ok
}

// LookupPacked returns the entry for a packed 2x2 key.
func (d *Dictionary) LookupPacked(k PackedKey) (Entry, bool) {
	return d.packed[k], d.hasPacked[k]
}

// Len returns the number of keys in the dictionary.
func (d *Dictionary) Len() int { return len(d.entries) }

// Keys returns every mapped key in ascending order.
func (d *Dictionary) Keys() []string {
	keys := make([]string, 0, len(d.entries))
	for k := range d.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// BaseKey returns the authored key of tile, the orientation it is drawn in
// at rotation 0.
func (d *Dictionary) BaseKey(tile string) (string, bool) {
	k, ok := d.baseKeys[tile]
	return k, ok
}

// Tiles returns the distinct tile identifiers in ascending order.
func (d *Dictionary) Tiles() []string {
	tiles := make([]string, 0, len(d.baseKeys))
	for t := range d.baseKeys {
		tiles = append(tiles, t)
	}
	sort.Strings(tiles)
	return tiles
}

// Missing lists the 2x2 keys over a states-symbol alphabet that no authored
// pattern covers.
func (d *Dictionary) Missing(states int) []string {
	if states <= 0 || states > core.MaxTerrainTypes {
		return nil
	}
	var missing []string
	total := states * states * states * states
	var b strings.Builder
	for i := 0; i < total; i++ {
		b.Reset()
		div := states * states * states
		for corner := 0; corner < 4; corner++ {
			b.WriteByte(byte('0' + (i/div)%states))
			div /= states
		}
		if _, ok := d.entries[b.String()]; !ok {
			missing = append(missing, b.String())
		}
	}
	return missing
}
