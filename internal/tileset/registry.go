package tileset

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSet reports a lookup of a tile set name that was never registered.
var ErrUnknownSet = errors.New("tileset: unknown set")

// Set is a named list of authored patterns.
type Set struct {
	Name     string    `yaml:"name"`
	Patterns []Pattern `yaml:"patterns"`
}

var sets = map[string]Set{}

// Register adds an authored set under its name.
func Register(s Set) {
	if s.Name == "" || len(s.Patterns) == 0 {
		return
	}
	sets[s.Name] = s
}

// Lookup returns a copy of the set registered under name.
func Lookup(name string) (Set, error) {
	s, ok := sets[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %q", ErrUnknownSet, name)
	}
	s.Patterns = append([]Pattern(nil), s.Patterns...)
	return s, nil
}

// Names returns the registered set names in ascending order.
func Names() []string {
	names := make([]string, 0, len(sets))
	for n := range sets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GrassDirt is the minimal six-tile set for a grass (0) and dirt (1) field.
var GrassDirt = Set{
	Name: "grass-dirt",
	Patterns: []Pattern{
		{Key: "1111", Tile: "dirt"},
		{Key: "0111", Tile: "dirt-corner-out"},
		{Key: "0101", Tile: "dirt-edge"},
		{Key: "0110", Tile: "dirt-diagonal"},
		{Key: "0001", Tile: "dirt-corner-in"},
		{Key: "0000", Tile: "grass"},
	},
}

func init() {
	Register(GrassDirt)
}
