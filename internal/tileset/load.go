package tileset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads an authored set from a YAML file:
//
//	name: grass-dirt
//	patterns:
//	  - key: "0001"
//	    tile: dirt-corner-in
//
// Keys must be quoted so YAML keeps their leading zeros. A missing name
// defaults to the file name without extension.
func LoadFile(path string) (Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read tile set %s: %w", path, err)
	}
	var s Set
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Set{}, fmt.Errorf("parse tile set %s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(s.Patterns) == 0 {
		return Set{}, fmt.Errorf("tile set %s: no patterns", path)
	}
	return s, nil
}
