package app

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dualgrid/internal/config"
	"dualgrid/internal/core"
	"dualgrid/internal/tileset"
)

func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Logging.Level = "error"
	return cfg
}

func TestFlagsOverrideOnlyWhenSet(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dualgrid.toml")
	if err := os.WriteFile(path, []byte("[display]\ntps = 30\nscale = 4\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-config", path, "-seed", "7", "-tileset", "custom"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg, err := c.Load(fs)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Display.TPS != 30 || cfg.Display.Scale != 4 {
		t.Fatalf("file values lost: tps=%d scale=%d", cfg.Display.TPS, cfg.Display.Scale)
	}
	if cfg.Display.Seed != 7 {
		t.Fatalf("expected seed flag to win, got %d", cfg.Display.Seed)
	}
	if cfg.Tileset.Name != "custom" {
		t.Fatalf("expected tileset flag to win, got %q", cfg.Tileset.Name)
	}
}

func TestSetupWithOverrides(t *testing.T) {
	eng, log, err := Setup(quietConfig(), map[string]string{"min_x": "0", "min_y": "0", "w": "4", "h": "3"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer log.Sync()

	want := core.Region{Min: core.Coord{}, W: 4, H: 3}
	if eng.Region() != want {
		t.Fatalf("expected region %+v, got %+v", want, eng.Region())
	}
	if eng.Name() != "grass-dirt" {
		t.Fatalf("expected grass-dirt, got %q", eng.Name())
	}
	cell, ok := eng.RenderCell(core.Coord{X: 1, Y: 1})
	if !ok || cell.Tile != "grass" {
		t.Fatalf("expected grass after configure, got %+v ok=%v", cell, ok)
	}
}

func TestSetupUnknownTileset(t *testing.T) {
	cfg := quietConfig()
	cfg.Tileset.Name = "no-such-set"
	if _, _, err := Setup(cfg, nil); !errors.Is(err, tileset.ErrUnknownSet) {
		t.Fatalf("expected ErrUnknownSet, got %v", err)
	}
}

func TestSetupFromTilesetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "water.yaml")
	data := "patterns:\n  - key: \"0000\"\n    tile: sand\n  - key: \"1111\"\n    tile: water\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write tile set: %v", err)
	}
	cfg := quietConfig()
	cfg.Tileset.File = path
	eng, _, err := Setup(cfg, nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if eng.Name() != "water" {
		t.Fatalf("expected set named after file, got %q", eng.Name())
	}
	if eng.Dictionary().Len() != 2 {
		t.Fatalf("expected 2 keys, got %d", eng.Dictionary().Len())
	}
}

func TestDumpWriters(t *testing.T) {
	eng, _, err := Setup(quietConfig(), nil)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	eng.ApplyEdit(core.Coord{}, core.TerrainAlt)

	var terrain bytes.Buffer
	if err := WriteTerrain(&terrain, eng, core.Region{Min: core.Coord{X: -1, Y: -1}, W: 3, H: 3}); err != nil {
		t.Fatalf("write terrain: %v", err)
	}
	if got, want := terrain.String(), "000\n010\n000\n"; got != want {
		t.Fatalf("terrain dump mismatch:\n%s\nwant:\n%s", got, want)
	}

	var render bytes.Buffer
	if err := WriteRender(&render, eng, core.Region{W: 2, H: 2}); err != nil {
		t.Fatalf("write render: %v", err)
	}
	lines := strings.Split(render.String(), "\n")
	if lines[0] != "B0 B1" || lines[1] != "B3 B2" {
		t.Fatalf("unexpected render rows %q %q", lines[0], lines[1])
	}
	if !strings.Contains(render.String(), "B = dirt-corner-in (0001)") {
		t.Fatalf("legend missing corner tile:\n%s", render.String())
	}

	var cells bytes.Buffer
	if err := WriteCells(&cells, eng, core.Region{W: 1, H: 1}); err != nil {
		t.Fatalf("write cells: %v", err)
	}
	if got, want := cells.String(), "0 0 0100 dirt-corner-in -270\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestQuarterTurns(t *testing.T) {
	cases := map[core.Rotation]int{0: 0, -90: 1, -180: 2, -270: 3, 90: 3, -360: 0}
	for rot, want := range cases {
		if got := quarterTurns(rot); got != want {
			t.Fatalf("quarterTurns(%d) = %d, want %d", rot, got, want)
		}
	}
}
