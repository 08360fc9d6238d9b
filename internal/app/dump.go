package app

import (
	"fmt"
	"io"
	"strings"

	"dualgrid/internal/core"
	"dualgrid/internal/dualgrid"
)

const tileSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// WriteTerrain prints the terrain types of region, one digit per cell, top
// row first.
func WriteTerrain(w io.Writer, e *dualgrid.Engine, region core.Region) error {
	var b strings.Builder
	for y := region.Max().Y - 1; y >= region.Min.Y; y-- {
		for x := region.Min.X; x < region.Max().X; x++ {
			t := e.Terrain(core.Coord{X: x, Y: y})
			if t > 9 {
				b.WriteByte('#')
				continue
			}
			b.WriteByte('0' + byte(t))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteRender prints the render cells of region as a symbol for the tile
// followed by the number of clockwise quarter turns, top row first. Cells
// without a tile print "..". A legend mapping symbols to tiles follows.
func WriteRender(w io.Writer, e *dualgrid.Engine, region core.Region) error {
	symbols := map[string]byte{}
	tiles := e.Dictionary().Tiles()
	for i, tile := range tiles {
		if i < len(tileSymbols) {
			symbols[tile] = tileSymbols[i]
		}
	}

	var b strings.Builder
	for y := region.Max().Y - 1; y >= region.Min.Y; y-- {
		for x := region.Min.X; x < region.Max().X; x++ {
			if x > region.Min.X {
				b.WriteByte(' ')
			}
			cell, ok := e.RenderCell(core.Coord{X: x, Y: y})
			if !ok {
				b.WriteString("..")
				continue
			}
			sym, ok := symbols[cell.Tile]
			if !ok {
				sym = '?'
			}
			b.WriteByte(sym)
			b.WriteByte('0' + byte(quarterTurns(cell.Rotation)))
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	for _, tile := range tiles {
		sym, ok := symbols[tile]
		if !ok {
			sym = '?'
		}
		base, _ := e.Dictionary().BaseKey(tile)
		fmt.Fprintf(&b, "%c = %s (%s)\n", sym, tile, base)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteCells lists every render cell of region as "x y key tile rotation",
// bottom row first. Cells without a tile print "-" for tile and rotation.
func WriteCells(w io.Writer, e *dualgrid.Engine, region core.Region) error {
	var b strings.Builder
	region.Each(func(r core.Coord) {
		key := e.PatternKey(r)
		cell, ok := e.RenderCell(r)
		if !ok {
			fmt.Fprintf(&b, "%d %d %s - -\n", r.X, r.Y, key)
			return
		}
		fmt.Fprintf(&b, "%d %d %s %s %d\n", r.X, r.Y, key, cell.Tile, int(cell.Rotation))
	})
	_, err := io.WriteString(w, b.String())
	return err
}

func quarterTurns(r core.Rotation) int {
	q := (-int(r) / 90) % 4
	if q < 0 {
		q += 4
	}
	return q
}
