//go:build ebiten

package render

import (
	"image/color"

	"dualgrid/internal/core"
	"dualgrid/internal/tileset"

	"github.com/hajimehoshi/ebiten/v2"
)

// TilePainter draws render cells using procedurally generated tile images,
// one per tile of the dictionary, painted in the tile's authored
// orientation.
type TilePainter struct {
	size    int
	palette []color.RGBA
	tiles   map[string]*ebiten.Image
	unknown *ebiten.Image
}

// NewTilePainter builds one size x size image per tile in dict.
func NewTilePainter(dict *tileset.Dictionary, size int, palette []color.RGBA) *TilePainter {
	if size < 2 {
		size = 2
	}
	tp := &TilePainter{size: size, palette: palette, tiles: make(map[string]*ebiten.Image)}
	buf := make([]byte, 4*size*size)
	for _, tile := range dict.Tiles() {
		key, ok := dict.BaseKey(tile)
		if !ok || len(key) != 4 {
			continue
		}
		fillTileRGBA(buf, size, key, palette)
		img := ebiten.NewImage(size, size)
		img.WritePixels(buf)
		tp.tiles[tile] = img
	}
	tp.unknown = ebiten.NewImage(size, size)
	tp.unknown.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	return tp
}

// Draw paints every render cell of the view's region onto dst. Unset cells
// are left blank.
func (tp *TilePainter) Draw(dst *ebiten.Image, v View, lookup func(core.Coord) (core.RenderCell, bool)) {
	scale := float64(v.Scale) / float64(tp.size)
	half := float64(tp.size) / 2
	v.Region.Each(func(r core.Coord) {
		cell, ok := lookup(r)
		if !ok {
			return
		}
		img := tp.tiles[cell.Tile]
		if img == nil {
			img = tp.unknown
		}
		x, y := v.RenderCellAt(r)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-half, -half)
		// Rotations are counter-clockwise in a y-up world; the screen is y-down.
		op.GeoM.Rotate(-cell.Rotation.Radians())
		op.GeoM.Translate(half, half)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(float64(x), float64(y))
		dst.DrawImage(img, op)
	})
}

// TerrainPainter uploads a dense terrain layer into a one-pixel-per-cell
// image for overlays.
type TerrainPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewTerrainPainter allocates a painter for a w x h layer.
func NewTerrainPainter(w, h int) *TerrainPainter {
	return &TerrainPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Image refreshes the painter image from cells (row-major, bottom row
// first) and returns it flipped to screen orientation.
func (tp *TerrainPainter) Image(cells []uint8, palette []color.RGBA) *ebiten.Image {
	if len(cells) != tp.w*tp.h {
		return nil
	}
	flipped := make([]uint8, len(cells))
	for y := 0; y < tp.h; y++ {
		copy(flipped[(tp.h-1-y)*tp.w:(tp.h-y)*tp.w], cells[y*tp.w:(y+1)*tp.w])
	}
	fillPaletteRGBA(tp.buf, flipped, palette)
	tp.img.WritePixels(tp.buf)
	return tp.img
}
