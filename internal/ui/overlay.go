//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"dualgrid/internal/core"
	"dualgrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type terrainLayer interface {
	Region() core.Region
	TerrainCells() []uint8
}

type terrainSource interface {
	Store() core.Store
	Terrain(t core.Coord) core.TerrainType
}

// Overlay draws optional debugging visuals on top of the render grid: the
// terrain cells behind it, render cell outlines and the hovered terrain cell.
type Overlay struct {
	src  terrainSource
	view render.View

	showTerrain bool
	showGrid    bool

	painter *render.TerrainPainter
	pixel   *ebiten.Image

	cursor    core.Coord
	hasCursor bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src terrainSource, view render.View) *Overlay {
	o := &Overlay{src: src, view: view}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	if layer, ok := src.Store().(terrainLayer); ok {
		r := layer.Region()
		o.painter = render.NewTerrainPainter(r.W, r.H)
	}
	return o
}

// SetCursor records the hovered terrain cell.
func (o *Overlay) SetCursor(t core.Coord, ok bool) {
	o.cursor, o.hasCursor = t, ok
}

// Update handles the overlay toggles.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showTerrain = !o.showTerrain
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.showTerrain {
		o.drawTerrain(screen)
	}
	if o.showGrid {
		o.drawGrid(screen)
	}
	if o.hasCursor {
		o.drawCursor(screen)
	}
}

func (o *Overlay) drawTerrain(screen *ebiten.Image) {
	scale := float64(o.view.Scale)
	if o.painter != nil {
		layer := o.src.Store().(terrainLayer)
		img := o.painter.Image(layer.TerrainCells(), render.DefaultPalette)
		if img == nil {
			return
		}
		r := layer.Region()
		x, y := o.view.TerrainCellAt(core.Coord{X: r.Min.X, Y: r.Max().Y - 1})
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(scale, scale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleAlpha(0.45)
		screen.DrawImage(img, op)
		return
	}
	// Sparse stores have no dense layer; mark terrain centres instead.
	o.view.Region.Grow(1).Each(func(t core.Coord) {
		cx, cy := o.view.TerrainCenterAt(t)
		col := render.DefaultPalette[0]
		if v := int(o.src.Terrain(t)); v < len(render.DefaultPalette) {
			col = render.DefaultPalette[v]
		}
		o.drawPoint(screen, cx, cy, math.Max(2, scale/4), col)
	})
}

func (o *Overlay) drawGrid(screen *ebiten.Image) {
	w, h := o.view.Size()
	col := color.RGBA{R: 0, G: 0, B: 0, A: 90}
	for x := 0; x <= w; x += o.view.Scale {
		o.drawLine(screen, float64(x), 0, float64(x), float64(h), 1, col)
	}
	for y := 0; y <= h; y += o.view.Scale {
		o.drawLine(screen, 0, float64(y), float64(w), float64(y), 1, col)
	}
}

func (o *Overlay) drawCursor(screen *ebiten.Image) {
	x, y := o.view.TerrainCellAt(o.cursor)
	s := float64(o.view.Scale)
	col := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	o.drawLine(screen, x, y, x+s, y, 2, col)
	o.drawLine(screen, x+s, y, x+s, y+s, 2, col)
	o.drawLine(screen, x+s, y+s, x, y+s, 2, col)
	o.drawLine(screen, x, y+s, x, y, 2, col)
}

func (o *Overlay) drawPoint(screen *ebiten.Image, x, y, size float64, col color.RGBA) {
	if o.pixel == nil || size <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x-size*0.5, y-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
