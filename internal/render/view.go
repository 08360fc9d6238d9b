package render

import (
	"dualgrid/internal/core"
	"dualgrid/internal/dualgrid"
)

// View maps between screen pixels (y down) and the dual grid (y up). The
// render cells of Region fill the screen, Scale pixels per cell.
type View struct {
	Region  core.Region
	Offsets dualgrid.Offsets
	Scale   int

	originX, originY float64
}

// NewView builds a view of region. Non-positive scales fall back to 1.
func NewView(region core.Region, offsets dualgrid.Offsets, scale int) View {
	if scale <= 0 {
		scale = 1
	}
	v := View{Region: region, Offsets: offsets, Scale: scale}
	v.originX, v.originY = offsets.RenderOrigin(region.Min)
	return v
}

// Size returns the screen size in pixels.
func (v View) Size() (int, int) {
	return v.Region.W * v.Scale, v.Region.H * v.Scale
}

// RenderCellAt returns the screen position of the top-left pixel of render
// cell r.
func (v View) RenderCellAt(r core.Coord) (int, int) {
	x := (r.X - v.Region.Min.X) * v.Scale
	y := (v.Region.Max().Y - 1 - r.Y) * v.Scale
	return x, y
}

// TerrainCenterAt returns the screen position of the centre of terrain cell t.
func (v View) TerrainCenterAt(t core.Coord) (float64, float64) {
	return v.worldToScreen(float64(t.X)+0.5, float64(t.Y)+0.5)
}

// TerrainCellAt returns the screen position of the top-left corner of
// terrain cell t.
func (v View) TerrainCellAt(t core.Coord) (float64, float64) {
	return v.worldToScreen(float64(t.X), float64(t.Y+1))
}

// TerrainAt returns the terrain cell under screen pixel (sx, sy).
func (v View) TerrainAt(sx, sy int) core.Coord {
	s := float64(v.Scale)
	wx := v.originX + (float64(sx)+0.5)/s
	wy := v.originY + float64(v.Region.H) - (float64(sy)+0.5)/s
	return core.Floor(wx, wy)
}

func (v View) worldToScreen(wx, wy float64) (float64, float64) {
	s := float64(v.Scale)
	return (wx - v.originX) * s, (v.originY + float64(v.Region.H) - wy) * s
}
