package dualgrid

import (
	"fmt"

	"dualgrid/internal/core"
)

// Corner names one of the four terrain cells around a render cell.
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomLeft
	BottomRight
)

// Corners lists the corners in pattern key order.
var Corners = [4]Corner{TopLeft, TopRight, BottomLeft, BottomRight}

func (c Corner) String() string {
	switch c {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomLeft:
		return "bottom-left"
	case BottomRight:
		return "bottom-right"
	default:
		return fmt.Sprintf("corner(%d)", int(c))
	}
}

// HalfOffset is the shift of the render grid relative to the terrain grid,
// in cells along both axes.
type HalfOffset float64

const (
	// HalfOffsetNegative aligns a render coordinate with its top-right
	// terrain neighbor.
	HalfOffsetNegative HalfOffset = -0.5
	// HalfOffsetPositive aligns a render coordinate with its bottom-left
	// terrain neighbor.
	HalfOffsetPositive HalfOffset = 0.5
)

// Offsets relates a render coordinate to its terrain neighbors: the terrain
// cell at corner c of render cell r is r - Offsets[c], and a terrain cell t
// is the corner c of render cell t + Offsets[c].
type Offsets [4]core.Coord

// OffsetsFor returns the corner table for a half offset. Y grows upwards.
func OffsetsFor(h HalfOffset) (Offsets, error) {
	switch h {
	case HalfOffsetNegative:
		return Offsets{
			TopLeft:     {X: 1, Y: 0},
			TopRight:    {X: 0, Y: 0},
			BottomLeft:  {X: 1, Y: 1},
			BottomRight: {X: 0, Y: 1},
		}, nil
	case HalfOffsetPositive:
		return Offsets{
			TopLeft:     {X: 0, Y: -1},
			TopRight:    {X: -1, Y: -1},
			BottomLeft:  {X: 0, Y: 0},
			BottomRight: {X: -1, Y: 0},
		}, nil
	default:
		return Offsets{}, fmt.Errorf("dualgrid: half offset must be -0.5 or 0.5, got %v", float64(h))
	}
}

// Neighbor returns the terrain coordinate at corner c of render cell r.
func (o Offsets) Neighbor(r core.Coord, c Corner) core.Coord {
	return r.Sub(o[c])
}

// Affected returns the render cells whose neighborhoods include terrain
// cell t, in corner order.
func (o Offsets) Affected(t core.Coord) [4]core.Coord {
	var out [4]core.Coord
	for i, c := range Corners {
		out[i] = t.Add(o[c])
	}
	return out
}

// RenderOrigin returns the position of render cell r's lower-left corner in
// terrain space, where terrain cell t spans [t, t+1) on both axes.
func (o Offsets) RenderOrigin(r core.Coord) (x, y float64) {
	bl := o.Neighbor(r, BottomLeft)
	return float64(bl.X) + 0.5, float64(bl.Y) + 0.5
}

// Cover returns the smallest region holding every render cell whose
// neighborhood includes a terrain cell of region.
func (o Offsets) Cover(region core.Region) core.Region {
	if region.Empty() {
		return region
	}
	lo, hi := o[0], o[0]
	for _, d := range o[1:] {
		lo.X, lo.Y = min(lo.X, d.X), min(lo.Y, d.Y)
		hi.X, hi.Y = max(hi.X, d.X), max(hi.Y, d.Y)
	}
	return core.Region{
		Min: region.Min.Add(lo),
		W:   region.W + hi.X - lo.X,
		H:   region.H + hi.Y - lo.Y,
	}
}
