package core

// ByteGrid stores one byte per cell of a Region in row-major order.
type ByteGrid struct {
	region Region
	data   []uint8
}

// NewByteGrid allocates a grid covering region with every cell set to fill.
func NewByteGrid(region Region, fill uint8) *ByteGrid {
	g := &ByteGrid{region: region, data: make([]uint8, region.Len())}
	g.Fill(fill)
	return g
}

// Region returns the covered window.
func (g *ByteGrid) Region() Region { return g.region }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for c, or -1 outside the region.
func (g *ByteGrid) Index(c Coord) int {
	if !g.region.Contains(c) {
		return -1
	}
	return (c.Y-g.region.Min.Y)*g.region.W + (c.X - g.region.Min.X)
}

// Fill sets every cell to v.
func (g *ByteGrid) Fill(v uint8) {
	for i := range g.data {
		g.data[i] = v
	}
}
