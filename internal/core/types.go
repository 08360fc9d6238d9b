package core

import "math"

// TerrainType enumerates the values a terrain cell can hold. Pattern keys
// encode each value as one decimal digit.
type TerrainType uint8

const (
	// TerrainBase is the background terrain (grass in the default tile set).
	TerrainBase TerrainType = 0
	// TerrainAlt is the painted terrain (dirt in the default tile set).
	TerrainAlt TerrainType = 1
)

// MaxTerrainTypes bounds the alphabet usable in pattern keys.
const MaxTerrainTypes = 10

// Coord identifies a cell on either the terrain grid or the render grid.
// Y grows upwards.
type Coord struct {
	X, Y int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord { return Coord{X: c.X + d.X, Y: c.Y + d.Y} }

// Sub returns c translated by -d.
func (c Coord) Sub(d Coord) Coord { return Coord{X: c.X - d.X, Y: c.Y - d.Y} }

// Floor maps a continuous position onto the cell containing it.
func Floor(x, y float64) Coord {
	return Coord{X: int(math.Floor(x)), Y: int(math.Floor(y))}
}

// Region is a rectangular window of W x H cells starting at Min.
type Region struct {
	Min  Coord
	W, H int
}

// Square returns the region of side cells centred on the origin.
func Square(side int) Region {
	return Region{Min: Coord{X: -side / 2, Y: -side / 2}, W: side, H: side}
}

// Empty reports whether the region holds no cells.
func (r Region) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Max returns the exclusive upper corner.
func (r Region) Max() Coord { return Coord{X: r.Min.X + r.W, Y: r.Min.Y + r.H} }

// Contains reports whether c lies inside the region.
func (r Region) Contains(c Coord) bool {
	return c.X >= r.Min.X && c.X < r.Min.X+r.W && c.Y >= r.Min.Y && c.Y < r.Min.Y+r.H
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Each calls fn for every coordinate, bottom row first.
func (r Region) Each(fn func(c Coord)) {
	for y := r.Min.Y; y < r.Min.Y+r.H; y++ {
		for x := r.Min.X; x < r.Min.X+r.W; x++ {
			fn(Coord{X: x, Y: y})
		}
	}
}

// Grow returns the region extended by n cells on every side.
func (r Region) Grow(n int) Region {
	return Region{Min: Coord{X: r.Min.X - n, Y: r.Min.Y - n}, W: r.W + 2*n, H: r.H + 2*n}
}

// Rotation is a tile rotation in degrees. Dictionary entries only produce
// 0, -90, -180 and -270.
type Rotation int

// Radians converts the rotation to radians.
func (r Rotation) Radians() float64 { return float64(r) * math.Pi / 180 }

// RenderCell is the tile displayed at one render coordinate.
type RenderCell struct {
	Tile     string
	Rotation Rotation
}
