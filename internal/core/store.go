package core

// Store holds terrain and render state keyed by coordinate. Implementations
// are plain data holders: setting a cell never triggers other updates.
type Store interface {
	// Terrain returns the terrain at c, or the default type when unset.
	Terrain(c Coord) TerrainType
	// SetTerrain writes the terrain at c and reports whether it was stored.
	SetTerrain(c Coord, t TerrainType) bool
	// Render returns the render cell at c; ok is false when it was never set.
	Render(c Coord) (cell RenderCell, ok bool)
	// SetRender writes the render cell at c and reports whether it was stored.
	SetRender(c Coord, cell RenderCell) bool
	// Default returns the terrain type reported for unset cells.
	Default() TerrainType
}

// DenseStore keeps both layers in flat slices bounded to a region. Reads
// outside the region see the default terrain; writes outside are dropped.
type DenseStore struct {
	def     TerrainType
	terrain *ByteGrid
	render  []RenderCell
	set     []bool
}

// NewDenseStore allocates a store for region.
func NewDenseStore(region Region, def TerrainType) *DenseStore {
	n := region.Len()
	return &DenseStore{
		def:     def,
		terrain: NewByteGrid(region, uint8(def)),
		render:  make([]RenderCell, n),
		set:     make([]bool, n),
	}
}

// Region returns the bounded window.
func (s *DenseStore) Region() Region { return s.terrain.Region() }

// Default returns the terrain type of unset cells.
func (s *DenseStore) Default() TerrainType { return s.def }

// TerrainCells exposes the raw terrain layer in row-major order.
func (s *DenseStore) TerrainCells() []uint8 { return s.terrain.Cells() }

// Terrain returns the terrain type at c.
func (s *DenseStore) Terrain(c Coord) TerrainType {
	idx := s.terrain.Index(c)
	if idx < 0 {
		return s.def
	}
	return TerrainType(s.terrain.Cells()[idx])
}

// SetTerrain stores t at c when c is inside the region.
func (s *DenseStore) SetTerrain(c Coord, t TerrainType) bool {
	idx := s.terrain.Index(c)
	if idx < 0 {
		return false
	}
	s.terrain.Cells()[idx] = uint8(t)
	return true
}

// Render returns the render cell at c.
func (s *DenseStore) Render(c Coord) (RenderCell, bool) {
	idx := s.terrain.Index(c)
	if idx < 0 || !s.set[idx] {
		return RenderCell{}, false
	}
	return s.render[idx], true
}

// SetRender stores cell at c when c is inside the region.
func (s *DenseStore) SetRender(c Coord, cell RenderCell) bool {
	idx := s.terrain.Index(c)
	if idx < 0 {
		return false
	}
	s.render[idx] = cell
	s.set[idx] = true
	return true
}

// SparseStore is an unbounded store backed by maps. Only terrain cells that
// differ from the default are kept.
type SparseStore struct {
	def     TerrainType
	terrain map[Coord]TerrainType
	render  map[Coord]RenderCell
}

// NewSparseStore returns an empty unbounded store.
func NewSparseStore(def TerrainType) *SparseStore {
	return &SparseStore{
		def:     def,
		terrain: make(map[Coord]TerrainType),
		render:  make(map[Coord]RenderCell),
	}
}

// Default returns the terrain type of unset cells.
func (s *SparseStore) Default() TerrainType { return s.def }

// Terrain returns the terrain type at c.
func (s *SparseStore) Terrain(c Coord) TerrainType {
	if t, ok := s.terrain[c]; ok {
		return t
	}
	return s.def
}

// SetTerrain stores t at c. It always succeeds.
func (s *SparseStore) SetTerrain(c Coord, t TerrainType) bool {
	if t == s.def {
		delete(s.terrain, c)
		return true
	}
	s.terrain[c] = t
	return true
}

// Render returns the render cell at c.
func (s *SparseStore) Render(c Coord) (RenderCell, bool) {
	cell, ok := s.render[c]
	return cell, ok
}

// SetRender stores cell at c. It always succeeds.
func (s *SparseStore) SetRender(c Coord, cell RenderCell) bool {
	s.render[c] = cell
	return true
}

// Painted returns the number of cells holding a non-default terrain.
func (s *SparseStore) Painted() int { return len(s.terrain) }
