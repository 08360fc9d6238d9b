package core

import (
	"testing"
	"time"
)

func TestDenseStoreDefaultsAndBounds(t *testing.T) {
	region := Region{Min: Coord{X: -2, Y: -2}, W: 4, H: 4}
	s := NewDenseStore(region, TerrainBase)

	if got := s.Terrain(Coord{X: 0, Y: 0}); got != TerrainBase {
		t.Fatalf("unset terrain = %d, want base", got)
	}
	if got := s.Terrain(Coord{X: 100, Y: 0}); got != TerrainBase {
		t.Fatalf("outside terrain = %d, want base", got)
	}
	if !s.SetTerrain(Coord{X: -2, Y: 1}, TerrainAlt) {
		t.Fatal("SetTerrain inside region should succeed")
	}
	if !s.SetTerrain(Coord{X: -2, Y: 1}, TerrainAlt) {
		t.Fatal("repeated SetTerrain should succeed")
	}
	if got := s.Terrain(Coord{X: -2, Y: 1}); got != TerrainAlt {
		t.Fatalf("terrain (-2,1) = %d, want alt", got)
	}
	if s.SetTerrain(Coord{X: 2, Y: 0}, TerrainAlt) {
		t.Fatal("SetTerrain at exclusive max should be dropped")
	}
	if got := s.Terrain(Coord{X: 2, Y: 0}); got != TerrainBase {
		t.Fatalf("dropped write leaked: %d", got)
	}
}

func TestDenseStoreRenderLayer(t *testing.T) {
	s := NewDenseStore(Square(4), TerrainBase)
	c := Coord{X: 1, Y: 1}
	if _, ok := s.Render(c); ok {
		t.Fatal("render cell should start unset")
	}
	cell := RenderCell{Tile: "edge", Rotation: -90}
	if !s.SetRender(c, cell) {
		t.Fatal("SetRender inside region should succeed")
	}
	got, ok := s.Render(c)
	if !ok || got != cell {
		t.Fatalf("Render(%v) = %+v, %v", c, got, ok)
	}
	if s.SetRender(Coord{X: 9, Y: 9}, cell) {
		t.Fatal("SetRender outside region should be dropped")
	}
}

func TestSparseStore(t *testing.T) {
	s := NewSparseStore(TerrainAlt)
	far := Coord{X: 1 << 20, Y: -(1 << 20)}
	if got := s.Terrain(far); got != TerrainAlt {
		t.Fatalf("unset terrain = %d, want default alt", got)
	}
	s.SetTerrain(far, TerrainBase)
	if got := s.Terrain(far); got != TerrainBase {
		t.Fatalf("terrain = %d, want base", got)
	}
	if s.Painted() != 1 {
		t.Fatalf("Painted = %d, want 1", s.Painted())
	}
	s.SetTerrain(far, TerrainAlt)
	if s.Painted() != 0 {
		t.Fatalf("writing the default should drop the entry, Painted = %d", s.Painted())
	}
	s.SetRender(far, RenderCell{Tile: "x"})
	if cell, ok := s.Render(far); !ok || cell.Tile != "x" {
		t.Fatalf("Render = %+v, %v", cell, ok)
	}
}

func TestRegion(t *testing.T) {
	r := Square(4)
	if r.Min != (Coord{X: -2, Y: -2}) || r.Max() != (Coord{X: 2, Y: 2}) {
		t.Fatalf("Square(4) = %+v", r)
	}
	count := 0
	r.Each(func(c Coord) {
		if !r.Contains(c) {
			t.Fatalf("Each yielded %v outside region", c)
		}
		count++
	})
	if count != r.Len() || count != 16 {
		t.Fatalf("Each visited %d cells, want 16", count)
	}
	if g := r.Grow(1); g.Len() != 36 || !g.Contains(Coord{X: -3, Y: 2}) {
		t.Fatalf("Grow(1) = %+v", g)
	}
	if (Region{W: 0, H: 3}).Len() != 0 {
		t.Fatal("empty region should have no cells")
	}
}

func TestFloor(t *testing.T) {
	cases := []struct {
		x, y float64
		want Coord
	}{
		{0.5, 0.5, Coord{0, 0}},
		{-0.5, 1.99, Coord{-1, 1}},
		{-1, -1, Coord{-1, -1}},
	}
	for _, tc := range cases {
		if got := Floor(tc.x, tc.y); got != tc.want {
			t.Errorf("Floor(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestRepeater(t *testing.T) {
	clock := time.Unix(0, 0)
	r := NewRepeater(10)
	r.now = func() time.Time { return clock }

	if !r.Ready() {
		t.Fatal("first press should fire")
	}
	clock = clock.Add(50 * time.Millisecond)
	if r.Ready() {
		t.Fatal("should not fire before the interval elapses")
	}
	clock = clock.Add(60 * time.Millisecond)
	if !r.Ready() {
		t.Fatal("should fire after the interval")
	}
	r.Release()
	if !r.Ready() {
		t.Fatal("should fire immediately after release")
	}
}
