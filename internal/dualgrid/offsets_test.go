package dualgrid

import (
	"testing"

	"dualgrid/internal/core"
)

// Each corner neighbor must sit half a cell away from the render cell centre
// in the direction its name says, for both half offsets.
func TestOffsetsGeometry(t *testing.T) {
	dir := map[Corner][2]float64{
		TopLeft:     {-0.5, 0.5},
		TopRight:    {0.5, 0.5},
		BottomLeft:  {-0.5, -0.5},
		BottomRight: {0.5, -0.5},
	}
	for _, h := range []HalfOffset{HalfOffsetNegative, HalfOffsetPositive} {
		o, err := OffsetsFor(h)
		if err != nil {
			t.Fatal(err)
		}
		r := core.Coord{X: 3, Y: -2}
		ox, oy := o.RenderOrigin(r)
		cx, cy := ox+0.5, oy+0.5
		if want := float64(r.X) + 0.5 + float64(h); cx != want {
			t.Fatalf("half offset %v: render centre x = %v, want %v", h, cx, want)
		}
		for _, c := range Corners {
			n := o.Neighbor(r, c)
			dx := float64(n.X) + 0.5 - cx
			dy := float64(n.Y) + 0.5 - cy
			if dx != dir[c][0] || dy != dir[c][1] {
				t.Fatalf("half offset %v: %s neighbor delta (%v,%v), want %v", h, c, dx, dy, dir[c])
			}
		}
	}
}

func TestAffectedInvertsNeighbor(t *testing.T) {
	for _, h := range []HalfOffset{HalfOffsetNegative, HalfOffsetPositive} {
		o, _ := OffsetsFor(h)
		terrainCell := core.Coord{X: 5, Y: 5}
		for i, r := range o.Affected(terrainCell) {
			if got := o.Neighbor(r, Corners[i]); got != terrainCell {
				t.Fatalf("half offset %v: %s of %v is %v, want %v", h, Corners[i], r, got, terrainCell)
			}
		}
	}
}

func TestOffsetsForRejectsOtherValues(t *testing.T) {
	for _, h := range []HalfOffset{0, 1, -1, 0.25} {
		if _, err := OffsetsFor(h); err == nil {
			t.Fatalf("OffsetsFor(%v) should fail", h)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"half_offset": "0.5",
		"w":           "8",
		"h":           "-3",
		"min_x":       "4",
		"sparse":      "true",
		"density":     "2",
		"seed":        "77",
		"tileset":     "custom",
	})
	def := DefaultConfig()
	if c.HalfOffset != HalfOffsetPositive {
		t.Fatalf("half offset = %v", c.HalfOffset)
	}
	if c.Region.W != 8 || c.Region.H != def.Region.H || c.Region.Min.X != 4 {
		t.Fatalf("region = %+v", c.Region)
	}
	if !c.Sparse || c.Seed != 77 || c.Tileset != "custom" {
		t.Fatalf("config = %+v", c)
	}
	if c.Density != def.Density {
		t.Fatalf("out of range density accepted: %v", c.Density)
	}
	if got := FromMap(map[string]string{"half_offset": "0.3"}).HalfOffset; got != def.HalfOffset {
		t.Fatalf("invalid half offset accepted: %v", got)
	}
}

func TestCoverHoldsEveryAffectedCell(t *testing.T) {
	region := core.Square(4)
	cases := map[HalfOffset]core.Region{
		HalfOffsetNegative: {Min: core.Coord{X: -2, Y: -2}, W: 5, H: 5},
		HalfOffsetPositive: {Min: core.Coord{X: -3, Y: -3}, W: 5, H: 5},
	}
	for h, want := range cases {
		o, err := OffsetsFor(h)
		if err != nil {
			t.Fatalf("OffsetsFor(%v): %v", h, err)
		}
		cover := o.Cover(region)
		if cover != want {
			t.Fatalf("Cover for %v = %+v, want %+v", h, cover, want)
		}
		region.Each(func(c core.Coord) {
			for _, r := range o.Affected(c) {
				if !cover.Contains(r) {
					t.Fatalf("offset %v: render %v of terrain %v outside cover %+v", h, r, c, cover)
				}
			}
		})
	}
}
