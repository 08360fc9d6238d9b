// Package terrain generates starting terrain for a dual-grid field.
package terrain

import (
	"dualgrid/internal/core"
)

// Scatter paints alt over each cell of region with probability density.
func Scatter(store core.Store, region core.Region, alt core.TerrainType, density float64, rng *core.RNG) int {
	painted := 0
	region.Each(func(c core.Coord) {
		if rng.Chance(density) {
			store.SetTerrain(c, alt)
			painted++
		}
	})
	return painted
}

// Smooth runs steps generations of a majority rule over region: an alt cell
// survives with at least 4 alt neighbors and any other cell turns alt with
// at least 5. Cells outside region read from the store but are not written.
// Every generation is computed from a snapshot, so update order does not
// matter.
func Smooth(store core.Store, region core.Region, alt, base core.TerrainType, steps int) {
	if region.Empty() {
		return
	}
	w, h := region.W, region.H
	cur := make([]bool, w*h)
	nxt := make([]bool, w*h)
	region.Each(func(c core.Coord) {
		cur[(c.Y-region.Min.Y)*w+(c.X-region.Min.X)] = store.Terrain(c) == alt
	})

	at := func(x, y int) bool {
		if x < 0 || x >= w || y < 0 || y >= h {
			return store.Terrain(core.Coord{X: region.Min.X + x, Y: region.Min.Y + y}) == alt
		}
		return cur[y*w+x]
	}

	for s := 0; s < steps; s++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if at(x+dx, y+dy) {
							neighbors++
						}
					}
				}
				idx := y*w + x
				if cur[idx] {
					nxt[idx] = neighbors >= 4
				} else {
					nxt[idx] = neighbors >= 5
				}
			}
		}
		cur, nxt = nxt, cur
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := core.Coord{X: region.Min.X + x, Y: region.Min.Y + y}
			if cur[y*w+x] {
				store.SetTerrain(c, alt)
			} else if store.Terrain(c) == alt {
				store.SetTerrain(c, base)
			}
		}
	}
}
