package render

import "image/color"

// DefaultPalette colors terrain types: grass, dirt, then a few spares for
// larger alphabets.
var DefaultPalette = []color.RGBA{
	{R: 78, G: 154, B: 72, A: 255},
	{R: 122, G: 86, B: 52, A: 255},
	{R: 64, G: 120, B: 200, A: 255},
	{R: 150, G: 150, B: 160, A: 255},
	{R: 220, G: 200, B: 120, A: 255},
}

// paletteColor returns the palette color for value v, clamping to the last
// entry. An empty palette yields transparent black.
func paletteColor(palette []color.RGBA, v uint8) color.RGBA {
	if len(palette) == 0 {
		return color.RGBA{}
	}
	idx := int(v)
	if idx >= len(palette) {
		idx = len(palette) - 1
	}
	return palette[idx]
}

// fillTileRGBA paints a size x size tile for a 2x2 pattern key into buf.
// Each quadrant takes the color of its corner and the outermost pixel ring
// is darkened so rotations stay visible.
func fillTileRGBA(buf []byte, size int, key string, palette []color.RGBA) {
	if len(key) != 4 || len(buf) < 4*size*size {
		return
	}
	half := size / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			corner := 0
			if x >= half {
				corner++
			}
			if y >= half {
				corner += 2
			}
			col := paletteColor(palette, key[corner]-'0')
			if x == 0 || y == 0 || x == size-1 || y == size-1 {
				col = shade(col, 0.8)
			}
			base := (y*size + x) * 4
			buf[base+0] = col.R
			buf[base+1] = col.G
			buf[base+2] = col.B
			buf[base+3] = col.A
		}
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	for i, c := range cells {
		col := paletteColor(palette, c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
