package render

import "image/color"

func rgba8(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

// fillBinaryRGBA converts cell data into RGBA pixels in buf: any non-zero
// cell gets the on color.
func fillBinaryRGBA(buf []byte, cells []uint32, on, off color.Color) {
	onPx, offPx := rgba8(on), rgba8(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette.
// Values past the end use the last color. An empty palette clears the
// buffer to transparent black.
func fillPaletteRGBA(buf []byte, cells []uint32, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := uint32(len(palette) - 1)
	for i, c := range cells {
		col := palette[min(c, last)]
		copy(buf[i*4:i*4+4], []byte{col.R, col.G, col.B, col.A})
	}
}

// heatRGBA paints neighbor counts (0-8) as a translucent red overlay.
func heatRGBA(buf []byte, counts [][]int) {
	i := 0
	for _, row := range counts {
		for _, n := range row {
			a := uint8(min(n, 8) * 28)
			copy(buf[i*4:i*4+4], []byte{a, 0, 0, a})
			i++
		}
	}
}
