package render

import "image/color"

// AgeLevels is the number of distinct age buckets.
const AgeLevels = 6

// AgeLevel buckets a cell age: newborns are 0, then 2, 3, 4, up to 7, and
// anything older shares the last bucket.
func AgeLevel(age uint32) int {
	switch {
	case age <= 1:
		return 0
	case age == 2:
		return 1
	case age == 3:
		return 2
	case age == 4:
		return 3
	case age <= 7:
		return 4
	default:
		return 5
	}
}

var agePalette = [AgeLevels]color.RGBA{
	{R: 255, G: 255, B: 255, A: 255}, // white
	{R: 0, G: 255, B: 255, A: 255},   // bright cyan
	{R: 0, G: 175, B: 175, A: 255},   // cyan
	{R: 0, G: 215, B: 255, A: 255},   // turquoise
	{R: 0, G: 135, B: 255, A: 255},   // dodger blue
	{R: 0, G: 0, B: 175, A: 255},     // deep blue
}

// AgeColor returns the display color for a live cell of the given age.
func AgeColor(age uint32) color.RGBA { return agePalette[AgeLevel(age)] }

// AgePalette returns a palette indexed by raw cell value: index 0 is the
// dead color and every later index is the color of that age. Values beyond
// the end are clamped by fillPaletteRGBA to the oldest color.
func AgePalette(dead color.RGBA) []color.RGBA {
	out := make([]color.RGBA, 9)
	out[0] = dead
	for age := 1; age < len(out); age++ {
		out[age] = AgeColor(uint32(age))
	}
	return out
}
