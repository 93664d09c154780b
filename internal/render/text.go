package render

import (
	"fmt"
	"strings"

	"life-ca/internal/core"
)

// TextRenderer turns a frame into a bordered block of text.
type TextRenderer struct {
	Title    string
	Live     string
	Dead     string
	Boundary string
	// Border draws the +---+ frame around the grid when set.
	Border bool
}

// Render formats the frame. The border width follows the glyph width so
// two-character glyphs still line up.
func (r TextRenderer) Render(f core.Frame) string {
	live, dead := r.Live, r.Dead
	if live == "" {
		live = "O"
	}
	if dead == "" {
		dead = " "
	}
	cellWidth := max(len([]rune(live)), len([]rune(dead)))

	var b strings.Builder
	if r.Title != "" {
		b.WriteString(r.Title)
		b.WriteByte('\n')
	}
	rule := "+" + strings.Repeat("-", f.Size.W*cellWidth) + "+\n"
	if r.Border {
		b.WriteString(rule)
	}
	for row := 0; row < f.Size.H; row++ {
		if r.Border {
			b.WriteByte('|')
		}
		for col := 0; col < f.Size.W; col++ {
			if f.Alive(row, col) {
				b.WriteString(live)
			} else {
				b.WriteString(dead)
			}
		}
		if r.Border {
			b.WriteByte('|')
		}
		b.WriteByte('\n')
	}
	if r.Border {
		b.WriteString(rule)
	}
	b.WriteString(r.Footer(f))
	b.WriteByte('\n')
	return b.String()
}

// Footer is the status line shown under the grid.
func (r TextRenderer) Footer(f core.Frame) string {
	s := fmt.Sprintf("Dimensions: %dx%d | Generation: %d | Population: %d", f.Size.H, f.Size.W, f.Generation, f.Population())
	if r.Boundary != "" {
		s += " | Boundary: " + r.Boundary
	}
	return s
}
