package patterns

import (
	"fmt"
	"strconv"
	"strings"

	"life-ca/internal/core"
)

// Seeder is the part of the engine placements need.
type Seeder interface {
	Seed(cells []core.Coord, rowOffset, colOffset int)
}

// Placement stamps a named pattern at an offset. When Center is set the
// offset is relative to (h/2-1, w/2-1) instead of the top-left corner.
type Placement struct {
	Pattern string
	Row     int
	Col     int
	FlipH   bool
	FlipV   bool
	Center  bool
}

// Origin resolves the placement offset on a grid of the given size.
func (p Placement) Origin(size core.Size) (row, col int) {
	row, col = p.Row, p.Col
	if p.Center {
		row += size.H/2 - 1
		col += size.W/2 - 1
	}
	return row, col
}

func (p Placement) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d,%d", p.Pattern, p.Row, p.Col)
	if p.FlipH {
		b.WriteString(",h")
	}
	if p.FlipV {
		b.WriteString(",v")
	}
	if p.Center {
		b.WriteString(",c")
	}
	return b.String()
}

// ParsePlacement reads "name:row,col[,h][,v][,c]". The flags after the
// coordinates flip horizontally, flip vertically, or center the offset.
func ParsePlacement(s string) (Placement, error) {
	name, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || name == "" {
		return Placement{}, fmt.Errorf("placement %q: want name:row,col", s)
	}
	parts := strings.Split(rest, ",")
	if len(parts) < 2 {
		return Placement{}, fmt.Errorf("placement %q: want name:row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: row: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Placement{}, fmt.Errorf("placement %q: col: %w", s, err)
	}
	p := Placement{Pattern: name, Row: row, Col: col}
	for _, flag := range parts[2:] {
		switch strings.TrimSpace(flag) {
		case "h":
			p.FlipH = true
		case "v":
			p.FlipV = true
		case "c":
			p.Center = true
		default:
			return Placement{}, fmt.Errorf("placement %q: unknown flag %q", s, flag)
		}
	}
	if _, ok := Lookup(name); !ok {
		return Placement{}, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return p, nil
}

// Apply seeds every placement onto s. Unknown pattern names fail before
// anything is seeded; cells that land off the grid are dropped by the seeder.
func Apply(s Seeder, size core.Size, placements []Placement) error {
	resolved := make([]Pattern, len(placements))
	for i, p := range placements {
		pat, ok := Lookup(p.Pattern)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPattern, p.Pattern)
		}
		resolved[i] = pat
	}
	for i, p := range placements {
		row, col := p.Origin(size)
		s.Seed(resolved[i].Flip(p.FlipH, p.FlipV), row, col)
	}
	return nil
}

// Soup returns a random scatter of cells covering roughly density of the
// grid. The same rng seed always yields the same cells.
func Soup(rng *core.RNG, size core.Size, density float64) []core.Coord {
	var out []core.Coord
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			if rng.Chance(density) {
				out = append(out, core.Coord{Row: row, Col: col})
			}
		}
	}
	return out
}
