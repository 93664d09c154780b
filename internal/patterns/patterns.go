// Package patterns holds the named seed patterns and the scene presets built
// from them. It is pure data plus the glue that stamps it onto an engine.
package patterns

import (
	"errors"
	"sort"

	"life-ca/internal/core"
)

// ErrUnknownPattern is returned when a placement names a pattern that is not
// in the table.
var ErrUnknownPattern = errors.New("patterns: unknown pattern")

// Pattern is a named list of (row, col) offsets of live cells.
type Pattern struct {
	Name        string
	Description string
	// Period is the oscillation period, 1 for still lifes and 0 for
	// patterns that never repeat in place (spaceships, guns, methuselahs).
	Period int
	Cells  []core.Coord
}

// Flip mirrors the pattern around its placement point. Flipped offsets are
// negated, so a flipped pattern extends up and/or left of the point.
func (p Pattern) Flip(horizontal, vertical bool) []core.Coord {
	out := make([]core.Coord, len(p.Cells))
	for i, c := range p.Cells {
		if vertical {
			c.Row = -c.Row
		}
		if horizontal {
			c.Col = -c.Col
		}
		out[i] = c
	}
	return out
}

// Bounds returns the number of rows and columns spanned by the pattern.
func (p Pattern) Bounds() (rows, cols int) {
	if len(p.Cells) == 0 {
		return 0, 0
	}
	minR, maxR := p.Cells[0].Row, p.Cells[0].Row
	minC, maxC := p.Cells[0].Col, p.Cells[0].Col
	for _, c := range p.Cells[1:] {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	return maxR - minR + 1, maxC - minC + 1
}

func coords(pairs ...[2]int) []core.Coord {
	out := make([]core.Coord, len(pairs))
	for i, p := range pairs {
		out[i] = core.Coord{Row: p[0], Col: p[1]}
	}
	return out
}

var table = map[string]Pattern{}

func register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	table[p.Name] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := table[name]
	return p, ok
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	register(Pattern{
		Name:        "block",
		Description: "2x2 still life",
		Period:      1,
		Cells:       coords([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1}),
	})
	register(Pattern{
		Name:        "blinker",
		Description: "period-2 oscillator, three in a row",
		Period:      2,
		Cells:       coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}),
	})
	register(Pattern{
		Name:        "toad",
		Description: "period-2 oscillator, two offset rows of three",
		Period:      2,
		Cells: coords(
			[2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3},
			[2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2},
		),
	})
	register(Pattern{
		Name:        "beacon",
		Description: "period-2 oscillator, two diagonal blocks",
		Period:      2,
		Cells: coords(
			[2]int{0, 0}, [2]int{0, 1}, [2]int{1, 0}, [2]int{1, 1},
			[2]int{2, 2}, [2]int{2, 3}, [2]int{3, 2}, [2]int{3, 3},
		),
	})
	register(Pattern{
		Name:        "glider",
		Description: "smallest spaceship, travels south-east",
		Cells:       coords([2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}),
	})
	register(Pattern{
		Name:        "lwss",
		Description: "lightweight spaceship, travels east",
		Cells: coords(
			[2]int{0, 1}, [2]int{0, 4},
			[2]int{1, 0},
			[2]int{2, 0}, [2]int{2, 4},
			[2]int{3, 0}, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 3},
		),
	})
	register(Pattern{
		Name:        "pulsar",
		Description: "period-3 oscillator",
		Period:      3,
		Cells: coords(
			[2]int{1, 3}, [2]int{1, 4}, [2]int{1, 5}, [2]int{1, 9}, [2]int{1, 10}, [2]int{1, 11},
			[2]int{3, 1}, [2]int{3, 6}, [2]int{3, 8}, [2]int{3, 13},
			[2]int{4, 1}, [2]int{4, 6}, [2]int{4, 8}, [2]int{4, 13},
			[2]int{5, 1}, [2]int{5, 6}, [2]int{5, 8}, [2]int{5, 13},
			[2]int{6, 3}, [2]int{6, 4}, [2]int{6, 5}, [2]int{6, 9}, [2]int{6, 10}, [2]int{6, 11},
			[2]int{8, 3}, [2]int{8, 4}, [2]int{8, 5}, [2]int{8, 9}, [2]int{8, 10}, [2]int{8, 11},
			[2]int{9, 1}, [2]int{9, 6}, [2]int{9, 8}, [2]int{9, 13},
			[2]int{10, 1}, [2]int{10, 6}, [2]int{10, 8}, [2]int{10, 13},
			[2]int{11, 1}, [2]int{11, 6}, [2]int{11, 8}, [2]int{11, 13},
			[2]int{13, 3}, [2]int{13, 4}, [2]int{13, 5}, [2]int{13, 9}, [2]int{13, 10}, [2]int{13, 11},
		),
	})
	register(Pattern{
		Name:        "gosper-gun",
		Description: "Gosper glider gun, emits a glider every 30 generations",
		Cells: coords(
			[2]int{5, 1}, [2]int{5, 2}, [2]int{6, 1}, [2]int{6, 2},
			[2]int{5, 11}, [2]int{6, 11}, [2]int{7, 11}, [2]int{4, 12}, [2]int{8, 12},
			[2]int{3, 13}, [2]int{9, 13}, [2]int{3, 14}, [2]int{9, 14}, [2]int{6, 15},
			[2]int{4, 16}, [2]int{8, 16}, [2]int{5, 17}, [2]int{6, 17}, [2]int{7, 17}, [2]int{6, 18},
			[2]int{3, 21}, [2]int{4, 21}, [2]int{5, 21}, [2]int{3, 22}, [2]int{4, 22}, [2]int{5, 22},
			[2]int{2, 23}, [2]int{6, 23}, [2]int{1, 25}, [2]int{2, 25}, [2]int{6, 25}, [2]int{7, 25},
			[2]int{3, 35}, [2]int{4, 35}, [2]int{3, 36}, [2]int{4, 36},
		),
	})
	register(Pattern{
		Name:        "r-pentomino",
		Description: "methuselah, stabilizes after 1103 generations",
		Cells:       coords([2]int{0, 1}, [2]int{0, 2}, [2]int{1, 0}, [2]int{1, 1}, [2]int{2, 1}),
	})
}
