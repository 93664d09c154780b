package life

import (
	"life-ca/internal/core"
)

// Engine implements Conway's Game of Life (B3/S23) on a fixed finite grid.
// It is not safe for concurrent use; callers that share an Engine between
// goroutines must serialize access themselves.
type Engine struct {
	cfg Config

	cur    *core.Grid
	nxt    *core.Grid
	counts []uint8

	generation uint64
}

// New returns a binary Engine with the provided dimensions and boundary.
func New(height, width int, boundary Boundary) (*Engine, error) {
	return NewWithConfig(Config{Height: height, Width: width, Boundary: boundary})
}

// NewWithConfig returns an Engine configured from the provided options. The
// grid starts all dead at generation 0.
func NewWithConfig(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:    cfg,
		cur:    core.NewGrid(cfg.Width, cfg.Height),
		nxt:    core.NewGrid(cfg.Width, cfg.Height),
		counts: make([]uint8, cfg.Width*cfg.Height),
	}, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "life" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return e.cur.Size() }

// Boundary returns the boundary mode fixed at construction.
func (e *Engine) Boundary() Boundary { return e.cfg.Boundary }

// Mode returns the cell mode fixed at construction.
func (e *Engine) Mode() Mode { return e.cfg.Mode }

// Generation returns the number of Advance calls made so far.
func (e *Engine) Generation() uint64 { return e.generation }

// Cell returns the value at (row, col), or 0 outside the grid.
func (e *Engine) Cell(row, col int) uint32 { return e.cur.At(row, col) }

// Alive reports whether the cell at (row, col) is alive.
func (e *Engine) Alive(row, col int) bool { return e.cur.At(row, col) > 0 }

// Population counts the live cells.
func (e *Engine) Population() int {
	n := 0
	for _, c := range e.cur.Cells() {
		if c > 0 {
			n++
		}
	}
	return n
}

// Frame returns a copy of the current grid and generation.
func (e *Engine) Frame() core.Frame { return e.cur.Snapshot(e.generation) }

// Seed marks cells alive at (rowOffset+dr, colOffset+dc) for every offset in
// cells. Targets outside the grid are skipped. Seeding is additive and does
// not advance the generation.
func (e *Engine) Seed(cells []core.Coord, rowOffset, colOffset int) {
	for _, c := range cells {
		e.cur.Set(rowOffset+c.Row, colOffset+c.Col, 1)
	}
}

// NeighborCounts returns, for every cell, the number of live cells among its
// eight Moore neighbors under the engine's boundary mode.
func (e *Engine) NeighborCounts() [][]int {
	e.countNeighbors()
	w, h := e.cur.W, e.cur.H
	out := make([][]int, h)
	for row := 0; row < h; row++ {
		out[row] = make([]int, w)
		for col := 0; col < w; col++ {
			out[row][col] = int(e.counts[row*w+col])
		}
	}
	return out
}

// countNeighbors fills e.counts from the current grid.
func (e *Engine) countNeighbors() {
	g := e.cur
	cells := g.Cells()
	w, h := g.W, g.H
	wrap := e.cfg.Boundary == Toroidal
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			n := uint8(0)
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					nr, nc := row+dr, col+dc
					if wrap {
						nr, nc = g.Wrap(nr, nc)
					} else if !g.InBounds(nr, nc) {
						continue
					}
					if cells[nr*w+nc] > 0 {
						n++
					}
				}
			}
			e.counts[row*w+col] = n
		}
	}
}

// Advance computes the next generation from the current one and replaces the
// grid in a single swap.
func (e *Engine) Advance() {
	e.countNeighbors()
	cur, nxt := e.cur.Cells(), e.nxt.Cells()
	aging := e.cfg.Mode == Aging
	for i, v := range cur {
		n := e.counts[i]
		alive := v > 0
		switch {
		case alive && (n == 2 || n == 3):
			if aging {
				nxt[i] = core.Incr(v)
			} else {
				nxt[i] = 1
			}
		case !alive && n == 3:
			nxt[i] = 1
		default:
			nxt[i] = 0
		}
	}
	e.cur, e.nxt = e.nxt, e.cur
	e.generation++
}
