package core

import "math"

// Grid stores a 2D grid of cell values in row-major order.
type Grid struct {
	W, H int
	data []uint32
}

// NewGrid allocates a grid with the given dimensions. Callers validate the
// dimensions; non-positive values are clamped to 1.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]uint32, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []uint32 { return g.data }

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.W + col }

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.H && col >= 0 && col < g.W
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// At returns the value at (row, col), or 0 outside the grid.
func (g *Grid) At(row, col int) uint32 {
	if !g.InBounds(row, col) {
		return 0
	}
	return g.data[g.Index(row, col)]
}

// Set stores v at (row, col). Out-of-range coordinates are ignored.
func (g *Grid) Set(row, col int, v uint32) {
	if !g.InBounds(row, col) {
		return
	}
	g.data[g.Index(row, col)] = v
}

// Incr returns v+1, saturating at the largest representable value.
func Incr(v uint32) uint32 {
	if v == math.MaxUint32 {
		return v
	}
	return v + 1
}

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Snapshot copies the grid into a Frame stamped with the given generation.
func (g *Grid) Snapshot(generation uint64) Frame {
	cells := make([]uint32, len(g.data))
	copy(cells, g.data)
	return Frame{Size: g.Size(), Generation: generation, Cells: cells}
}
