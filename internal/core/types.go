package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Contains reports whether (row, col) lies inside the grid.
func (s Size) Contains(row, col int) bool {
	return row >= 0 && row < s.H && col >= 0 && col < s.W
}

// Coord is a (row, column) pair. Patterns use it for offsets relative to a
// placement point.
type Coord struct {
	Row int
	Col int
}

// Frame is a copy of a simulation's cells taken between steps. Renderers
// read frames and never touch the simulation directly.
type Frame struct {
	Size       Size
	Generation uint64
	Cells      []uint32
}

// At returns the cell value at (row, col), or 0 outside the grid.
func (f Frame) At(row, col int) uint32 {
	if !f.Size.Contains(row, col) {
		return 0
	}
	return f.Cells[row*f.Size.W+col]
}

// Alive reports whether the cell at (row, col) holds a non-zero value.
func (f Frame) Alive(row, col int) bool { return f.At(row, col) > 0 }

// Population counts the live cells in the frame.
func (f Frame) Population() int {
	n := 0
	for _, c := range f.Cells {
		if c > 0 {
			n++
		}
	}
	return n
}

// Sim defines the minimal contract a driver needs from a cellular automaton.
type Sim interface {
	Name() string
	Size() Size
	Generation() uint64
	Advance()
	Frame() Frame
}
