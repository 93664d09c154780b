package core

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGridWrap(t *testing.T) {
	g := NewGrid(4, 3)
	cases := []struct{ row, col, wantRow, wantCol int }{
		{0, 0, 0, 0},
		{-1, -1, 2, 3},
		{3, 4, 0, 0},
		{-4, 9, 2, 1},
	}
	for _, c := range cases {
		r, col := g.Wrap(c.row, c.col)
		require.Equal(t, c.wantRow, r, "row for (%d,%d)", c.row, c.col)
		require.Equal(t, c.wantCol, col, "col for (%d,%d)", c.row, c.col)
	}
}

func TestGridSetAtIgnoresOutOfBounds(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(1, 2, 7)
	g.Set(-1, 0, 9)
	g.Set(2, 0, 9)
	g.Set(0, 3, 9)

	require.Equal(t, uint32(7), g.At(1, 2))
	require.Equal(t, uint32(0), g.At(-1, 0))
	require.Equal(t, []uint32{0, 0, 0, 0, 0, 7}, g.Cells())

	g.Clear()
	require.Equal(t, make([]uint32, 6), g.Cells())
}

func TestNewGridClampsDimensions(t *testing.T) {
	g := NewGrid(0, -3)
	require.Equal(t, Size{W: 1, H: 1}, g.Size())
	require.Len(t, g.Cells(), 1)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := NewGrid(2, 2)
	g.Set(0, 1, 1)
	f := g.Snapshot(5)
	g.Set(0, 1, 0)

	require.Equal(t, uint64(5), f.Generation)
	require.True(t, f.Alive(0, 1))
	require.False(t, f.Alive(5, 5))
	require.Equal(t, 1, f.Population())
}

func TestIncrSaturates(t *testing.T) {
	require.Equal(t, uint32(2), Incr(1))
	require.Equal(t, uint32(math.MaxUint32), Incr(math.MaxUint32-1))
	require.Equal(t, uint32(math.MaxUint32), Incr(math.MaxUint32))
}

func TestFixedStep(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(100 * time.Millisecond)
	fs.now = func() time.Time { return clock }

	require.True(t, fs.ShouldStep(), "first call fires")
	require.False(t, fs.ShouldStep())

	clock = clock.Add(60 * time.Millisecond)
	require.False(t, fs.ShouldStep())
	clock = clock.Add(40 * time.Millisecond)
	require.True(t, fs.ShouldStep())

	// A long stall yields at most one extra catch-up step.
	clock = clock.Add(time.Second)
	require.True(t, fs.ShouldStep())
	require.True(t, fs.ShouldStep())
	require.False(t, fs.ShouldStep())
}

func TestFixedStepZeroFiresEveryCall(t *testing.T) {
	fs := NewFixedStep(-time.Second)
	require.Equal(t, time.Duration(0), fs.Step())
	for i := 0; i < 3; i++ {
		require.True(t, fs.ShouldStep())
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 64; i++ {
		require.Equal(t, a.Bool(), b.Bool())
	}
	require.False(t, a.Chance(0))
	require.True(t, a.Chance(1))
}

func TestParameterSnapshot(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "Grid", Params: []Parameter{IntParam("width", "Width", 30)}},
		{Name: "State", Params: []Parameter{
			Uint64Param("generation", "Generation", 12),
			StringParam("boundary", "Boundary", "toroidal"),
		}},
	}}

	p, ok := s.Lookup("generation")
	require.True(t, ok)
	require.Equal(t, "12", p.Value)
	require.Equal(t, ParamTypeInt, p.Type)

	_, ok = s.Lookup("missing")
	require.False(t, ok)

	require.Equal(t, []any{"width", "30", "generation", "12", "boundary", "toroidal"}, s.Attrs())
}
