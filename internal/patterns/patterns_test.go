package patterns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"life-ca/internal/core"
	"life-ca/internal/sims/life"
)

type recordingSeeder struct {
	calls int
	cells []core.Coord
}

func (r *recordingSeeder) Seed(cells []core.Coord, rowOffset, colOffset int) {
	r.calls++
	for _, c := range cells {
		r.cells = append(r.cells, core.Coord{Row: rowOffset + c.Row, Col: colOffset + c.Col})
	}
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{
		"beacon", "blinker", "block", "glider", "gosper-gun", "lwss", "pulsar", "r-pentomino", "toad",
	}, Names())
}

func TestBounds(t *testing.T) {
	cases := map[string][2]int{
		"block":       {2, 2},
		"blinker":     {1, 3},
		"toad":        {2, 4},
		"beacon":      {4, 4},
		"glider":      {3, 3},
		"lwss":        {4, 5},
		"pulsar":      {13, 13},
		"gosper-gun":  {9, 36},
		"r-pentomino": {3, 3},
	}
	for name, want := range cases {
		p, ok := Lookup(name)
		require.True(t, ok, name)
		rows, cols := p.Bounds()
		assert.Equal(t, want, [2]int{rows, cols}, name)
	}
	rows, cols := Pattern{}.Bounds()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
}

func TestFlipMatchesMirroredPlacement(t *testing.T) {
	glider, _ := Lookup("glider")
	rec := &recordingSeeder{}
	err := Apply(rec, core.Size{W: 60, H: 30}, []Placement{{Pattern: "glider", Row: 22, Col: 22, FlipH: true, FlipV: true}})
	require.NoError(t, err)
	require.Equal(t, []core.Coord{{22, 21}, {21, 20}, {20, 22}, {20, 21}, {20, 20}}, rec.cells)

	require.Equal(t, glider.Cells, glider.Flip(false, false), "no flip is the identity")
	require.Len(t, glider.Cells, 5, "Flip must not mutate the table")
	assert.Equal(t, core.Coord{Row: 0, Col: 1}, glider.Cells[0])
}

func TestPeriodicPatternsRepeat(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		if p.Period == 0 {
			continue
		}
		t.Run(name, func(t *testing.T) {
			e, err := life.New(40, 40, life.Clamped)
			require.NoError(t, err)
			e.Seed(p.Cells, 12, 12)
			start := e.Frame().Cells
			for i := 1; i <= p.Period; i++ {
				e.Advance()
				if i < p.Period {
					require.NotEqual(t, start, e.Frame().Cells, "%s repeated early at step %d", name, i)
				}
			}
			require.Equal(t, start, e.Frame().Cells, "%s should repeat after %d steps", name, p.Period)
		})
	}
}

func TestApplyCentersPlacement(t *testing.T) {
	rec := &recordingSeeder{}
	require.NoError(t, Apply(rec, core.Size{W: 120, H: 60}, []Placement{{Pattern: "r-pentomino", Center: true}}))
	require.Contains(t, rec.cells, core.Coord{Row: 29, Col: 60})
	require.Contains(t, rec.cells, core.Coord{Row: 30, Col: 59})
}

func TestApplyRejectsUnknownPatternBeforeSeeding(t *testing.T) {
	rec := &recordingSeeder{}
	err := Apply(rec, core.Size{W: 10, H: 10}, []Placement{
		{Pattern: "glider"},
		{Pattern: "nope"},
	})
	require.ErrorIs(t, err, ErrUnknownPattern)
	require.Zero(t, rec.calls)
}

func TestParsePlacement(t *testing.T) {
	p, err := ParsePlacement("glider:22,22,h,v")
	require.NoError(t, err)
	require.Equal(t, Placement{Pattern: "glider", Row: 22, Col: 22, FlipH: true, FlipV: true}, p)
	require.Equal(t, "glider:22,22,h,v", p.String())

	p, err = ParsePlacement(" r-pentomino:0,-3,c ")
	require.NoError(t, err)
	require.Equal(t, Placement{Pattern: "r-pentomino", Col: -3, Center: true}, p)

	for _, bad := range []string{"glider", ":1,2", "glider:1", "glider:a,2", "glider:1,b", "glider:1,2,x"} {
		_, err := ParsePlacement(bad)
		require.Error(t, err, bad)
	}
	_, err = ParsePlacement("nope:1,2")
	require.ErrorIs(t, err, ErrUnknownPattern)
}

func TestSoupIsDeterministic(t *testing.T) {
	size := core.Size{W: 20, H: 10}
	a := Soup(core.NewRNG(42), size, 0.3)
	b := Soup(core.NewRNG(42), size, 0.3)
	require.Equal(t, a, b)
	require.NotEmpty(t, a)
	require.Less(t, len(a), size.W*size.H)

	require.Empty(t, Soup(core.NewRNG(1), size, 0))
	require.Len(t, Soup(core.NewRNG(1), size, 1), size.W*size.H)
}

func TestScenesSeedInsideTheirGrid(t *testing.T) {
	require.Contains(t, SceneNames(), "glider")
	for _, name := range SceneNames() {
		t.Run(name, func(t *testing.T) {
			s, err := LookupScene(name)
			require.NoError(t, err)
			require.NotEmpty(t, s.Title)
			require.Positive(t, s.Delay)
			require.NotEmpty(t, s.LiveGlyph)

			e, err := life.NewWithConfig(life.Config{Height: s.Height, Width: s.Width, Boundary: s.Boundary, Mode: s.Mode})
			require.NoError(t, err)
			require.NoError(t, Apply(e, e.Size(), s.Placements))

			want := 0
			for _, p := range s.Placements {
				pat, _ := Lookup(p.Pattern)
				want += len(pat.Cells)
			}
			require.Equal(t, want, e.Population(), "every preset cell must land on the grid")
			if !s.Soup {
				require.Positive(t, want)
			}
		})
	}

	_, err := LookupScene("nope")
	require.ErrorIs(t, err, ErrUnknownScene)
}
