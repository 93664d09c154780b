package patterns

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"life-ca/internal/sims/life"
)

// ErrUnknownScene is returned for a scene name that is not registered.
var ErrUnknownScene = errors.New("patterns: unknown scene")

// Scene is a ready-to-run preset: grid shape, pacing, glyphs and the
// placements that seed it.
type Scene struct {
	Name      string
	Title     string
	Width     int
	Height    int
	Delay     time.Duration
	Boundary  life.Boundary
	Mode      life.Mode
	LiveGlyph string
	DeadGlyph string

	Placements []Placement
	// Soup seeds the grid with random cells instead of (or on top of) the
	// placements.
	Soup bool
}

var scenes = map[string]Scene{}

func registerScene(s Scene) { scenes[s.Name] = s }

// LookupScene returns the scene registered under name.
func LookupScene(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return s, nil
}

// SceneNames lists the registered scenes in sorted order.
func SceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	registerScene(Scene{
		Name: "blinker", Title: "Conway's Game of Life - Blinker",
		Width: 15, Height: 7, Delay: 500 * time.Millisecond,
		Boundary: life.Toroidal, LiveGlyph: "o ", DeadGlyph: "  ",
		Placements: []Placement{{Pattern: "blinker", Row: 3, Col: 7}},
	})
	registerScene(Scene{
		Name: "toad", Title: "Conway's Game of Life - Toad",
		Width: 30, Height: 15, Delay: time.Second,
		Boundary: life.Toroidal, LiveGlyph: "o ", DeadGlyph: "  ",
		Placements: []Placement{
			{Pattern: "toad", Row: 5, Col: 9},
			{Pattern: "toad", Row: 10, Col: 11},
		},
	})
	registerScene(Scene{
		Name: "beacon", Title: "Conway's Game of Life: Beacon Oscillator (Period 2)",
		Width: 30, Height: 10, Delay: 200 * time.Millisecond,
		Boundary: life.Clamped, LiveGlyph: "O", DeadGlyph: " ",
		Placements: []Placement{{Pattern: "beacon", Row: 3, Col: 12}},
	})
	registerScene(Scene{
		Name: "glider", Title: "Conway's Game of Life: Gliders",
		Width: 30, Height: 15, Delay: 500 * time.Millisecond,
		Boundary: life.Toroidal, LiveGlyph: "o ", DeadGlyph: ". ",
		Placements: []Placement{
			{Pattern: "glider", Row: 1, Col: 1},
			{Pattern: "glider", Row: 5, Col: 4},
		},
	})
	registerScene(Scene{
		Name: "collision", Title: "Glider Mid-Air Collision",
		Width: 60, Height: 30, Delay: 100 * time.Millisecond,
		Boundary: life.Clamped, LiveGlyph: "O", DeadGlyph: " ",
		Placements: []Placement{
			{Pattern: "glider", Row: 2, Col: 2},
			{Pattern: "glider", Row: 22, Col: 22, FlipH: true, FlipV: true},
		},
	})
	registerScene(Scene{
		Name: "gun", Title: "Conway's Game of Life: Gosper Glider Gun (Infinite Emission)",
		Width: 80, Height: 24, Delay: 20 * time.Millisecond,
		Boundary: life.Clamped, LiveGlyph: "O", DeadGlyph: " ",
		Placements: []Placement{{Pattern: "gosper-gun", Row: 2, Col: 2}},
	})
	registerScene(Scene{
		Name: "pulsar", Title: "Conway's Game of Life: Pulsar (Period 3 Oscillator)",
		Width: 60, Height: 30, Delay: 100 * time.Millisecond,
		Boundary: life.Toroidal, LiveGlyph: "█", DeadGlyph: " ",
		Placements: []Placement{{Pattern: "pulsar", Row: 7, Col: 23}},
	})
	registerScene(Scene{
		Name: "lwss", Title: "Game of Life: Aging LWSS",
		Width: 80, Height: 15, Delay: 50 * time.Millisecond,
		Boundary: life.Toroidal, Mode: life.Aging, LiveGlyph: "O", DeadGlyph: " ",
		Placements: []Placement{{Pattern: "lwss", Row: 5, Col: 70}},
	})
	registerScene(Scene{
		Name: "r-pentomino", Title: "Conway's Game of Life: R-pentomino",
		Width: 120, Height: 60, Delay: 30 * time.Millisecond,
		Boundary: life.Clamped, LiveGlyph: "█", DeadGlyph: " ",
		Placements: []Placement{{Pattern: "r-pentomino", Center: true}},
	})
	registerScene(Scene{
		Name: "soup", Title: "Conway's Game of Life: Random Soup",
		Width: 64, Height: 32, Delay: 100 * time.Millisecond,
		Boundary: life.Toroidal, LiveGlyph: "█", DeadGlyph: " ",
		Soup: true,
	})
}
