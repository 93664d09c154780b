package app

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"life-ca/internal/patterns"
	"life-ca/internal/sims/life"
)

func TestDefaultConfigIsGliderScene(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, "glider", cfg.Pattern)
	require.Equal(t, 30, cfg.Width)
	require.Equal(t, 15, cfg.Height)
	require.Equal(t, 500*time.Millisecond, cfg.Delay)
	require.Equal(t, "toroidal", cfg.Boundary)
	require.Len(t, cfg.Places, 2)
	require.NoError(t, cfg.Validate())
}

func TestApplySceneCopiesPlacements(t *testing.T) {
	scene, err := patterns.LookupScene("collision")
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.ApplyScene(scene)
	cfg.Places[0].Row = 99

	again, err := patterns.LookupScene("collision")
	require.NoError(t, err)
	require.Equal(t, 2, again.Placements[0].Row, "scene registry must not be mutated")
	require.Equal(t, "clamped", cfg.Boundary)
}

func TestValidateJoinsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 0
	cfg.Boundary = "moebius"
	cfg.Output = "html"
	cfg.Density = 2
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	require.True(t, errors.Is(err, life.ErrInvalidDimension))
	require.True(t, errors.Is(err, life.ErrInvalidBoundary))
	require.Contains(t, err.Error(), `invalid output "html"`)
	require.Contains(t, err.Error(), "density")
	require.Contains(t, err.Error(), "log-level")
}

func TestEngineConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boundary = "wrap"
	cfg.Aging = true
	ec, err := cfg.EngineConfig()
	require.NoError(t, err)
	require.Equal(t, life.Config{Height: 15, Width: 30, Boundary: life.Toroidal, Mode: life.Aging}, ec)
}

func TestPlaceFlagReplacesScenePlacements(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	err := fs.Parse([]string{"-place", "block:1,2", "-place", "glider:3,4,h,c"})
	require.NoError(t, err)
	require.Equal(t, []patterns.Placement{
		{Pattern: "block", Row: 1, Col: 2},
		{Pattern: "glider", Row: 3, Col: 4, FlipH: true, Center: true},
	}, cfg.Places)

	require.Error(t, fs.Parse([]string{"-place", "nope:1,1"}))
}

func TestBindUsesCurrentValuesAsDefaults(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 77
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-height", "9"}))
	require.Equal(t, 77, cfg.Width)
	require.Equal(t, 9, cfg.Height)
}
