package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"life-ca/internal/app"
	"life-ca/internal/patterns"
)

func writeFile(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "life.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
	return path
}

func TestParse(t *testing.T) {
	t.Parallel()

	pulsarFile := writeFile(t, `
pattern = "pulsar"
width   = 20
delay   = "1s"
`)
	placeFile := writeFile(t, `
width = 50
place "glider" {
  row    = height - 8
  col    = width - 8
  flip_h = true
  flip_v = true
}
`)

	want := func(scene string, edit func(c *app.Config)) *app.Config {
		c := app.DefaultConfig()
		s, err := patterns.LookupScene(scene)
		require.NoError(t, err)
		c.ApplyScene(s)
		if edit != nil {
			edit(c)
		}
		return c
	}

	testCases := []struct {
		name     string
		args     []string
		expected *app.Config
	}{
		{
			name:     "defaults",
			args:     nil,
			expected: want("glider", nil),
		},
		{
			name: "scene and flag overrides",
			args: []string{"-pattern", "gun", "-width", "100", "-boundary", "wrap", "-output", "plain", "-log-format=json"},
			expected: want("gun", func(c *app.Config) {
				c.Width = 100
				c.Boundary = "wrap"
				c.Output = app.OutputPlain
				c.LogFormat = "json"
			}),
		},
		{
			name: "place flags replace scene placements",
			args: []string{"-pattern", "beacon", "-place", "block:1,1", "-place", "toad:4,4,c"},
			expected: want("beacon", func(c *app.Config) {
				c.Places = []patterns.Placement{
					{Pattern: "block", Row: 1, Col: 1},
					{Pattern: "toad", Row: 4, Col: 4, Center: true},
				}
			}),
		},
		{
			name: "file selects scene and flags win over file",
			args: []string{"-config", pulsarFile, "-width", "25"},
			expected: want("pulsar", func(c *app.Config) {
				c.ConfigPath = pulsarFile
				c.Width = 25
				c.Delay = time.Second
			}),
		},
		{
			name: "flag pattern wins over file pattern",
			args: []string{"-config", pulsarFile, "-pattern", "toad"},
			expected: want("toad", func(c *app.Config) {
				c.ConfigPath = pulsarFile
				c.Width = 20
				c.Delay = time.Second
			}),
		},
		{
			name: "file place blocks use the final size",
			args: []string{"-config", placeFile, "-pattern", "collision", "-height", "40"},
			expected: want("collision", func(c *app.Config) {
				c.ConfigPath = placeFile
				c.Width = 50
				c.Height = 40
				c.Places = []patterns.Placement{{Pattern: "glider", Row: 32, Col: 42, FlipH: true, FlipV: true}}
			}),
		},
		{
			name: "place flag wins over file place blocks",
			args: []string{"-config", placeFile, "-place", "block:0,0"},
			expected: want("glider", func(c *app.Config) {
				c.ConfigPath = placeFile
				c.Width = 50
				c.Places = []patterns.Placement{{Pattern: "block"}}
			}),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out bytes.Buffer
			cfg, shouldExit, err := Parse("life", tc.args, &out)
			require.NoError(t, err)
			require.False(t, shouldExit)
			if diff := cmp.Diff(tc.expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	badFile := writeFile(t, `width = `)
	testCases := []struct {
		name    string
		args    []string
		message string
	}{
		{"unknown flag", []string{"-nope"}, "flag provided but not defined"},
		{"positional", []string{"glider"}, "unexpected arguments: glider"},
		{"unknown scene", []string{"-pattern", "unicorn"}, "unknown scene"},
		{"bad placement", []string{"-place", "glider:x,1"}, "row"},
		{"bad boundary", []string{"-boundary", "sphere"}, "invalid boundary"},
		{"bad size", []string{"-width", "0"}, "invalid dimension"},
		{"bad log level", []string{"-log-level", "loud"}, "invalid log-level"},
		{"bad output", []string{"-output", "html"}, "invalid output"},
		{"missing file", []string{"-config", filepath.Join(t.TempDir(), "none.hcl")}, "failed to parse"},
		{"bad file", []string{"-config", badFile}, "failed to parse"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, shouldExit, err := Parse("life", tc.args, &bytes.Buffer{})
			require.Nil(t, cfg)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr))
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.message)
		})
	}
}

func TestParseHelpAndList(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	cfg, shouldExit, err := Parse("life", []string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "Usage:")
	require.Contains(t, out.String(), "-generations")

	out.Reset()
	_, shouldExit, err = Parse("life", []string{"-list"}, &out)
	require.NoError(t, err)
	require.True(t, shouldExit)
	require.Contains(t, out.String(), "r-pentomino")
	require.Contains(t, out.String(), "gosper-gun")
}
