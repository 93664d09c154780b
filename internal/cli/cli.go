// Package cli is responsible for parsing command-line arguments, validating
// user input, and handling process-level concerns like exit codes. It
// translates CLI flags and an optional HCL file into app.Config.
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"life-ca/internal/app"
	"life-ca/internal/patterns"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Parse processes command-line arguments. It returns a populated Config, a
// boolean indicating if the program should exit cleanly, or an ExitError.
//
// Settings are layered: the selected scene first, then the -config file,
// then any flag given explicitly on the command line.
func Parse(name string, args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	first := app.DefaultConfig()
	fs := newFlagSet(name, first, output)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError(err)
	}
	if fs.NArg() > 0 {
		return nil, false, usageError(fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " ")))
	}
	if first.List {
		printList(output)
		return nil, true, nil
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	var file *app.File
	if first.ConfigPath != "" {
		var err error
		if file, err = app.LoadFile(first.ConfigPath); err != nil {
			return nil, false, usageError(err)
		}
		slog.Debug("Config file loaded.", "path", first.ConfigPath)
	}

	pattern := first.Pattern
	if !explicit["pattern"] && file != nil && file.Pattern != nil {
		pattern = *file.Pattern
	}
	scene, err := patterns.LookupScene(pattern)
	if err != nil {
		return nil, false, usageError(err)
	}

	cfg := app.DefaultConfig()
	cfg.ApplyScene(scene)
	if file != nil {
		if err := file.Apply(cfg); err != nil {
			return nil, false, usageError(err)
		}
		cfg.Pattern = scene.Name
	}

	// Re-parse onto the layered config so only explicit flags override it.
	final := newFlagSet(name, cfg, io.Discard)
	if err := final.Parse(args); err != nil {
		return nil, false, usageError(err)
	}
	if file != nil && file.HasPlaces() && !explicit["place"] {
		places, err := file.Placements(cfg.Width, cfg.Height)
		if err != nil {
			return nil, false, usageError(err)
		}
		cfg.Places = places
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError(err)
	}
	slog.Debug("CLI parser finished successfully.", "pattern", cfg.Pattern, "width", cfg.Width, "height", cfg.Height)
	return cfg, false, nil
}

func newFlagSet(name string, cfg *app.Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintf(output, `
%s - Conway's Game of Life on a bounded grid.

Usage:
  %s [options]

Scenes:
  %s

Options:
`, name, name, strings.Join(patterns.SceneNames(), ", "))
		fs.PrintDefaults()
	}
	cfg.Bind(fs)
	return fs
}

func printList(out io.Writer) {
	fmt.Fprintln(out, "Scenes:")
	for _, name := range patterns.SceneNames() {
		s, _ := patterns.LookupScene(name)
		fmt.Fprintf(out, "  %-12s %dx%d %s, %s\n", name, s.Height, s.Width, s.Boundary, s.Delay)
	}
	fmt.Fprintln(out, "Patterns:")
	for _, name := range patterns.Names() {
		p, _ := patterns.Lookup(name)
		fmt.Fprintf(out, "  %-12s %s\n", name, p.Description)
	}
}
