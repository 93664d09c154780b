package app

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"life-ca/internal/patterns"
	"life-ca/internal/sims/life"
)

// Output modes for the terminal driver.
const (
	OutputTUI   = "tui"
	OutputPlain = "plain"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Pattern     string
	Title       string
	Width       int
	Height      int
	Delay       time.Duration
	Boundary    string
	Aging       bool
	LiveGlyph   string
	DeadGlyph   string
	Generations uint64
	Output      string
	Places      []patterns.Placement
	Soup        bool
	Seed        int64
	Density     float64
	Scale       int

	ConfigPath string
	LogLevel   string
	LogFormat  string
	List       bool
}

// DefaultConfig returns the glider scene with the standard driver settings.
func DefaultConfig() *Config {
	cfg := &Config{
		Pattern:   "glider",
		Output:    OutputTUI,
		Seed:      42,
		Density:   0.3,
		Scale:     8,
		LogLevel:  "info",
		LogFormat: "text",
	}
	scene, err := patterns.LookupScene(cfg.Pattern)
	if err == nil {
		cfg.ApplyScene(scene)
	}
	return cfg
}

// ApplyScene copies the grid shape, pacing, glyphs and placements of a scene
// into the config. Driver settings are left alone.
func (c *Config) ApplyScene(s patterns.Scene) {
	c.Pattern = s.Name
	c.Title = s.Title
	c.Width = s.Width
	c.Height = s.Height
	c.Delay = s.Delay
	c.Boundary = s.Boundary.String()
	c.Aging = s.Mode == life.Aging
	c.LiveGlyph = s.LiveGlyph
	c.DeadGlyph = s.DeadGlyph
	c.Places = append([]patterns.Placement(nil), s.Placements...)
	c.Soup = s.Soup
}

// Bind attaches the configuration to the provided FlagSet. Current field
// values become the flag defaults.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "scene to run (see -list)")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.DurationVar(&c.Delay, "delay", c.Delay, "pause between generations")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "edge handling: clamped or toroidal")
	fs.BoolVar(&c.Aging, "aging", c.Aging, "count how long each cell has been alive")
	fs.StringVar(&c.LiveGlyph, "live", c.LiveGlyph, "glyph for live cells")
	fs.StringVar(&c.DeadGlyph, "dead", c.DeadGlyph, "glyph for dead cells")
	fs.Uint64Var(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs until interrupted)")
	fs.StringVar(&c.Output, "output", c.Output, "output mode: tui or plain")
	fs.Var(&placeList{list: &c.Places}, "place", "pattern placement name:row,col[,h][,v][,c] (repeatable, replaces the scene's)")
	fs.BoolVar(&c.Soup, "soup", c.Soup, "add a random soup of cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random soup")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of cells alive in the soup")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the GUI window")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "HCL file with scene overrides")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "logging level: debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log output format: text or json")
	fs.BoolVar(&c.List, "list", c.List, "list scenes and patterns, then exit")
}

// Validate reports every problem with the config at once.
func (c *Config) Validate() error {
	var errs []error
	if _, err := patterns.LookupScene(c.Pattern); err != nil {
		errs = append(errs, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: %dx%d", life.ErrInvalidDimension, c.Height, c.Width))
	}
	if c.Delay < 0 {
		errs = append(errs, fmt.Errorf("delay must not be negative, got %s", c.Delay))
	}
	if _, err := life.ParseBoundary(c.Boundary); err != nil {
		errs = append(errs, err)
	}
	if c.Output != OutputTUI && c.Output != OutputPlain {
		errs = append(errs, fmt.Errorf("invalid output %q: must be 'tui' or 'plain'", c.Output))
	}
	if c.Density < 0 || c.Density > 1 {
		errs = append(errs, fmt.Errorf("density must be within [0, 1], got %g", c.Density))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", c.LogFormat))
	}
	return errors.Join(errs...)
}

// EngineConfig converts the config into the engine's own settings.
func (c *Config) EngineConfig() (life.Config, error) {
	b, err := life.ParseBoundary(c.Boundary)
	if err != nil {
		return life.Config{}, err
	}
	mode := life.Binary
	if c.Aging {
		mode = life.Aging
	}
	return life.Config{Height: c.Height, Width: c.Width, Boundary: b, Mode: mode}, nil
}

// placeList collects repeated -place flags. The first flag in a parse
// replaces whatever placements the config already held.
type placeList struct {
	list    *[]patterns.Placement
	touched bool
}

func (l *placeList) String() string {
	if l == nil || l.list == nil {
		return ""
	}
	parts := make([]string, len(*l.list))
	for i, p := range *l.list {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func (l *placeList) Set(value string) error {
	p, err := patterns.ParsePlacement(value)
	if err != nil {
		return err
	}
	if !l.touched {
		*l.list = nil
		l.touched = true
	}
	*l.list = append(*l.list, p)
	return nil
}
