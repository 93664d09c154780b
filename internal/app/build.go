package app

import (
	"fmt"

	"life-ca/internal/core"
	"life-ca/internal/patterns"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
	"life-ca/internal/term"
)

// Build creates an engine for cfg and seeds it with the configured
// placements, plus a random soup when enabled.
func Build(cfg *Config) (*life.Engine, error) {
	ecfg, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	eng, err := life.NewWithConfig(ecfg)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", cfg.Pattern, err)
	}
	if err := patterns.Apply(eng, eng.Size(), cfg.Places); err != nil {
		return nil, fmt.Errorf("seeding %s: %w", cfg.Pattern, err)
	}
	if cfg.Soup {
		eng.Seed(patterns.Soup(core.NewRNG(cfg.Seed), eng.Size(), cfg.Density), 0, 0)
	}
	return eng, nil
}

// TextRenderer returns the plain-text renderer for cfg.
func (c *Config) TextRenderer() render.TextRenderer {
	return render.TextRenderer{
		Title:    c.Title,
		Live:     c.LiveGlyph,
		Dead:     c.DeadGlyph,
		Boundary: c.boundaryName(),
		Border:   true,
	}
}

// TermStyle returns the terminal display style for cfg.
func (c *Config) TermStyle() term.Style {
	return term.Style{
		Title:    c.Title,
		Live:     c.LiveGlyph,
		Dead:     c.DeadGlyph,
		Boundary: c.boundaryName(),
		Aging:    c.Aging,
	}
}

func (c *Config) boundaryName() string {
	if b, err := life.ParseBoundary(c.Boundary); err == nil {
		return b.String()
	}
	return c.Boundary
}
