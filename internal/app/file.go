package app

import (
	"fmt"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"

	"life-ca/internal/patterns"
)

// File is a decoded scene override file. Attributes that are absent in the
// file stay nil and leave the config untouched.
type File struct {
	Pattern     *string  `hcl:"pattern,optional"`
	Width       *int     `hcl:"width,optional"`
	Height      *int     `hcl:"height,optional"`
	Delay       *string  `hcl:"delay,optional"`
	Boundary    *string  `hcl:"boundary,optional"`
	Aging       *bool    `hcl:"aging,optional"`
	Live        *string  `hcl:"live,optional"`
	Dead        *string  `hcl:"dead,optional"`
	Generations *int     `hcl:"generations,optional"`
	Soup        *bool    `hcl:"soup,optional"`
	Seed        *int64   `hcl:"seed,optional"`
	Density     *float64 `hcl:"density,optional"`

	Places []*placeBlock `hcl:"place,block"`

	path string
}

// placeBlock keeps its coordinates as expressions so they can refer to the
// final grid size.
type placeBlock struct {
	Pattern string         `hcl:"pattern,label"`
	Row     hcl.Expression `hcl:"row,optional"`
	Col     hcl.Expression `hcl:"col,optional"`
	FlipH   *bool          `hcl:"flip_h,optional"`
	FlipV   *bool          `hcl:"flip_v,optional"`
	Center  *bool          `hcl:"center,optional"`
}

// LoadFile parses and decodes a single HCL override file.
func LoadFile(path string) (*File, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decodeFile(hclFile, path)
}

func decodeFile(hclFile *hcl.File, path string) (*File, error) {
	var f File
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &f); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	for _, p := range f.Places {
		if _, ok := patterns.Lookup(p.Pattern); !ok {
			return nil, fmt.Errorf("%s: %w: %q", path, patterns.ErrUnknownPattern, p.Pattern)
		}
	}
	f.path = path
	return &f, nil
}

// Apply copies every attribute set in the file onto cfg. Place blocks are
// resolved separately by Placements once the grid size is final.
func (f *File) Apply(cfg *Config) error {
	if f.Pattern != nil {
		cfg.Pattern = *f.Pattern
	}
	if f.Width != nil {
		cfg.Width = *f.Width
	}
	if f.Height != nil {
		cfg.Height = *f.Height
	}
	if f.Delay != nil {
		d, err := time.ParseDuration(*f.Delay)
		if err != nil {
			return fmt.Errorf("%s: delay: %w", f.path, err)
		}
		cfg.Delay = d
	}
	if f.Boundary != nil {
		cfg.Boundary = *f.Boundary
	}
	if f.Aging != nil {
		cfg.Aging = *f.Aging
	}
	if f.Live != nil {
		cfg.LiveGlyph = *f.Live
	}
	if f.Dead != nil {
		cfg.DeadGlyph = *f.Dead
	}
	if f.Generations != nil {
		if *f.Generations < 0 {
			return fmt.Errorf("%s: generations must not be negative", f.path)
		}
		cfg.Generations = uint64(*f.Generations)
	}
	if f.Soup != nil {
		cfg.Soup = *f.Soup
	}
	if f.Seed != nil {
		cfg.Seed = *f.Seed
	}
	if f.Density != nil {
		cfg.Density = *f.Density
	}
	return nil
}

// HasPlaces reports whether the file declares any place blocks.
func (f *File) HasPlaces() bool { return len(f.Places) > 0 }

// Placements evaluates the place blocks with width and height bound to the
// final grid size.
func (f *File) Placements(width, height int) ([]patterns.Placement, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(width)),
			"height": cty.NumberIntVal(int64(height)),
		},
	}
	out := make([]patterns.Placement, 0, len(f.Places))
	for _, b := range f.Places {
		row, err := evalInt(b.Row, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: place %q: row: %w", f.path, b.Pattern, err)
		}
		col, err := evalInt(b.Col, ctx)
		if err != nil {
			return nil, fmt.Errorf("%s: place %q: col: %w", f.path, b.Pattern, err)
		}
		out = append(out, patterns.Placement{
			Pattern: b.Pattern,
			Row:     row,
			Col:     col,
			FlipH:   deref(b.FlipH),
			FlipV:   deref(b.FlipV),
			Center:  deref(b.Center),
		})
	}
	return out, nil
}

// evalInt treats a missing attribute as zero.
func evalInt(expr hcl.Expression, ctx *hcl.EvalContext) (int, error) {
	if expr == nil {
		return 0, nil
	}
	v, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return 0, diags
	}
	if v.IsNull() {
		return 0, nil
	}
	var n int
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return 0, err
	}
	return n, nil
}

func deref(b *bool) bool { return b != nil && *b }
