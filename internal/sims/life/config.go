package life

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive height or width.
	ErrInvalidDimension = errors.New("life: invalid dimension")
	// ErrInvalidBoundary is returned for an unknown boundary mode.
	ErrInvalidBoundary = errors.New("life: invalid boundary")
	// ErrInvalidMode is returned for an unknown cell mode.
	ErrInvalidMode = errors.New("life: invalid cell mode")
)

// Boundary selects how neighbors beyond the grid edge are resolved.
type Boundary uint8

const (
	// Clamped treats cells beyond the edge as permanently dead.
	Clamped Boundary = iota
	// Toroidal wraps rows and columns around to the opposite edge.
	Toroidal
)

func (b Boundary) String() string {
	switch b {
	case Clamped:
		return "clamped"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("boundary(%d)", uint8(b))
	}
}

func (b Boundary) valid() bool { return b == Clamped || b == Toroidal }

// ParseBoundary accepts "clamped"/"fill" and "toroidal"/"wrap".
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamped", "clamp", "fill":
		return Clamped, nil
	case "toroidal", "torus", "wrap":
		return Toroidal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidBoundary, s)
}

// Mode selects the cell representation.
type Mode uint8

const (
	// Binary cells hold 0 (dead) or 1 (alive).
	Binary Mode = iota
	// Aging cells hold 0 (dead) or the number of consecutive generations
	// the cell has been alive.
	Aging
)

func (m Mode) String() string {
	switch m {
	case Binary:
		return "binary"
	case Aging:
		return "aging"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

func (m Mode) valid() bool { return m == Binary || m == Aging }

// Config holds the construction parameters of an Engine.
type Config struct {
	Height   int
	Width    int
	Boundary Boundary
	Mode     Mode
}

// Validate reports the first problem with the config.
func (c Config) Validate() error {
	if c.Height <= 0 || c.Width <= 0 {
		return fmt.Errorf("%w: height=%d width=%d", ErrInvalidDimension, c.Height, c.Width)
	}
	if !c.Boundary.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidBoundary, c.Boundary)
	}
	if !c.Mode.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, c.Mode)
	}
	return nil
}
