package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/ctxlog"
	"life-ca/internal/render"
)

// Drawer displays one frame. term.Display and TextDrawer implement it.
type Drawer interface {
	Draw(core.Frame) error
}

// LoopOptions controls pacing and termination of Loop.
type LoopOptions struct {
	Delay time.Duration
	// MaxGenerations stops the loop once the frame of that generation has
	// been drawn. Zero runs until ctx is done.
	MaxGenerations uint64
}

// StopReason says why Loop returned.
type StopReason string

const (
	StopCanceled StopReason = "canceled"
	StopLimit    StopReason = "limit"
	StopError    StopReason = "error"
)

// Result summarizes a finished run.
type Result struct {
	Generation uint64
	Population int
	Reason     StopReason
}

// Loop repeats draw, advance and wait until ctx is done or the generation
// limit is reached. Cancellation is a clean stop and returns a nil error.
func Loop(ctx context.Context, sim core.Sim, d Drawer, opts LoopOptions) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loop started.", "sim", sim.Name(), "delay", opts.Delay, "max_generations", opts.MaxGenerations)

	timer := time.NewTimer(0)
	timer.Stop()
	defer timer.Stop()

	for {
		if ctx.Err() != nil {
			return finish(ctx, sim, StopCanceled), nil
		}
		f := sim.Frame()
		if err := d.Draw(f); err != nil {
			return finish(ctx, sim, StopError), fmt.Errorf("drawing generation %d: %w", f.Generation, err)
		}
		if opts.MaxGenerations > 0 && f.Generation >= opts.MaxGenerations {
			return finish(ctx, sim, StopLimit), nil
		}

		sim.Advance()
		logger.Debug("Generation advanced.", "generation", sim.Generation())

		if opts.Delay <= 0 {
			continue
		}
		timer.Reset(opts.Delay)
		select {
		case <-ctx.Done():
			return finish(ctx, sim, StopCanceled), nil
		case <-timer.C:
		}
	}
}

func finish(ctx context.Context, sim core.Sim, reason StopReason) Result {
	f := sim.Frame()
	res := Result{Generation: f.Generation, Population: f.Population(), Reason: reason}
	ctxlog.FromContext(ctx).Debug("Loop finished.", "generation", res.Generation, "population", res.Population, "reason", res.Reason)
	return res
}

// TextDrawer writes each frame as text, separated by a blank line.
type TextDrawer struct {
	W        io.Writer
	Renderer render.TextRenderer
}

// Draw renders f and writes it to W.
func (t TextDrawer) Draw(f core.Frame) error {
	if _, err := io.WriteString(t.W, t.Renderer.Render(f)+"\n"); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}
