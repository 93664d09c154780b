// Command life runs Conway's Game of Life in the terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"life-ca/internal/app"
	"life-ca/internal/cli"
	"life-ca/internal/ctxlog"
	"life-ca/internal/term"
)

func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW, logW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse("life", args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)

	sim, err := app.Build(cfg)
	if err != nil {
		return err
	}
	logger.Info("Starting simulation.", sim.Parameters().Attrs()...)

	opts := app.LoopOptions{Delay: cfg.Delay, MaxGenerations: cfg.Generations}

	var res app.Result
	switch cfg.Output {
	case app.OutputPlain:
		res, err = app.Loop(ctx, sim, app.TextDrawer{W: outW, Renderer: cfg.TextRenderer()}, opts)
	default:
		err = term.With(cfg.TermStyle(), func(d *term.Display) error {
			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				var loopErr error
				res, loopErr = app.Loop(gctx, sim, d, opts)
				if loopErr != nil {
					return loopErr
				}
				// A finished run stops the listener too.
				return errDone
			})
			g.Go(func() error { return d.Listen(gctx) })
			if err := g.Wait(); err != nil && !errors.Is(err, errDone) && !errors.Is(err, term.ErrQuit) {
				return err
			}
			return nil
		})
	}
	if err != nil {
		return err
	}

	logger.Info("Simulation stopped.", "generation", res.Generation, "population", res.Population, "reason", res.Reason)
	return nil
}

var errDone = errors.New("run finished")
