//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"life-ca/internal/app"
	"life-ca/internal/cli"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, shouldExit, err := cli.Parse("lifegui", os.Args[1:], os.Stdout)
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		log.Fatal(err)
	}
	if shouldExit {
		return
	}

	logger := app.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	game, err := app.New(cfg, logger)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(60)
	ebiten.SetWindowSize(game.WindowSize())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
