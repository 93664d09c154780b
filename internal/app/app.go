//go:build ebiten

package app

import (
	"image/color"
	"log/slog"
	"time"

	"life-ca/internal/core"
	"life-ca/internal/render"
	"life-ca/internal/sims/life"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 200

// Game adapts the life engine to the ebiten.Game interface.
type Game struct {
	cfg     *Config
	logger  *slog.Logger
	sim     *life.Engine
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	step    *core.FixedStep

	onColor  color.Color
	offColor color.Color
	palette  []color.RGBA

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided config.
func New(cfg *Config, logger *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		step:     core.NewFixedStep(cfg.Delay),
		onColor:  color.White,
		offColor: color.Black,
		scale:    cfg.Scale,
	}
	g.palette = render.AgePalette(color.RGBA{A: 255})
	if err := g.Reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset rebuilds the scene from the config.
func (g *Game) Reset() error {
	sim, err := Build(g.cfg)
	if err != nil {
		return err
	}
	g.sim = sim
	size := sim.Size()
	g.painter = render.NewGridPainter(size.W, size.H)
	g.hud = ui.NewHUD(sim, g.cfg.Title, hudWidth)
	g.overlay = ui.NewOverlay(sim, g.scale)
	g.tickOnce = false
	g.logger.Info("Scene built.", sim.Parameters().Attrs()...)
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.step.SetStep(g.step.Step() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.step.SetStep(max(2*g.step.Step(), 10*time.Millisecond))
	}

	g.overlay.Update()

	if g.cfg.Generations > 0 && g.sim.Generation() >= g.cfg.Generations {
		g.paused = true
	}
	if (!g.paused && g.step.ShouldStep()) || g.tickOnce {
		g.sim.Advance()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.sim.Frame().Cells
	if g.sim.Mode() == life.Aging {
		g.painter.BlitPalette(screen, cells, g.palette, g.scale)
	} else {
		g.painter.Blit(screen, cells, g.onColor, g.offColor, g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

// WindowSize returns the window dimensions that fit the grid and HUD.
func (g *Game) WindowSize() (int, int) { return g.Layout(0, 0) }
