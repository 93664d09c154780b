//go:build ebiten

package ui

import (
	"life-ca/internal/core"
	"life-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type neighborCounter interface {
	NeighborCounts() [][]int
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim   core.Sim
	scale int

	showNeighbors bool
	heat          *render.GridPainter
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	size := sim.Size()
	return &Overlay{sim: sim, scale: scale, heat: render.NewGridPainter(size.W, size.H)}
}

// Update toggles layers from the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showNeighbors = !o.showNeighbors
	}
}

// Draw renders the enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showNeighbors {
		return
	}
	counter, ok := o.sim.(neighborCounter)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	o.heat.BlitHeat(screen, counter.NeighborCounts(), scale)
}
