//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"life-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	headerColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	valueColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	pausedColor = color.RGBA{R: 255, G: 180, B: 60, A: 255}
)

var keyHelp = []string{
	"space  pause",
	"n      step",
	"r      rebuild",
	"+/-    speed",
	"1      neighbors",
	"q/esc  quit",
}

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	title      string
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, title string, width int) *HUD {
	if width < 0 {
		width = 0
	}
	if title == "" {
		title = strings.ToUpper(sim.Name())
	}
	return &HUD{sim: sim, title: title, width: width}
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawText()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + 12
	text.Draw(h.panel, h.title, face, panelPadding, y, headerColor)
	y += lineHeight
	if h.paused {
		text.Draw(h.panel, "PAUSED", face, panelPadding, y, pausedColor)
	}
	y += lineHeight

	for _, group := range h.snapshot.Groups {
		text.Draw(h.panel, group.Name, face, panelPadding, y, headerColor)
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, labelColor)
			bounds := text.BoundString(face, p.Value)
			x := h.width - panelPadding - bounds.Dx()
			text.Draw(h.panel, p.Value, face, x, y, valueColor)
			y += lineHeight
		}
		y += lineHeight / 2
	}

	for _, line := range keyHelp {
		if y > h.lastHeight-panelPadding {
			return
		}
		text.Draw(h.panel, line, face, panelPadding, y, labelColor)
		y += lineHeight
	}
}
