// Package term draws frames on a terminal with tcell and turns quit keys into
// an error the driver can act on.
package term

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"life-ca/internal/core"
	"life-ca/internal/render"
)

// ErrQuit is returned by Listen when the user presses q, Esc or Ctrl+C.
var ErrQuit = errors.New("term: quit requested")

// Style controls what Draw puts on screen.
type Style struct {
	Title    string
	Live     string
	Dead     string
	Boundary string
	// Aging colors live cells by their value instead of a flat color.
	Aging bool
}

// Display owns a tcell screen for the lifetime of a run.
type Display struct {
	screen tcell.Screen
	style  Style
	text   render.TextRenderer

	closeOnce sync.Once
}

// Open acquires the terminal. Callers must Close the display; With does it
// for them.
func Open(style Style) (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	return newDisplay(screen, style)
}

func newDisplay(screen tcell.Screen, style Style) (*Display, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	if style.Live == "" {
		style.Live = "O"
	}
	if style.Dead == "" {
		style.Dead = " "
	}
	return &Display{
		screen: screen,
		style:  style,
		text:   render.TextRenderer{Boundary: style.Boundary},
	}, nil
}

// Close releases the terminal. It is safe to call more than once.
func (d *Display) Close() {
	d.closeOnce.Do(d.screen.Fini)
}

// With opens a display, runs fn and closes the display however fn exits,
// including by panic.
func With(style Style, fn func(*Display) error) error {
	d, err := Open(style)
	if err != nil {
		return err
	}
	return run(d, fn)
}

func run(d *Display, fn func(*Display) error) error {
	defer d.Close()
	return fn(d)
}

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorFuchsia).Bold(true)
	liveStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	footerStyle = tcell.StyleDefault.Dim(true)
)

var ageColors = [render.AgeLevels]tcell.Color{
	tcell.ColorWhite,
	tcell.ColorAqua,
	tcell.ColorDarkCyan,
	tcell.ColorTurquoise,
	tcell.ColorDodgerBlue,
	tcell.ColorMediumBlue,
}

func (d *Display) cellStyle(v uint32) tcell.Style {
	if !d.style.Aging {
		return liveStyle
	}
	s := tcell.StyleDefault.Foreground(ageColors[render.AgeLevel(v)])
	if v <= 1 {
		s = s.Bold(true)
	}
	return s
}

// Draw paints the frame: title, bordered grid and status line.
func (d *Display) Draw(f core.Frame) error {
	s := d.screen
	s.Clear()

	y := 0
	if d.style.Title != "" {
		putString(s, 0, y, d.style.Title, titleStyle)
		y++
	}

	live, dead := []rune(d.style.Live), []rune(d.style.Dead)
	cellWidth := max(len(live), len(dead))
	inner := f.Size.W * cellWidth

	putBorder(s, y, inner, '╔', '═', '╗')
	y++
	for row := 0; row < f.Size.H; row++ {
		s.SetContent(0, y, '║', nil, borderStyle)
		x := 1
		for col := 0; col < f.Size.W; col++ {
			v := f.At(row, col)
			glyph, style := dead, tcell.StyleDefault
			if v > 0 {
				glyph, style = live, d.cellStyle(v)
			}
			for i := 0; i < cellWidth; i++ {
				r := ' '
				if i < len(glyph) {
					r = glyph[i]
				}
				s.SetContent(x+i, y, r, nil, style)
			}
			x += cellWidth
		}
		s.SetContent(x, y, '║', nil, borderStyle)
		y++
	}
	putBorder(s, y, inner, '╚', '═', '╝')
	y++
	putString(s, 0, y, d.text.Footer(f), footerStyle)
	putString(s, 0, y+1, "Press q, Esc or Ctrl+C to stop", footerStyle)

	s.Show()
	return nil
}

func putBorder(s tcell.Screen, y, inner int, left, fill, right rune) {
	s.SetContent(0, y, left, nil, borderStyle)
	for x := 1; x <= inner; x++ {
		s.SetContent(x, y, fill, nil, borderStyle)
	}
	s.SetContent(inner+1, y, right, nil, borderStyle)
}

func putString(s tcell.Screen, x, y int, str string, style tcell.Style) {
	for _, r := range str {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// Listen polls terminal events until a quit key (ErrQuit) or until ctx is
// done (nil). Resize events resync the screen.
func (d *Display) Listen(ctx context.Context) error {
	stop := context.AfterFunc(ctx, func() {
		_ = d.screen.PostEvent(tcell.NewEventInterrupt(nil))
	})
	defer stop()

	for {
		switch ev := d.screen.PollEvent().(type) {
		case nil:
			// Screen finalized.
			return nil
		case *tcell.EventInterrupt:
			if ctx.Err() != nil {
				return nil
			}
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				return ErrQuit
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
