// Package term hosts a simulation in a terminal: one grid cell per
// character cell, colored from the sim's palette.
package term

import (
	"context"
	"fmt"
	"time"

	"wildfire/internal/core"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 33 * time.Millisecond

type statusProvider interface {
	Status() string
}

// Viewer draws a sim onto a tcell screen and maps input onto it.
type Viewer struct {
	screen  tcell.Screen
	sim     core.Sim
	palette []core.Color
	clock   *core.FixedStep

	paused   bool
	tickOnce bool
	seed     int64
	message  string
}

// New constructs a viewer. The screen must already be initialized.
func New(screen tcell.Screen, sim core.Sim, tps int, seed int64) *Viewer {
	v := &Viewer{screen: screen, sim: sim, clock: core.NewFixedStep(tps), seed: seed}
	if p, ok := sim.(core.PaletteProvider); ok {
		v.palette = p.Palette()
	}
	screen.EnableMouse()
	return v
}

// Run processes input and advances the sim until quit is requested or ctx
// is done.
func (v *Viewer) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !v.HandleEvent(ev) {
				return nil
			}
			v.Draw()
		case <-ticker.C:
			if v.Advance() {
				v.Draw()
			}
		}
	}
}

// Advance steps the sim when a tick is due. It reports whether it stepped.
func (v *Viewer) Advance() bool {
	due := v.clock.ShouldStep()
	if v.tickOnce {
		v.tickOnce = false
		v.sim.Step()
		return true
	}
	if v.paused || !due {
		return false
	}
	v.sim.Step()
	return true
}

// HandleEvent applies one input event. It returns false when the viewer
// should exit.
func (v *Viewer) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch ev.Rune() {
		case 'q':
			return false
		case ' ':
			v.paused = !v.paused
		case 'n':
			v.tickOnce = true
		case 'r':
			v.sim.Reset(v.seed)
			v.message = ""
		case 's':
			v.seed = time.Now().UnixNano()
			v.sim.Reset(v.seed)
			v.message = ""
		}
	case *tcell.EventMouse:
		if ev.Buttons()&tcell.Button1 != 0 {
			x, y := ev.Position()
			v.ignite(x, y)
		}
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return true
}

func (v *Viewer) ignite(x, y int) {
	igniter, ok := v.sim.(core.Igniter)
	if !ok {
		return
	}
	size := v.sim.Size()
	if x >= size.W || y >= size.H {
		return
	}
	if err := igniter.Ignite(x, y); err != nil {
		v.message = err.Error()
		return
	}
	v.message = fmt.Sprintf("ignited (%d,%d)", x, y)
}

// Draw renders the grid and a status line below it.
func (v *Viewer) Draw() {
	v.screen.Clear()
	sw, sh := v.screen.Size()
	size := v.sim.Size()
	cells := v.sim.Cells()
	rows := min(size.H, sh-1)
	cols := min(size.W, sw)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v.screen.SetContent(x, y, ' ', nil, v.styleFor(cells[y*size.W+x]))
		}
	}

	status := v.sim.Name()
	if s, ok := v.sim.(statusProvider); ok {
		status = s.Status()
	}
	if v.paused {
		status += "  [paused]"
	}
	if v.message != "" {
		status += "  " + v.message
	}
	drawText(v.screen, 0, max(rows, 0), status, tcell.StyleDefault.Bold(true))
	v.screen.Show()
}

func (v *Viewer) styleFor(value uint8) tcell.Style {
	if len(v.palette) == 0 {
		if value != 0 {
			return tcell.StyleDefault.Background(tcell.ColorWhite)
		}
		return tcell.StyleDefault.Background(tcell.ColorBlack)
	}
	idx := min(int(value), len(v.palette)-1)
	c := v.palette[idx]
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
