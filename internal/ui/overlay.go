//go:build ebiten

package ui

import (
	"wildfire/internal/core"
	"wildfire/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type statusProvider interface {
	Status() string
}

type elevationFieldProvider interface {
	ElevationField() []float64
}

var (
	reliefLow  = core.Color{R: 0, G: 0, B: 40, A: 150}
	reliefHigh = core.Color{R: 255, G: 255, B: 255, A: 150}
)

// Overlay draws a translucent relief map over the simulation, toggled with E.
type Overlay struct {
	sim      core.Sim
	scale    int
	showElev bool
	painter  *render.GridPainter
	relief   []float64
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		o.showElev = !o.showElev
		o.relief = nil
	}
}

// Invalidate drops cached layers after the sim was reset.
func (o *Overlay) Invalidate() { o.relief = nil }

// Draw renders enabled layers onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showElev {
		return
	}
	provider, ok := o.sim.(elevationFieldProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if o.painter == nil {
		o.painter = render.NewGridPainter(size.W, size.H)
	}
	if o.relief == nil {
		o.relief = render.Normalize(provider.ElevationField())
	}
	o.painter.BlitRamp(screen, o.relief, reliefLow, reliefHigh, o.scale)
}
