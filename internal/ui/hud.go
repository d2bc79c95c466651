//go:build ebiten

package ui

import (
	"fmt"
	"strconv"

	"wildfire/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudLineHeight = 16

// HUD renders the tunable parameters and a status line in a side panel.
// Up/Down select a control, Left/Right adjust it by one step.
type HUD struct {
	sim      core.Sim
	width    int
	controls []core.ParameterControl
	selected int

	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	h := &HUD{sim: sim, width: max(width, 0)}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		h.controls = provider.ParameterControls()
	}
	h.intSetter, _ = sim.(core.IntParameterSetter)
	h.floatSetter, _ = sim.(core.FloatParameterSetter)
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update handles control selection and adjustment.
func (h *HUD) Update() {
	if h == nil || len(h.controls) == 0 {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		h.selected = (h.selected + 1) % len(h.controls)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		h.selected = (h.selected + len(h.controls) - 1) % len(h.controls)
	}
	dir := 0.0
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		dir = 1
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		dir = -1
	}
	if dir != 0 {
		h.adjust(h.controls[h.selected], dir)
	}
}

func (h *HUD) adjust(ctrl core.ParameterControl, dir float64) {
	current, ok := h.value(ctrl.Key)
	if !ok {
		return
	}
	next := ctrl.Clamp(current + dir*ctrl.Step)
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter != nil {
			h.intSetter.SetIntParameter(ctrl.Key, int(next))
		}
	case core.ParamTypeFloat:
		if h.floatSetter != nil {
			h.floatSetter.SetFloatParameter(ctrl.Key, next)
		}
	}
}

func (h *HUD) value(key string) (float64, bool) {
	provider, ok := h.sim.(core.ParameterProvider)
	if !ok {
		return 0, false
	}
	p, ok := provider.Parameters().Lookup(key)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	return v, err == nil
}

// Draw renders the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width == 0 {
		return
	}
	y := 4
	line := func(s string) {
		ebitenutil.DebugPrintAt(screen, s, offsetX+6, y)
		y += hudLineHeight
	}
	line(h.sim.Name())
	if s, ok := h.sim.(statusProvider); ok {
		line(s.Status())
	}
	y += hudLineHeight / 2
	for i, ctrl := range h.controls {
		cursor := "  "
		if i == h.selected {
			cursor = "> "
		}
		v, ok := h.value(ctrl.Key)
		val := "--"
		if ok {
			val = strconv.FormatFloat(v, 'f', -1, 64)
		}
		line(fmt.Sprintf("%s%-12s %s", cursor, ctrl.Label, val))
	}
	y += hudLineHeight / 2
	line("space pause  n step")
	line("r reset  s reseed")
	line("click ignite  e relief")
}
