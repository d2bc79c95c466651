package wildfire

import "wildfire/internal/core"

const (
	displayStateMask  = 0x07
	displayLandShift  = 3
	displayLandMask   = 0x18
	displayShadeShift = 5
	displayShadeMask  = 0x60

	shadeBands = 4
)

var wildfirePalette = buildPalette()

// Palette exposes the color table indexed by Cells values.
func (w *World) Palette() []core.Color {
	return wildfirePalette
}

// DecodeDisplay splits a display value back into its parts.
func DecodeDisplay(v uint8) (state CellState, land int, shade int) {
	return CellState(v & displayStateMask), int(v&displayLandMask) >> displayLandShift, int(v&displayShadeMask) >> displayShadeShift
}

func encodeDisplayValue(c Cell, shade int) uint8 {
	land := c.LandType
	if land < 0 || land > LandRock {
		land = LandRock
	}
	v := uint8(c.State) & displayStateMask
	v |= uint8(land<<displayLandShift) & displayLandMask
	v |= uint8(shade<<displayShadeShift) & displayShadeMask
	return v
}

func buildPalette() []core.Color {
	palette := make([]core.Color, 128)
	for i := range palette {
		state, land, shade := DecodeDisplay(uint8(i))
		palette[i] = paletteColorFor(state, land, shade)
	}
	return palette
}

func paletteColorFor(state CellState, land, shade int) core.Color {
	// Higher ground renders lighter.
	lift := 0.78 + 0.12*float64(shade)

	switch state {
	case Ignited:
		return core.Color{R: 250, G: 190, B: 60, A: 255}
	case OnFire:
		return core.Color{R: 240, G: 80, B: 20, A: 255}
	case Extinguishing:
		return core.Color{R: 140, G: 40, B: 25, A: 255}
	case FullyExtinguished:
		return shadeColor(core.Color{R: 45, G: 40, B: 38, A: 255}, lift)
	}

	switch land {
	case LandGrass:
		return shadeColor(core.Color{R: 110, G: 170, B: 70, A: 255}, lift)
	case LandForest:
		return shadeColor(core.Color{R: 35, G: 110, B: 50, A: 255}, lift)
	case LandWater:
		return core.Color{R: 40, G: 90, B: 170, A: 255}
	default:
		return shadeColor(core.Color{R: 130, G: 125, B: 120, A: 255}, lift)
	}
}

func shadeColor(c core.Color, k float64) core.Color {
	scale := func(v uint8) uint8 {
		f := float64(v)*k + 0.5
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return core.Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

func (w *World) rebuildDisplay() {
	g := w.grid
	span := w.maxElevation - w.minElevation
	cells := w.display.Cells()
	for i := range g.cells {
		shade := 0
		if span > 0 {
			shade = int((g.cells[i].Elevation - w.minElevation) / span * shadeBands)
			if shade >= shadeBands {
				shade = shadeBands - 1
			}
		}
		cells[i] = encodeDisplayValue(g.cells[i], shade)
	}
}
