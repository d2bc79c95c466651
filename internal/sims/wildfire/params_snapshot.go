package wildfire

import (
	"strconv"

	"wildfire/internal/core"
)

// Parameters reports the active configuration grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	t := w.cfg.Terrain
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name:    "Spread",
			Summary: "ratio = r0 * slope factor; above thresh_up ignites fully, above thresh_down smoulders",
			Params: []core.Parameter{
				floatParam("r0", "Base spread rate", p.R0),
				floatParam("thresh_up", "Full ignition threshold", p.ThreshUp),
				floatParam("thresh_down", "Smoulder threshold", p.ThreshDown),
				floatParam("thresh_wind", "Wind threshold (unused)", p.ThreshWind),
				floatParam("slope_run", "Cell spacing", p.SlopeRun),
				floatParam("slope_coeff", "Slope coefficient", p.SlopeCoeff),
				intParam("hold_ticks", "Ticks per burn stage", p.HoldTicks),
			},
		},
		{
			Name: "Terrain",
			Params: []core.Parameter{
				floatParam("relief", "Relief", t.Relief),
				intParam("noise_cell", "Noise cell", t.NoiseCell),
				intParam("octaves", "Octaves", t.Octaves),
				intParam("lake_count", "Lake count", t.LakeCount),
				intParam("lake_radius_min", "Lake radius min", t.LakeRadiusMin),
				intParam("lake_radius_max", "Lake radius max", t.LakeRadiusMax),
				floatParam("rock_chance", "Rock chance", t.RockChance),
				floatParam("forest_chance", "Forest chance", t.ForestChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

var parameterControls = []core.ParameterControl{
	{Key: "r0", Label: "R0", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 4, HasMin: true, HasMax: true},
	{Key: "thresh_up", Label: "Thresh up", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 4, HasMin: true, HasMax: true},
	{Key: "thresh_down", Label: "Thresh down", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 4, HasMin: true, HasMax: true},
	{Key: "slope_coeff", Label: "Slope coeff", Type: core.ParamTypeFloat, Step: 0.005, Min: 0, Max: 0.5, HasMin: true, HasMax: true},
	{Key: "hold_ticks", Label: "Hold ticks", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: 16, HasMin: true, HasMax: true},
}

// ParameterControls lists the spread constants adjustable at runtime.
func (w *World) ParameterControls() []core.ParameterControl {
	out := make([]core.ParameterControl, len(parameterControls))
	copy(out, parameterControls)
	return out
}

func controlFor(key string) (core.ParameterControl, bool) {
	for _, c := range parameterControls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetFloatParameter updates a floating point spread constant. Values are
// clamped to the control bounds and the thresholds are kept ordered.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	p := w.cfg.Params
	switch key {
	case "r0":
		p.R0 = value
	case "thresh_up":
		p.ThreshUp = value
		if p.ThreshDown > value {
			p.ThreshDown = value
		}
	case "thresh_down":
		p.ThreshDown = value
		if p.ThreshUp < value {
			p.ThreshUp = value
		}
	case "slope_coeff":
		p.SlopeCoeff = value
	}
	return w.applyParams(p)
}

// SetIntParameter updates an integer spread constant.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := controlFor(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	p := w.cfg.Params
	switch key {
	case "hold_ticks":
		p.HoldTicks = value
	}
	return w.applyParams(p)
}

func (w *World) applyParams(p Params) bool {
	if err := w.grid.SetParams(p); err != nil {
		return false
	}
	w.cfg.Params = p
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
