package wildfire

import "strconv"

// Params holds the spread constants a Grid is tuned with.
type Params struct {
	// R0 is the base spread rate on flat ground.
	R0 float64
	// ThreshUp is the ratio above which a neighbor catches fully.
	ThreshUp float64
	// ThreshDown is the ratio above which a neighbor smoulders (Ignited).
	ThreshDown float64
	// ThreshWind is reserved for a wind term; the ratio ignores it.
	ThreshWind float64

	// SlopeRun is the horizontal distance between cell centers, in the
	// same unit as elevation.
	SlopeRun float64
	// SlopeCoeff scales the exponential slope response.
	SlopeCoeff float64

	// HoldTicks is how many ticks each burning state lasts.
	HoldTicks int
}

// DefaultParams returns the stock spread constants.
func DefaultParams() Params {
	return Params{
		R0:         1,
		ThreshUp:   1.1,
		ThreshDown: 0.99,
		ThreshWind: -0.99,
		SlopeRun:   30,
		SlopeCoeff: 0.069,
		HoldTicks:  2,
	}
}

// Validate rejects constants the spread rule cannot run with: the slope
// needs a positive cell spacing and every burn stage lasts at least a tick.
func (p Params) Validate() error {
	if !(p.SlopeRun > 0) {
		return &ParamsError{Field: "slope_run", Value: p.SlopeRun}
	}
	if p.HoldTicks < 1 {
		return &ParamsError{Field: "hold_ticks", Value: float64(p.HoldTicks)}
	}
	return nil
}

// orDefaults replaces the constants Validate rejects with their defaults.
func (p Params) orDefaults() Params {
	d := DefaultParams()
	if !(p.SlopeRun > 0) {
		p.SlopeRun = d.SlopeRun
	}
	if p.HoldTicks < 1 {
		p.HoldTicks = d.HoldTicks
	}
	return p
}

// TerrainParams shapes the procedurally generated terrain.
type TerrainParams struct {
	// Relief is the elevation span of the generated heightmap.
	Relief float64
	// NoiseCell is the lattice spacing of the value noise, in cells.
	NoiseCell int
	// Octaves layered on top of each other, each at half the spacing.
	Octaves int

	LakeCount     int
	LakeRadiusMin int
	LakeRadiusMax int

	RockChance   float64
	ForestChance float64
}

// Config controls the wildfire simulation dimensions and tuning.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params  Params
	Terrain TerrainParams
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  160,
		Height: 120,
		Seed:   1337,
		Params: DefaultParams(),
		Terrain: TerrainParams{
			Relief:        120,
			NoiseCell:     24,
			Octaves:       3,
			LakeCount:     4,
			LakeRadiusMin: 3,
			LakeRadiusMax: 8,
			RockChance:    0.03,
			ForestChance:  0.45,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out of range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["r0"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.R0 = parsed
		}
	}
	if v, ok := cfg["thresh_up"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ThreshUp = parsed
		}
	}
	if v, ok := cfg["thresh_down"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ThreshDown = parsed
		}
	}
	if c.Params.ThreshUp < c.Params.ThreshDown {
		c.Params.ThreshUp = c.Params.ThreshDown
	}
	if v, ok := cfg["thresh_wind"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.ThreshWind = parsed
		}
	}
	if v, ok := cfg["slope_run"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.SlopeRun = parsed
		}
	}
	if v, ok := cfg["slope_coeff"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SlopeCoeff = parsed
		}
	}
	if v, ok := cfg["hold_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.HoldTicks = parsed
		}
	}
	if v, ok := cfg["relief"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.Relief = parsed
		}
	}
	if v, ok := cfg["noise_cell"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Terrain.NoiseCell = parsed
		}
	}
	if v, ok := cfg["octaves"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Terrain.Octaves = parsed
		}
	}
	if v, ok := cfg["lake_count"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.LakeCount = parsed
		}
	}
	if v, ok := cfg["lake_radius_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.LakeRadiusMin = parsed
		}
	}
	if v, ok := cfg["lake_radius_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Terrain.LakeRadiusMax = parsed
		}
	}
	if c.Terrain.LakeRadiusMax < c.Terrain.LakeRadiusMin {
		c.Terrain.LakeRadiusMax = c.Terrain.LakeRadiusMin
	}
	if v, ok := cfg["rock_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.RockChance = parsed
		}
	}
	if v, ok := cfg["forest_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Terrain.ForestChance = parsed
		}
	}
	return c
}
