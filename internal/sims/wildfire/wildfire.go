package wildfire

import (
	"fmt"

	"wildfire/internal/core"
)

// World adapts a Grid to the core.Sim contract: it owns the terrain source,
// rebuilds the grid on Reset and keeps a display buffer for renderers.
type World struct {
	cfg     Config
	terrain TerrainProvider

	grid    *Grid
	display *core.ByteGrid

	minElevation float64
	maxElevation float64
}

// New returns a wildfire simulation over generated terrain using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a world over terrain generated from cfg. Spread
// constants that fail Params.Validate fall back to their defaults.
func NewWithConfig(cfg Config) *World {
	cfg.Params = cfg.Params.orDefaults()
	w := &World{cfg: cfg}
	w.Reset(0)
	return w
}

// NewWithTerrain returns a world over terrain supplied by the host. The
// terrain is validated once here; Reset rebuilds from the same source.
func NewWithTerrain(cfg Config, terrain TerrainProvider) (*World, error) {
	land, elevation := terrain.Terrain()
	grid, err := NewGrid(land, elevation, cfg.Params)
	if err != nil {
		return nil, fmt.Errorf("build terrain grid: %w", err)
	}
	cfg.Width, cfg.Height = grid.Width(), grid.Height()
	w := &World{cfg: cfg, terrain: terrain}
	w.install(grid)
	return w, nil
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.grid.Size() }

// Cells exposes the current display buffer.
func (w *World) Cells() []uint8 { return w.display.Cells() }

// Grid exposes the underlying automaton.
func (w *World) Grid() *Grid { return w.grid }

// Config returns the active configuration.
func (w *World) Config() Config { return w.cfg }

// HasIgnited reports whether the current grid was ever ignited.
func (w *World) HasIgnited() bool { return w.grid.HasIgnited() }

// Census counts cells per state on the current grid.
func (w *World) Census() Census { return w.grid.Census() }

// Ticks returns the number of ticks since the last Reset.
func (w *World) Ticks() int { return w.grid.Ticks() }

// Status summarises the fire for status lines.
func (w *World) Status() string {
	c := w.grid.Census()
	return fmt.Sprintf("tick %d  burning %d  burned %d/%d", w.grid.Ticks(), c.Active(), c.Burned(), c.Burned()+c.Count(Burnable))
}

// ElevationField returns elevations in display order (row-major, y*W+x).
func (w *World) ElevationField() []float64 {
	out := make([]float64, len(w.grid.cells))
	for i := range w.grid.cells {
		out[i] = w.grid.cells[i].Elevation
	}
	return out
}

// Reset rebuilds the grid from the terrain source. Generated terrain uses
// seed, or the current seed when seed is zero, and the seed used becomes
// the configured one. Host terrain ignores it.
func (w *World) Reset(seed int64) {
	terrain := w.terrain
	effective := w.cfg.Seed
	if terrain == nil {
		if seed != 0 {
			effective = seed
		}
		terrain = GeneratedTerrain{W: w.cfg.Width, H: w.cfg.Height, Seed: effective, Params: w.cfg.Terrain}
	}
	land, elevation := terrain.Terrain()
	grid, err := NewGrid(land, elevation, w.cfg.Params)
	if err != nil && w.grid != nil {
		// A host provider changed shape since NewWithTerrain; keep
		// running on the terrain we already have.
		return
	}
	w.cfg.Seed = effective
	w.install(grid)
}

func (w *World) install(grid *Grid) {
	w.grid = grid
	w.display = core.NewByteGrid(grid.Width(), grid.Height())
	w.minElevation, w.maxElevation = 0, 0
	for i, c := range grid.cells {
		if i == 0 || c.Elevation < w.minElevation {
			w.minElevation = c.Elevation
		}
		if i == 0 || c.Elevation > w.maxElevation {
			w.maxElevation = c.Elevation
		}
	}
	w.rebuildDisplay()
}

// Step advances the fire by one tick.
func (w *World) Step() {
	w.grid.Step()
	w.rebuildDisplay()
}

// Ignite sets the cell at (x, y) on fire.
func (w *World) Ignite(x, y int) error {
	if err := w.grid.Ignite(x, y); err != nil {
		return err
	}
	w.display.Set(x, y, encodeDisplayValue(w.grid.cells[y*w.grid.w+x], w.shadeAt(x, y)))
	return nil
}

func (w *World) shadeAt(x, y int) int {
	_, _, shade := DecodeDisplay(w.display.At(x, y))
	return shade
}

func init() {
	core.Register("wildfire", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
