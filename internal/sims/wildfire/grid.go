package wildfire

import "wildfire/internal/core"

// Grid is the cellular automaton: a primary buffer that observers read and
// a staging buffer the next tick is assembled in.
//
// Cells are stored row-major, index y*W+x. Terrain input arrays are
// indexed [x][y].
type Grid struct {
	w, h int

	cells   []Cell
	staging []Cell

	params  Params
	ignited bool
	ticks   int
}

// NewGrid builds a grid from land classification and elevation arrays of
// identical shape. p must pass Validate.
func NewGrid(land [][]int, elevation [][]float64, p Params) (*Grid, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	w := len(land)
	h := 0
	if w > 0 {
		h = len(land[0])
	}
	if len(elevation) != w {
		eh := 0
		if len(elevation) > 0 {
			eh = len(elevation[0])
		}
		return nil, &ShapeMismatchError{Row: -1, LandW: w, LandH: h, ElevationW: len(elevation), ElevationH: eh}
	}
	for x := 0; x < w; x++ {
		if len(land[x]) != h || len(elevation[x]) != h {
			return nil, &ShapeMismatchError{
				Row:        x,
				LandW:      w,
				LandH:      len(land[x]),
				ElevationW: w,
				ElevationH: len(elevation[x]),
			}
		}
	}

	g := &Grid{
		w:       w,
		h:       h,
		cells:   make([]Cell, w*h),
		staging: make([]Cell, w*h),
		params:  p,
	}
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			g.cells[y*w+x] = NewCell(land[x][y], elevation[x][y])
		}
	}
	copy(g.staging, g.cells)
	return g, nil
}

// Width returns the extent of the first terrain index.
func (g *Grid) Width() int { return g.w }

// Height returns the extent of the second terrain index.
func (g *Grid) Height() int { return g.h }

// Size reports the grid dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// Params returns the spread constants in use.
func (g *Grid) Params() Params { return g.params }

// SetParams replaces the spread constants from the next tick on. Constants
// that fail Validate are refused and the current ones stay in effect.
func (g *Grid) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	g.params = p
	return nil
}

// HasIgnited reports whether any ignition ever succeeded on this grid.
func (g *Grid) HasIgnited() bool { return g.ignited }

// Ticks returns the number of committed ticks.
func (g *Grid) Ticks() int { return g.ticks }

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

func (g *Grid) checkBounds(x, y int) error {
	if !g.inBounds(x, y) {
		return &OutOfBoundsError{X: x, Y: y, W: g.w, H: g.h}
	}
	return nil
}

// Cell returns a copy of the committed cell at (x, y).
func (g *Grid) Cell(x, y int) (Cell, error) {
	if err := g.checkBounds(x, y); err != nil {
		return Cell{}, err
	}
	return g.cells[y*g.w+x], nil
}

// State returns the committed state at (x, y).
func (g *Grid) State(x, y int) (CellState, error) {
	c, err := g.Cell(x, y)
	if err != nil {
		return 0, err
	}
	return c.State, nil
}

// Ignite sets the cell at (x, y) on fire. The change lands in the primary
// buffer immediately and is picked up by the next tick. Burning cells are
// re-lit with a fresh decay counter; cells without fuel are refused.
func (g *Grid) Ignite(x, y int) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	c := &g.cells[y*g.w+x]
	if c.State.Terminal() {
		return ErrNotBurnable
	}
	c.SetState(OnFire)
	g.ignited = true
	return nil
}

// Step runs one full tick: Simulate followed by Update.
func (g *Grid) Step() {
	g.Simulate()
	g.Update()
}

// Simulate assembles the next tick in the staging buffer. Border cells are
// neither decayed nor used as spread sources.
//
// Decay runs over the whole interior before any spread is evaluated, so a
// cell lit during this tick starts its decay counter on the next one.
// Sources are read from the primary buffer and swept row by row (y, then
// x). Candidate neighbors are read from staging and must still be
// Burnable there, so when several sources reach one neighbor the first
// source in the sweep decides its state.
func (g *Grid) Simulate() {
	copy(g.staging, g.cells)
	if g.w < 3 || g.h < 3 {
		return
	}
	hold := g.params.HoldTicks
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			g.staging[y*g.w+x].Advance(hold)
		}
	}
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			if g.cells[y*g.w+x].State != OnFire {
				continue
			}
			g.spreadFrom(x, y)
		}
	}
}

func (g *Grid) spreadFrom(x, y int) {
	src := g.cells[y*g.w+x]
	for _, n := range neighborhood {
		dst := &g.staging[(y+n.DY)*g.w+(x+n.DX)]
		if dst.State != Burnable {
			continue
		}
		if next, ok := g.params.Classify(g.params.Ratio(src, *dst, n.Dir)); ok {
			dst.SetState(next)
		}
	}
}

// Update commits the staging buffer into the primary buffer.
func (g *Grid) Update() {
	copy(g.cells, g.staging)
	g.ticks++
}

// Census counts committed cells per state.
func (g *Grid) Census() Census {
	var c Census
	for i := range g.cells {
		c[g.cells[i].State]++
	}
	return c
}

// InteriorCensus counts committed cells per state, excluding the border.
// Border cells never decay, so a fire that reached the edge is only over
// once the interior count of burning cells drops to zero.
func (g *Grid) InteriorCensus() Census {
	var c Census
	for y := 1; y < g.h-1; y++ {
		for x := 1; x < g.w-1; x++ {
			c[g.cells[y*g.w+x].State]++
		}
	}
	return c
}
