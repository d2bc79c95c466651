package wildfire

import "math"

// Vec2 is a planar direction from a burning cell toward a neighbor.
type Vec2 struct {
	X, Y float64
}

// Neighbor is one entry of the Moore neighborhood: an offset and the
// direction paired with it for the (future) wind term.
type Neighbor struct {
	DX, DY int
	Dir    Vec2
}

const diag = math.Sqrt2 / 2

// neighborhood is the fixed evaluation order, starting north-west. The
// south-east entry carries the north-west direction; no spread decision
// reads Dir until a wind term is added.
var neighborhood = [8]Neighbor{
	{DX: -1, DY: -1, Dir: Vec2{diag, -diag}},
	{DX: -1, DY: 0, Dir: Vec2{0, 1}},
	{DX: -1, DY: 1, Dir: Vec2{diag, diag}},
	{DX: 0, DY: 1, Dir: Vec2{1, 0}},
	{DX: 1, DY: 1, Dir: Vec2{diag, -diag}},
	{DX: 1, DY: 0, Dir: Vec2{-1, 0}},
	{DX: 1, DY: -1, Dir: Vec2{-diag, -diag}},
	{DX: 0, DY: -1, Dir: Vec2{0, -1}},
}

// Neighborhood returns the neighbor offsets in evaluation order.
func Neighborhood() []Neighbor {
	out := make([]Neighbor, len(neighborhood))
	copy(out, neighborhood[:])
	return out
}

// Slope returns the terrain slope from src to dst in degrees. Uphill is
// positive.
func (p Params) Slope(src, dst Cell) float64 {
	return math.Atan((dst.Elevation-src.Elevation)/p.SlopeRun) * 180 / math.Pi
}

// SlopeFactor converts a slope in degrees into a spread multiplier. Uphill
// grows exponentially; downhill decays toward one half.
func (p Params) SlopeFactor(slope float64) float64 {
	if slope < 0 {
		e := math.Exp(-p.SlopeCoeff * slope)
		return e / (2*e - 1)
	}
	return math.Exp(p.SlopeCoeff * slope)
}

// Ratio scores how readily fire crosses from src to dst. dir is accepted
// for the wind term, which is not modelled yet.
func (p Params) Ratio(src, dst Cell, dir Vec2) float64 {
	return p.R0 * p.SlopeFactor(p.Slope(src, dst))
}

// Classify maps a fire ratio onto the state a burnable neighbor enters.
// ok is false when the ratio is too low to ignite anything.
func (p Params) Classify(ratio float64) (next CellState, ok bool) {
	switch {
	case ratio > p.ThreshUp:
		return OnFire, true
	case ratio > p.ThreshDown:
		return Ignited, true
	}
	return Burnable, false
}
