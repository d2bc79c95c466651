package wildfire

import (
	"errors"
	"fmt"
)

// ErrNotBurnable is returned when igniting a cell that has no fuel left or
// never had any.
var ErrNotBurnable = errors.New("wildfire: cell cannot be ignited")

// ShapeMismatchError reports terrain inputs whose dimensions disagree.
type ShapeMismatchError struct {
	// Row is the first x index whose column lengths differ, or -1 when the
	// outer dimensions already disagree.
	Row        int
	LandW      int
	LandH      int
	ElevationW int
	ElevationH int
}

func (e *ShapeMismatchError) Error() string {
	if e.Row >= 0 {
		return fmt.Sprintf("wildfire: terrain shape mismatch at row %d: land %d cells, elevation %d cells",
			e.Row, e.LandH, e.ElevationH)
	}
	return fmt.Sprintf("wildfire: terrain shape mismatch: land %dx%d, elevation %dx%d",
		e.LandW, e.LandH, e.ElevationW, e.ElevationH)
}

// ParamsError reports a spread constant a Grid cannot run with.
type ParamsError struct {
	Field string
	Value float64
}

func (e *ParamsError) Error() string {
	return fmt.Sprintf("wildfire: invalid %s %g", e.Field, e.Value)
}

// OutOfBoundsError reports a coordinate outside the grid.
type OutOfBoundsError struct {
	X, Y int
	W, H int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("wildfire: cell (%d,%d) outside %dx%d grid", e.X, e.Y, e.W, e.H)
}
