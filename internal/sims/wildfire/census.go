package wildfire

// Census holds a cell count per state.
type Census [stateCount]int

// Count returns the number of cells in state s.
func (c Census) Count(s CellState) int {
	if s >= stateCount {
		return 0
	}
	return c[s]
}

// Active counts cells that are still burning.
func (c Census) Active() int {
	return c[Ignited] + c[OnFire] + c[Extinguishing]
}

// Burned counts cells that have caught fire at some point.
func (c Census) Burned() int {
	return c.Active() + c[FullyExtinguished]
}

// Total counts all cells.
func (c Census) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
