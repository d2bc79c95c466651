package wildfire

// CellState is the combustion state of a single cell.
type CellState uint8

const (
	Burnable CellState = iota
	NotBurnable
	Ignited
	OnFire
	Extinguishing
	FullyExtinguished

	stateCount
)

var stateNames = [stateCount]string{
	Burnable:          "burnable",
	NotBurnable:       "not_burnable",
	Ignited:           "ignited",
	OnFire:            "on_fire",
	Extinguishing:     "extinguishing",
	FullyExtinguished: "fully_extinguished",
}

func (s CellState) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return "unknown"
}

// Burning reports whether the state is part of the decay sequence.
func (s CellState) Burning() bool {
	return s == Ignited || s == OnFire || s == Extinguishing
}

// Terminal reports whether no transition leaves the state under Step alone.
func (s CellState) Terminal() bool {
	return s == NotBurnable || s == FullyExtinguished
}

// Land classification values understood by NewCell.
const (
	LandGrass  = 0
	LandForest = 1
	LandWater  = 2
	LandRock   = 3
)

// Cell is one terrain sample. Elevation and LandType never change after
// construction; State and Held advance with the simulation.
type Cell struct {
	Elevation float64
	LandType  int

	State CellState
	// Held counts completed ticks spent in State.
	Held int
}

// NewCell classifies land into its initial state. Unknown classifications
// never burn.
func NewCell(landType int, elevation float64) Cell {
	c := Cell{Elevation: elevation, LandType: landType, State: NotBurnable}
	switch landType {
	case LandGrass, LandForest:
		c.State = Burnable
	}
	return c
}

// SetState enters s with a fresh decay counter.
func (c *Cell) SetState(s CellState) {
	c.State = s
	c.Held = 0
}

// Advance applies one tick of self-decay. A burning state is held for
// hold ticks before it moves on: Ignited and OnFire fall to Extinguishing,
// Extinguishing falls to FullyExtinguished.
func (c *Cell) Advance(hold int) {
	if !c.State.Burning() {
		return
	}
	c.Held++
	if c.Held < hold {
		return
	}
	switch c.State {
	case Ignited, OnFire:
		c.SetState(Extinguishing)
	case Extinguishing:
		c.SetState(FullyExtinguished)
	}
}
