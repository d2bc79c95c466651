package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Igniter is implemented by sims that accept point ignitions from a host,
// typically a mouse click mapped to grid coordinates.
type Igniter interface {
	Ignite(x, y int) error
}

// PaletteProvider exposes a color table indexed by display cell values.
type PaletteProvider interface {
	Palette() []Color
}

// Color is a plain RGBA quadruple so hosts without image/color (terminals)
// can share the same palette.
type Color struct {
	R, G, B, A uint8
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists registered sims in lexical order.
func SimNames() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
