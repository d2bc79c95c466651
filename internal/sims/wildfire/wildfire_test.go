package wildfire

import (
	"errors"
	"slices"
	"testing"

	"wildfire/internal/core"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99
	return cfg
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Sims()["wildfire"]
	if !ok {
		t.Fatal("wildfire sim not registered")
	}
	sim := factory(map[string]string{"w": "20", "h": "10"})
	if sim.Name() != "wildfire" {
		t.Fatalf("name %q", sim.Name())
	}
	if got := sim.Size(); got != (core.Size{W: 20, H: 10}) {
		t.Fatalf("size %+v", got)
	}
	if len(sim.Cells()) != 200 {
		t.Fatalf("display buffer has %d cells", len(sim.Cells()))
	}
	if _, ok := sim.(core.Igniter); !ok {
		t.Fatal("wildfire sim should accept ignitions")
	}
}

func TestResetDeterministic(t *testing.T) {
	world := NewWithConfig(smallConfig())
	initial := append([]uint8(nil), world.Cells()...)
	initialElev := world.ElevationField()

	world.Cells()[0] = 0x7f
	world.Reset(0)
	if !slices.Equal(initial, world.Cells()) {
		t.Fatal("Reset with config seed not deterministic for display buffer")
	}
	if !slices.Equal(initialElev, world.ElevationField()) {
		t.Fatal("Reset with config seed not deterministic for elevation")
	}

	world.Reset(777)
	seeded := world.ElevationField()
	world.Reset(777)
	if !slices.Equal(seeded, world.ElevationField()) {
		t.Fatal("Reset with explicit seed not deterministic")
	}
	if slices.Equal(initialElev, seeded) {
		t.Fatal("different seeds should produce different terrain")
	}
}

func TestResetRecordsSeed(t *testing.T) {
	world := NewWithConfig(smallConfig())
	world.Reset(777)
	if world.Config().Seed != 777 {
		t.Fatalf("config seed %d after Reset(777)", world.Config().Seed)
	}
	if p, ok := world.Parameters().Lookup("seed"); !ok || p.Value != "777" {
		t.Fatalf("seed parameter %+v", p)
	}
	seeded := world.ElevationField()
	world.Reset(0)
	if !slices.Equal(seeded, world.ElevationField()) {
		t.Fatal("Reset(0) should rebuild from the last seed used")
	}
}

func TestNewWithConfigFallsBackOnUnusableParams(t *testing.T) {
	cfg := smallConfig()
	cfg.Params = Params{R0: 2}
	world := NewWithConfig(cfg)
	p := world.Grid().Params()
	if p.R0 != 2 || p.SlopeRun != DefaultParams().SlopeRun || p.HoldTicks != DefaultParams().HoldTicks {
		t.Fatalf("params %+v", p)
	}
	if !world.SetIntParameter("hold_ticks", 0) || world.Grid().Params().HoldTicks != 1 {
		t.Fatal("hold_ticks should clamp to 1")
	}
}

func TestResetClearsFire(t *testing.T) {
	world, err := NewWithTerrain(DefaultConfig(), FlatTerrain(6, 6, LandGrass, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := world.Ignite(3, 3); err != nil {
		t.Fatal(err)
	}
	world.Step()
	world.Reset(5)
	if world.HasIgnited() || world.Ticks() != 0 {
		t.Fatal("Reset should start a fresh grid")
	}
	if world.Census().Count(Burnable) != 36 {
		t.Fatalf("census after reset %v", world.Census())
	}
}

func TestWorldIgniteUpdatesDisplay(t *testing.T) {
	world, err := NewWithTerrain(DefaultConfig(), FlatTerrain(5, 5, LandForest, 3))
	if err != nil {
		t.Fatal(err)
	}
	if err := world.Ignite(2, 2); err != nil {
		t.Fatal(err)
	}
	state, land, _ := DecodeDisplay(world.Cells()[2*5+2])
	if state != OnFire || land != LandForest {
		t.Fatalf("display shows %v on land %d", state, land)
	}
	if !world.HasIgnited() {
		t.Fatal("world should report ignition")
	}

	world.Step()
	state, _, _ = DecodeDisplay(world.Cells()[1*5+1])
	if state != Ignited {
		t.Fatalf("display after step shows neighbor %v", state)
	}

	var oob *OutOfBoundsError
	if err := world.Ignite(9, 9); !errors.As(err, &oob) {
		t.Fatalf("expected OutOfBoundsError, got %v", err)
	}
}

func TestNewWithTerrainRejectsMismatch(t *testing.T) {
	bad := StaticTerrain{Land: [][]int{{0, 0}}, Elevation: [][]float64{{0}}}
	_, err := NewWithTerrain(DefaultConfig(), bad)
	var shape *ShapeMismatchError
	if !errors.As(err, &shape) {
		t.Fatalf("expected ShapeMismatchError, got %v", err)
	}
}

func TestDisplayShadesByElevation(t *testing.T) {
	terrain := FlatTerrain(4, 1, LandGrass, 0)
	for x := 0; x < 4; x++ {
		terrain.Elevation[x][0] = float64(x * 10)
	}
	world, err := NewWithTerrain(DefaultConfig(), terrain)
	if err != nil {
		t.Fatal(err)
	}
	var shades []int
	for _, v := range world.Cells() {
		_, _, shade := DecodeDisplay(v)
		shades = append(shades, shade)
	}
	if !slices.Equal(shades, []int{0, 1, 2, 3}) {
		t.Fatalf("shades %v", shades)
	}
	palette := world.Palette()
	if len(palette) != 128 {
		t.Fatalf("palette size %d", len(palette))
	}
	low, high := palette[world.Cells()[0]], palette[world.Cells()[3]]
	if int(high.G) <= int(low.G) {
		t.Fatalf("higher ground should render lighter: %v vs %v", low, high)
	}
}

func TestSetFloatParameter(t *testing.T) {
	world := NewWithConfig(smallConfig())

	if !world.SetFloatParameter("r0", 2.5) {
		t.Fatal("r0 should be adjustable")
	}
	if got := world.Grid().Params().R0; got != 2.5 {
		t.Fatalf("grid R0 = %v, want 2.5", got)
	}
	if !world.SetFloatParameter("r0", 50) {
		t.Fatal("expected setter to clamp values above max")
	}
	if got := world.Config().Params.R0; got != 4 {
		t.Fatalf("R0 should clamp to 4, got %v", got)
	}

	world.SetFloatParameter("thresh_down", 1.5)
	p := world.Config().Params
	if p.ThreshDown != 1.5 || p.ThreshUp < p.ThreshDown {
		t.Fatalf("thresholds out of order: %+v", p)
	}
	world.SetFloatParameter("thresh_up", 1.2)
	p = world.Config().Params
	if p.ThreshUp != 1.2 || p.ThreshDown > p.ThreshUp {
		t.Fatalf("thresholds out of order: %+v", p)
	}

	if world.SetFloatParameter("hold_ticks", 3) {
		t.Fatal("integer control must not accept float setter")
	}
	if world.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key should be rejected")
	}
	if !world.SetIntParameter("hold_ticks", 0) {
		t.Fatal("hold_ticks should be adjustable")
	}
	if got := world.Grid().Params().HoldTicks; got != 1 {
		t.Fatalf("hold ticks should clamp to 1, got %d", got)
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := NewWithConfig(smallConfig())
	world.SetFloatParameter("r0", 1.25)
	snap := world.Parameters()
	p, ok := snap.Lookup("r0")
	if !ok || p.Value != "1.25" || p.Type != core.ParamTypeFloat {
		t.Fatalf("r0 parameter %+v ok=%v", p, ok)
	}
	if p, ok := snap.Lookup("w"); !ok || p.Value != "32" {
		t.Fatalf("width parameter %+v", p)
	}
	for _, ctrl := range world.ParameterControls() {
		if _, ok := snap.Lookup(ctrl.Key); !ok {
			t.Fatalf("control %q missing from snapshot", ctrl.Key)
		}
	}
}

func TestElevationFieldMatchesGrid(t *testing.T) {
	world := NewWithConfig(smallConfig())
	field := world.ElevationField()
	g := world.Grid()
	for _, p := range [][2]int{{0, 0}, {5, 7}, {31, 23}} {
		c, err := g.Cell(p[0], p[1])
		if err != nil {
			t.Fatal(err)
		}
		if got := field[p[1]*g.Width()+p[0]]; got != c.Elevation {
			t.Fatalf("elevation at %v: field %v, cell %v", p, got, c.Elevation)
		}
	}
}

func TestStatusLine(t *testing.T) {
	world, err := NewWithTerrain(DefaultConfig(), FlatTerrain(5, 5, LandGrass, 0))
	if err != nil {
		t.Fatal(err)
	}
	if err := world.Ignite(2, 2); err != nil {
		t.Fatal(err)
	}
	world.Step()
	if got, want := world.Status(), "tick 1  burning 9  burned 9/25"; got != want {
		t.Fatalf("Status() = %q, want %q", got, want)
	}
}
