package wildfire

import (
	"math"
	"testing"
)

const tolerance = 1e-5

func TestSlopeFormulas(t *testing.T) {
	p := DefaultParams()
	src := NewCell(LandGrass, 100)

	cases := []struct {
		name      string
		elevation float64
		slope     float64
	}{
		{"flat", 100, 0},
		{"uphill", 130, 45},
		{"downhill", 70, -45},
		{"gentle", 110, math.Atan(10.0/30.0) * 180 / math.Pi},
	}
	for _, tc := range cases {
		dst := NewCell(LandGrass, tc.elevation)
		slope := p.Slope(src, dst)
		if math.Abs(slope-tc.slope) > tolerance {
			t.Fatalf("%s: slope %f, want %f", tc.name, slope, tc.slope)
		}

		var factor float64
		if tc.slope >= 0 {
			factor = math.Exp(0.069 * tc.slope)
		} else {
			e := math.Exp(-0.069 * tc.slope)
			factor = e / (2*e - 1)
		}
		if got := p.SlopeFactor(slope); math.Abs(got-factor) > tolerance {
			t.Fatalf("%s: slope factor %f, want %f", tc.name, got, factor)
		}
		if got := p.Ratio(src, dst, Vec2{}); math.Abs(got-p.R0*factor) > tolerance {
			t.Fatalf("%s: ratio %f, want %f", tc.name, got, p.R0*factor)
		}
	}
}

func TestDownhillFactorStaysBelowOne(t *testing.T) {
	p := DefaultParams()
	for _, s := range []float64{-0.5, -5, -30, -89} {
		f := p.SlopeFactor(s)
		if f >= 1 || f <= 0.5 {
			t.Fatalf("slope %v: factor %v outside (0.5, 1)", s, f)
		}
	}
	if f := p.SlopeFactor(0); f != 1 {
		t.Fatalf("flat factor %v, want 1", f)
	}
}

func TestRatioIgnoresDirection(t *testing.T) {
	p := DefaultParams()
	src, dst := NewCell(LandGrass, 0), NewCell(LandGrass, 5)
	base := p.Ratio(src, dst, Vec2{})
	for _, n := range Neighborhood() {
		if got := p.Ratio(src, dst, n.Dir); got != base {
			t.Fatalf("direction %v changed ratio: %v vs %v", n.Dir, got, base)
		}
	}
}

func TestClassifyThresholds(t *testing.T) {
	p := DefaultParams()
	cases := []struct {
		ratio float64
		want  CellState
		ok    bool
	}{
		{2, OnFire, true},
		{1.1000001, OnFire, true},
		{1.1, Ignited, true},
		{1, Ignited, true},
		{0.99, Burnable, false},
		{0.5, Burnable, false},
	}
	for _, tc := range cases {
		got, ok := p.Classify(tc.ratio)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("Classify(%v) = %v,%v want %v,%v", tc.ratio, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNeighborhoodOrder(t *testing.T) {
	want := [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}}
	got := Neighborhood()
	if len(got) != len(want) {
		t.Fatalf("got %d neighbors", len(got))
	}
	for i, n := range got {
		if n.DX != want[i][0] || n.DY != want[i][1] {
			t.Fatalf("neighbor %d = (%d,%d), want %v", i, n.DX, n.DY, want[i])
		}
		if l := math.Hypot(n.Dir.X, n.Dir.Y); math.Abs(l-1) > tolerance {
			t.Fatalf("neighbor %d direction not unit length: %v", i, l)
		}
	}
	// The south-east entry repeats the north-west direction.
	if got[4].Dir != got[0].Dir {
		t.Fatalf("SE direction %v, expected copy of NW %v", got[4].Dir, got[0].Dir)
	}
	got[0].DX = 9
	if Neighborhood()[0].DX != -1 {
		t.Fatal("Neighborhood must return a copy")
	}
}

func TestUphillSpreadsHarder(t *testing.T) {
	// Elevation rises 10 per step in x: the x+1 column is uphill of the
	// source, the x-1 column downhill, the same column flat.
	const n = 5
	land := make([][]int, n)
	elev := make([][]float64, n)
	for x := 0; x < n; x++ {
		land[x] = make([]int, n)
		elev[x] = make([]float64, n)
		for y := 0; y < n; y++ {
			elev[x][y] = float64(10 * x)
		}
	}
	g, err := NewGrid(land, elev, DefaultParams())
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Ignite(2, 2); err != nil {
		t.Fatal(err)
	}
	g.Step()
	for y := 1; y <= 3; y++ {
		if s := mustState(t, g, 3, y); s != OnFire {
			t.Fatalf("uphill (3,%d) = %v, want on fire", y, s)
		}
		if s := mustState(t, g, 1, y); s != Burnable {
			t.Fatalf("downhill (1,%d) = %v, want burnable", y, s)
		}
	}
	for _, y := range []int{1, 3} {
		if s := mustState(t, g, 2, y); s != Ignited {
			t.Fatalf("level (2,%d) = %v, want ignited", y, s)
		}
	}
}
