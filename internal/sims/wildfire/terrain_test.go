package wildfire

import (
	"slices"
	"testing"
)

func TestGeneratedTerrainShapeAndRange(t *testing.T) {
	tp := DefaultConfig().Terrain
	gen := GeneratedTerrain{W: 40, H: 30, Seed: 5, Params: tp}
	land, elev := gen.Terrain()
	if len(land) != 40 || len(elev) != 40 {
		t.Fatalf("outer size %d/%d", len(land), len(elev))
	}
	sawWater := false
	for x := range land {
		if len(land[x]) != 30 || len(elev[x]) != 30 {
			t.Fatalf("column %d has %d/%d cells", x, len(land[x]), len(elev[x]))
		}
		for y := range land[x] {
			if land[x][y] < LandGrass || land[x][y] > LandRock {
				t.Fatalf("land (%d,%d) = %d", x, y, land[x][y])
			}
			if land[x][y] == LandWater {
				sawWater = true
			}
			if elev[x][y] < 0 || elev[x][y] > tp.Relief {
				t.Fatalf("elevation (%d,%d) = %v outside [0,%v]", x, y, elev[x][y], tp.Relief)
			}
		}
	}
	if !sawWater {
		t.Fatal("expected at least one lake")
	}
	if _, err := NewGrid(land, elev, DefaultParams()); err != nil {
		t.Fatalf("generated terrain rejected: %v", err)
	}
}

func TestGeneratedTerrainDeterministic(t *testing.T) {
	tp := DefaultConfig().Terrain
	a1, e1 := GeneratedTerrain{W: 16, H: 16, Seed: 3, Params: tp}.Terrain()
	a2, e2 := GeneratedTerrain{W: 16, H: 16, Seed: 3, Params: tp}.Terrain()
	for x := range a1 {
		if !slices.Equal(a1[x], a2[x]) || !slices.Equal(e1[x], e2[x]) {
			t.Fatalf("column %d differs between identical seeds", x)
		}
	}
}

func TestLakesAreLevel(t *testing.T) {
	tp := DefaultConfig().Terrain
	tp.LakeCount = 1
	tp.LakeRadiusMin, tp.LakeRadiusMax = 4, 4
	land, elev := GeneratedTerrain{W: 24, H: 24, Seed: 11, Params: tp}.Terrain()
	level := -1.0
	for x := range land {
		for y := range land[x] {
			if land[x][y] != LandWater {
				continue
			}
			if level < 0 {
				level = elev[x][y]
				continue
			}
			if elev[x][y] != level {
				t.Fatalf("lake surface not level at (%d,%d): %v vs %v", x, y, elev[x][y], level)
			}
		}
	}
	if level < 0 {
		t.Fatal("lake not placed")
	}
}

func TestFlatTerrain(t *testing.T) {
	ft := FlatTerrain(3, 2, LandForest, 7)
	land, elev := ft.Terrain()
	if len(land) != 3 || len(land[0]) != 2 || land[2][1] != LandForest || elev[1][1] != 7 {
		t.Fatalf("flat terrain %+v", ft)
	}
}
