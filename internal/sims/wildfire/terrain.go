package wildfire

import (
	"math"

	"wildfire/internal/core"
)

// TerrainProvider supplies the initial per-cell terrain a Grid is built
// from. Both arrays are indexed [x][y] and must share their shape.
type TerrainProvider interface {
	Terrain() (land [][]int, elevation [][]float64)
}

// StaticTerrain serves fixed arrays, typically sampled by a host from its
// own terrain representation.
type StaticTerrain struct {
	Land      [][]int
	Elevation [][]float64
}

// Terrain implements TerrainProvider.
func (s StaticTerrain) Terrain() ([][]int, [][]float64) { return s.Land, s.Elevation }

// FlatTerrain returns a w by h terrain of a single land type at a constant
// elevation.
func FlatTerrain(w, h, land int, elevation float64) StaticTerrain {
	t := StaticTerrain{Land: make([][]int, w), Elevation: make([][]float64, w)}
	for x := 0; x < w; x++ {
		t.Land[x] = make([]int, h)
		t.Elevation[x] = make([]float64, h)
		for y := 0; y < h; y++ {
			t.Land[x][y] = land
			t.Elevation[x][y] = elevation
		}
	}
	return t
}

// GeneratedTerrain produces deterministic procedural terrain: layered value
// noise for elevation, lakes pooled in circular basins, sparse rock and a
// grass/forest mix everywhere else.
type GeneratedTerrain struct {
	W, H   int
	Seed   int64
	Params TerrainParams
}

// Terrain implements TerrainProvider.
func (t GeneratedTerrain) Terrain() ([][]int, [][]float64) {
	w, h := t.W, t.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	rng := core.NewRNG(t.Seed)
	elevation := t.heightmap(rng, w, h)
	land := make([][]int, w)
	for x := range land {
		land[x] = make([]int, h)
		for y := range land[x] {
			switch {
			case rng.Float64() < t.Params.RockChance:
				land[x][y] = LandRock
			case rng.Float64() < t.Params.ForestChance:
				land[x][y] = LandForest
			default:
				land[x][y] = LandGrass
			}
		}
	}
	t.pourLakes(rng, land, elevation)
	return land, elevation
}

func (t GeneratedTerrain) heightmap(rng *core.RNG, w, h int) [][]float64 {
	elevation := make([][]float64, w)
	for x := range elevation {
		elevation[x] = make([]float64, h)
	}
	if w == 0 || h == 0 || t.Params.Relief == 0 {
		return elevation
	}

	spacing := t.Params.NoiseCell
	if spacing <= 0 {
		spacing = 1
	}
	octaves := t.Params.Octaves
	if octaves <= 0 {
		octaves = 1
	}
	amp, total := 1.0, 0.0
	for o := 0; o < octaves; o++ {
		lw := w/spacing + 2
		lh := h/spacing + 2
		lattice := make([]float64, lw*lh)
		for i := range lattice {
			lattice[i] = rng.Float64()
		}
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(spacing)
			ix := int(fx)
			tx := smoothstep(fx - float64(ix))
			for y := 0; y < h; y++ {
				fy := float64(y) / float64(spacing)
				iy := int(fy)
				ty := smoothstep(fy - float64(iy))
				a := lattice[iy*lw+ix]
				b := lattice[iy*lw+ix+1]
				c := lattice[(iy+1)*lw+ix]
				d := lattice[(iy+1)*lw+ix+1]
				top := a + (b-a)*tx
				bottom := c + (d-c)*tx
				elevation[x][y] += amp * (top + (bottom-top)*ty)
			}
		}
		total += amp
		amp *= 0.5
		if spacing > 1 {
			spacing /= 2
		}
	}
	for x := range elevation {
		for y := range elevation[x] {
			elevation[x][y] = elevation[x][y] / total * t.Params.Relief
		}
	}
	return elevation
}

// pourLakes floods circular patches with water levelled at the lowest
// elevation found inside each patch.
func (t GeneratedTerrain) pourLakes(rng *core.RNG, land [][]int, elevation [][]float64) {
	w := len(land)
	if w == 0 || t.Params.LakeCount <= 0 {
		return
	}
	h := len(land[0])
	if h == 0 {
		return
	}
	for l := 0; l < t.Params.LakeCount; l++ {
		cx := rng.IntN(w)
		cy := rng.IntN(h)
		radius := rng.Between(t.Params.LakeRadiusMin, t.Params.LakeRadiusMax)
		level := math.Inf(1)
		forEachInDisc(w, h, cx, cy, radius, func(x, y int) {
			level = math.Min(level, elevation[x][y])
		})
		forEachInDisc(w, h, cx, cy, radius, func(x, y int) {
			land[x][y] = LandWater
			elevation[x][y] = level
		})
	}
}

func forEachInDisc(w, h, cx, cy, radius int, fn func(x, y int)) {
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		x := cx + dx
		if x < 0 || x >= w {
			continue
		}
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			y := cy + dy
			if y < 0 || y >= h {
				continue
			}
			fn(x, y)
		}
	}
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}
