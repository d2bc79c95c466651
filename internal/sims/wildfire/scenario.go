package wildfire

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ScenarioResult summarises one headless burn from a single ignition.
type ScenarioResult struct {
	Seed   int64
	Params Params

	IgnitionX, IgnitionY int

	TicksSimulated int
	LastActiveTick int
	PeakActive     int

	Burnable       int
	Burned         int
	BurnedFraction float64
}

// RunScenario generates terrain from cfg, ignites the burnable interior
// cell closest to the center and steps until no interior cell is burning
// or steps ticks have run.
func RunScenario(cfg Config, steps int) (ScenarioResult, error) {
	if err := cfg.Params.Validate(); err != nil {
		return ScenarioResult{Seed: cfg.Seed, Params: cfg.Params}, fmt.Errorf("seed %d: %w", cfg.Seed, err)
	}
	world := NewWithConfig(cfg)
	return burn(world, cfg, steps)
}

func burn(world *World, cfg Config, steps int) (ScenarioResult, error) {
	res := ScenarioResult{Seed: cfg.Seed, Params: cfg.Params}
	grid := world.Grid()
	res.Burnable = grid.Census().Count(Burnable)

	x, y, ok := nearestBurnable(grid, grid.Width()/2, grid.Height()/2)
	if !ok {
		return res, fmt.Errorf("seed %d: no burnable interior cell: %w", cfg.Seed, ErrNotBurnable)
	}
	if err := world.Ignite(x, y); err != nil {
		return res, fmt.Errorf("seed %d: ignite (%d,%d): %w", cfg.Seed, x, y, err)
	}
	res.IgnitionX, res.IgnitionY = x, y

	for tick := 1; tick <= steps; tick++ {
		world.Step()
		res.TicksSimulated = tick
		active := grid.InteriorCensus().Active()
		if active > res.PeakActive {
			res.PeakActive = active
		}
		if active == 0 {
			break
		}
		res.LastActiveTick = tick
	}

	census := grid.Census()
	res.Burned = census.Burned()
	if res.Burnable > 0 {
		res.BurnedFraction = float64(res.Burned) / float64(res.Burnable)
	}
	return res, nil
}

// nearestBurnable searches square rings around (cx, cy) for a burnable
// interior cell.
func nearestBurnable(g *Grid, cx, cy int) (int, int, bool) {
	limit := g.w
	if g.h > limit {
		limit = g.h
	}
	for r := 0; r <= limit; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := cx+dx, cy+dy
				if x < 1 || y < 1 || x >= g.w-1 || y >= g.h-1 {
					continue
				}
				if g.cells[y*g.w+x].State == Burnable {
					return x, y, true
				}
			}
		}
	}
	return 0, 0, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Sweep runs RunScenario for every combination of r0 and seed on a pool of
// workers. Each scenario owns its grid, so no state is shared between
// workers. Results are ordered by R0, then seed.
func Sweep(base Config, r0s []float64, seeds []int64, steps, workers int) ([]ScenarioResult, error) {
	type job struct {
		r0   float64
		seed int64
	}
	jobs := make([]job, 0, len(r0s)*len(seeds))
	for _, r0 := range r0s {
		for _, seed := range seeds {
			jobs = append(jobs, job{r0: r0, seed: seed})
		}
	}

	results := make([]ScenarioResult, len(jobs))
	var g errgroup.Group
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, j := range jobs {
		g.Go(func() error {
			cfg := base
			cfg.Seed = j.seed
			cfg.Params.R0 = j.r0
			res, err := RunScenario(cfg, steps)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		if results[a].Params.R0 != results[b].Params.R0 {
			return results[a].Params.R0 < results[b].Params.R0
		}
		return results[a].Seed < results[b].Seed
	})
	return results, nil
}

// SweepSummary aggregates the runs sharing one R0.
type SweepSummary struct {
	R0   float64
	Runs int

	MeanBurned float64
	StdBurned  float64
	MaxBurned  float64
	MinBurned  float64

	MeanLastActive float64
}

// SummarizeSweep groups results by R0 and reports burned-fraction
// statistics. The standard deviation of a single run is zero.
func SummarizeSweep(results []ScenarioResult) []SweepSummary {
	byR0 := map[float64][]ScenarioResult{}
	var order []float64
	for _, r := range results {
		if _, ok := byR0[r.Params.R0]; !ok {
			order = append(order, r.Params.R0)
		}
		byR0[r.Params.R0] = append(byR0[r.Params.R0], r)
	}
	sort.Float64s(order)

	out := make([]SweepSummary, 0, len(order))
	for _, r0 := range order {
		runs := byR0[r0]
		burned := make([]float64, len(runs))
		last := make([]float64, len(runs))
		for i, r := range runs {
			burned[i] = r.BurnedFraction
			last[i] = float64(r.LastActiveTick)
		}
		s := SweepSummary{
			R0:             r0,
			Runs:           len(runs),
			MaxBurned:      floats.Max(burned),
			MinBurned:      floats.Min(burned),
			MeanLastActive: stat.Mean(last, nil),
		}
		if len(burned) > 1 {
			s.MeanBurned, s.StdBurned = stat.MeanStdDev(burned, nil)
		} else {
			s.MeanBurned = burned[0]
		}
		out = append(out, s)
	}
	return out
}
