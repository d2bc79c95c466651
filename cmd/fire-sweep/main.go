package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strconv"
	"strings"

	"wildfire/internal/app"
	"wildfire/internal/sims/wildfire"
)

func main() {
	steps := flag.Int("steps", 400, "tick limit per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	r0List := flag.String("r0", "0.8,1,1.2,1.5,2", "comma separated base spread rates")
	seedCount := flag.Int("seeds", 8, "terrain seeds per spread rate")
	firstSeed := flag.Int64("seed", 1, "first terrain seed")
	var overrides app.KVList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{"w": "96", "h": "96"}
	for _, kv := range overrides {
		k, v, _ := strings.Cut(kv, "=")
		opts[k] = v
	}
	base := wildfire.FromMap(opts)

	r0s, err := parseFloats(*r0List)
	if err != nil {
		log.Fatalf("parse -r0: %v", err)
	}
	seeds := make([]int64, max(*seedCount, 1))
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	fmt.Printf("Sweeping %d spread rates x %d seeds on %dx%d (%d workers, %d steps)\n",
		len(r0s), len(seeds), base.Width, base.Height, *workers, *steps)

	results, err := wildfire.Sweep(base, r0s, seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("sweep: %v", err)
	}

	fmt.Printf("\n%6s %5s %10s %10s %10s %10s %12s\n", "r0", "runs", "mean", "std", "min", "max", "last tick")
	for _, s := range wildfire.SummarizeSweep(results) {
		fmt.Printf("%6.2f %5d %9.1f%% %9.1f%% %9.1f%% %9.1f%% %12.1f\n",
			s.R0, s.Runs, 100*s.MeanBurned, 100*s.StdBurned, 100*s.MinBurned, 100*s.MaxBurned, s.MeanLastActive)
	}
}

func parseFloats(list string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", list)
	}
	return out, nil
}
