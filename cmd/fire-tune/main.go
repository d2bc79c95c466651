package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"

	"wildfire/internal/app"
	"wildfire/internal/sims/wildfire"
)

func main() {
	steps := flag.Int("steps", 400, "number of ticks to simulate per sample")
	iters := flag.Int("iters", 10, "bisection steps to execute")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel scenario evaluations")
	seedCount := flag.Int("seeds", 6, "terrain seeds averaged per sample")
	firstSeed := flag.Int64("seed", 1337, "first terrain seed")
	target := flag.Float64("target", 0.5, "mean burned fraction that counts as a runaway fire")
	lo := flag.Float64("lo", 0.5, "lower bound of the r0 search")
	hi := flag.Float64("hi", 2.5, "upper bound of the r0 search")
	var overrides app.KVList
	flag.Var(&overrides, "set", "config override in key=value form (repeatable)")
	flag.Parse()

	opts := map[string]string{"w": "128", "h": "128"}
	for _, kv := range overrides {
		k, v, _ := strings.Cut(kv, "=")
		opts[k] = v
	}
	cfg := wildfire.FromMap(opts)

	seeds := make([]int64, max(*seedCount, 1))
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	baseline, err := wildfire.Sweep(cfg, []float64{cfg.Params.R0}, seeds, *steps, *workers)
	if err != nil {
		log.Fatalf("baseline: %v", err)
	}
	b := wildfire.SummarizeSweep(baseline)[0]
	fmt.Printf("Baseline: r0 %.3f burned %.1f%% (std %.1f%%), last active tick %.1f\n",
		b.R0, 100*b.MeanBurned, 100*b.StdBurned, b.MeanLastActive)

	r0, trace, err := wildfire.CriticalR0(cfg, seeds, *steps, *workers, *target, *lo, *hi, *iters)
	if err != nil {
		log.Fatalf("tune: %v", err)
	}

	fmt.Println("\nSamples:")
	for _, rec := range trace {
		mark := "below"
		if rec.Above {
			mark = "above"
		}
		fmt.Printf("  step %2d: r0=%.4f -> burned %.1f%% (%s)\n", rec.Step, rec.R0, 100*rec.MeanBurned, mark)
	}
	fmt.Printf("\nCritical r0 for %.0f%% burned: %.4f\n", 100*(*target), r0)
	p := cfg.Params
	fmt.Printf("  thresh_up=%.3f thresh_down=%.3f slope_coeff=%.3f hold_ticks=%d\n",
		p.ThreshUp, p.ThreshDown, p.SlopeCoeff, p.HoldTicks)
}
