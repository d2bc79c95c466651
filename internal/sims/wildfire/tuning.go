package wildfire

import "fmt"

// TuneRecord is one sample of the critical spread rate search.
type TuneRecord struct {
	Step       int
	R0         float64
	MeanBurned float64
	Above      bool
}

// CriticalR0 bisects the base spread rate between lo and hi for the value
// at which the mean burned fraction over seeds first reaches target. The
// burned fraction is assumed to grow with R0. Each sample is a Sweep over
// all seeds on the given number of workers.
func CriticalR0(base Config, seeds []int64, steps, workers int, target, lo, hi float64, iters int) (float64, []TuneRecord, error) {
	if lo >= hi {
		return 0, nil, fmt.Errorf("empty search range [%g, %g]", lo, hi)
	}
	if len(seeds) == 0 {
		seeds = []int64{base.Seed}
	}
	if iters <= 0 {
		iters = 8
	}

	var trace []TuneRecord
	for step := 1; step <= iters; step++ {
		mid := (lo + hi) / 2
		results, err := Sweep(base, []float64{mid}, seeds, steps, workers)
		if err != nil {
			return 0, trace, fmt.Errorf("sample r0=%g: %w", mid, err)
		}
		mean := SummarizeSweep(results)[0].MeanBurned
		above := mean >= target
		trace = append(trace, TuneRecord{Step: step, R0: mid, MeanBurned: mean, Above: above})
		if above {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2, trace, nil
}
