package stats

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// BenchmarkSummary aggregates the final best fitness of one strategy
// across seeds.
type BenchmarkSummary struct {
	Selection string  `json:"selection"`
	Runs      int     `json:"runs"`
	Mean      float64 `json:"mean"`
	Std       float64 `json:"std"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
}

// Aggregate summarizes a series of final best fitnesses for one strategy.
func Aggregate(selection string, finals []float64) (BenchmarkSummary, error) {
	if len(finals) == 0 {
		return BenchmarkSummary{}, fmt.Errorf("at least one run is required")
	}

	minimum, maximum := finals[0], finals[0]
	for _, value := range finals[1:] {
		if value < minimum {
			minimum = value
		}
		if value > maximum {
			maximum = value
		}
	}

	std := 0.0
	if len(finals) > 1 {
		std = stat.StdDev(finals, nil)
	}

	return BenchmarkSummary{
		Selection: selection,
		Runs:      len(finals),
		Mean:      stat.Mean(finals, nil),
		Std:       std,
		Min:       minimum,
		Max:       maximum,
	}, nil
}
