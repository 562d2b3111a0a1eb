package evolve

import "math/rand"

// UniformCrossover builds a child that takes each gene from either parent
// with probability rate of swapping away from p1.
func UniformCrossover(p1, p2 []float64, rate float64, rng *rand.Rand) []float64 {
	child := make([]float64, len(p1))
	for i := range child {
		if rng.Float64() < rate {
			child[i] = p2[i]
		} else {
			child[i] = p1[i]
		}
	}
	return child
}

// BlendCrossover (BLX-alpha) samples each child gene uniformly from the
// parents' interval widened by alpha on both sides.
func BlendCrossover(p1, p2 []float64, alpha float64, rng *rand.Rand) []float64 {
	child := make([]float64, len(p1))
	for i := range child {
		lo, hi := p1[i], p2[i]
		if lo > hi {
			lo, hi = hi, lo
		}
		span := hi - lo
		lo -= alpha * span
		hi += alpha * span
		child[i] = lo + rng.Float64()*(hi-lo)
	}
	return child
}

// GaussianMutate perturbs each gene with probability rate by a normal
// step of the given sigma, clamping the result to [lo, hi].
func GaussianMutate(genes []float64, rate, sigma, lo, hi float64, rng *rand.Rand) {
	for i := range genes {
		if rng.Float64() >= rate {
			continue
		}
		genes[i] += rng.NormFloat64() * sigma
		if genes[i] < lo {
			genes[i] = lo
		}
		if genes[i] > hi {
			genes[i] = hi
		}
	}
}
