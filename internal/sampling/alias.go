package sampling

import (
	"errors"
	"fmt"
	"math/rand"
)

var (
	// ErrNoWeights reports a sampler built over an empty weight list.
	ErrNoWeights = errors.New("at least one weight is required")
	// ErrInvalidTotal reports a non-positive normalizing total.
	ErrInvalidTotal = errors.New("total weight must be > 0")
)

// Alias draws indices from a discrete weighted distribution using Walker's
// alias method: O(n) table construction, O(1) per draw. The table is
// immutable after construction; Draw frequency for index i converges to
// weights[i]/total.
type Alias struct {
	prob  []float64
	alias []int
}

// NewAlias builds the probability and alias tables from the given weights.
// total is the normalizing sum of the weights. Weights must be >= 0 and
// total must be > 0; an all-zero weight list therefore fails here, before
// any draw can happen.
func NewAlias(weights []float64, total float64) (*Alias, error) {
	n := len(weights)
	if n == 0 {
		return nil, ErrNoWeights
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTotal, total)
	}

	scaled := make([]float64, n)
	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weight must be >= 0: index %d has %v", i, w)
		}
		scaled[i] = w * float64(n) / total
		if scaled[i] < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	prob := make([]float64, n)
	alias := make([]int, n)
	for len(small) > 0 && len(large) > 0 {
		s := small[len(small)-1]
		small = small[:len(small)-1]
		l := large[len(large)-1]
		large = large[:len(large)-1]

		prob[s] = scaled[s]
		alias[s] = l
		scaled[l] -= 1 - scaled[s]
		if scaled[l] < 1 {
			small = append(small, l)
		} else {
			large = append(large, l)
		}
	}

	// Leftovers on either list sit at probability 1 up to floating-point
	// drift; finalize them as certain columns.
	for _, i := range large {
		prob[i] = 1
		alias[i] = i
	}
	for _, i := range small {
		prob[i] = 1
		alias[i] = i
	}

	return &Alias{prob: prob, alias: alias}, nil
}

// Len returns the number of indices the sampler was built over.
func (a *Alias) Len() int {
	return len(a.prob)
}

// Draw returns one index. rng must not be nil.
func (a *Alias) Draw(rng *rand.Rand) int {
	i := rng.Intn(len(a.prob))
	if rng.Float64() < a.prob[i] {
		return i
	}
	return a.alias[i]
}
