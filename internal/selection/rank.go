package selection

import (
	"fmt"
	"math/rand"

	"genitor/internal/population"
	"genitor/internal/sampling"
)

// Rank selects parent pairs with probability proportional to sorted
// position rather than raw fitness: the best of N chromosomes gets weight
// N, the worst weight 1. The pressure depends only on ordering, which
// dampens the pull of a runaway champion compared to WeightedRoulette.
type Rank[C population.Chromosome] struct {
	rng     *rand.Rand
	sampler *sampling.Alias
}

// NewRank builds a rank-proportional selector.
func NewRank[C population.Chromosome](rng *rand.Rand) (*Rank[C], error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &Rank[C]{rng: rng}, nil
}

func (r *Rank[C]) Name() string {
	return "rank"
}

func (r *Rank[C]) NeedsSortedPopulation() bool {
	return true
}

// Init sorts the population, then rebuilds the alias sampler over the
// rank weights N..1 with total N(N+1)/2.
func (r *Rank[C]) Init(_ Status, pop *population.Population[C]) error {
	if err := Prepare[C](r, pop); err != nil {
		return err
	}

	n := pop.Len()
	weights := make([]float64, n)
	for k := range weights {
		weights[k] = float64(n - k)
	}
	total := float64(n*(n+1)) / 2
	sampler, err := sampling.NewAlias(weights, total)
	if err != nil {
		return fmt.Errorf("init rank: %w", err)
	}
	r.sampler = sampler
	return nil
}

// Select draws two chromosomes with replacement, proportional to rank.
func (r *Rank[C]) Select(pop *population.Population[C]) ([]C, error) {
	if err := guard[C](r, pop); err != nil {
		return nil, err
	}
	if r.sampler == nil || r.sampler.Len() != pop.Len() {
		return nil, fmt.Errorf("select rank: %w", ErrNotInitialized)
	}
	return []C{
		pop.At(r.sampler.Draw(r.rng)),
		pop.At(r.sampler.Draw(r.rng)),
	}, nil
}
