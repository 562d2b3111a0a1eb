package selection

import (
	"fmt"
	"math/rand"

	"genitor/internal/population"
	"genitor/internal/sampling"
)

// WeightedRoulette selects parent pairs with probability proportional to
// raw fitness. A chromosome whose fitness dominates the total dominates
// the draws in the same proportion; that is the point of the strategy,
// not a defect. Rank selection is the alternative when fitness scales are
// awkward.
type WeightedRoulette[C population.Chromosome] struct {
	rng     *rand.Rand
	sampler *sampling.Alias
}

// NewWeightedRoulette builds a fitness-proportional selector. All
// fitness values must be >= 0 with a positive total; Init fails otherwise.
func NewWeightedRoulette[C population.Chromosome](rng *rand.Rand) (*WeightedRoulette[C], error) {
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &WeightedRoulette[C]{rng: rng}, nil
}

func (w *WeightedRoulette[C]) Name() string {
	return "roulette"
}

func (w *WeightedRoulette[C]) NeedsSortedPopulation() bool {
	return false
}

// Init rebuilds the alias sampler from the fitness of every chromosome in
// population order. The sampler is replaced wholesale each generation,
// never mutated in place.
func (w *WeightedRoulette[C]) Init(_ Status, pop *population.Population[C]) error {
	if err := Prepare[C](w, pop); err != nil {
		return err
	}

	weights := make([]float64, pop.Len())
	for i := range weights {
		weights[i] = pop.At(i).Fitness()
	}
	sampler, err := sampling.NewAlias(weights, pop.TotalFitness())
	if err != nil {
		return fmt.Errorf("init roulette: %w", err)
	}
	w.sampler = sampler
	return nil
}

// Select draws two chromosomes with replacement, proportional to fitness.
func (w *WeightedRoulette[C]) Select(pop *population.Population[C]) ([]C, error) {
	if err := guard[C](w, pop); err != nil {
		return nil, err
	}
	if w.sampler == nil || w.sampler.Len() != pop.Len() {
		return nil, fmt.Errorf("select roulette: %w", ErrNotInitialized)
	}
	return []C{
		pop.At(w.sampler.Draw(w.rng)),
		pop.At(w.sampler.Draw(w.rng)),
	}, nil
}
