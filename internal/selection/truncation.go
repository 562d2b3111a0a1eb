package selection

import (
	"fmt"
	"math/rand"

	"genitor/internal/population"
)

// Truncation draws parent pairs uniformly from the top subsetSize
// chromosomes of the sorted population. Everything below the cutoff never
// reproduces.
type Truncation[C population.Chromosome] struct {
	subsetSize int
	rng        *rand.Rand
}

// NewTruncation builds a truncation selector over the top subsetSize
// chromosomes. subsetSize must be > 1: a subset of one would clone the
// champion forever.
func NewTruncation[C population.Chromosome](subsetSize int, rng *rand.Rand) (*Truncation[C], error) {
	if subsetSize <= 1 {
		return nil, fmt.Errorf("invalid subset size: %d", subsetSize)
	}
	if rng == nil {
		return nil, fmt.Errorf("random source is required")
	}
	return &Truncation[C]{subsetSize: subsetSize, rng: rng}, nil
}

func (t *Truncation[C]) Name() string {
	return "truncation"
}

func (t *Truncation[C]) NeedsSortedPopulation() bool {
	return true
}

func (t *Truncation[C]) Init(_ Status, pop *population.Population[C]) error {
	if err := Prepare[C](t, pop); err != nil {
		return err
	}
	if pop.Len() < t.subsetSize {
		return fmt.Errorf("init truncation: subset size %d exceeds population size %d", t.subsetSize, pop.Len())
	}
	return nil
}

// Select returns two independent uniform draws from the breeding pool.
// The same chromosome may be drawn twice.
func (t *Truncation[C]) Select(pop *population.Population[C]) ([]C, error) {
	if err := guard[C](t, pop); err != nil {
		return nil, err
	}
	if pop.Len() < t.subsetSize {
		return nil, fmt.Errorf("select truncation: subset size %d exceeds population size %d", t.subsetSize, pop.Len())
	}
	return []C{
		pop.At(t.rng.Intn(t.subsetSize)),
		pop.At(t.rng.Intn(t.subsetSize)),
	}, nil
}
