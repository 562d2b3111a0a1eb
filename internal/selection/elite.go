package selection

import (
	"fmt"

	"genitor/internal/population"
)

// Elite returns the top eliteCount chromosomes of the sorted population
// verbatim. No randomness: repeated Select calls on the same generation
// return the same chromosomes in the same order.
type Elite[C population.Chromosome] struct {
	eliteCount int
}

// NewElite builds an elite selector. eliteCount must be >= 1; whether it
// fits the population is checked against each population at Select time.
func NewElite[C population.Chromosome](eliteCount int) (*Elite[C], error) {
	if eliteCount < 1 {
		return nil, fmt.Errorf("invalid elite count: %d", eliteCount)
	}
	return &Elite[C]{eliteCount: eliteCount}, nil
}

func (e *Elite[C]) Name() string {
	return "elite"
}

func (e *Elite[C]) NeedsSortedPopulation() bool {
	return true
}

func (e *Elite[C]) Init(_ Status, pop *population.Population[C]) error {
	return Prepare[C](e, pop)
}

func (e *Elite[C]) Select(pop *population.Population[C]) ([]C, error) {
	if err := guard[C](e, pop); err != nil {
		return nil, err
	}
	if e.eliteCount > pop.Len() {
		return nil, fmt.Errorf("select elite: elite count %d exceeds population size %d", e.eliteCount, pop.Len())
	}

	elite := make([]C, e.eliteCount)
	for i := 0; i < e.eliteCount; i++ {
		elite[i] = pop.At(i)
	}
	return elite, nil
}
