package selection

import (
	"fmt"
	"math/rand"

	"genitor/internal/population"
)

// Options carries the per-strategy knobs the factory needs. Zero values
// fall back to the defaults below.
type Options struct {
	EliteCount int
	SubsetSize int
}

const (
	defaultEliteCount = 1
	defaultSubsetSize = 2
)

// FromName builds a selection operator by its registered name, applying
// defaults for unset options. Construction arguments are validated here,
// before any population is touched.
func FromName[C population.Chromosome](name string, rng *rand.Rand, opts Options) (Operator[C], error) {
	switch name {
	case "elite":
		eliteCount := opts.EliteCount
		if eliteCount == 0 {
			eliteCount = defaultEliteCount
		}
		return NewElite[C](eliteCount)
	case "truncation":
		subsetSize := opts.SubsetSize
		if subsetSize == 0 {
			subsetSize = defaultSubsetSize
		}
		return NewTruncation[C](subsetSize, rng)
	case "roulette":
		return NewWeightedRoulette[C](rng)
	case "rank":
		return NewRank[C](rng)
	default:
		return nil, fmt.Errorf("unsupported selection strategy: %s", name)
	}
}

// Names returns the registered strategy names in a stable order.
func Names() []string {
	return []string{"elite", "truncation", "roulette", "rank"}
}
