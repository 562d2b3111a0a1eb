package selection

import (
	"errors"
	"fmt"

	"genitor/internal/population"
)

var (
	// ErrEmptyPopulation reports an Init or Select call against a nil or
	// zero-length population.
	ErrEmptyPopulation = errors.New("population must not be empty")
	// ErrUnsortedPopulation reports a Select call on an operator that
	// requires a sorted population when the population is not sorted.
	// The caller skipped Init or reordered the population behind the
	// operator's back.
	ErrUnsortedPopulation = errors.New("population must be sorted before selection")
	// ErrNotInitialized reports a Select call before Init for the current
	// population.
	ErrNotInitialized = errors.New("operator is not initialized for this population")
)

// Status carries run-level metadata into Init. The strategies in this
// package do not read it, but the contract threads it through so future
// strategies can react to run state.
type Status struct {
	Generation int
}

// Operator chooses parent chromosomes for one reproduction event. The
// enclosing loop calls Init once per generation, then Select repeatedly
// until the next generation is full. Init is where sorting and sampler
// construction happen; Select stays cheap.
type Operator[C population.Chromosome] interface {
	Name() string

	// NeedsSortedPopulation declares whether the strategy requires the
	// population ordered by descending fitness before use.
	NeedsSortedPopulation() bool

	// Init performs per-generation setup. When NeedsSortedPopulation is
	// true the population is sorted before any strategy-specific setup
	// runs, so rank and probability tables always observe post-sort order.
	Init(status Status, pop *population.Population[C]) error

	// Select returns the parents for one reproduction event. The result
	// length varies by strategy: elite returns its configured count, the
	// pairwise strategies return exactly two, possibly the same chromosome
	// twice. Callers must not assume a fixed length.
	Select(pop *population.Population[C]) ([]C, error)
}

// Prepare establishes an operator's Init precondition: it rejects nil or
// empty populations and sorts when the operator requires it. Every
// strategy calls it first from Init, so the sort-then-setup ordering is
// enforced in one place.
func Prepare[C population.Chromosome](op Operator[C], pop *population.Population[C]) error {
	if pop == nil || pop.Len() == 0 {
		return fmt.Errorf("init %s: %w", op.Name(), ErrEmptyPopulation)
	}
	if op.NeedsSortedPopulation() {
		pop.SortByFitness()
	}
	return nil
}

// guard checks the shared Select preconditions. A violation here is a
// caller bug, not a recoverable runtime condition.
func guard[C population.Chromosome](op Operator[C], pop *population.Population[C]) error {
	if pop == nil || pop.Len() == 0 {
		return fmt.Errorf("select %s: %w", op.Name(), ErrEmptyPopulation)
	}
	if op.NeedsSortedPopulation() && !pop.Sorted() {
		return fmt.Errorf("select %s: %w", op.Name(), ErrUnsortedPopulation)
	}
	return nil
}
