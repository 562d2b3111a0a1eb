package population

import "sort"

// Chromosome is the unit of selection. Strategies never look inside a
// chromosome; fitness is the only signal they act on.
type Chromosome interface {
	Fitness() float64
}

// Population holds one generation's chromosomes together with the state
// selection strategies need: the cached total fitness and whether the
// members are currently sorted by descending fitness. Members are fixed at
// construction; mutating a chromosome's fitness afterwards is outside the
// contract.
type Population[C Chromosome] struct {
	members []C
	total   float64
	sorted  bool
}

// New copies the given members into a fresh population and caches their
// total fitness. The caller keeps ownership of its slice.
func New[C Chromosome](members []C) *Population[C] {
	copied := make([]C, len(members))
	copy(copied, members)

	total := 0.0
	for _, member := range copied {
		total += member.Fitness()
	}
	return &Population[C]{members: copied, total: total}
}

// Len returns the number of chromosomes.
func (p *Population[C]) Len() int {
	return len(p.members)
}

// At returns the chromosome at index i in the current order.
func (p *Population[C]) At(i int) C {
	return p.members[i]
}

// Members returns a copy of the chromosomes in the current order.
func (p *Population[C]) Members() []C {
	copied := make([]C, len(p.members))
	copy(copied, p.members)
	return copied
}

// TotalFitness returns the sum of all member fitnesses, computed once at
// construction.
func (p *Population[C]) TotalFitness() float64 {
	return p.total
}

// Sorted reports whether the members are ordered by descending fitness.
func (p *Population[C]) Sorted() bool {
	return p.sorted
}

// SortByFitness orders members best-first. The sort is stable so that
// equal-fitness chromosomes keep their relative order, and idempotent:
// sorting an already-sorted population does nothing.
func (p *Population[C]) SortByFitness() {
	if p.sorted {
		return
	}
	sort.SliceStable(p.members, func(i, j int) bool {
		return p.members[i].Fitness() > p.members[j].Fitness()
	})
	p.sorted = true
}

// Best returns the top chromosome. Valid only after SortByFitness.
func (p *Population[C]) Best() C {
	return p.members[0]
}
