package evolve

import "github.com/google/uuid"

// Individual is a real-vector candidate solution. It satisfies
// population.Chromosome through Fitness.
type Individual struct {
	ID      string
	Genes   []float64
	fitness float64
}

// NewIndividual wraps a gene vector with a fresh ID. The slice is owned
// by the individual after the call.
func NewIndividual(genes []float64) *Individual {
	return &Individual{ID: uuid.NewString(), Genes: genes}
}

// Fitness returns the score assigned by the last evaluation.
func (ind *Individual) Fitness() float64 {
	return ind.fitness
}

// SetFitness records the evaluation result.
func (ind *Individual) SetFitness(fitness float64) {
	ind.fitness = fitness
}

// Clone copies the genes and fitness under a fresh ID. Elite survivors
// are cloned into the next generation rather than aliased, so a later
// re-evaluation can never reach back into the previous one.
func (ind *Individual) Clone() *Individual {
	genes := make([]float64, len(ind.Genes))
	copy(genes, ind.Genes)
	return &Individual{ID: uuid.NewString(), Genes: genes, fitness: ind.fitness}
}
