package evolve

import (
	"context"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"genitor/internal/model"
	"genitor/internal/population"
	"genitor/internal/problem"
	"genitor/internal/selection"
)

// Config describes one generational run.
type Config struct {
	Problem        problem.Problem
	Selector       selection.Operator[*Individual]
	PopulationSize int
	EliteCount     int
	Generations    int
	Seed           int64
	CrossoverRate  float64
	MutationRate   float64
	MutationSigma  float64
}

// Result is the outcome of a completed run.
type Result struct {
	BestByGeneration []float64
	Diagnostics      []model.GenerationDiagnostics
	Evaluations      int
	FinalMembers     []*Individual
	Best             *Individual
}

// Engine drives the generational loop: evaluate, carry the elite, then
// breed offspring through the configured parent selector. Execution is
// single-threaded; the engine owns one RNG for seeding and breeding while
// selection strategies keep theirs.
type Engine struct {
	cfg      Config
	rng      *rand.Rand
	survivor *selection.Elite[*Individual]
}

// New validates the configuration eagerly and builds an engine.
func New(cfg Config) (*Engine, error) {
	if cfg.Problem == nil {
		return nil, fmt.Errorf("problem is required")
	}
	if cfg.Selector == nil {
		return nil, fmt.Errorf("selector is required")
	}
	if cfg.PopulationSize <= 0 {
		return nil, fmt.Errorf("population size must be > 0")
	}
	if cfg.EliteCount <= 0 || cfg.EliteCount > cfg.PopulationSize {
		return nil, fmt.Errorf("elite count must be in [1, population size]")
	}
	if cfg.Generations <= 0 {
		return nil, fmt.Errorf("generations must be > 0")
	}
	if cfg.CrossoverRate < 0 || cfg.CrossoverRate > 1 {
		return nil, fmt.Errorf("crossover rate must be in [0, 1]")
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		return nil, fmt.Errorf("mutation rate must be in [0, 1]")
	}
	if cfg.MutationSigma < 0 {
		return nil, fmt.Errorf("mutation sigma must be >= 0")
	}

	survivor, err := selection.NewElite[*Individual](cfg.EliteCount)
	if err != nil {
		return nil, err
	}
	return &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		survivor: survivor,
	}, nil
}

// Run executes the configured number of generations. Same seed, same
// config, same result.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	lo, hi := e.cfg.Problem.Bounds()
	members := e.seedPopulation(lo, hi)

	result := Result{
		BestByGeneration: make([]float64, 0, e.cfg.Generations),
		Diagnostics:      make([]model.GenerationDiagnostics, 0, e.cfg.Generations),
	}

	for gen := 1; gen <= e.cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", gen, err)
		}

		fitnesses := make([]float64, len(members))
		for i, ind := range members {
			ind.SetFitness(e.cfg.Problem.Evaluate(ind.Genes))
			fitnesses[i] = ind.Fitness()
			result.Evaluations++
		}

		pop := population.New(members)
		status := selection.Status{Generation: gen}

		if err := e.survivor.Init(status, pop); err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", gen, err)
		}
		elite, err := e.survivor.Select(pop)
		if err != nil {
			return Result{}, fmt.Errorf("generation %d: %w", gen, err)
		}

		distinctParents := 0
		if gen < e.cfg.Generations {
			next := make([]*Individual, 0, e.cfg.PopulationSize)
			for _, survivor := range elite {
				next = append(next, survivor.Clone())
			}

			if err := e.cfg.Selector.Init(status, pop); err != nil {
				return Result{}, fmt.Errorf("generation %d: %w", gen, err)
			}
			parentIDs := make(map[string]struct{})
			for len(next) < e.cfg.PopulationSize {
				parents, err := e.cfg.Selector.Select(pop)
				if err != nil {
					return Result{}, fmt.Errorf("generation %d: %w", gen, err)
				}
				p1, p2, err := parentPair(parents)
				if err != nil {
					return Result{}, fmt.Errorf("generation %d: %w", gen, err)
				}
				parentIDs[p1.ID] = struct{}{}
				parentIDs[p2.ID] = struct{}{}

				genes := UniformCrossover(p1.Genes, p2.Genes, e.cfg.CrossoverRate, e.rng)
				GaussianMutate(genes, e.cfg.MutationRate, e.cfg.MutationSigma, lo, hi, e.rng)
				next = append(next, NewIndividual(genes))
			}
			distinctParents = len(parentIDs)
			members = next
		} else {
			members = pop.Members()
		}

		best := pop.Best().Fitness()
		result.BestByGeneration = append(result.BestByGeneration, best)
		result.Diagnostics = append(result.Diagnostics, model.GenerationDiagnostics{
			Generation:      gen,
			BestFitness:     best,
			MeanFitness:     stat.Mean(fitnesses, nil),
			MinFitness:      pop.At(pop.Len() - 1).Fitness(),
			StdDevFitness:   sampleStdDev(fitnesses),
			TotalFitness:    pop.TotalFitness(),
			DistinctParents: distinctParents,
		})
	}

	result.FinalMembers = members
	result.Best = members[0]
	return result, nil
}

func (e *Engine) seedPopulation(lo, hi float64) []*Individual {
	members := make([]*Individual, e.cfg.PopulationSize)
	for i := range members {
		genes := make([]float64, e.cfg.Problem.Dimension())
		for j := range genes {
			genes[j] = lo + e.rng.Float64()*(hi-lo)
		}
		members[i] = NewIndividual(genes)
	}
	return members
}

// parentPair adapts a variable-length selector result to the two parents
// breeding needs: a single parent pairs with itself, longer results
// contribute their first two chromosomes.
func parentPair(parents []*Individual) (*Individual, *Individual, error) {
	switch len(parents) {
	case 0:
		return nil, nil, fmt.Errorf("selector returned no parents")
	case 1:
		return parents[0], parents[0], nil
	default:
		return parents[0], parents[1], nil
	}
}

func sampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	return stat.StdDev(values, nil)
}
