package selection

import (
	"errors"
	"math/rand"
	"testing"

	"genitor/internal/population"
)

type testChromosome struct {
	id      string
	fitness float64
}

func (c testChromosome) Fitness() float64 {
	return c.fitness
}

func newTestPopulation(fitnesses ...float64) *population.Population[testChromosome] {
	members := make([]testChromosome, 0, len(fitnesses))
	for i, fitness := range fitnesses {
		members = append(members, testChromosome{id: string(rune('a' + i)), fitness: fitness})
	}
	return population.New(members)
}

func TestPrepareRejectsEmptyPopulation(t *testing.T) {
	elite, err := NewElite[testChromosome](1)
	if err != nil {
		t.Fatalf("new elite: %v", err)
	}

	if err := elite.Init(Status{}, nil); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("expected ErrEmptyPopulation for nil population, got %v", err)
	}
	if err := elite.Init(Status{}, population.New[testChromosome](nil)); !errors.Is(err, ErrEmptyPopulation) {
		t.Fatalf("expected ErrEmptyPopulation for empty population, got %v", err)
	}
}

func TestInitSortsWhenStrategyRequiresIt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	operators := []Operator[testChromosome]{
		mustElite(t, 1),
		mustTruncation(t, 2, rng),
		mustRank(t, rng),
	}

	for _, op := range operators {
		if !op.NeedsSortedPopulation() {
			t.Fatalf("%s should require a sorted population", op.Name())
		}
		pop := newTestPopulation(3, 9, 5, 7)
		if err := op.Init(Status{Generation: 1}, pop); err != nil {
			t.Fatalf("init %s: %v", op.Name(), err)
		}
		if !pop.Sorted() {
			t.Fatalf("%s init left the population unsorted", op.Name())
		}
		for i := 1; i < pop.Len(); i++ {
			if pop.At(i-1).Fitness() < pop.At(i).Fitness() {
				t.Fatalf("%s init: fitness %v at %d below %v at %d", op.Name(), pop.At(i-1).Fitness(), i-1, pop.At(i).Fitness(), i)
			}
		}
	}
}

func TestRouletteDoesNotRequireSortedPopulation(t *testing.T) {
	roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("new roulette: %v", err)
	}
	if roulette.NeedsSortedPopulation() {
		t.Fatal("roulette should not require a sorted population")
	}

	pop := newTestPopulation(3, 9, 5, 7)
	if err := roulette.Init(Status{}, pop); err != nil {
		t.Fatalf("init roulette: %v", err)
	}
	if pop.Sorted() {
		t.Fatal("roulette init should not sort the population")
	}
}

func TestSelectOnUnsortedPopulationFailsLoudly(t *testing.T) {
	elite := mustElite(t, 1)
	pop := newTestPopulation(1, 2, 3)

	_, err := elite.Select(pop)
	if !errors.Is(err, ErrUnsortedPopulation) {
		t.Fatalf("expected ErrUnsortedPopulation, got %v", err)
	}
}

func TestSelectionSequenceIsReproducibleWithSeed(t *testing.T) {
	fitnesses := []float64{4, 1, 6, 2, 9, 3}

	runSelection := func(seed int64) []string {
		roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("new roulette: %v", err)
		}
		pop := newTestPopulation(fitnesses...)
		if err := roulette.Init(Status{}, pop); err != nil {
			t.Fatalf("init roulette: %v", err)
		}

		ids := make([]string, 0, 200)
		for i := 0; i < 100; i++ {
			pair, err := roulette.Select(pop)
			if err != nil {
				t.Fatalf("select %d: %v", i, err)
			}
			for _, parent := range pair {
				ids = append(ids, parent.id)
			}
		}
		return ids
	}

	first := runSelection(77)
	second := runSelection(77)
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("selection %d diverged: %s vs %s", i, first[i], second[i])
		}
	}
}

func mustElite(t *testing.T, eliteCount int) *Elite[testChromosome] {
	t.Helper()
	elite, err := NewElite[testChromosome](eliteCount)
	if err != nil {
		t.Fatalf("new elite: %v", err)
	}
	return elite
}

func mustTruncation(t *testing.T, subsetSize int, rng *rand.Rand) *Truncation[testChromosome] {
	t.Helper()
	truncation, err := NewTruncation[testChromosome](subsetSize, rng)
	if err != nil {
		t.Fatalf("new truncation: %v", err)
	}
	return truncation
}

func mustRank(t *testing.T, rng *rand.Rand) *Rank[testChromosome] {
	t.Helper()
	rank, err := NewRank[testChromosome](rng)
	if err != nil {
		t.Fatalf("new rank: %v", err)
	}
	return rank
}
