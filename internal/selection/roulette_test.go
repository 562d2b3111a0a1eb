package selection

import (
	"errors"
	"math/rand"
	"testing"

	"genitor/internal/sampling"
)

func TestRouletteBiasesTowardHighFitness(t *testing.T) {
	roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(13)))
	if err != nil {
		t.Fatalf("new roulette: %v", err)
	}
	pop := newTestPopulation(100, 1, 1, 1)
	if err := roulette.Init(Status{}, pop); err != nil {
		t.Fatalf("init: %v", err)
	}

	const trials = 50_000
	dominantPicks := 0
	for i := 0; i < trials; i++ {
		pair, err := roulette.Select(pop)
		if err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		for _, parent := range pair {
			if parent.Fitness() == 100 {
				dominantPicks++
			}
		}
	}

	freq := float64(dominantPicks) / float64(2*trials)
	want := 100.0 / 103.0
	if freq < want-0.01 || freq > want+0.01 {
		t.Fatalf("dominant chromosome frequency %.4f outside %.4f±0.01", freq, want)
	}
}

func TestRouletteInitFailsOnZeroTotalFitness(t *testing.T) {
	roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(4)))
	if err != nil {
		t.Fatalf("new roulette: %v", err)
	}
	pop := newTestPopulation(0, 0, 0)

	if err := roulette.Init(Status{}, pop); !errors.Is(err, sampling.ErrInvalidTotal) {
		t.Fatalf("expected ErrInvalidTotal, got %v", err)
	}
}

func TestRouletteSelectBeforeInitFails(t *testing.T) {
	roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(6)))
	if err != nil {
		t.Fatalf("new roulette: %v", err)
	}
	pop := newTestPopulation(1, 2, 3)

	if _, err := roulette.Select(pop); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
}

func TestRouletteStaleSamplerIsRejected(t *testing.T) {
	roulette, err := NewWeightedRoulette[testChromosome](rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("new roulette: %v", err)
	}
	if err := roulette.Init(Status{}, newTestPopulation(1, 2, 3)); err != nil {
		t.Fatalf("init: %v", err)
	}

	grown := newTestPopulation(1, 2, 3, 4, 5)
	if _, err := roulette.Select(grown); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized for a stale sampler, got %v", err)
	}
}

func TestRouletteRequiresRandomSource(t *testing.T) {
	if _, err := NewWeightedRoulette[testChromosome](nil); err == nil {
		t.Fatal("expected error for nil random source")
	}
}
