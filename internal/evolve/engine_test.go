package evolve

import (
	"context"
	"math/rand"
	"testing"

	"genitor/internal/problem"
	"genitor/internal/selection"
)

func testConfig(t *testing.T, seed int64) Config {
	t.Helper()
	p, err := problem.FromName("sphere", 4)
	if err != nil {
		t.Fatalf("problem: %v", err)
	}
	selector, err := selection.NewRank[*Individual](rand.New(rand.NewSource(seed + 1000)))
	if err != nil {
		t.Fatalf("selector: %v", err)
	}
	return Config{
		Problem:        p,
		Selector:       selector,
		PopulationSize: 30,
		EliteCount:     2,
		Generations:    20,
		Seed:           seed,
		CrossoverRate:  0.5,
		MutationRate:   0.2,
		MutationSigma:  0.3,
	}
}

func TestNewValidatesConfig(t *testing.T) {
	base := testConfig(t, 1)

	cases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"missing problem", func(cfg *Config) { cfg.Problem = nil }},
		{"missing selector", func(cfg *Config) { cfg.Selector = nil }},
		{"zero population", func(cfg *Config) { cfg.PopulationSize = 0 }},
		{"zero elite count", func(cfg *Config) { cfg.EliteCount = 0 }},
		{"elite above population", func(cfg *Config) { cfg.EliteCount = cfg.PopulationSize + 1 }},
		{"zero generations", func(cfg *Config) { cfg.Generations = 0 }},
		{"crossover rate above 1", func(cfg *Config) { cfg.CrossoverRate = 1.5 }},
		{"negative mutation rate", func(cfg *Config) { cfg.MutationRate = -0.1 }},
		{"negative sigma", func(cfg *Config) { cfg.MutationSigma = -1 }},
	}

	for _, tc := range cases {
		cfg := base
		tc.mutate(&cfg)
		if _, err := New(cfg); err == nil {
			t.Fatalf("%s: expected configuration error", tc.name)
		}
	}
}

func TestRunBestFitnessNeverDecreasesWithElitism(t *testing.T) {
	engine, err := New(testConfig(t, 42))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.BestByGeneration) != 20 {
		t.Fatalf("expected 20 generations, got %d", len(result.BestByGeneration))
	}
	for i := 1; i < len(result.BestByGeneration); i++ {
		if result.BestByGeneration[i] < result.BestByGeneration[i-1] {
			t.Fatalf("best fitness decreased at generation %d: %v -> %v", i+1, result.BestByGeneration[i-1], result.BestByGeneration[i])
		}
	}
	if result.Evaluations != 20*30 {
		t.Fatalf("evaluations: got %d want %d", result.Evaluations, 20*30)
	}
	if result.Best == nil || result.Best.Fitness() != result.BestByGeneration[len(result.BestByGeneration)-1] {
		t.Fatal("final best must match the last generation's best")
	}
}

func TestRunIsDeterministicForAFixedSeed(t *testing.T) {
	runOnce := func() Result {
		engine, err := New(testConfig(t, 7))
		if err != nil {
			t.Fatalf("new engine: %v", err)
		}
		result, err := engine.Run(context.Background())
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return result
	}

	first := runOnce()
	second := runOnce()
	for i := range first.BestByGeneration {
		if first.BestByGeneration[i] != second.BestByGeneration[i] {
			t.Fatalf("generation %d diverged: %v vs %v", i+1, first.BestByGeneration[i], second.BestByGeneration[i])
		}
	}
	for i := range first.FinalMembers {
		a, b := first.FinalMembers[i], second.FinalMembers[i]
		for j := range a.Genes {
			if a.Genes[j] != b.Genes[j] {
				t.Fatalf("final member %d gene %d diverged", i, j)
			}
		}
	}
}

func TestRunRecordsDiagnostics(t *testing.T) {
	engine, err := New(testConfig(t, 3))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	result, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Diagnostics) != 20 {
		t.Fatalf("expected 20 diagnostics, got %d", len(result.Diagnostics))
	}
	for i, diag := range result.Diagnostics {
		if diag.Generation != i+1 {
			t.Fatalf("diagnostic %d has generation %d", i, diag.Generation)
		}
		if diag.BestFitness < diag.MeanFitness || diag.MeanFitness < diag.MinFitness {
			t.Fatalf("generation %d: best %v, mean %v, min %v out of order", diag.Generation, diag.BestFitness, diag.MeanFitness, diag.MinFitness)
		}
		if diag.TotalFitness <= 0 {
			t.Fatalf("generation %d: non-positive total fitness %v", diag.Generation, diag.TotalFitness)
		}
		if i < len(result.Diagnostics)-1 && diag.DistinctParents < 1 {
			t.Fatalf("generation %d: expected at least one distinct parent", diag.Generation)
		}
	}
}

func TestRunHonorsContextCancellation(t *testing.T) {
	engine, err := New(testConfig(t, 5))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Run(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}

func TestCloneProducesIndependentIndividual(t *testing.T) {
	original := NewIndividual([]float64{1, 2, 3})
	original.SetFitness(0.5)

	clone := original.Clone()
	if clone.ID == original.ID {
		t.Fatal("clone must get a fresh id")
	}
	if clone.Fitness() != 0.5 {
		t.Fatalf("clone fitness: got %v want 0.5", clone.Fitness())
	}
	clone.Genes[0] = 99
	if original.Genes[0] != 1 {
		t.Fatal("clone must not alias the original's genes")
	}
}
