package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRunConfigMapsAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	payload := `run_id: demo-1
problem: rastrigin
dimension: 6
population_size: 40
generations: 25
seed: 9
selection: truncation
elite_count: 3
subset_size: 5
crossover_rate: 0.7
mutation_rate: 0.2
mutation_sigma: 0.3
`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load run config: %v", err)
	}
	if req.RunID != "demo-1" || req.Problem != "rastrigin" || req.Dimension != 6 {
		t.Fatalf("unexpected base fields: %+v", req)
	}
	if req.PopulationSize != 40 || req.Generations != 25 || req.Seed != 9 {
		t.Fatalf("unexpected run controls: %+v", req)
	}
	if req.Selection != "truncation" || req.EliteCount != 3 || req.SubsetSize != 5 {
		t.Fatalf("unexpected selection controls: %+v", req)
	}
	if req.CrossoverRate != 0.7 || req.MutationRate != 0.2 || req.MutationSigma != 0.3 {
		t.Fatalf("unexpected operator rates: %+v", req)
	}
}

func TestLoadRunConfigPartialLeavesZeroValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	payload := "problem: onemax\ngenerations: 12\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	req, err := loadRunConfig(path)
	if err != nil {
		t.Fatalf("load run config: %v", err)
	}
	if req.Problem != "onemax" || req.Generations != 12 {
		t.Fatalf("unexpected mapped fields: %+v", req)
	}
	if req.Selection != "" || req.PopulationSize != 0 || req.Seed != 0 {
		t.Fatalf("expected zero values for omitted fields, got %+v", req)
	}
}

func TestLoadRunConfigRejectsMissingFile(t *testing.T) {
	if _, err := loadRunConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadRunConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("problem: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := loadRunConfig(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}
