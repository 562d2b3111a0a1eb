package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	genitorapi "genitor/pkg/genitor"
)

// runConfig mirrors RunRequest for yaml run files. Zero values fall back
// to flag or engine defaults.
type runConfig struct {
	RunID          string  `yaml:"run_id"`
	Problem        string  `yaml:"problem"`
	Dimension      int     `yaml:"dimension"`
	PopulationSize int     `yaml:"population_size"`
	Generations    int     `yaml:"generations"`
	Seed           int64   `yaml:"seed"`
	Selection      string  `yaml:"selection"`
	EliteCount     int     `yaml:"elite_count"`
	SubsetSize     int     `yaml:"subset_size"`
	CrossoverRate  float64 `yaml:"crossover_rate"`
	MutationRate   float64 `yaml:"mutation_rate"`
	MutationSigma  float64 `yaml:"mutation_sigma"`
}

func loadRunConfig(path string) (genitorapi.RunRequest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return genitorapi.RunRequest{}, fmt.Errorf("failed to read run config: %w", err)
	}

	var cfg runConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return genitorapi.RunRequest{}, fmt.Errorf("failed to parse run config: %w", err)
	}

	return genitorapi.RunRequest{
		RunID:          cfg.RunID,
		Problem:        cfg.Problem,
		Dimension:      cfg.Dimension,
		PopulationSize: cfg.PopulationSize,
		Generations:    cfg.Generations,
		Seed:           cfg.Seed,
		Selection:      cfg.Selection,
		EliteCount:     cfg.EliteCount,
		SubsetSize:     cfg.SubsetSize,
		CrossoverRate:  cfg.CrossoverRate,
		MutationRate:   cfg.MutationRate,
		MutationSigma:  cfg.MutationSigma,
	}, nil
}
