package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// RunRecord is the persisted configuration and outcome of one engine run.
type RunRecord struct {
	VersionedRecord
	ID               string  `json:"id"`
	CreatedAtUTC     string  `json:"created_at_utc"`
	Problem          string  `json:"problem"`
	Dimension        int     `json:"dimension"`
	PopulationSize   int     `json:"population_size"`
	Generations      int     `json:"generations"`
	Seed             int64   `json:"seed"`
	Selection        string  `json:"selection"`
	EliteCount       int     `json:"elite_count"`
	SubsetSize       int     `json:"subset_size,omitempty"`
	CrossoverRate    float64 `json:"crossover_rate"`
	MutationRate     float64 `json:"mutation_rate"`
	MutationSigma    float64 `json:"mutation_sigma"`
	FinalBestFitness float64 `json:"final_best_fitness"`
}

// GenerationDiagnostics summarizes one generation of a run.
type GenerationDiagnostics struct {
	Generation      int     `json:"generation"`
	BestFitness     float64 `json:"best_fitness"`
	MeanFitness     float64 `json:"mean_fitness"`
	MinFitness      float64 `json:"min_fitness"`
	StdDevFitness   float64 `json:"stddev_fitness"`
	TotalFitness    float64 `json:"total_fitness"`
	DistinctParents int     `json:"distinct_parents"`
}

// FitnessHistory is the best-by-generation series of a run.
type FitnessHistory struct {
	VersionedRecord
	RunID            string    `json:"run_id"`
	BestByGeneration []float64 `json:"best_by_generation"`
}
