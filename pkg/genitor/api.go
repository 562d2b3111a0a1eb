package genitor

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"genitor/internal/evolve"
	"genitor/internal/model"
	"genitor/internal/problem"
	"genitor/internal/selection"
	"genitor/internal/stats"
	"genitor/internal/storage"
)

const (
	defaultResultsDir = "results"
	defaultDBPath     = "genitor.db"

	topIndividualCount = 5
)

type Options struct {
	StoreKind  string
	DBPath     string
	ResultsDir string
}

type Client struct {
	store       storage.Store
	resultsDir  string
	initialized bool
}

type RunRequest struct {
	RunID          string
	Problem        string
	Dimension      int
	PopulationSize int
	Generations    int
	Seed           int64
	Selection      string
	EliteCount     int
	SubsetSize     int
	CrossoverRate  float64
	MutationRate   float64
	MutationSigma  float64
}

type RunSummary struct {
	RunID            string
	ArtifactsDir     string
	Evaluations      int
	FinalBestFitness float64
	BestByGeneration []float64
}

type BenchRequest struct {
	Problem        string
	Dimension      int
	PopulationSize int
	Generations    int
	Selections     []string
	Seeds          []int64
	EliteCount     int
	SubsetSize     int
	CrossoverRate  float64
	MutationRate   float64
	MutationSigma  float64
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}
	resultsDir := opts.ResultsDir
	if resultsDir == "" {
		resultsDir = defaultResultsDir
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	return &Client{store: store, resultsDir: resultsDir}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.ensureStore(ctx)
}

func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.Problem == "" {
		req.Problem = "sphere"
	}
	if req.Dimension <= 0 {
		req.Dimension = 8
	}
	if req.PopulationSize <= 0 {
		req.PopulationSize = 50
	}
	if req.Generations <= 0 {
		req.Generations = 60
	}
	if req.Selection == "" {
		req.Selection = "rank"
	}
	if req.EliteCount <= 0 {
		req.EliteCount = 1
	}
	if req.CrossoverRate <= 0 {
		req.CrossoverRate = 0.5
	}
	if req.MutationRate <= 0 {
		req.MutationRate = 0.15
	}
	if req.MutationSigma <= 0 {
		req.MutationSigma = 0.25
	}
	if req.RunID == "" {
		req.RunID = fmt.Sprintf("%s-%s", req.Problem, uuid.NewString())
	}

	prob, err := problem.FromName(req.Problem, req.Dimension)
	if err != nil {
		return RunSummary{}, err
	}
	selector, err := selection.FromName[*evolve.Individual](req.Selection, rand.New(rand.NewSource(req.Seed+1000)), selection.Options{
		EliteCount: req.EliteCount,
		SubsetSize: req.SubsetSize,
	})
	if err != nil {
		return RunSummary{}, err
	}

	engine, err := evolve.New(evolve.Config{
		Problem:        prob,
		Selector:       selector,
		PopulationSize: req.PopulationSize,
		EliteCount:     req.EliteCount,
		Generations:    req.Generations,
		Seed:           req.Seed,
		CrossoverRate:  req.CrossoverRate,
		MutationRate:   req.MutationRate,
		MutationSigma:  req.MutationSigma,
	})
	if err != nil {
		return RunSummary{}, err
	}

	result, err := engine.Run(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	now := time.Now().UTC()
	record := model.RunRecord{
		VersionedRecord:  model.VersionedRecord{SchemaVersion: storage.CurrentSchemaVersion, CodecVersion: storage.CurrentCodecVersion},
		ID:               req.RunID,
		CreatedAtUTC:     now.Format(time.RFC3339Nano),
		Problem:          req.Problem,
		Dimension:        req.Dimension,
		PopulationSize:   req.PopulationSize,
		Generations:      req.Generations,
		Seed:             req.Seed,
		Selection:        req.Selection,
		EliteCount:       req.EliteCount,
		SubsetSize:       req.SubsetSize,
		CrossoverRate:    req.CrossoverRate,
		MutationRate:     req.MutationRate,
		MutationSigma:    req.MutationSigma,
		FinalBestFitness: result.Best.Fitness(),
	}

	if err := c.ensureStore(ctx); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveRun(ctx, record); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveFitnessHistory(ctx, req.RunID, result.BestByGeneration); err != nil {
		return RunSummary{}, err
	}
	if err := c.store.SaveDiagnostics(ctx, req.RunID, result.Diagnostics); err != nil {
		return RunSummary{}, err
	}

	top := make([]stats.TopIndividual, 0, topIndividualCount)
	for i, ind := range result.FinalMembers {
		if i == topIndividualCount {
			break
		}
		top = append(top, stats.TopIndividual{
			Rank:    i + 1,
			ID:      ind.ID,
			Fitness: ind.Fitness(),
			Genes:   append([]float64(nil), ind.Genes...),
		})
	}

	runDir, err := stats.WriteRunArtifacts(c.resultsDir, stats.RunArtifacts{
		Config:           record,
		BestByGeneration: result.BestByGeneration,
		Diagnostics:      result.Diagnostics,
		FinalBestFitness: result.Best.Fitness(),
		TopIndividuals:   top,
	})
	if err != nil {
		return RunSummary{}, err
	}
	if err := stats.AppendRunIndex(c.resultsDir, stats.RunIndexEntry{
		RunID:            req.RunID,
		Problem:          req.Problem,
		Selection:        req.Selection,
		PopulationSize:   req.PopulationSize,
		Generations:      req.Generations,
		Seed:             req.Seed,
		EliteCount:       req.EliteCount,
		FinalBestFitness: result.Best.Fitness(),
		CreatedAtUTC:     record.CreatedAtUTC,
	}); err != nil {
		return RunSummary{}, err
	}

	return RunSummary{
		RunID:            req.RunID,
		ArtifactsDir:     filepath.Clean(runDir),
		Evaluations:      result.Evaluations,
		FinalBestFitness: result.Best.Fitness(),
		BestByGeneration: append([]float64(nil), result.BestByGeneration...),
	}, nil
}

// Bench runs every requested strategy across every seed without touching
// the store and aggregates the final best fitnesses per strategy.
func (c *Client) Bench(ctx context.Context, req BenchRequest) ([]stats.BenchmarkSummary, error) {
	if req.Problem == "" {
		req.Problem = "sphere"
	}
	if req.Dimension <= 0 {
		req.Dimension = 8
	}
	if req.PopulationSize <= 0 {
		req.PopulationSize = 50
	}
	if req.Generations <= 0 {
		req.Generations = 40
	}
	if len(req.Selections) == 0 {
		req.Selections = selection.Names()
	}
	if len(req.Seeds) == 0 {
		req.Seeds = []int64{1, 2, 3}
	}
	if req.EliteCount <= 0 {
		req.EliteCount = 1
	}
	if req.CrossoverRate <= 0 {
		req.CrossoverRate = 0.5
	}
	if req.MutationRate <= 0 {
		req.MutationRate = 0.15
	}
	if req.MutationSigma <= 0 {
		req.MutationSigma = 0.25
	}

	prob, err := problem.FromName(req.Problem, req.Dimension)
	if err != nil {
		return nil, err
	}

	summaries := make([]stats.BenchmarkSummary, 0, len(req.Selections))
	for _, name := range req.Selections {
		finals := make([]float64, 0, len(req.Seeds))
		for _, seed := range req.Seeds {
			selector, err := selection.FromName[*evolve.Individual](name, rand.New(rand.NewSource(seed+1000)), selection.Options{
				EliteCount: req.EliteCount,
				SubsetSize: req.SubsetSize,
			})
			if err != nil {
				return nil, err
			}
			engine, err := evolve.New(evolve.Config{
				Problem:        prob,
				Selector:       selector,
				PopulationSize: req.PopulationSize,
				EliteCount:     req.EliteCount,
				Generations:    req.Generations,
				Seed:           seed,
				CrossoverRate:  req.CrossoverRate,
				MutationRate:   req.MutationRate,
				MutationSigma:  req.MutationSigma,
			})
			if err != nil {
				return nil, err
			}
			result, err := engine.Run(ctx)
			if err != nil {
				return nil, err
			}
			finals = append(finals, result.Best.Fitness())
		}
		summary, err := stats.Aggregate(name, finals)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (c *Client) Runs(ctx context.Context) ([]model.RunRecord, error) {
	if err := c.ensureStore(ctx); err != nil {
		return nil, err
	}
	return c.store.ListRuns(ctx)
}

func (c *Client) FitnessHistory(ctx context.Context, runID string) ([]float64, error) {
	if runID == "" {
		return nil, errors.New("run id is required")
	}
	if err := c.ensureStore(ctx); err != nil {
		return nil, err
	}
	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("fitness history not found for run id: %s", runID)
	}
	return history, nil
}

func (c *Client) Diagnostics(ctx context.Context, runID string) ([]model.GenerationDiagnostics, error) {
	if runID == "" {
		return nil, errors.New("run id is required")
	}
	if err := c.ensureStore(ctx); err != nil {
		return nil, err
	}
	diagnostics, ok, err := c.store.GetDiagnostics(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("diagnostics not found for run id: %s", runID)
	}
	return diagnostics, nil
}

// LatestRunID resolves the most recently indexed run.
func (c *Client) LatestRunID(_ context.Context) (string, error) {
	entries, err := stats.ListRunIndex(c.resultsDir)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", errors.New("no runs available")
	}
	return entries[0].RunID, nil
}

func (c *Client) Export(runID, outDir string) (string, error) {
	dst, err := stats.ExportRunArtifacts(c.resultsDir, runID, outDir)
	if err != nil {
		return "", err
	}
	return filepath.Clean(dst), nil
}

func (c *Client) ensureStore(ctx context.Context) error {
	if c.initialized {
		return nil
	}
	if err := c.store.Init(ctx); err != nil {
		return err
	}
	c.initialized = true
	return nil
}
