package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"genitor/internal/problem"
	"genitor/internal/selection"
	"genitor/internal/storage"
	genitorapi "genitor/pkg/genitor"
)

const resultsDir = "results"

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "bench":
		return runBench(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "diagnostics":
		return runDiagnostics(ctx, args[1:])
	case "problems":
		return runProblems(ctx, args[1:])
	case "selectors":
		return runSelectors(ctx, args[1:])
	case "export":
		return runExport(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genitor.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := storage.NewStore(*storeKind, *dbPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = storage.CloseIfSupported(store)
	}()

	if err := store.Init(ctx); err != nil {
		return err
	}

	fmt.Printf("initialized store=%s\n", *storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	configPath := fs.String("config", "", "optional yaml run config")
	runID := fs.String("run-id", "", "run id (defaults to <problem>-<uuid>)")
	problemName := fs.String("problem", "sphere", "benchmark problem: "+strings.Join(problem.Names(), "|"))
	dimension := fs.Int("dimension", 8, "gene vector dimension")
	populationSize := fs.Int("population", 50, "population size")
	generations := fs.Int("generations", 60, "number of generations")
	seed := fs.Int64("seed", 0, "random seed")
	selectionName := fs.String("selection", "rank", "selection strategy: "+strings.Join(selection.Names(), "|"))
	eliteCount := fs.Int("elite-count", 1, "elite survivors per generation")
	subsetSize := fs.Int("subset-size", 0, "truncation breeding pool size")
	crossoverRate := fs.Float64("crossover-rate", 0.5, "uniform crossover rate")
	mutationRate := fs.Float64("mutation-rate", 0.15, "per-gene mutation rate")
	mutationSigma := fs.Float64("mutation-sigma", 0.25, "gaussian mutation sigma")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genitor.db", "sqlite database path")
	outDir := fs.String("results-dir", resultsDir, "artifacts directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	var req genitorapi.RunRequest
	if *configPath != "" {
		loaded, err := loadRunConfig(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	}
	// Explicit flags override the config file.
	if setFlags["run-id"] || req.RunID == "" {
		req.RunID = *runID
	}
	if setFlags["problem"] || req.Problem == "" {
		req.Problem = *problemName
	}
	if setFlags["dimension"] || req.Dimension == 0 {
		req.Dimension = *dimension
	}
	if setFlags["population"] || req.PopulationSize == 0 {
		req.PopulationSize = *populationSize
	}
	if setFlags["generations"] || req.Generations == 0 {
		req.Generations = *generations
	}
	if setFlags["seed"] {
		req.Seed = *seed
	}
	if setFlags["selection"] || req.Selection == "" {
		req.Selection = *selectionName
	}
	if setFlags["elite-count"] || req.EliteCount == 0 {
		req.EliteCount = *eliteCount
	}
	if setFlags["subset-size"] {
		req.SubsetSize = *subsetSize
	}
	if setFlags["crossover-rate"] || req.CrossoverRate == 0 {
		req.CrossoverRate = *crossoverRate
	}
	if setFlags["mutation-rate"] || req.MutationRate == 0 {
		req.MutationRate = *mutationRate
	}
	if setFlags["mutation-sigma"] || req.MutationSigma == 0 {
		req.MutationSigma = *mutationSigma
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: *storeKind, DBPath: *dbPath, ResultsDir: *outDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run %s finished: best=%.6f evaluations=%s artifacts=%s\n",
		summary.RunID, summary.FinalBestFitness, humanize.Comma(int64(summary.Evaluations)), summary.ArtifactsDir)
	return nil
}

func runBench(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	problemName := fs.String("problem", "sphere", "benchmark problem")
	dimension := fs.Int("dimension", 8, "gene vector dimension")
	populationSize := fs.Int("population", 50, "population size")
	generations := fs.Int("generations", 40, "number of generations")
	selections := fs.String("selections", strings.Join(selection.Names(), ","), "comma-separated selection strategies")
	seeds := fs.String("seeds", "1,2,3", "comma-separated seeds")
	if err := fs.Parse(args); err != nil {
		return err
	}

	seedValues, err := parseSeedList(*seeds)
	if err != nil {
		return err
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: "memory", ResultsDir: resultsDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	summaries, err := client.Bench(ctx, genitorapi.BenchRequest{
		Problem:        *problemName,
		Dimension:      *dimension,
		PopulationSize: *populationSize,
		Generations:    *generations,
		Selections:     splitList(*selections),
		Seeds:          seedValues,
	})
	if err != nil {
		return err
	}

	renderBenchTable(os.Stdout, summaries)
	fmt.Printf("benchmarked %s strategies x %s seeds\n",
		humanize.Comma(int64(len(summaries))), humanize.Comma(int64(len(seedValues))))
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genitor.db", "sqlite database path")
	limit := fs.Int("limit", 20, "maximum runs to show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *limit <= 0 {
		return fmt.Errorf("limit must be > 0")
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: *storeKind, DBPath: *dbPath, ResultsDir: resultsDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	runs, err := client.Runs(ctx)
	if err != nil {
		return err
	}
	if len(runs) > *limit {
		runs = runs[:*limit]
	}
	renderRunsTable(os.Stdout, runs)
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genitor.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: *storeKind, DBPath: *dbPath, ResultsDir: resultsDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := resolveRunID(ctx, client, *runID, *latest)
	if err != nil {
		return err
	}
	history, err := client.FitnessHistory(ctx, id)
	if err != nil {
		return err
	}
	for i, best := range history {
		fmt.Printf("gen %d: best=%.6f\n", i+1, best)
	}
	return nil
}

func runDiagnostics(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("diagnostics", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	storeKind := fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite")
	dbPath := fs.String("db-path", "genitor.db", "sqlite database path")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: *storeKind, DBPath: *dbPath, ResultsDir: resultsDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := resolveRunID(ctx, client, *runID, *latest)
	if err != nil {
		return err
	}
	diagnostics, err := client.Diagnostics(ctx, id)
	if err != nil {
		return err
	}
	renderDiagnosticsTable(os.Stdout, diagnostics)
	return nil
}

func runProblems(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, name := range problem.Names() {
		fmt.Println(name)
	}
	return nil
}

func runSelectors(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("selectors", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	for _, name := range selection.Names() {
		fmt.Println(name)
	}
	return nil
}

func runExport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	runID := fs.String("run-id", "", "run id")
	latest := fs.Bool("latest", false, "use the most recent run")
	outDir := fs.String("out", "exports", "export directory")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := genitorapi.New(genitorapi.Options{StoreKind: "memory", ResultsDir: resultsDir})
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
	}()

	id, err := resolveRunID(ctx, client, *runID, *latest)
	if err != nil {
		return err
	}
	dst, err := client.Export(id, *outDir)
	if err != nil {
		return err
	}
	fmt.Printf("exported %s to %s\n", id, dst)
	return nil
}

func resolveRunID(ctx context.Context, client *genitorapi.Client, runID string, latest bool) (string, error) {
	if runID != "" && latest {
		return "", fmt.Errorf("use either run id or latest")
	}
	if latest {
		return client.LatestRunID(ctx)
	}
	if runID == "" {
		return "", fmt.Errorf("run id or -latest is required")
	}
	return runID, nil
}

func parseSeedList(value string) ([]int64, error) {
	parts := splitList(value)
	if len(parts) == 0 {
		return nil, fmt.Errorf("at least one seed is required")
	}
	seeds := make([]int64, 0, len(parts))
	for _, part := range parts {
		seed, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed %q: %w", part, err)
		}
		seeds = append(seeds, seed)
	}
	return seeds, nil
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: genitorctl <init|run|bench|runs|fitness|diagnostics|problems|selectors|export> [flags]", msg)
}
