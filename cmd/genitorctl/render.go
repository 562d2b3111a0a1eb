package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"

	"genitor/internal/model"
	"genitor/internal/stats"
)

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		t.SetStyle(table.StyleLight)
	} else {
		// Plain separators when output is piped or redirected.
		style := table.StyleDefault
		style.Options.DrawBorder = false
		t.SetStyle(style)
	}
	return t
}

func renderRunsTable(w io.Writer, runs []model.RunRecord) {
	t := newTable(w)
	t.AppendHeader(table.Row{"RUN ID", "CREATED", "PROBLEM", "SELECTION", "POP", "GENS", "SEED", "BEST"})
	for _, run := range runs {
		t.AppendRow(table.Row{
			run.ID,
			run.CreatedAtUTC,
			run.Problem,
			run.Selection,
			run.PopulationSize,
			run.Generations,
			run.Seed,
			fmt.Sprintf("%.6f", run.FinalBestFitness),
		})
	}
	t.Render()
}

func renderDiagnosticsTable(w io.Writer, diagnostics []model.GenerationDiagnostics) {
	t := newTable(w)
	t.AppendHeader(table.Row{"GEN", "BEST", "MEAN", "MIN", "STDDEV", "TOTAL", "PARENTS"})
	for _, d := range diagnostics {
		t.AppendRow(table.Row{
			d.Generation,
			fmt.Sprintf("%.6f", d.BestFitness),
			fmt.Sprintf("%.6f", d.MeanFitness),
			fmt.Sprintf("%.6f", d.MinFitness),
			fmt.Sprintf("%.6f", d.StdDevFitness),
			fmt.Sprintf("%.4f", d.TotalFitness),
			d.DistinctParents,
		})
	}
	t.Render()
}

func renderBenchTable(w io.Writer, summaries []stats.BenchmarkSummary) {
	t := newTable(w)
	t.AppendHeader(table.Row{"SELECTION", "RUNS", "MEAN", "STDDEV", "MIN", "MAX"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Selection,
			s.Runs,
			fmt.Sprintf("%.6f", s.Mean),
			fmt.Sprintf("%.6f", s.Std),
			fmt.Sprintf("%.6f", s.Min),
			fmt.Sprintf("%.6f", s.Max),
		})
	}
	t.Render()
}
