package stats

import (
	"math"
	"testing"
)

func TestAggregateKnownSeries(t *testing.T) {
	summary, err := Aggregate("rank", []float64{0.2, 0.4, 0.6})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if summary.Selection != "rank" || summary.Runs != 3 {
		t.Fatalf("unexpected summary header: %+v", summary)
	}
	if math.Abs(summary.Mean-0.4) > 1e-12 {
		t.Fatalf("mean: got %v want 0.4", summary.Mean)
	}
	if math.Abs(summary.Std-0.2) > 1e-12 {
		t.Fatalf("std: got %v want 0.2", summary.Std)
	}
	if summary.Min != 0.2 || summary.Max != 0.6 {
		t.Fatalf("min/max: got %v/%v want 0.2/0.6", summary.Min, summary.Max)
	}
}

func TestAggregateSingleRunHasZeroStd(t *testing.T) {
	summary, err := Aggregate("elite", []float64{0.7})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if summary.Std != 0 || summary.Mean != 0.7 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestAggregateRejectsEmptySeries(t *testing.T) {
	if _, err := Aggregate("elite", nil); err == nil {
		t.Fatal("expected error for empty series")
	}
}
