package timing

import (
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RowSummary is one timing row with its speedups against the baseline row.
type RowSummary struct {
	domain.TimingRow
	ExecutionSpeedup float64
	TotalSpeedup     float64
}

// SeriesStats describes one time series.
type SeriesStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	// Best is the thread count at which Min was measured.
	Best int
}

// Summary aggregates a timing table.
type Summary struct {
	Baseline  domain.TimingRow
	Rows      []RowSummary
	Execution SeriesStats
	Total     SeriesStats
}

// Summarize computes speedups relative to the single-thread row (or the
// first row when there is none) and per-series statistics.
func Summarize(table *domain.TimingTable) Summary {
	xs, execution, total := Series(table)

	baseline := 0
	for i, x := range xs {
		if x == 1 {
			baseline = i
			break
		}
	}

	s := Summary{
		Baseline:  table.Row(baseline),
		Rows:      make([]RowSummary, table.Rows()),
		Execution: seriesStats(xs, execution),
		Total:     seriesStats(xs, total),
	}
	for i := range s.Rows {
		row := table.Row(i)
		s.Rows[i] = RowSummary{
			TimingRow:        row,
			ExecutionSpeedup: ratio(s.Baseline.Execution, row.Execution),
			TotalSpeedup:     ratio(s.Baseline.Total, row.Total),
		}
	}
	return s
}

func seriesStats(xs, ys []float64) SeriesStats {
	mean, std := stat.MeanStdDev(ys, nil)
	if len(ys) < 2 {
		std = 0
	}
	return SeriesStats{
		Min:    floats.Min(ys),
		Max:    floats.Max(ys),
		Mean:   mean,
		StdDev: std,
		Best:   int(xs[floats.MinIdx(ys)]),
	}
}

func ratio(baseline, v float64) float64 {
	if v == 0 {
		return 0
	}
	return baseline / v
}
