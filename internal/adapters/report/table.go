package report

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/cheynewallace/tabby"
)

// WriteSummary prints a timing table with speedups and series statistics.
func WriteSummary(w io.Writer, table *domain.TimingTable) {
	s := timing.Summarize(table)

	t := tabby.NewCustom(newTabWriter(w))
	t.AddHeader("Threads", "Execution (ms)", "Total (ms)", "Exec speedup", "Total speedup")
	for _, row := range s.Rows {
		t.AddLine(
			row.Threads,
			formatMs(row.Execution),
			formatMs(row.Total),
			formatRatio(row.ExecutionSpeedup),
			formatRatio(row.TotalSpeedup),
		)
	}
	t.Print()

	fmt.Fprintf(w, "\nBaseline: %d thread(s)\n", s.Baseline.Threads)
	st := tabby.NewCustom(newTabWriter(w))
	st.AddHeader("Series", "Min (ms)", "Max (ms)", "Mean (ms)", "Std dev", "Best threads")
	for _, series := range []struct {
		name  string
		stats timing.SeriesStats
	}{
		{"Execution Time", s.Execution},
		{"Total Time", s.Total},
	} {
		st.AddLine(
			series.name,
			formatMs(series.stats.Min),
			formatMs(series.stats.Max),
			formatMs(series.stats.Mean),
			formatMs(series.stats.StdDev),
			series.stats.Best,
		)
	}
	st.Print()
}

// WriteCount prints the per-word totals of a count run and how the first two
// words compare.
func WriteCount(w io.Writer, result domain.CountResult) {
	t := tabby.NewCustom(newTabWriter(w))
	t.AddHeader("Word", "Occurrences")
	for i, word := range result.Words {
		t.AddLine(word, result.Totals[i])
	}
	t.Print()

	if len(result.Words) >= 2 {
		fmt.Fprintln(w, Compare(result.Words[0], result.Totals[0], result.Words[1], result.Totals[1]))
	}
}

// Compare describes how often word a occurs relative to word b.
func Compare(a string, na int, b string, nb int) string {
	relation := "the same as"
	switch {
	case na > nb:
		relation = "higher than"
	case na < nb:
		relation = "lower than"
	}
	return fmt.Sprintf("The total amount of occurrences of the word '%s' alone is %s the word '%s'", a, relation, b)
}

func formatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}

func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64) + "x"
}

func newTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
