package domain

import (
	"time"

	"gonum.org/v1/gonum/mat"
)

// BuildResult holds the outcome of a corpus build.
type BuildResult struct {
	BasePath       string
	AmplifiedPath  string
	Fetched        bool
	Amplified      bool
	BaseBytes      int64
	AmplifiedBytes int64
	Repeat         int
	Duration       time.Duration
}

// TimingRow is one benchmark measurement as stored in the timing file.
// Times are in milliseconds.
type TimingRow struct {
	Threads   int
	Execution float64
	Total     float64
}

// TimingTable is a numeric table of at least three columns:
// thread count, execution time and total time.
type TimingTable struct {
	Data *mat.Dense
}

// Rows returns the number of rows in the table.
func (t *TimingTable) Rows() int {
	if t == nil || t.Data == nil {
		return 0
	}
	r, _ := t.Data.Dims()
	return r
}

// Cols returns the number of columns in the table.
func (t *TimingTable) Cols() int {
	if t == nil || t.Data == nil {
		return 0
	}
	_, c := t.Data.Dims()
	return c
}

// Column returns a copy of column j.
func (t *TimingTable) Column(j int) []float64 {
	return mat.Col(nil, j, t.Data)
}

// Row returns row i as a TimingRow.
func (t *TimingTable) Row(i int) TimingRow {
	return TimingRow{
		Threads:   int(t.Data.At(i, 0)),
		Execution: t.Data.At(i, 1),
		Total:     t.Data.At(i, 2),
	}
}

// Block is a contiguous slice of the corpus handed to one counting goroutine.
type Block struct {
	Index  int
	Start  int
	End    int
	Counts []int
}

// CountResult holds the outcome of one word-count run.
type CountResult struct {
	RunID          string
	Threads        int
	Words          []string
	Totals         []int
	Blocks         []Block
	BytesProcessed int64
	Execution      time.Duration
	Total          time.Duration
}

// TotalFor returns the total count for word, or 0 if it was not counted.
func (r CountResult) TotalFor(word string) int {
	for i, w := range r.Words {
		if w == word {
			return r.Totals[i]
		}
	}
	return 0
}

// TimingRow converts the result into the row appended to the timing file.
func (r CountResult) TimingRow() TimingRow {
	return TimingRow{
		Threads:   r.Threads,
		Execution: Milliseconds(r.Execution),
		Total:     Milliseconds(r.Total),
	}
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
