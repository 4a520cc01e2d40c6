package timing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSeries(t *testing.T) {
	table, err := Parse(strings.NewReader("1 10 12\n2 6 9\n4 4 7\n"))
	require.NoError(t, err)
	require.Equal(t, 3, table.Rows())
	require.Equal(t, 3, table.Cols())

	xs, execution, total := Series(table)
	assert.Equal(t, []float64{1, 2, 4}, xs)
	assert.Equal(t, []float64{10, 6, 4}, execution)
	assert.Equal(t, []float64{12, 9, 7}, total)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		rows     int
		cols     int
		wantLine int
		wantErr  error
	}{
		{name: "Float times", input: "1 10.5 12.25\n8 1.5 3\n", rows: 2, cols: 3},
		{name: "Tabs and extra spaces", input: "1\t10   12\n  2 6 9  \n", rows: 2, cols: 3},
		{name: "Blank and comment lines", input: "# threads exec total\n\n1 10 12\n\n", rows: 1, cols: 3},
		{name: "Extra columns", input: "1 10 12 99\n2 6 9 98\n", rows: 2, cols: 4},
		{name: "No trailing newline", input: "1 10 12", rows: 1, cols: 3},
		{name: "Non-numeric row", input: "1 10 12\na b c\n", wantLine: 2},
		{name: "Too few columns", input: "1 10\n", wantLine: 1},
		{name: "Ragged rows", input: "1 10 12\n2 6 9 1\n", wantLine: 2},
		{name: "Trailing garbage in number", input: "1 10ms 12\n", wantLine: 1},
		{name: "NaN value", input: "1 nan 12\n", wantLine: 1, wantErr: ErrNotDecimal},
		{name: "Infinite value", input: "1 10 12\n2 Inf 9\n", wantLine: 2, wantErr: ErrNotDecimal},
		{name: "Underscore digits", input: "1_0 10 12\n", wantLine: 1, wantErr: ErrNotDecimal},
		{name: "Hex float", input: "1 0x1p3 12\n", wantLine: 1, wantErr: ErrNotDecimal},
		{name: "Out of range", input: "1 1e999 12\n", wantLine: 1},
		{name: "Exponent notation", input: "1 1.5e2 2E+2\n", rows: 1, cols: 3},
		{name: "Empty input", input: "", wantErr: ErrEmptyTable},
		{name: "Only comments", input: "# nothing\n", wantErr: ErrEmptyTable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			table, err := Parse(strings.NewReader(tc.input))
			switch {
			case tc.wantLine != 0:
				require.Error(t, err)
				assert.Nil(t, table)
				var parseErr *ParseError
				require.True(t, errors.As(err, &parseErr), "got %T: %v", err, err)
				assert.Equal(t, tc.wantLine, parseErr.Line)
				if tc.wantErr != nil {
					assert.ErrorIs(t, err, tc.wantErr)
				}
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, table)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.rows, table.Rows())
				assert.Equal(t, tc.cols, table.Cols())
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "time.txt"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(errors.Cause(err)))
}

func TestAppendThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time.txt")

	rows := []domain.TimingRow{
		{Threads: 1, Execution: 812.5, Total: 1300.25},
		{Threads: 2, Execution: 410, Total: 905},
		{Threads: 4, Execution: 220.125, Total: 702},
	}
	for _, row := range rows {
		require.NoError(t, Append(path, row))
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 812.5 1300.25\n2 410 905\n4 220.125 702\n", string(data))

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, len(rows), table.Rows())
	for i, row := range rows {
		assert.Equal(t, row, table.Row(i))
	}
}

func TestSummarize(t *testing.T) {
	table, err := Parse(strings.NewReader("2 6 9\n1 12 16\n4 4 8\n"))
	require.NoError(t, err)

	s := Summarize(table)
	assert.Equal(t, domain.TimingRow{Threads: 1, Execution: 12, Total: 16}, s.Baseline)
	require.Len(t, s.Rows, 3)
	assert.InDelta(t, 2.0, s.Rows[0].ExecutionSpeedup, 1e-9)
	assert.InDelta(t, 1.0, s.Rows[1].ExecutionSpeedup, 1e-9)
	assert.InDelta(t, 3.0, s.Rows[2].ExecutionSpeedup, 1e-9)
	assert.InDelta(t, 2.0, s.Rows[2].TotalSpeedup, 1e-9)

	assert.Equal(t, 4.0, s.Execution.Min)
	assert.Equal(t, 12.0, s.Execution.Max)
	assert.InDelta(t, 22.0/3, s.Execution.Mean, 1e-9)
	assert.Equal(t, 4, s.Execution.Best)
	assert.Equal(t, 4, s.Total.Best)
}

func TestSummarizeWithoutSingleThreadRow(t *testing.T) {
	table, err := Parse(strings.NewReader("2 8 10\n4 4 5\n"))
	require.NoError(t, err)

	s := Summarize(table)
	assert.Equal(t, 2, s.Baseline.Threads)
	assert.InDelta(t, 2.0, s.Rows[1].ExecutionSpeedup, 1e-9)
	assert.Equal(t, SeriesStats{Min: 4, Max: 8, Mean: 6, StdDev: s.Execution.StdDev, Best: 4}, s.Execution)
}
