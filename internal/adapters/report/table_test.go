package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSummary(t *testing.T) {
	table, err := timing.Parse(strings.NewReader("1 10 12\n2 6 9\n4 4 7\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	WriteSummary(&buf, table)
	out := buf.String()

	assert.Contains(t, out, "Threads")
	assert.Contains(t, out, "10.000")
	assert.Contains(t, out, "2.50x")
	assert.Contains(t, out, "Baseline: 1 thread(s)")
	assert.Contains(t, out, "Execution Time")
	assert.Contains(t, out, "Total Time")
}

func TestWriteCount(t *testing.T) {
	var buf bytes.Buffer
	WriteCount(&buf, domain.CountResult{
		Words:  []string{"love", "hate"},
		Totals: []int{2300, 500},
	})
	out := buf.String()

	assert.Contains(t, out, "love")
	assert.Contains(t, out, "2300")
	assert.Contains(t, out, "'love' alone is higher than the word 'hate'")
}

func TestCompare(t *testing.T) {
	tests := []struct {
		na, nb int
		want   string
	}{
		{3, 1, "higher than"},
		{1, 1, "the same as"},
		{0, 1, "lower than"},
	}
	for _, tc := range tests {
		assert.Contains(t, Compare("love", tc.na, "hate", tc.nb), tc.want)
	}
}
