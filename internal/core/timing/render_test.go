package timing_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/chart"
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRenderer(t *testing.T) *timing.Renderer {
	t.Helper()
	pw, err := chart.NewPlotWriter(chart.DefaultConfig())
	require.NoError(t, err)
	return timing.NewRenderer(pw, logger.NewDiscardLogger())
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "time.txt")
	out := filepath.Join(dir, "graphic.png")
	require.NoError(t, os.WriteFile(in, []byte("1 10 12\n2 6 9\n4 4 7\n"), 0644))

	require.NoError(t, newRenderer(t).RenderFile(in, out))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	_, err = png.DecodeConfig(f)
	assert.NoError(t, err)
}

func TestRenderFileFailuresLeaveNoArtifact(t *testing.T) {
	tests := []struct {
		name  string
		input *string
	}{
		{name: "Missing input"},
		{name: "Malformed row", input: strPtr("1 10 12\na b c\n")},
		{name: "Empty input", input: strPtr("")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "time.txt")
			out := filepath.Join(dir, "graphic.png")
			if tc.input != nil {
				require.NoError(t, os.WriteFile(in, []byte(*tc.input), 0644))
			}

			err := newRenderer(t).RenderFile(in, out)
			require.Error(t, err)
			assert.NoFileExists(t, out)
		})
	}
}

func TestRenderFileMalformedKeepsPreviousChart(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "time.txt")
	out := filepath.Join(dir, "graphic.png")
	require.NoError(t, os.WriteFile(out, []byte("previous"), 0644))
	require.NoError(t, os.WriteFile(in, []byte("1 2\n"), 0644))

	err := newRenderer(t).RenderFile(in, out)
	var parseErr *timing.ParseError
	require.True(t, errors.As(err, &parseErr))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func strPtr(s string) *string {
	return &s
}
