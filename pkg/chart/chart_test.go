package chart

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/baditaflorin/l"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger(t *testing.T) l.Logger {
	t.Helper()
	lg, err := l.NewStandardFactory().CreateLogger(l.Config{Output: io.Discard})
	require.NoError(t, err)
	return lg
}

func TestRenderFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "time.txt")
	require.NoError(t, os.WriteFile(in, []byte("1 812 1300\n2 410 905\n4 220 702\n8 130 610\n"), 0644))

	tests := []struct {
		name   string
		out    string
		opts   []RendererOption
		header []byte
	}{
		{name: "Default PNG", out: "graphic.png", header: []byte("\x89PNG")},
		{name: "SVG", out: "graphic.svg", opts: []RendererOption{WithFormat("svg")}, header: []byte("<?xml")},
		{name: "Custom layout", out: "wide.png", opts: []RendererOption{
			WithTitle("Love and hate"),
			WithAxisLabels("Goroutines", "Milliseconds"),
			WithSize(12, 4),
		}, header: []byte("\x89PNG")},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := New(append(tc.opts, WithLogger(discardLogger(t)))...)
			require.NoError(t, err)

			out := filepath.Join(dir, tc.out)
			require.NoError(t, r.RenderFile(in, out))

			data, err := os.ReadFile(out)
			require.NoError(t, err)
			assert.True(t, len(data) > len(tc.header))
			assert.Equal(t, tc.header, data[:len(tc.header)])
		})
	}
}

func TestRenderFileMissingInput(t *testing.T) {
	dir := t.TempDir()
	r, err := New(WithLogger(discardLogger(t)))
	require.NoError(t, err)

	out := filepath.Join(dir, "graphic.png")
	require.Error(t, r.RenderFile(filepath.Join(dir, "time.txt"), out))
	assert.NoFileExists(t, out)
}

func TestNewRejectsBadSize(t *testing.T) {
	_, err := New(WithSize(-1, 4), WithLogger(discardLogger(t)))
	assert.Error(t, err)
}
