package timing

import (
	"bytes"
	"io"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/fsutil"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/pkg/errors"
)

// Renderer turns a timing file into a chart artifact.
type Renderer struct {
	writer ports.ChartWriter
	logger ports.Logger
}

// NewRenderer creates a renderer drawing through writer.
func NewRenderer(writer ports.ChartWriter, logger ports.Logger) *Renderer {
	return &Renderer{writer: writer, logger: logger}
}

// RenderFile loads the table at in and publishes the chart at out. The chart
// is fully encoded before out is touched, so a missing or malformed input
// leaves any previous artifact in place and never creates a partial one.
func (r *Renderer) RenderFile(in, out string) error {
	startTime := time.Now()

	table, err := Load(in)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := r.writer.WriteChart(&buf, table); err != nil {
		return errors.Wrapf(err, "render chart for %s", in)
	}

	n, err := fsutil.Publish(out, func(w io.Writer) (int64, error) {
		return buf.WriteTo(w)
	})
	if err != nil {
		return errors.Wrapf(err, "save chart %s", out)
	}

	r.logger.Info("Chart rendered",
		"input", in,
		"output", out,
		"rows", table.Rows(),
		"bytes", n,
		"duration", time.Since(startTime),
	)
	return nil
}
