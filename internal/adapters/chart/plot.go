package chart

import (
	"io"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Series labels
const (
	ExecutionLabel = "Execution Time"
	TotalLabel     = "Total Time"
)

// Config holds the chart layout.
type Config struct {
	Title  string
	XLabel string
	YLabel string
	// Width and Height are in inches.
	Width  float64
	Height float64
	// Format is an image format understood by gonum plot, e.g. "png".
	Format string
}

// DefaultConfig returns the layout of the classic threads-versus-time chart.
func DefaultConfig() Config {
	return Config{
		Title:  "Comparison of Threads X Time",
		XLabel: "Number of Threads",
		YLabel: "Time (ms)",
		Width:  8,
		Height: 4,
		Format: "png",
	}
}

// PlotWriter draws timing tables with gonum plot.
type PlotWriter struct {
	config Config
}

// NewPlotWriter creates a chart writer with the given layout.
func NewPlotWriter(config Config) (*PlotWriter, error) {
	if config.Width <= 0 || config.Height <= 0 {
		return nil, errors.Errorf("chart size must be positive, got %gx%g", config.Width, config.Height)
	}
	if config.Format == "" {
		config.Format = "png"
	}
	return &PlotWriter{config: config}, nil
}

// Lines builds the execution and total time lines for table, in that order.
func (pw *PlotWriter) Lines(table *domain.TimingTable) ([]*plotter.Line, error) {
	if table.Cols() < timing.MinColumns {
		return nil, errors.Errorf("timing table needs %d columns, has %d", timing.MinColumns, table.Cols())
	}

	xs, execution, total := timing.Series(table)
	lines := make([]*plotter.Line, 0, 2)
	for i, ys := range [][]float64{execution, total} {
		line, err := plotter.NewLine(xyPairs(xs, ys))
		if err != nil {
			return nil, errors.Wrapf(err, "build series %d", i)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		lines = append(lines, line)
	}
	return lines, nil
}

// Plot builds the two-series plot for table without rendering it.
func (pw *PlotWriter) Plot(table *domain.TimingTable) (*plot.Plot, error) {
	lines, err := pw.Lines(table)
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = pw.config.Title
	p.X.Label.Text = pw.config.XLabel
	p.Y.Label.Text = pw.config.YLabel
	p.Legend.Top = true

	for i, label := range []string{ExecutionLabel, TotalLabel} {
		p.Add(lines[i])
		p.Legend.Add(label, lines[i])
	}
	return p, nil
}

// WriteChart renders table into w.
func (pw *PlotWriter) WriteChart(w io.Writer, table *domain.TimingTable) error {
	p, err := pw.Plot(table)
	if err != nil {
		return err
	}

	wt, err := p.WriterTo(vg.Length(pw.config.Width)*vg.Inch, vg.Length(pw.config.Height)*vg.Inch, pw.config.Format)
	if err != nil {
		return errors.Wrap(err, "create chart canvas")
	}
	if _, err := wt.WriteTo(w); err != nil {
		return errors.Wrap(err, "encode chart")
	}
	return nil
}

func xyPairs(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
