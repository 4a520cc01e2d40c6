// Package chart renders the threads-versus-time comparison chart from a
// timing table file.
package chart

import (
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/chart"
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/baditaflorin/l"
)

// Renderer draws timing tables.
type Renderer struct {
	renderer *timing.Renderer
	logger   ports.Logger
}

// RendererOption defines a functional option for configuring Renderer.
type RendererOption func(*rendererConfig)

type rendererConfig struct {
	chart.Config
	Logger ports.Logger
	Writer ports.ChartWriter
}

// WithTitle sets the chart title.
func WithTitle(title string) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.Title = title
	}
}

// WithAxisLabels sets the x and y axis labels.
func WithAxisLabels(x, y string) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.XLabel = x
		cfg.YLabel = y
	}
}

// WithSize sets the canvas size in inches.
func WithSize(width, height float64) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithFormat sets the image format, e.g. "png" or "svg".
func WithFormat(format string) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.Format = format
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithChartWriter replaces the gonum plot writer.
func WithChartWriter(w ports.ChartWriter) RendererOption {
	return func(cfg *rendererConfig) {
		cfg.Writer = w
	}
}

// New creates a new Renderer.
func New(opts ...RendererOption) (*Renderer, error) {
	config := &rendererConfig{
		Config: chart.DefaultConfig(),
	}

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Writer == nil {
		writer, err := chart.NewPlotWriter(config.Config)
		if err != nil {
			return nil, err
		}
		config.Writer = writer
	}

	return &Renderer{
		renderer: timing.NewRenderer(config.Writer, config.Logger),
		logger:   config.Logger,
	}, nil
}

// RenderFile reads the timing table at in and writes the chart to out,
// replacing any previous chart.
func (r *Renderer) RenderFile(in, out string) error {
	return r.renderer.RenderFile(in, out)
}

// LoadTable parses the timing table at path.
func LoadTable(path string) (*domain.TimingTable, error) {
	return timing.Load(path)
}
