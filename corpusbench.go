// corpusbench.go
// Package corpusbench runs the whole corpus benchmark with the classic file
// names in the working directory:
//
//	shakespeare.txt     downloaded base corpus
//	shakespeare300.txt  base corpus lowercased and repeated 300 times
//	time.txt            one "threads execution_ms total_ms" row per run
//	graphic.png         execution and total time against thread count
//
// The pkg/corpus, pkg/wordcount and pkg/chart packages expose the same steps
// with every name and parameter configurable.
package corpusbench

import (
	"context"

	"github.com/baditaflorin/go_corpus_bench/internal/config"
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/pkg/chart"
	"github.com/baditaflorin/go_corpus_bench/pkg/corpus"
	"github.com/baditaflorin/go_corpus_bench/pkg/wordcount"
	"github.com/baditaflorin/l"
)

// Options holds the settings shared by the one-call helpers.
type Options struct {
	Logger l.Logger
}

// Option defines a functional option for the one-call helpers.
type Option func(*Options)

// WithLogger sets a custom logger.
func WithLogger(logger l.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func resolve(opts []Option) (*Options, error) {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Logger == nil {
		logger, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		o.Logger = logger
	}
	return o, nil
}

// BuildWithDefaults downloads shakespeare.txt unless it exists and builds
// shakespeare300.txt unless it exists.
func BuildWithDefaults(ctx context.Context, opts ...Option) (domain.BuildResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return domain.BuildResult{}, err
	}

	builder, err := corpus.New(corpus.WithLogger(o.Logger))
	if err != nil {
		return domain.BuildResult{}, err
	}
	return builder.Build(ctx)
}

// CountWithDefaults counts "love" and "hate" in shakespeare.txt with the
// given number of threads and appends the timing row to time.txt.
func CountWithDefaults(ctx context.Context, threads int, opts ...Option) (domain.CountResult, error) {
	o, err := resolve(opts)
	if err != nil {
		return domain.CountResult{}, err
	}

	counter, err := wordcount.New(wordcount.WithLogger(o.Logger))
	if err != nil {
		return domain.CountResult{}, err
	}
	return counter.RunAndRecord(ctx, config.DefaultBasePath, config.DefaultTimingPath, threads)
}

// RenderWithDefaults renders time.txt into graphic.png.
func RenderWithDefaults(opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}

	renderer, err := chart.New(chart.WithLogger(o.Logger))
	if err != nil {
		return err
	}
	return renderer.RenderFile(config.DefaultTimingPath, config.DefaultChartPath)
}
