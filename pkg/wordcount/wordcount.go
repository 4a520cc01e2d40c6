// Package wordcount benchmarks a parallel whole-word counter over a text
// corpus and records its timings.
package wordcount

import (
	"context"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/wordcount"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/baditaflorin/go_corpus_bench/internal/warmup"
	"github.com/baditaflorin/l"
)

// Counter runs word-count benchmarks.
type Counter struct {
	counter *wordcount.Counter
	logger  ports.Logger
	warmUp  warmup.WarmupConfig
}

// CounterOption defines a functional option for configuring Counter.
type CounterOption func(*counterConfig)

type counterConfig struct {
	wordcount.CounterConfig
	Logger ports.Logger
	WarmUp warmup.WarmupConfig
}

// WithWords sets the words to count.
func WithWords(words ...string) CounterOption {
	return func(cfg *counterConfig) {
		cfg.Words = words
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) CounterOption {
	return func(cfg *counterConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithWarmUpRuns sets how many untimed runs precede a sweep.
func WithWarmUpRuns(n int) CounterOption {
	return func(cfg *counterConfig) {
		cfg.WarmUp.Iterations = n
	}
}

// WithWarmUpConfig sets a custom warm-up configuration.
func WithWarmUpConfig(config warmup.WarmupConfig) CounterOption {
	return func(cfg *counterConfig) {
		cfg.WarmUp = config
	}
}

// New creates a new Counter.
func New(opts ...CounterOption) (*Counter, error) {
	warmUp := warmup.DefaultWarmupConfig()
	warmUp.Iterations = 0
	config := &counterConfig{
		CounterConfig: wordcount.DefaultConfig(),
		WarmUp:        warmUp,
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

	counter, err := wordcount.NewCounter(config.CounterConfig, config.Logger)
	if err != nil {
		return nil, err
	}

	return &Counter{
		counter: counter,
		logger:  config.Logger,
		warmUp:  config.WarmUp,
	}, nil
}

// Run counts the corpus at input with the given number of threads.
func (c *Counter) Run(ctx context.Context, input string, threads int) (domain.CountResult, error) {
	return c.counter.Run(ctx, input, threads)
}

// RunAndRecord counts the corpus and appends the timing row to timingPath.
func (c *Counter) RunAndRecord(ctx context.Context, input, timingPath string, threads int) (domain.CountResult, error) {
	return c.counter.RunAndRecord(ctx, input, timingPath, threads)
}

// Sweep runs the counter once per thread count, appending a row each time.
func (c *Counter) Sweep(ctx context.Context, input, timingPath string, threads []int) ([]domain.CountResult, error) {
	return c.counter.Sweep(ctx, wordcount.SweepConfig{
		Input:      input,
		TimingPath: timingPath,
		Threads:    threads,
		WarmUp:     c.warmUp,
	})
}
