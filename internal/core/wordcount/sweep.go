package wordcount

import (
	"context"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/core/timing"
	"github.com/baditaflorin/go_corpus_bench/internal/warmup"
	"github.com/pkg/errors"
)

// SweepConfig configures a benchmark sweep over several thread counts.
type SweepConfig struct {
	Input      string
	TimingPath string
	Threads    []int
	WarmUp     warmup.WarmupConfig
}

// RunAndRecord runs the counter once and appends its timing row.
func (c *Counter) RunAndRecord(ctx context.Context, input, timingPath string, threads int) (domain.CountResult, error) {
	result, err := c.Run(ctx, input, threads)
	if err != nil {
		return result, err
	}
	if err := timing.Append(timingPath, result.TimingRow()); err != nil {
		return result, err
	}
	return result, nil
}

// Sweep warms the counter up, then runs it once per thread count, appending
// a timing row after every run. Results are returned in run order.
func (c *Counter) Sweep(ctx context.Context, config SweepConfig) ([]domain.CountResult, error) {
	if len(config.Threads) == 0 {
		return nil, errors.New("sweep needs at least one thread count")
	}
	for _, n := range config.Threads {
		if n < 1 {
			return nil, errors.Wrapf(ErrInvalidThreads, "got %d", n)
		}
	}

	wm := warmup.NewManager(c.logger, config.WarmUp)
	wm.Register("count", func(ctx context.Context) error {
		_, err := c.Run(ctx, config.Input, config.Threads[len(config.Threads)-1])
		return err
	})
	if err := wm.WarmUp(ctx); err != nil {
		return nil, err
	}

	results := make([]domain.CountResult, 0, len(config.Threads))
	for _, threads := range config.Threads {
		result, err := c.RunAndRecord(ctx, config.Input, config.TimingPath, threads)
		if err != nil {
			return results, errors.Wrapf(err, "sweep run with %d threads", threads)
		}
		results = append(results, result)
	}
	return results, nil
}
