package wordcount

import (
	"context"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/normalizer"
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/pool"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// ContextCheckBytes defines how many bytes a worker scans between
// cancellation checks.
const ContextCheckBytes = 64 * 1024

// ErrInvalidThreads is returned when a run asks for fewer than one thread.
var ErrInvalidThreads = errors.New("thread count must be at least 1")

// CounterConfig holds configuration for the word counter.
type CounterConfig struct {
	// Words are matched byte for byte as whole words.
	Words []string
	// InitialBufferSize is the capacity of a fresh corpus read buffer.
	InitialBufferSize int
}

// DefaultConfig returns a default configuration.
func DefaultConfig() CounterConfig {
	return CounterConfig{
		Words:             []string{"love", "hate"},
		InitialBufferSize: 8 * 1024 * 1024,
	}
}

// Validate checks if the configuration is valid.
func (c CounterConfig) Validate() error {
	if len(c.Words) == 0 {
		return errors.New("at least one word is required")
	}
	for _, w := range c.Words {
		if w == "" {
			return errors.New("words must not be empty")
		}
		for i := 0; i < len(w); i++ {
			if !normalizer.IsLower(w[i]) {
				return errors.Errorf("word %q must contain only lowercase ASCII letters", w)
			}
		}
	}
	return nil
}

// Counter counts whole-word occurrences across blocks of a corpus in parallel.
type Counter struct {
	config  CounterConfig
	words   [][]byte
	logger  ports.Logger
	buffers *pool.BufferPool
}

// NewCounter creates a new word counter.
func NewCounter(config CounterConfig, logger ports.Logger) (*Counter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	words := make([][]byte, len(config.Words))
	for i, w := range config.Words {
		words[i] = []byte(w)
	}

	return &Counter{
		config:  config,
		words:   words,
		logger:  logger,
		buffers: pool.NewBufferPool(config.InitialBufferSize),
	}, nil
}

// Words returns the words this counter looks for.
func (c *Counter) Words() []string {
	return append([]string(nil), c.config.Words...)
}

// Run reads the corpus at path and counts it with threads workers. Total
// covers reading, splitting and counting; Execution covers counting only.
func (c *Counter) Run(ctx context.Context, path string, threads int) (domain.CountResult, error) {
	if threads < 1 {
		return domain.CountResult{}, errors.Wrapf(ErrInvalidThreads, "got %d", threads)
	}
	startTime := time.Now()

	buf := c.buffers.Get()
	defer c.buffers.Put(buf)

	if err := pool.ReadFile(path, buf); err != nil {
		return domain.CountResult{}, errors.Wrap(err, "load corpus")
	}
	c.logger.Debug("Corpus loaded", "path", path, "size", humanize.Bytes(uint64(len(*buf))))

	result, err := c.Count(ctx, *buf, threads)
	if err != nil {
		return result, err
	}
	result.Total = time.Since(startTime)

	c.logger.Info("Count finished",
		"run_id", result.RunID,
		"threads", threads,
		"execution", result.Execution,
		"total", result.Total,
	)
	return result, nil
}

// Count splits data into threads blocks and counts every block concurrently.
func (c *Counter) Count(ctx context.Context, data []byte, threads int) (domain.CountResult, error) {
	if threads < 1 {
		return domain.CountResult{}, errors.Wrapf(ErrInvalidThreads, "got %d", threads)
	}

	result := domain.CountResult{
		RunID:          uuid.NewString(),
		Threads:        threads,
		Words:          c.Words(),
		Totals:         make([]int, len(c.words)),
		Blocks:         SplitBlocks(data, threads),
		BytesProcessed: int64(len(data)),
	}

	startTime := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	for i := range result.Blocks {
		block := &result.Blocks[i]
		g.Go(func() error {
			counts, err := CountWords(gctx, data[block.Start:block.End], c.words)
			if err != nil {
				return err
			}
			block.Counts = counts
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, errors.Wrap(err, "count words")
	}
	result.Execution = time.Since(startTime)

	for _, block := range result.Blocks {
		c.logger.Debug("Block counted",
			"run_id", result.RunID,
			"block", block.Index,
			"start", block.Start,
			"end", block.End,
			"counts", block.Counts,
		)
		for i, n := range block.Counts {
			result.Totals[i] += n
		}
	}

	return result, nil
}

// SplitBlocks divides data into n blocks of about len(data)/n bytes. Each
// block end is pushed forward to the next space so no word is split, and the
// separating space belongs to no block. The last block runs to the end of
// data. Blocks past the end of data are empty.
func SplitBlocks(data []byte, n int) []domain.Block {
	size := len(data) / n
	blocks := make([]domain.Block, n)
	start := 0
	for i := 0; i < n; i++ {
		end := start + size
		if i == n-1 || end >= len(data) {
			end = len(data)
		} else {
			for end < len(data) && data[end] != ' ' {
				end++
			}
		}
		blocks[i] = domain.Block{Index: i, Start: start, End: end}

		start = end + 1
		if start > len(data) {
			start = len(data)
		}
	}
	return blocks
}

// CountWords counts whole-word occurrences of each word in text. A word is a
// maximal run of ASCII lowercase letters, so "love" matches in "love's" and
// "(love)" but not in "glove" or "loved".
func CountWords(ctx context.Context, text []byte, words [][]byte) ([]int, error) {
	counts := make([]int, len(words))
	nextCheck := ContextCheckBytes

	i := 0
	for i < len(text) {
		if i >= nextCheck {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			nextCheck += ContextCheckBytes
		}

		if !normalizer.IsLower(text[i]) {
			i++
			continue
		}

		start := i
		for i < len(text) && normalizer.IsLower(text[i]) {
			i++
		}
		run := text[start:i]
		for j, w := range words {
			if string(run) == string(w) {
				counts[j]++
				break
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
