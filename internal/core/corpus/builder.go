package corpus

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/fsutil"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

// ErrInvalidRepeat is returned when the repeat count is below one.
var ErrInvalidRepeat = errors.New("repeat count must be at least 1")

// BuilderConfig holds configuration for the corpus builder.
type BuilderConfig struct {
	URL           string
	BasePath      string
	AmplifiedPath string
	Repeat        int
}

// AmplifiedName returns the conventional amplified corpus file name for
// the given repeat count.
func AmplifiedName(repeat int) string {
	return fmt.Sprintf("shakespeare%d.txt", repeat)
}

// DefaultConfig returns a default configuration.
func DefaultConfig() BuilderConfig {
	return BuilderConfig{
		URL:           "https://www.gutenberg.org/files/100/100-0.txt",
		BasePath:      "shakespeare.txt",
		AmplifiedPath: AmplifiedName(300),
		Repeat:        300,
	}
}

// Validate checks if the configuration is valid.
func (c BuilderConfig) Validate() error {
	if c.Repeat < 1 {
		return errors.Wrapf(ErrInvalidRepeat, "got %d", c.Repeat)
	}
	if c.BasePath == "" || c.AmplifiedPath == "" {
		return errors.New("base and amplified paths must not be empty")
	}
	if c.BasePath == c.AmplifiedPath {
		return errors.New("base and amplified paths must differ")
	}
	return nil
}

// Builder fetches the base corpus and derives the amplified corpus from it.
type Builder struct {
	config     BuilderConfig
	fetcher    ports.Fetcher
	normalizer ports.Normalizer
	logger     ports.Logger
}

// NewBuilder creates a new corpus builder.
func NewBuilder(config BuilderConfig, fetcher ports.Fetcher, normalizer ports.Normalizer, logger ports.Logger) (*Builder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Builder{
		config:     config,
		fetcher:    fetcher,
		normalizer: normalizer,
		logger:     logger,
	}, nil
}

// Config returns the builder configuration.
func (b *Builder) Config() BuilderConfig {
	return b.config
}

// Build ensures the base corpus exists and then builds the amplified corpus.
// Both steps are skipped when their output already exists.
func (b *Builder) Build(ctx context.Context) (domain.BuildResult, error) {
	startTime := time.Now()
	result := domain.BuildResult{
		BasePath:      b.config.BasePath,
		AmplifiedPath: b.config.AmplifiedPath,
		Repeat:        b.config.Repeat,
	}

	fetched, baseBytes, err := b.EnsureBase(ctx)
	if err != nil {
		return result, err
	}
	result.Fetched = fetched
	result.BaseBytes = baseBytes

	amplified, amplifiedBytes, err := b.Amplify(ctx)
	if err != nil {
		return result, err
	}
	result.Amplified = amplified
	result.AmplifiedBytes = amplifiedBytes
	result.Duration = time.Since(startTime)

	b.logger.Info("Corpus ready",
		"base", result.BasePath,
		"base_size", humanize.Bytes(uint64(result.BaseBytes)),
		"amplified", result.AmplifiedPath,
		"amplified_size", humanize.Bytes(uint64(result.AmplifiedBytes)),
		"fetched", result.Fetched,
		"generated", result.Amplified,
		"duration", result.Duration,
	)

	return result, nil
}

// EnsureBase downloads the base corpus unless it already exists. It reports
// whether a download happened and the size of the base file.
func (b *Builder) EnsureBase(ctx context.Context) (bool, int64, error) {
	exists, size, err := fsutil.Exists(b.config.BasePath)
	if err != nil {
		return false, 0, err
	}
	if exists {
		b.logger.Debug("Base corpus present, skipping fetch", "path", b.config.BasePath)
		return false, size, nil
	}

	b.logger.Info("Fetching base corpus", "url", b.config.URL, "path", b.config.BasePath)

	n, err := fsutil.Publish(b.config.BasePath, func(w io.Writer) (int64, error) {
		return b.fetcher.Fetch(ctx, b.config.URL, w)
	})
	if err != nil {
		return false, 0, errors.Wrapf(err, "fetch base corpus into %s", b.config.BasePath)
	}

	return true, n, nil
}

// Amplify writes lowercase(base) Repeat times to the amplified path unless
// that file already exists. It reports whether the file was generated and
// its size.
func (b *Builder) Amplify(ctx context.Context) (bool, int64, error) {
	exists, size, err := fsutil.Exists(b.config.AmplifiedPath)
	if err != nil {
		return false, 0, err
	}
	if exists {
		b.logger.Debug("Amplified corpus present, skipping", "path", b.config.AmplifiedPath)
		return false, size, nil
	}

	content, err := os.ReadFile(b.config.BasePath)
	if err != nil {
		return false, 0, errors.Wrapf(err, "read base corpus %s", b.config.BasePath)
	}
	content = b.normalizer.Normalize(content, content)

	b.logger.Info("Amplifying corpus",
		"path", b.config.AmplifiedPath,
		"repeat", b.config.Repeat,
		"size", humanize.Bytes(uint64(len(content))*uint64(b.config.Repeat)),
	)

	n, err := fsutil.Publish(b.config.AmplifiedPath, func(w io.Writer) (int64, error) {
		return WriteRepeated(ctx, w, content, b.config.Repeat)
	})
	if err != nil {
		return false, 0, errors.Wrapf(err, "write amplified corpus %s", b.config.AmplifiedPath)
	}

	return true, n, nil
}

// WriteRepeated writes content to w n times, checking ctx between copies.
func WriteRepeated(ctx context.Context, w io.Writer, content []byte, n int) (int64, error) {
	var written int64
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		m, err := w.Write(content)
		written += int64(m)
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
