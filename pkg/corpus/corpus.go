// Package corpus builds the base and amplified text corpora used by the
// word-count benchmark.
package corpus

import (
	"context"
	"net"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/fetcher"
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/adapters/normalizer"
	"github.com/baditaflorin/go_corpus_bench/internal/core/corpus"
	"github.com/baditaflorin/go_corpus_bench/internal/core/domain"
	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/baditaflorin/l"
)

// Builder fetches the base corpus if needed and derives the amplified corpus.
type Builder struct {
	builder *corpus.Builder
	logger  ports.Logger
}

// BuilderOption defines a functional option for configuring Builder.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	corpus.BuilderConfig
	Logger        ports.Logger
	Fetcher       ports.Fetcher
	Normalizer    ports.Normalizer
	FetcherConfig fetcher.Config
}

// WithURL sets the URL of the base corpus.
func WithURL(url string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.URL = url
	}
}

// WithBasePath sets where the base corpus is stored.
func WithBasePath(path string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.BasePath = path
	}
}

// WithAmplifiedPath sets where the amplified corpus is written.
func WithAmplifiedPath(path string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.AmplifiedPath = path
	}
}

// WithRepeat sets how many times the base corpus is repeated.
func WithRepeat(n int) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.Repeat = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.Logger = logger.FromExisting(l)
	}
}

// WithFetcher replaces the HTTP fetcher.
func WithFetcher(f ports.Fetcher) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.Fetcher = f
	}
}

// WithNormalizer replaces the lowercase normalizer.
func WithNormalizer(n ports.Normalizer) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.Normalizer = n
	}
}

// WithHTTPTimeout sets the download timeout of the default fetcher.
func WithHTTPTimeout(d time.Duration) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.FetcherConfig.Timeout = d
	}
}

// WithDialer overrides how the default fetcher opens connections.
func WithDialer(dial func(addr string) (net.Conn, error)) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.FetcherConfig.Dial = dial
	}
}

// New creates a new Builder.
func New(opts ...BuilderOption) (*Builder, error) {
	config := &builderConfig{
		BuilderConfig: corpus.DefaultConfig(),
	}
	config.AmplifiedPath = ""

	// Apply options
	for _, opt := range opts {
		opt(config)
	}

	// The amplified name follows the repeat count unless set explicitly
	if config.AmplifiedPath == "" {
		config.AmplifiedPath = corpus.AmplifiedName(config.Repeat)
	}

	// Set up logger if not provided
	if config.Logger == nil {
		var err error
		config.Logger, err = logger.NewStdLogger()
		if err != nil {
			return nil, err
		}
	}

	if config.Fetcher == nil {
		config.Fetcher = fetcher.New(config.Logger, config.FetcherConfig)
	}
	if config.Normalizer == nil {
		config.Normalizer = normalizer.NewDefaultNormalizer()
	}

	builder, err := corpus.NewBuilder(config.BuilderConfig, config.Fetcher, config.Normalizer, config.Logger)
	if err != nil {
		return nil, err
	}

	return &Builder{builder: builder, logger: config.Logger}, nil
}

// Build ensures both corpus files exist.
func (b *Builder) Build(ctx context.Context) (domain.BuildResult, error) {
	return b.builder.Build(ctx)
}

// EnsureBase downloads the base corpus unless it is already present.
func (b *Builder) EnsureBase(ctx context.Context) (bool, error) {
	fetched, _, err := b.builder.EnsureBase(ctx)
	return fetched, err
}

// Amplify builds the amplified corpus unless it is already present.
func (b *Builder) Amplify(ctx context.Context) (bool, error) {
	amplified, _, err := b.builder.Amplify(ctx)
	return amplified, err
}
