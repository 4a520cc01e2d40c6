// Package config loads the corpusbench settings. Every field has a default
// matching the fixed file names the tools have always used, so running
// without a config file reproduces the classic behavior.
package config

import (
	"bytes"
	"os"

	"github.com/baditaflorin/go_corpus_bench/internal/core/corpus"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Defaults
const (
	DefaultURL          = "https://www.gutenberg.org/files/100/100-0.txt"
	DefaultBasePath     = "shakespeare.txt"
	DefaultRepeat       = 300
	DefaultTimingPath   = "time.txt"
	DefaultChartPath    = "graphic.png"
	DefaultChartTitle   = "Comparison of Threads X Time"
	DefaultChartWidth   = 8.0
	DefaultChartHeight  = 4.0
	DefaultCountThreads = 5
)

// DefaultWords are the words counted by the benchmark.
var DefaultWords = []string{"love", "hate"}

// DefaultSweepThreads are the thread counts run by a sweep.
var DefaultSweepThreads = []int{1, 2, 4, 8}

// Config is the full corpusbench configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Count  CountConfig  `yaml:"count"`
	Chart  ChartConfig  `yaml:"chart"`
	Log    LogConfig    `yaml:"log"`
}

// CorpusConfig configures the corpus builder.
type CorpusConfig struct {
	URL      string `yaml:"url"`
	BasePath string `yaml:"base_path"`
	// AmplifiedPath defaults to "shakespeare<Repeat>.txt" when empty.
	AmplifiedPath string `yaml:"amplified_path"`
	Repeat        int    `yaml:"repeat"`
}

// CountConfig configures the word-count benchmark.
type CountConfig struct {
	// Input defaults to the base corpus path when empty.
	Input        string   `yaml:"input"`
	TimingPath   string   `yaml:"timing_path"`
	Words        []string `yaml:"words"`
	Threads      int      `yaml:"threads"`
	SweepThreads []int    `yaml:"sweep_threads"`
	WarmUpRuns   int      `yaml:"warm_up_runs"`
}

// ChartConfig configures the timing chart.
type ChartConfig struct {
	Input  string  `yaml:"input"`
	Output string  `yaml:"output"`
	Title  string  `yaml:"title"`
	Width  float64 `yaml:"width_inches"`
	Height float64 `yaml:"height_inches"`
}

// LogConfig configures logging.
type LogConfig struct {
	File    string `yaml:"file"`
	JSON    bool   `yaml:"json"`
	Verbose bool   `yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Corpus: CorpusConfig{
			URL:      DefaultURL,
			BasePath: DefaultBasePath,
			Repeat:   DefaultRepeat,
		},
		Count: CountConfig{
			TimingPath:   DefaultTimingPath,
			Words:        append([]string(nil), DefaultWords...),
			Threads:      DefaultCountThreads,
			SweepThreads: append([]int(nil), DefaultSweepThreads...),
		},
		Chart: ChartConfig{
			Input:  DefaultTimingPath,
			Output: DefaultChartPath,
			Title:  DefaultChartTitle,
			Width:  DefaultChartWidth,
			Height: DefaultChartHeight,
		},
	}
}

// Load decodes the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "decode config %s", path)
	}

	return cfg, cfg.Validate()
}

// AmplifiedPath returns the configured amplified corpus path or the name
// derived from the repeat count.
func (c Config) AmplifiedPath() string {
	if c.Corpus.AmplifiedPath != "" {
		return c.Corpus.AmplifiedPath
	}
	return corpus.AmplifiedName(c.Corpus.Repeat)
}

// CountInput returns the corpus file the word counter reads.
func (c Config) CountInput() string {
	if c.Count.Input != "" {
		return c.Count.Input
	}
	return c.Corpus.BasePath
}

// Validate rejects configurations the tools cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Corpus.URL == "":
		return errors.New("corpus.url must not be empty")
	case c.Corpus.BasePath == "":
		return errors.New("corpus.base_path must not be empty")
	case c.Corpus.Repeat < 1:
		return errors.Errorf("corpus.repeat must be at least 1, got %d", c.Corpus.Repeat)
	case c.Count.TimingPath == "":
		return errors.New("count.timing_path must not be empty")
	case len(c.Count.Words) == 0:
		return errors.New("count.words must not be empty")
	case c.Count.Threads < 1:
		return errors.Errorf("count.threads must be at least 1, got %d", c.Count.Threads)
	case c.Count.WarmUpRuns < 0:
		return errors.Errorf("count.warm_up_runs must not be negative, got %d", c.Count.WarmUpRuns)
	case c.Chart.Input == "" || c.Chart.Output == "":
		return errors.New("chart.input and chart.output must not be empty")
	case c.Chart.Width <= 0 || c.Chart.Height <= 0:
		return errors.Errorf("chart size must be positive, got %gx%g", c.Chart.Width, c.Chart.Height)
	}
	for _, n := range c.Count.SweepThreads {
		if n < 1 {
			return errors.Errorf("count.sweep_threads entries must be at least 1, got %d", n)
		}
	}
	for _, w := range c.Count.Words {
		if w == "" {
			return errors.New("count.words must not contain empty words")
		}
	}
	return nil
}
