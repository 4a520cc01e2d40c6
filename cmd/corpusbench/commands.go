package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/report"
	"github.com/baditaflorin/go_corpus_bench/pkg/chart"
	"github.com/baditaflorin/go_corpus_bench/pkg/corpus"
	"github.com/baditaflorin/go_corpus_bench/pkg/wordcount"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
}

func newFetchCmd(a *app) *cobra.Command {
	var (
		url    string
		base   string
		output string
		repeat int
	)

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the base corpus if missing and build the amplified corpus",
		Long: `Downloads the source text to the base path unless that file already
exists, then writes the lowercased text repeated N times to the amplified
path unless that file already exists. Existing files are never touched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &a.cfg.Corpus
			if cmd.Flags().Changed("url") {
				cfg.URL = url
			}
			if cmd.Flags().Changed("base") {
				cfg.BasePath = base
			}
			if cmd.Flags().Changed("repeat") {
				cfg.Repeat = repeat
			}
			if cmd.Flags().Changed("output") {
				cfg.AmplifiedPath = output
			}

			builder, err := corpus.New(
				corpus.WithURL(cfg.URL),
				corpus.WithBasePath(cfg.BasePath),
				corpus.WithRepeat(cfg.Repeat),
				corpus.WithAmplifiedPath(a.cfg.AmplifiedPath()),
				corpus.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			result, err := builder.Build(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s: %s (fetched: %t)\n", result.BasePath, humanize.Bytes(uint64(result.BaseBytes)), result.Fetched)
			fmt.Fprintf(a.out, "%s: %s (built: %t)\n", result.AmplifiedPath, humanize.Bytes(uint64(result.AmplifiedBytes)), result.Amplified)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Source URL of the base corpus")
	cmd.Flags().StringVar(&base, "base", "", "Base corpus path")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Amplified corpus path (default shakespeare<repeat>.txt)")
	cmd.Flags().IntVarP(&repeat, "repeat", "n", 0, "How many times the base corpus is repeated")
	return cmd
}

// countFlags are shared by count and sweep.
type countFlags struct {
	input  string
	timing string
	words  []string
}

func (f *countFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Corpus to count (default the base corpus)")
	cmd.Flags().StringVar(&f.timing, "timing", "", "Timing table the run is appended to")
	cmd.Flags().StringSliceVarP(&f.words, "words", "w", nil, "Words to count")
}

func (f *countFlags) apply(cmd *cobra.Command, a *app) {
	cfg := &a.cfg.Count
	if cmd.Flags().Changed("input") {
		cfg.Input = f.input
	}
	if cmd.Flags().Changed("timing") {
		cfg.TimingPath = f.timing
	}
	if cmd.Flags().Changed("words") {
		cfg.Words = f.words
	}
}

func (a *app) newCounter() (*wordcount.Counter, error) {
	return wordcount.New(
		wordcount.WithWords(a.cfg.Count.Words...),
		wordcount.WithWarmUpRuns(a.cfg.Count.WarmUpRuns),
		wordcount.WithLogger(a.logger),
	)
}

func newCountCmd(a *app) *cobra.Command {
	var (
		flags   countFlags
		threads int
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count words once and append the timing row",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, a)
			if cmd.Flags().Changed("threads") {
				a.cfg.Count.Threads = threads
			}

			counter, err := a.newCounter()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			result, err := counter.RunAndRecord(ctx, a.cfg.CountInput(), a.cfg.Count.TimingPath, a.cfg.Count.Threads)
			if err != nil {
				return err
			}

			report.WriteCount(a.out, result)
			fmt.Fprintf(a.out, "threads=%d execution=%.3fms total=%.3fms\n",
				result.Threads, result.TimingRow().Execution, result.TimingRow().Total)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVarP(&threads, "threads", "t", 0, "Number of goroutines (default 5)")
	return cmd
}

func newSweepCmd(a *app) *cobra.Command {
	var (
		flags   countFlags
		threads []int
		warmUp  int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Count words once per thread count, appending a timing row each time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.apply(cmd, a)
			if cmd.Flags().Changed("threads") {
				a.cfg.Count.SweepThreads = threads
			}
			if cmd.Flags().Changed("warm-up") {
				a.cfg.Count.WarmUpRuns = warmUp
			}

			counter, err := a.newCounter()
			if err != nil {
				return err
			}

			ctx, cancel := signalContext(cmd)
			defer cancel()

			results, err := counter.Sweep(ctx, a.cfg.CountInput(), a.cfg.Count.TimingPath, a.cfg.Count.SweepThreads)
			if err != nil {
				return err
			}

			if len(results) > 0 {
				report.WriteCount(a.out, results[len(results)-1])
			}
			fmt.Fprintf(a.out, "%d runs appended to %s\n", len(results), a.cfg.Count.TimingPath)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntSliceVarP(&threads, "threads", "t", nil, "Thread counts to run (default 1,2,4,8)")
	cmd.Flags().IntVar(&warmUp, "warm-up", 0, "Untimed runs before the sweep")
	return cmd
}

func newChartCmd(a *app) *cobra.Command {
	var (
		input  string
		output string
		title  string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Render the timing table as a threads-versus-time chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := &a.cfg.Chart
			if cmd.Flags().Changed("input") {
				cfg.Input = input
			}
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("title") {
				cfg.Title = title
			}

			renderer, err := chart.New(
				chart.WithTitle(cfg.Title),
				chart.WithSize(cfg.Width, cfg.Height),
				chart.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}
			if err := renderer.RenderFile(cfg.Input, cfg.Output); err != nil {
				return err
			}

			fmt.Fprintf(a.out, "chart written to %s\n", cfg.Output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Timing table (default time.txt)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Chart path (default graphic.png)")
	cmd.Flags().StringVar(&title, "title", "", "Chart title")
	return cmd
}

func newSummaryCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print the timing table with speedups and per-series statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("input") {
				a.cfg.Chart.Input = input
			}

			table, err := chart.LoadTable(a.cfg.Chart.Input)
			if err != nil {
				return err
			}
			report.WriteSummary(a.out, table)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Timing table (default time.txt)")
	return cmd
}
