package main

import (
	"io"
	"os"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/go_corpus_bench/internal/config"
	"github.com/baditaflorin/l"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out    io.Writer
	cfg    config.Config
	logger l.Logger

	configPath string
	logJSON    bool
	logFile    string
	verbose    bool
}

func newRootCmd(out io.Writer) (*cobra.Command, *app) {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "corpusbench",
		Short: "Build a text corpus, benchmark a parallel word counter and chart the timings",
		Long: `corpusbench downloads a public-domain book, amplifies it into a large
lowercase corpus, counts words over it with a varying number of goroutines
and charts how execution and total time change with the thread count.

Without flags every command uses the classic file names in the working
directory: shakespeare.txt, shakespeare300.txt, time.txt and graphic.png.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}
	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.BoolVar(&a.logJSON, "log-json", false, "Write logs as JSON")
	flags.StringVar(&a.logFile, "log-file", "", "Log file path (empty = stderr)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newFetchCmd(a),
		newCountCmd(a),
		newSweepCmd(a),
		newChartCmd(a),
		newSummaryCmd(a),
	)
	return rootCmd, a
}

// finish logs a failed command and closes the logger, flushing pending
// writes. It runs after every command, failed or not.
func (a *app) finish(err error) error {
	if a.logger == nil {
		return nil
	}
	if err != nil {
		a.logger.Error("Command failed", "error", err)
	}
	closeErr := a.logger.Close()
	a.logger = nil
	return closeErr
}

// init loads the configuration, applies the global flags over it and
// creates the logger.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-json") {
		cfg.Log.JSON = a.logJSON
	}
	if flags.Changed("log-file") {
		cfg.Log.File = a.logFile
	}
	if flags.Changed("verbose") {
		cfg.Log.Verbose = a.verbose
	}
	a.cfg = cfg

	a.logger, err = createLogger(cfg.Log)
	return err
}

// createLogger creates and configures a logger
func createLogger(cfg config.LogConfig) (l.Logger, error) {
	var (
		output io.Writer = os.Stderr
		file   *os.File
	)
	if cfg.File != "" {
		var err error
		file, err = os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open log file")
		}
		output = file
	}

	lg, err := l.NewStandardFactory().CreateLogger(logger.DefaultConfig(output, cfg.JSON))
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, errors.Wrap(err, "failed to create logger")
	}
	if file != nil {
		lg = fileLogger{Logger: lg, file: file}
	}
	if !cfg.Verbose {
		return quietLogger{lg}, nil
	}
	return lg, nil
}

// fileLogger closes its log file after the logger has flushed.
type fileLogger struct {
	l.Logger
	file *os.File
}

func (f fileLogger) Close() error {
	err := f.Logger.Close()
	if ferr := f.file.Close(); ferr != nil && !errors.Is(ferr, os.ErrClosed) && err == nil {
		err = ferr
	}
	return err
}

// quietLogger drops debug messages.
type quietLogger struct {
	l.Logger
}

func (quietLogger) Debug(string, ...interface{}) {}
