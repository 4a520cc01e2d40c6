// logger.go
// Package corpusbench provides shared utilities for the go_corpus_bench package.
package corpusbench

import (
	"os"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/baditaflorin/l"
)

// createDefaultLogger creates and returns a default logger instance.
func createDefaultLogger() (l.Logger, error) {
	return l.NewStandardFactory().CreateLogger(logger.DefaultConfig(os.Stdout, false))
}
