package warmup

import (
	"context"
	"runtime"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/ports"
	"github.com/pkg/errors"
)

// WarmupConfig defines configuration for warming up before measurements
type WarmupConfig struct {
	// Number of untimed runs per task
	Iterations int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Iterations: 1,
		Duration:   time.Minute,
		ForceGC:    true,
	}
}

// Task is one unit of warm-up work, such as an untimed benchmark run.
type Task func(ctx context.Context) error

type namedTask struct {
	name string
	run  Task
}

// Manager handles warmup operations
type Manager struct {
	logger ports.Logger
	config WarmupConfig
	tasks  []namedTask
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	return &Manager{
		logger: logger,
		config: config,
	}
}

// Register adds a task to be warmed up
func (wm *Manager) Register(name string, task Task) {
	wm.tasks = append(wm.tasks, namedTask{name: name, run: task})
}

// WarmUp runs every registered task Iterations times. Running out of the
// configured duration ends the warm-up early without an error; a task error
// or cancellation of ctx is returned.
func (wm *Manager) WarmUp(ctx context.Context) error {
	if wm.config.Iterations <= 0 || len(wm.tasks) == 0 {
		return nil
	}

	startTime := time.Now()
	wm.logger.Info("Starting warmup",
		"tasks", len(wm.tasks),
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	completed := 0
loop:
	for j := 0; j < wm.config.Iterations; j++ {
		for _, task := range wm.tasks {
			if warmupCtx.Err() != nil {
				break loop
			}
			if err := task.run(warmupCtx); err != nil {
				if ctx.Err() == nil && warmupCtx.Err() != nil {
					break loop
				}
				return errors.Wrapf(err, "warm up %s", task.name)
			}
			completed++
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("Warmup completed",
		"runs", completed,
		"duration", time.Since(startTime),
	)
	return nil
}
