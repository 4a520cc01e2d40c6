package warmup

import (
	"context"
	"testing"
	"time"

	"github.com/baditaflorin/go_corpus_bench/internal/adapters/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmUpRunsEveryTask(t *testing.T) {
	wm := NewManager(logger.NewDiscardLogger(), WarmupConfig{Iterations: 3})

	var a, b int
	wm.Register("a", func(context.Context) error { a++; return nil })
	wm.Register("b", func(context.Context) error { b++; return nil })

	require.NoError(t, wm.WarmUp(context.Background()))
	assert.Equal(t, 3, a)
	assert.Equal(t, 3, b)
}

func TestWarmUpZeroIterations(t *testing.T) {
	wm := NewManager(logger.NewDiscardLogger(), WarmupConfig{})
	called := false
	wm.Register("a", func(context.Context) error { called = true; return nil })

	require.NoError(t, wm.WarmUp(context.Background()))
	assert.False(t, called)
}

func TestWarmUpTaskError(t *testing.T) {
	wm := NewManager(logger.NewDiscardLogger(), DefaultWarmupConfig())
	boom := errors.New("boom")
	wm.Register("failing", func(context.Context) error { return boom })

	err := wm.WarmUp(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "failing")
}

func TestWarmUpDurationEndsEarly(t *testing.T) {
	wm := NewManager(logger.NewDiscardLogger(), WarmupConfig{Iterations: 1000, Duration: 20 * time.Millisecond})
	runs := 0
	wm.Register("slow", func(ctx context.Context) error {
		runs++
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Millisecond):
			return nil
		}
	})

	require.NoError(t, wm.WarmUp(context.Background()))
	assert.Less(t, runs, 1000)
}

func TestWarmUpCancelled(t *testing.T) {
	wm := NewManager(logger.NewDiscardLogger(), DefaultWarmupConfig())
	wm.Register("a", func(context.Context) error { return nil })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, wm.WarmUp(ctx), context.Canceled)
}
