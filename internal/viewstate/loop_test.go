package viewstate

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/tictactoe-client/internal/model"
	"github.com/mcoot/tictactoe-client/internal/testutil"
)

func startLoop(t *testing.T, logger *slog.Logger) *Loop {
	t.Helper()

	loop := NewLoop(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = loop.Run(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-loop.Stopped()
	})
	return loop
}

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := startLoop(t, testutil.NopLogger())

	var order []int
	for i := 0; i < 5; i++ {
		i := i
		loop.Post(func() { order = append(order, i) })
	}

	var got []int
	require.NoError(t, loop.Do(context.Background(), func() { got = append(got, order...) }))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)
}

func TestLoopCannotRunTwice(t *testing.T) {
	loop := startLoop(t, testutil.NopLogger())
	require.NoError(t, loop.Do(context.Background(), func() {}))

	err := loop.Run(context.Background())
	assert.Error(t, err)
}

func TestDoAfterStopReturnsErrLoopStopped(t *testing.T) {
	loop := NewLoop(testutil.NopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, loop.Run(ctx), context.Canceled)

	err := loop.Do(context.Background(), func() {})
	assert.ErrorIs(t, err, model.ErrLoopStopped)
}

func TestDoHonoursContext(t *testing.T) {
	loop := NewLoop(testutil.NopLogger()) // never started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loop.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPanicInTaskIsRecovered(t *testing.T) {
	var buf bytes.Buffer
	loop := startLoop(t, slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, loop.Do(context.Background(), func() { panic("boom") }))

	ran := false
	require.NoError(t, loop.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
	assert.Contains(t, buf.String(), "panic recovered in view task")
}

func TestUnstableWatchHitsDigestLimit(t *testing.T) {
	var buf bytes.Buffer
	loop := startLoop(t, slog.New(slog.NewJSONHandler(&buf, nil)))

	evaluations := 0
	require.NoError(t, loop.Do(context.Background(), func() {
		Watch(loop.Root(), func() int {
			evaluations++
			return evaluations
		}, func(int, int) {})
	}))

	assert.Equal(t, DefaultMaxDigestPasses, evaluations)
	assert.Contains(t, buf.String(), model.ErrDigestLimit.Error())
}
