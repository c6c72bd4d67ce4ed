package factory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/tictactoe-client/internal/dependencies/mocks"
	"github.com/mcoot/tictactoe-client/internal/prefs/memory"
	"github.com/mcoot/tictactoe-client/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	Fake      *testutil.FakeService
	MockClock *mocks.MockClock
	Prefs     *memory.Store
}

// NewTestApp creates a running App talking to a fake game service.
// The loop stops when the test ends.
func NewTestApp(t testing.TB) *TestApp {
	t.Helper()

	fake := testutil.NewFakeService(t)
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := NewWithDependencies(fake.Client(), store, mockClock, testutil.NopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	app.Start(ctx)
	t.Cleanup(func() {
		cancel()
		<-app.Loop.Stopped()
	})

	return &TestApp{
		App:       app,
		Fake:      fake,
		MockClock: mockClock,
		Prefs:     store,
	}
}
