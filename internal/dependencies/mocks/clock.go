package mocks

import (
	"sync"
	"time"

	"github.com/mcoot/tictactoe-client/internal/dependencies/clock"
)

// MockClock is a settable Clock, safe to read from the update loop while a
// test moves it
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

var _ clock.Clock = (*MockClock)(nil)

// NewMockClock creates a MockClock stopped at t
func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

// Now returns the mocked current time
func (c *MockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d
func (c *MockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
