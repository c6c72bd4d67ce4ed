// Package viewstate holds the client's view state and the single update loop
// that owns it. Every field of a controller or dialog handler is read and
// written only from tasks running on the loop; remote calls run elsewhere and
// post their results back as tasks. After each task the loop digests the scope
// tree so watches see the new state.
package viewstate

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/mcoot/tictactoe-client/internal/model"
)

// DefaultMaxDigestPasses bounds how many times a digest re-runs watches
// before giving up on an unstable watch
const DefaultMaxDigestPasses = 10

type task struct {
	fn   func()
	done chan struct{} // closed after fn and the following digest, may be nil
}

// Loop is the single-threaded update loop
type Loop struct {
	mu    sync.Mutex
	queue []task
	wake  chan struct{}

	root      *Scope
	maxPasses int
	logger    *slog.Logger

	running atomic.Bool
	stopped chan struct{}
}

// NewLoop creates a loop with an empty root scope. Call Run to start it.
func NewLoop(logger *slog.Logger) *Loop {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	l := &Loop{
		wake:      make(chan struct{}, 1),
		maxPasses: DefaultMaxDigestPasses,
		logger:    logger,
		stopped:   make(chan struct{}),
	}
	l.root = &Scope{loop: l}
	return l
}

// Root returns the root scope
func (l *Loop) Root() *Scope {
	return l.root
}

// Run processes tasks until ctx is cancelled. A loop can only run once.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return errors.New("update loop already running")
	}
	defer close(l.stopped)

	for {
		if t, ok := l.next(); ok {
			l.run(t)
			continue
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Stopped is closed once Run has returned
func (l *Loop) Stopped() <-chan struct{} {
	return l.stopped
}

// Post queues fn to run on the loop. It never blocks.
func (l *Loop) Post(fn func()) {
	l.enqueue(task{fn: fn})
}

// Do runs fn on the loop and waits until it and the digest after it finish
func (l *Loop) Do(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	l.enqueue(task{fn: fn, done: done})
	return wait(ctx, done, l.stopped)
}

func (l *Loop) enqueue(t task) {
	l.mu.Lock()
	l.queue = append(l.queue, t)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) next() (task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.queue) == 0 {
		return task{}, false
	}
	t := l.queue[0]
	l.queue[0] = task{}
	l.queue = l.queue[1:]
	return t, true
}

func (l *Loop) run(t task) {
	if t.done != nil {
		defer close(t.done)
	}

	func() {
		defer func() {
			if err := recover(); err != nil {
				l.logger.Error("panic recovered in view task",
					slog.Any("error", err),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		t.fn()
	}()

	if err := l.digest(); err != nil {
		l.logger.Error("digest failed", slog.String("error", err.Error()))
	}
}

// digest re-evaluates every watch in the tree until a full pass is clean
func (l *Loop) digest() error {
	for pass := 0; pass < l.maxPasses; pass++ {
		if !l.root.digestOnce() {
			return nil
		}
	}
	return model.ErrDigestLimit
}

func wait(ctx context.Context, done <-chan struct{}, stopped <-chan struct{}) error {
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-stopped:
		// The task may have finished just before the loop stopped
		select {
		case <-done:
			return nil
		default:
			return model.ErrLoopStopped
		}
	}
}
