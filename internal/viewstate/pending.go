package viewstate

import "context"

// Pending tracks one asynchronous remote call issued from view state.
// It completes once the call's result has been applied on the loop and
// digested.
type Pending struct {
	done    chan struct{}
	stopped <-chan struct{}
	issued  bool
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// skipped returns a Pending for a submit that never reached the service
func skipped() *Pending {
	return &Pending{done: closedChan}
}

// Issued returns false when no remote call was made (e.g. an invalid form)
func (p *Pending) Issued() bool {
	return p.issued
}

// Done is closed once the result has been applied
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the result has been applied, ctx ends or the loop stops
func (p *Pending) Wait(ctx context.Context) error {
	return wait(ctx, p.done, p.stopped)
}

// call runs fn off the loop and posts apply back onto it. There is no
// correlation between overlapping calls: whichever result arrives last is
// applied last.
func call[T any](ctx context.Context, l *Loop, fn func(context.Context) (T, error), apply func(T, error)) *Pending {
	p := &Pending{
		done:    make(chan struct{}),
		stopped: l.stopped,
		issued:  true,
	}

	go func() {
		result, err := fn(ctx)
		l.enqueue(task{
			fn:   func() { apply(result, err) },
			done: p.done,
		})
	}()

	return p
}
