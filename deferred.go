package consent

import (
	"context"
	"sync"
)

// Deferred is a handle for a value that is not yet available. It is
// settled exactly once, either with an outcome or with an error; later
// settlement attempts are no-ops.
type Deferred[O any] struct {
	// outcome and err are written once, before done is closed. Don't
	// read them unless done is known to be closed.
	done    chan struct{}
	once    sync.Once
	outcome O
	err     error
}

func newDeferred[O any]() *Deferred[O] {
	return &Deferred[O]{done: make(chan struct{})}
}

// settle delivers the final outcome. It reports whether this call was
// the one that settled the deferred.
func (d *Deferred[O]) settle(outcome O, err error) bool {
	settled := false
	d.once.Do(func() {
		d.outcome = outcome
		d.err = err
		close(d.done)
		settled = true
	})
	return settled
}

// Done returns a channel that is closed when the deferred settles.
func (d *Deferred[O]) Done() <-chan struct{} {
	return d.done
}

// Settled reports whether the deferred has been settled.
func (d *Deferred[O]) Settled() bool {
	select {
	case <-d.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the deferred settles or ctx ends, whichever comes
// first. On settlement it returns the outcome and the settlement error,
// if any; if ctx ends first it returns ctx.Err().
func (d *Deferred[O]) Wait(ctx context.Context) (O, error) {
	select {
	case <-d.done:
		return d.outcome, d.err
	case <-ctx.Done():
		var zero O
		return zero, ctx.Err()
	}
}

// Outcome returns the settled outcome without blocking. Before
// settlement it returns the zero outcome and ErrPending.
func (d *Deferred[O]) Outcome() (O, error) {
	select {
	case <-d.done:
		return d.outcome, d.err
	default:
		var zero O
		return zero, ErrPending
	}
}
