package consent

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Request is a pending feedback request. The payload is opaque to the
// coordinator; it only carries what the rendering layer needs to show.
type Request[P, O any] struct {
	// ID uniquely identifies this request.
	ID string
	// Payload describes what is being confirmed or asked.
	Payload P
	// At is when the request was issued.
	At time.Time

	d *Deferred[O]
}

// Coordinator holds at most one pending request at a time and settles
// each request's deferred exactly once. It is safe for concurrent use:
// Request may be called from any goroutine, while a single UI loop
// projects Pending and calls Resolve.
type Coordinator[P, O any] struct {
	mu      sync.Mutex
	current *Request[P, O]
	queue   []*Request[P, O]

	policy   Policy
	queueCap int
	signal   chan struct{}
	log      *slog.Logger
}

// New creates a coordinator. By default overlapping requests replace the
// pending one; see WithPolicy.
func New[P, O any](opts ...Option) *Coordinator[P, O] {
	s := settings{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&s)
	}
	return &Coordinator[P, O]{
		policy:   s.policy,
		queueCap: s.queueCap,
		signal:   make(chan struct{}, 1),
		log:      s.logger,
	}
}

// Request stores payload as a pending request and returns a Deferred
// that will be settled exactly once by a later Resolve (or by the
// overlap policy). It never blocks.
func (c *Coordinator[P, O]) Request(payload P) *Deferred[O] {
	req := c.admit(payload)
	return req.d
}

// RequestContext is Request with cancellation: if ctx ends before the
// request is answered, the request is withdrawn and its deferred is
// rejected with ErrCanceled.
func (c *Coordinator[P, O]) RequestContext(ctx context.Context, payload P) *Deferred[O] {
	req := c.admit(payload)
	if ctx.Done() == nil || req.d.Settled() {
		return req.d
	}
	go func() {
		select {
		case <-req.d.Done():
		case <-ctx.Done():
			c.withdraw(req)
			var zero O
			if req.d.settle(zero, ErrCanceled) {
				c.log.Debug("request canceled", "id", req.ID)
			}
		}
	}()
	return req.d
}

// admit creates the request and places it according to the overlap
// policy. Requests that cannot be admitted are settled with ErrBusy
// before admit returns.
func (c *Coordinator[P, O]) admit(payload P) *Request[P, O] {
	req := &Request[P, O]{
		ID:      uuid.NewString(),
		Payload: payload,
		At:      time.Now(),
		d:       newDeferred[O](),
	}

	c.mu.Lock()
	var displaced *Request[P, O]
	switch {
	case c.current == nil:
		c.current = req
	case c.policy == PolicyQueue:
		if c.queueCap > 0 && len(c.queue) >= c.queueCap {
			c.mu.Unlock()
			var zero O
			req.d.settle(zero, ErrBusy)
			c.log.Debug("request refused, queue full", "id", req.ID, "capacity", c.queueCap)
			return req
		}
		c.queue = append(c.queue, req)
	case c.policy == PolicyReject:
		c.mu.Unlock()
		var zero O
		req.d.settle(zero, ErrBusy)
		c.log.Debug("request refused, busy", "id", req.ID)
		return req
	default: // PolicyReplace
		displaced = c.current
		c.current = req
	}
	c.mu.Unlock()

	if displaced != nil {
		var zero O
		displaced.d.settle(zero, ErrReplaced)
		c.log.Debug("request displaced", "id", displaced.ID, "by", req.ID)
	}
	c.log.Debug("request pending", "id", req.ID, "policy", c.policy)
	c.pulse()
	return req
}

// Resolve settles the pending request with outcome and clears it,
// promoting the next queued request if any. It reports whether a request
// was pending; resolving with nothing pending is a no-op.
func (c *Coordinator[P, O]) Resolve(outcome O) bool {
	return c.finish("", outcome, nil)
}

// ResolveID settles the pending request only if its ID matches, so an
// answer cannot land on a request that displaced the one the user saw.
func (c *Coordinator[P, O]) ResolveID(id string, outcome O) bool {
	return c.finish(id, outcome, nil)
}

// RejectPending settles the pending request with an error instead of an
// outcome. A nil err is recorded as ErrShutdown.
func (c *Coordinator[P, O]) RejectPending(err error) bool {
	if err == nil {
		err = ErrShutdown
	}
	var zero O
	return c.finish("", zero, err)
}

// finish settles the current request; an empty id matches any request.
func (c *Coordinator[P, O]) finish(id string, outcome O, err error) bool {
	c.mu.Lock()
	req := c.current
	if req == nil || (id != "" && req.ID != id) {
		c.mu.Unlock()
		return false
	}
	c.promoteLocked()
	c.mu.Unlock()

	req.d.settle(outcome, err)
	c.log.Debug("request settled", "id", req.ID, "err", err)
	c.pulse()
	return true
}

// withdraw removes req from the slot or queue if it is still held.
func (c *Coordinator[P, O]) withdraw(req *Request[P, O]) {
	c.mu.Lock()
	switch {
	case c.current == req:
		c.promoteLocked()
	default:
		for i, q := range c.queue {
			if q == req {
				c.queue = append(c.queue[:i], c.queue[i+1:]...)
				break
			}
		}
	}
	c.mu.Unlock()
	c.pulse()
}

func (c *Coordinator[P, O]) promoteLocked() {
	if len(c.queue) > 0 {
		c.current = c.queue[0]
		c.queue = c.queue[1:]
	} else {
		c.current = nil
	}
}

// Pending returns a copy of the current request. It is a pure projection
// of coordinator state: the UI renders a prompt iff ok is true.
func (c *Coordinator[P, O]) Pending() (Request[P, O], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		var zero Request[P, O]
		return zero, false
	}
	return *c.current, true
}

// Waiting returns the number of requests queued behind the pending one.
func (c *Coordinator[P, O]) Waiting() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.queue)
}

// Signal returns a coalescing channel that receives after every state
// change. A UI loop waits on it, then re-reads Pending. Pulses are
// dropped, never accumulated, so senders never block.
func (c *Coordinator[P, O]) Signal() <-chan struct{} {
	return c.signal
}

func (c *Coordinator[P, O]) pulse() {
	select {
	case c.signal <- struct{}{}:
	default:
	}
}
