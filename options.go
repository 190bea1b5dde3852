package consent

import (
	"fmt"
	"log/slog"
	"strings"
)

// Policy decides what happens when Request is called while another
// request is already pending.
type Policy int

const (
	// PolicyReplace displaces the pending request. Its deferred is
	// rejected with ErrReplaced rather than abandoned.
	PolicyReplace Policy = iota
	// PolicyQueue holds new requests in FIFO order behind the pending one.
	PolicyQueue
	// PolicyReject refuses new requests with ErrBusy while one is pending.
	PolicyReject
)

// String returns the policy name as accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case PolicyReplace:
		return "replace"
	case PolicyQueue:
		return "queue"
	case PolicyReject:
		return "reject"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy converts a policy name (as used in config files and flags)
// into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "replace":
		return PolicyReplace, nil
	case "queue":
		return PolicyQueue, nil
	case "reject":
		return PolicyReject, nil
	}
	return 0, fmt.Errorf("invalid policy %q: must be replace, queue, or reject", s)
}

type settings struct {
	policy   Policy
	queueCap int
	logger   *slog.Logger
}

// Option configures a Coordinator.
type Option func(*settings)

// WithPolicy sets the overlap policy. The default is PolicyReplace.
func WithPolicy(p Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithQueueCapacity bounds the queue under PolicyQueue. Zero or negative
// means unbounded. Requests that would overflow are rejected with ErrBusy.
func WithQueueCapacity(n int) Option {
	return func(s *settings) { s.queueCap = n }
}

// WithLogger sets a structured logger for request lifecycle events.
// The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}
