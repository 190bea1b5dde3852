package consent

import (
	"context"
	"fmt"
)

// scopeKey is parameterized so coordinators with different payload or
// outcome types coexist in one context without colliding.
type scopeKey[P, O any] struct{}

// NewContext returns a copy of ctx carrying c. Any call site below the
// scope can recover the coordinator with FromContext, while exactly one
// render location projects its pending state.
func NewContext[P, O any](ctx context.Context, c *Coordinator[P, O]) context.Context {
	return context.WithValue(ctx, scopeKey[P, O]{}, c)
}

// FromContext returns the coordinator installed by NewContext for the
// same payload and outcome types. Calling it outside a scope is a usage
// error and fails immediately with ErrNoScope; it never returns a nil
// coordinator silently.
func FromContext[P, O any](ctx context.Context) (*Coordinator[P, O], error) {
	c, ok := ctx.Value(scopeKey[P, O]{}).(*Coordinator[P, O])
	if !ok {
		return nil, fmt.Errorf("%w: wrap the context with consent.NewContext first", ErrNoScope)
	}
	return c, nil
}

// MustFromContext is FromContext for wiring code where a missing scope
// is a programming error. It panics with the FromContext error.
func MustFromContext[P, O any](ctx context.Context) *Coordinator[P, O] {
	c, err := FromContext[P, O](ctx)
	if err != nil {
		panic(err)
	}
	return c
}
