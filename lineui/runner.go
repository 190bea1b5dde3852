// Package lineui answers coordinator requests in plain line mode, for
// terminals where a full-screen TUI is unavailable or unwanted.
package lineui

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/initializ/consent"
)

// Asker answers a single prompt. The default asks on the controlling
// terminal via promptui.
type Asker func(p consent.Prompt) (bool, error)

// Runner serves a coordinator's pending requests one at a time.
type Runner struct {
	c   *consent.ConfirmCoordinator
	ask Asker
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAsker replaces the terminal prompt, e.g. for tests.
func WithAsker(ask Asker) RunnerOption {
	return func(r *Runner) {
		if ask != nil {
			r.ask = ask
		}
	}
}

// NewRunner creates a runner bound to c.
func NewRunner(c *consent.ConfirmCoordinator, opts ...RunnerOption) *Runner {
	r := &Runner{c: c, ask: askConfirm}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Serve answers pending requests until ctx ends, then rejects whatever
// is still outstanding with ErrShutdown and returns ctx.Err().
func (r *Runner) Serve(ctx context.Context) error {
	for {
		// Shutdown wins over a ready signal.
		select {
		case <-ctx.Done():
			return r.shutdown(ctx)
		default:
		}

		select {
		case <-ctx.Done():
			return r.shutdown(ctx)
		case <-r.c.Signal():
			for {
				req, ok := r.c.Pending()
				if !ok {
					break
				}
				answer, err := r.ask(req.Payload)
				if err != nil {
					r.c.RejectPending(err)
					continue
				}
				// ID-matched: the request may have been displaced while
				// the user was typing.
				r.c.ResolveID(req.ID, answer)
			}
		}
	}
}

func (r *Runner) shutdown(ctx context.Context) error {
	for r.c.RejectPending(consent.ErrShutdown) {
	}
	return ctx.Err()
}

// askConfirm asks a yes/no question on the terminal.
func askConfirm(p consent.Prompt) (bool, error) {
	if p.Message != "" {
		fmt.Println(p.Message)
	}
	label := p.Title
	if p.Danger {
		label = "⚠ " + label
	}
	prompt := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}
	_, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return false, fmt.Errorf("prompt %q aborted: %w", p.Title, err)
		}
		// promptui reports a "No" answer as ErrAbort
		return false, nil
	}
	return true, nil
}
