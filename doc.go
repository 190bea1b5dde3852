// Package consent bridges imperative call sites that need a user decision
// with a declarative rendering layer that can only react to state.
//
// A Coordinator holds at most one pending request at a time. Request
// returns a Deferred immediately; the caller awaits it wherever it likes.
// A UI (see the tui package for Bubble Tea, or lineui for plain
// terminals) projects the pending request into a prompt and settles the
// deferred through Resolve when the user answers. Every request is
// settled exactly once.
//
// The zero-config confirm flavor pairs a Prompt payload with a boolean
// outcome:
//
//	c := consent.NewConfirm()
//	d := c.Request(consent.NewPrompt("Increment counter?", ""))
//	ok, err := d.Wait(ctx)
//
// Overlapping requests are governed by an explicit Policy: replace
// (default), queue, or reject. A coordinator can be carried in a
// context.Context so any call site under one mounted scope can issue
// requests; see NewContext and FromContext.
package consent
