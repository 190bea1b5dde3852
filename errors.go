package consent

import "errors"

var (
	// ErrNoScope is returned by FromContext when the context carries no
	// coordinator for the requested payload/outcome types.
	ErrNoScope = errors.New("consent: no coordinator in context")

	// ErrReplaced rejects a deferred whose request was displaced by a
	// newer request under PolicyReplace.
	ErrReplaced = errors.New("consent: request displaced by a newer request")

	// ErrBusy rejects a deferred that could not be admitted: another
	// request is pending under PolicyReject, or the queue is full.
	ErrBusy = errors.New("consent: a request is already pending")

	// ErrCanceled rejects a deferred whose RequestContext context ended
	// before the user answered.
	ErrCanceled = errors.New("consent: request canceled")

	// ErrShutdown rejects deferreds that were still outstanding when the
	// serving side stopped.
	ErrShutdown = errors.New("consent: coordinator shut down")

	// ErrPending is returned by Deferred.Outcome before settlement.
	ErrPending = errors.New("consent: request not yet settled")
)
