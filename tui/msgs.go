package tui

// SyncMsg tells the overlay to re-read the coordinator's pending state.
// Listen emits it whenever the coordinator signals a change; tests can
// inject it directly.
type SyncMsg struct{}

// PromptOpenedMsg is emitted after a sync that found a prompt to show.
type PromptOpenedMsg struct {
	// ID is the pending request's ID.
	ID string
}

// PromptSettledMsg is emitted after the user answered a prompt. The host
// model reacts to the outcome here (or awaits the deferred it holds).
type PromptSettledMsg struct {
	// ID is the settled request's ID.
	ID string
	// Outcome is true for confirm, false for cancel.
	Outcome bool
}
