package consent

// Prompt is the payload for the boolean confirm/cancel flavor. The
// coordinator never looks inside it; the fields exist for the rendering
// layer.
type Prompt struct {
	// Title is the short question, e.g. "Increment counter?".
	Title string
	// Message is optional supporting detail shown under the title.
	Message string
	// Danger marks destructive actions so the UI can style them apart.
	Danger bool
}

// NewPrompt builds a Prompt from a title and optional message.
func NewPrompt(title, message string) Prompt {
	return Prompt{Title: title, Message: message}
}

// ConfirmCoordinator pairs a Prompt payload with a boolean outcome:
// true for confirm, false for cancel.
type ConfirmCoordinator = Coordinator[Prompt, bool]

// NewConfirm creates a coordinator for boolean confirmation prompts.
func NewConfirm(opts ...Option) *ConfirmCoordinator {
	return New[Prompt, bool](opts...)
}
