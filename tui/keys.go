package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the bindings the overlay listens for while a prompt is
// active. Keys are only consumed while a prompt is showing, so hosts can
// reuse them freely elsewhere.
type KeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultKeyMap returns the standard confirm/cancel bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("y", "enter"),
			key.WithHelp("y/enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "cancel"),
		),
	}
}
