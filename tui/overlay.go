package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/initializ/consent"
)

// Overlay projects a ConfirmCoordinator's pending request into a modal
// prompt. Hosts embed it in their model, route messages through Update,
// and append View to their own output; it renders nothing while no
// request is pending.
type Overlay struct {
	// Keys are the bindings consumed while a prompt is active. Replace
	// them (or just their help text) before the program starts.
	Keys KeyMap

	c      *consent.ConfirmCoordinator
	styles *StyleSet
	req    consent.Request[consent.Prompt, bool]
	active bool
}

// NewOverlay creates an overlay bound to c.
func NewOverlay(c *consent.ConfirmCoordinator, theme TermTheme) Overlay {
	return Overlay{
		Keys:   DefaultKeyMap(),
		c:      c,
		styles: NewStyleSet(theme),
	}
}

// Listen waits for the next coordinator state change and emits a
// SyncMsg. The host returns it from Init; Update re-arms it after every
// delivery.
func (o Overlay) Listen() tea.Cmd {
	sig := o.c.Signal()
	return func() tea.Msg {
		<-sig
		return SyncMsg{}
	}
}

// Active reports whether a prompt is currently showing.
func (o Overlay) Active() bool {
	return o.active
}

// Update handles overlay messages. Key messages are consumed only while
// a prompt is active; once the prompt clears there is no key path left
// that could settle the request twice.
func (o Overlay) Update(msg tea.Msg) (Overlay, tea.Cmd) {
	switch msg := msg.(type) {
	case SyncMsg:
		var prevID string
		if o.active {
			prevID = o.req.ID
		}
		o = o.project()
		cmds := []tea.Cmd{o.Listen()}
		if o.active && o.req.ID != prevID {
			id := o.req.ID
			cmds = append(cmds, func() tea.Msg { return PromptOpenedMsg{ID: id} })
		}
		return o, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !o.active {
			return o, nil
		}
		switch {
		case key.Matches(msg, o.Keys.Confirm):
			return o.answer(true)
		case key.Matches(msg, o.Keys.Cancel):
			return o.answer(false)
		}
	}
	return o, nil
}

// answer settles the pending request inside the key handler, then
// re-projects so a queued prompt shows in the same frame. Settlement is
// ID-matched: if the shown request was displaced meanwhile, the key
// answers nothing.
func (o Overlay) answer(outcome bool) (Overlay, tea.Cmd) {
	id := o.req.ID
	settled := o.c.ResolveID(id, outcome)
	o = o.project()
	if !settled {
		return o, nil
	}
	return o, func() tea.Msg { return PromptSettledMsg{ID: id, Outcome: outcome} }
}

func (o Overlay) project() Overlay {
	o.req, o.active = o.c.Pending()
	return o
}

// View renders the modal, or "" while nothing is pending. It is a pure
// projection and safe to call repeatedly.
func (o Overlay) View(width int) string {
	if !o.active {
		return ""
	}
	p := o.req.Payload

	boxWidth := width - 6
	if boxWidth > 64 {
		boxWidth = 64
	}
	if boxWidth < 30 {
		boxWidth = 30
	}

	title := o.styles.Title.Render(p.Title)
	box := o.styles.ModalBox
	if p.Danger {
		title = o.styles.WarningTxt.Render("⚠ " + p.Title)
		box = o.styles.DangerBox
	}

	parts := []string{title}
	if p.Message != "" {
		parts = append(parts, o.styles.Message.Render(p.Message))
	}
	parts = append(parts, "", o.hints())
	if n := o.c.Waiting(); n > 0 {
		parts = append(parts, o.styles.DimTxt.Render(fmt.Sprintf("+%d waiting", n)))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, parts...)
	return box.Width(boxWidth).Render(content)
}

func (o Overlay) hints() string {
	confirm := o.Keys.Confirm.Help()
	cancel := o.Keys.Cancel.Help()
	return fmt.Sprintf("%s %s  %s %s",
		o.styles.KbdKey.Render(confirm.Key),
		o.styles.KbdDesc.Render(confirm.Desc),
		o.styles.KbdKey.Render(cancel.Key),
		o.styles.KbdDesc.Render(cancel.Desc),
	)
}
