package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/consent"
	"github.com/initializ/consent/config"
	"github.com/initializ/consent/tui"
)

// demoOutcomeMsg carries the settled outcome of one demo request back
// into the update loop. It is produced by a command awaiting the
// deferred, which is the way embedding code consumes answers.
type demoOutcomeMsg struct {
	action string
	ok     bool
	err    error
}

// demoModel is the counter app behind `consent demo`.
type demoModel struct {
	overlay tui.Overlay
	c       *consent.ConfirmCoordinator
	styles  *tui.StyleSet

	counter int
	status  string
	width   int
	height  int
}

func newDemoModel(c *consent.ConfirmCoordinator, theme tui.TermTheme, labels config.Labels) demoModel {
	overlay := tui.NewOverlay(c, theme)
	if labels.Confirm != "" {
		overlay.Keys.Confirm.SetHelp("y/enter", labels.Confirm)
	}
	if labels.Cancel != "" {
		overlay.Keys.Cancel.SetHelp("n/esc", labels.Cancel)
	}
	return demoModel{
		overlay: overlay,
		c:       c,
		styles:  tui.NewStyleSet(theme),
		status:  "press i to increment",
		width:   80,
		height:  24,
	}
}

// Init arms the overlay's coordinator listener.
func (m demoModel) Init() tea.Cmd {
	return m.overlay.Listen()
}

// Update handles messages for the demo.
func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case demoOutcomeMsg:
		switch {
		case msg.err != nil:
			m.status = fmt.Sprintf("%s: %s", msg.action, msg.err)
		case msg.action == "reset" && msg.ok:
			m.counter = 0
			m.status = "counter reset"
		case msg.action == "increment" && msg.ok:
			m.counter++
			m.status = "incremented"
		default:
			m.status = msg.action + " cancelled"
		}
		return m, nil

	case tea.KeyMsg:
		if m.overlay.Active() {
			overlay, cmd := m.overlay.Update(msg)
			m.overlay = overlay
			return m, cmd
		}
		switch msg.String() {
		case "i":
			d := m.c.Request(consent.NewPrompt(
				"Increment counter?",
				fmt.Sprintf("The counter is at %d.", m.counter),
			))
			return m, awaitOutcome("increment", d)
		case "r":
			prompt := consent.NewPrompt("Reset counter to zero?", "This cannot be undone.")
			prompt.Danger = true
			return m, awaitOutcome("reset", m.c.Request(prompt))
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	// Everything else (SyncMsg in particular) belongs to the overlay.
	overlay, cmd := m.overlay.Update(msg)
	m.overlay = overlay
	return m, cmd
}

// awaitOutcome consumes the deferred off the update loop.
func awaitOutcome(action string, d *consent.Deferred[bool]) tea.Cmd {
	return func() tea.Msg {
		ok, err := d.Wait(context.Background())
		return demoOutcomeMsg{action: action, ok: ok, err: err}
	}
}

// View renders the counter and, when a request is pending, the prompt.
func (m demoModel) View() string {
	out := "\n  " + m.styles.Title.Render("consent demo") + "\n\n"
	out += fmt.Sprintf("  counter: %s\n", m.styles.SuccessTxt.Render(fmt.Sprintf("%d", m.counter)))
	out += "  " + m.styles.DimTxt.Render(m.status) + "\n\n"
	out += "  " + m.styles.KbdDesc.Render("i increment · r reset · q quit") + "\n"

	if modal := m.overlay.View(m.width); modal != "" {
		out += "\n" + modal + "\n"
	}
	return out
}
