package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/initializ/consent"
)

func keyRunes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestOverlayViewEmptyWhenIdle(t *testing.T) {
	c := consent.NewConfirm()
	o := NewOverlay(c, DarkTheme)

	if o.View(80) != "" {
		t.Error("expected empty view while nothing is pending")
	}

	// Keys are ignored while idle: nothing to settle, nothing pending after.
	o, cmd := o.Update(keyRunes('y'))
	if cmd != nil {
		t.Error("expected no command for a key while idle")
	}
	if o.Active() {
		t.Error("overlay must not activate from a key press")
	}
}

func TestOverlayShowsPendingPrompt(t *testing.T) {
	c := consent.NewConfirm()
	o := NewOverlay(c, DarkTheme)

	listen := o.Listen()
	c.Request(consent.NewPrompt("Increment counter?", "The counter is at 0."))

	// The buffered pulse makes Listen return without blocking.
	if _, ok := listen().(SyncMsg); !ok {
		t.Fatal("expected Listen to emit a SyncMsg")
	}

	o, _ = o.Update(SyncMsg{})
	if !o.Active() {
		t.Fatal("expected an active prompt after sync")
	}
	view := o.View(80)
	if !strings.Contains(view, "Increment counter?") {
		t.Errorf("expected view to contain the title, got %q", view)
	}
	if !strings.Contains(view, "The counter is at 0.") {
		t.Errorf("expected view to contain the message, got %q", view)
	}
}

func TestOverlayConfirmSettlesTrue(t *testing.T) {
	c := consent.NewConfirm()
	o := NewOverlay(c, DarkTheme)

	d := c.Request(consent.NewPrompt("Increment counter?", ""))
	o, _ = o.Update(SyncMsg{})

	o, cmd := o.Update(keyRunes('y'))
	if cmd == nil {
		t.Fatal("expected a settled message command")
	}
	settled, ok := cmd().(PromptSettledMsg)
	if !ok || !settled.Outcome {
		t.Fatalf("expected PromptSettledMsg with Outcome true, got %#v", settled)
	}

	out, err := d.Outcome()
	if err != nil || !out {
		t.Errorf("expected deferred to settle true, got %v/%v", out, err)
	}
	if o.Active() {
		t.Error("expected overlay to clear after the answer")
	}
	if o.View(80) != "" {
		t.Error("expected empty view after the answer")
	}
}

func TestOverlayCancelSettlesFalse(t *testing.T) {
	c := consent.NewConfirm()
	o := NewOverlay(c, DarkTheme)

	d := c.Request(consent.NewPrompt("Increment counter?", ""))
	o, _ = o.Update(SyncMsg{})

	o, cmd := o.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a settled message command")
	}
	if settled := cmd().(PromptSettledMsg); settled.Outcome {
		t.Error("expected Outcome false for cancel")
	}

	out, err := d.Outcome()
	if err != nil || out {
		t.Errorf("expected deferred to settle false, got %v/%v", out, err)
	}
	if o.Active() {
		t.Error("expected overlay to clear after the answer")
	}
}

func TestOverlayShowsNextQueuedPrompt(t *testing.T) {
	c := consent.NewConfirm(consent.WithPolicy(consent.PolicyQueue))
	o := NewOverlay(c, DarkTheme)

	c.Request(consent.NewPrompt("first?", ""))
	c.Request(consent.NewPrompt("second?", ""))
	o, _ = o.Update(SyncMsg{})

	if !strings.Contains(o.View(80), "+1 waiting") {
		t.Error("expected the waiting badge while a request is queued")
	}

	o, _ = o.Update(keyRunes('y'))
	if !o.Active() {
		t.Fatal("expected the queued prompt to show immediately")
	}
	if view := o.View(80); !strings.Contains(view, "second?") {
		t.Errorf("expected the second prompt, got %q", view)
	}
}

func TestOverlayDangerStyling(t *testing.T) {
	c := consent.NewConfirm()
	o := NewOverlay(c, DarkTheme)

	prompt := consent.NewPrompt("Reset counter to zero?", "")
	prompt.Danger = true
	c.Request(prompt)
	o, _ = o.Update(SyncMsg{})

	if !strings.Contains(o.View(80), "⚠") {
		t.Error("expected the danger marker in the view")
	}
}
