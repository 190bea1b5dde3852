package lineui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/initializ/consent"
)

func TestRunnerServesRequests(t *testing.T) {
	c := consent.NewConfirm()
	r := NewRunner(c, WithAsker(func(p consent.Prompt) (bool, error) {
		return p.Title == "Increment counter?", nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Serve(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()

	d := c.Request(consent.NewPrompt("Increment counter?", ""))
	ok, err := d.Wait(waitCtx)
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if !ok {
		t.Error("expected the asker's yes to come through")
	}

	d = c.Request(consent.NewPrompt("Format disk?", ""))
	ok, err = d.Wait(waitCtx)
	if err != nil {
		t.Fatalf("Wait error: %v", err)
	}
	if ok {
		t.Error("expected the asker's no to come through")
	}
}

func TestRunnerShutdownRejectsOutstanding(t *testing.T) {
	c := consent.NewConfirm()
	r := NewRunner(c, WithAsker(func(consent.Prompt) (bool, error) {
		t.Error("asker must not run after shutdown")
		return false, nil
	}))

	d := c.Request(consent.NewPrompt("too late?", ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Serve(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Serve, got %v", err)
	}

	if _, err := d.Outcome(); !errors.Is(err, consent.ErrShutdown) {
		t.Errorf("expected ErrShutdown for the outstanding request, got %v", err)
	}
}

func TestRunnerAskerErrorRejectsRequest(t *testing.T) {
	boom := errors.New("no tty")
	c := consent.NewConfirm()
	r := NewRunner(c, WithAsker(func(consent.Prompt) (bool, error) {
		return false, boom
	}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = r.Serve(ctx) }()

	waitCtx, waitCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer waitCancel()

	d := c.Request(consent.NewPrompt("proceed?", ""))
	if _, err := d.Wait(waitCtx); !errors.Is(err, boom) {
		t.Errorf("expected the asker error, got %v", err)
	}
}
