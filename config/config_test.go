package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Theme != "auto" {
		t.Errorf("expected theme auto, got %q", cfg.Theme)
	}
	if cfg.Policy != "replace" {
		t.Errorf("expected policy replace, got %q", cfg.Policy)
	}
	if cfg.QueueCapacity != 0 {
		t.Errorf("expected unbounded queue, got %d", cfg.QueueCapacity)
	}
	if cfg.Labels.Confirm != "confirm" || cfg.Labels.Cancel != "cancel" {
		t.Errorf("unexpected default labels: %+v", cfg.Labels)
	}
}

func TestParseFull(t *testing.T) {
	cfg, err := Parse([]byte(`
theme: light
policy: queue
queue_capacity: 4
labels:
  confirm: yep
  cancel: nope
`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Theme != "light" || cfg.Policy != "queue" || cfg.QueueCapacity != 4 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Labels.Confirm != "yep" || cfg.Labels.Cancel != "nope" {
		t.Errorf("unexpected labels: %+v", cfg.Labels)
	}
}

func TestParseEmptyYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("policy: reject\n"))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if cfg.Policy != "reject" {
		t.Errorf("expected policy reject, got %q", cfg.Policy)
	}
	if cfg.Theme != "auto" || cfg.Labels.Confirm != "confirm" {
		t.Errorf("expected untouched defaults, got %+v", cfg)
	}
}

func TestParseInvalidPolicy(t *testing.T) {
	_, err := Parse([]byte("policy: maybe\n"))
	if err == nil {
		t.Fatal("expected a schema error for an invalid policy")
	}
	if !strings.Contains(err.Error(), "policy") {
		t.Errorf("expected the error to name the field, got %v", err)
	}
}

func TestParseUnknownKey(t *testing.T) {
	if _, err := Parse([]byte("them: dark\n")); err == nil {
		t.Fatal("expected a schema error for an unknown key")
	}
}

func TestParseNegativeCapacity(t *testing.T) {
	if _, err := Parse([]byte("queue_capacity: -1\n")); err == nil {
		t.Fatal("expected a schema error for a negative capacity")
	}
}

func TestParseBadYAML(t *testing.T) {
	if _, err := Parse([]byte("labels: [not a map\n")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "consent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "consent.yaml")
	if err := os.WriteFile(path, []byte("theme: dark\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected theme dark, got %q", cfg.Theme)
	}
}
