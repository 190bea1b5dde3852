package cmd

import (
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	orig := cfgFile
	t.Cleanup(func() { cfgFile = orig })
	cfgFile = filepath.Join(t.TempDir(), "consent.yaml")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig error: %v", err)
	}
	if cfg.Policy != "replace" {
		t.Errorf("expected default policy, got %q", cfg.Policy)
	}
}
