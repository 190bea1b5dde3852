// Package config loads consent.yaml, the optional configuration file for
// the demo binary and embedders.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

// Labels are the button/hint labels shown by the prompt frontends.
type Labels struct {
	Confirm string `yaml:"confirm"`
	Cancel  string `yaml:"cancel"`
}

// Config is the consent.yaml file contents.
type Config struct {
	// Theme selects the TUI color theme: auto, dark, or light.
	Theme string `yaml:"theme"`
	// Policy is the overlap policy: replace, queue, or reject.
	Policy string `yaml:"policy"`
	// QueueCapacity bounds the queue under the queue policy; 0 means
	// unbounded.
	QueueCapacity int `yaml:"queue_capacity"`
	// Labels override the confirm/cancel hint text.
	Labels Labels `yaml:"labels"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Theme:  "auto",
		Policy: "replace",
		Labels: Labels{Confirm: "confirm", Cancel: "cancel"},
	}
}

// Load reads and parses a consent.yaml file from the given path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading consent config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse validates raw YAML against the embedded schema and unmarshals it
// over the defaults.
func Parse(data []byte) (Config, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if raw == nil {
		return Default(), nil
	}
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func validate(raw map[string]any) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}
