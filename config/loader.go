package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader loads and parses run configuration files.
type Loader struct{}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFromFile loads and parses a run configuration from a YAML file.
// Relative grid paths are resolved against the directory of path.
// File errors are wrapped with context (use errors.Is(err, os.ErrNotExist) to check for a missing file).
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg, err := l.LoadFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i := range cfg.Runs {
		if !filepath.IsAbs(cfg.Runs[i].Grid) {
			cfg.Runs[i].Grid = filepath.Join(dir, cfg.Runs[i].Grid)
		}
	}

	return cfg, nil
}

// LoadFromBytes parses a run configuration from raw YAML bytes.
// Unknown keys are rejected. Empty data returns ErrConfigEmpty.
func (l *Loader) LoadFromBytes(data []byte) (*Config, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrConfigEmpty
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
