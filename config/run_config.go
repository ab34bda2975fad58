// Package config loads the YAML file describing one or more search runs.
//
// Example:
//
//	log_level: info
//	workers: 2
//	runs:
//	  - name: part1
//	    grid: input.txt        # relative to the config file
//	    policy: {preset: crucible}
//	    heuristic: true
//	  - name: part2
//	    grid: input.txt
//	    goal: {row: 140, col: 140}
//	    policy: {min_run: 4, max_run: 10}
//	    timeout: 5s
package config

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

// Config is the root of a run configuration file.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
	Runs     []Run  `yaml:"runs"`
}

// Run describes one search.
type Run struct {
	Name          string     `yaml:"name"`
	Grid          string     `yaml:"grid"`
	Start         *Point     `yaml:"start"`
	Goal          *Point     `yaml:"goal"` // nil = bottom-right cell
	Policy        PolicySpec `yaml:"policy"`
	Heuristic     bool       `yaml:"heuristic"`
	ReturnPath    bool       `yaml:"path"`
	Timeout       string     `yaml:"timeout"`
	MaxExpansions int        `yaml:"max_expansions"`
}

// Point is a (row, col) pair as written in YAML.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Position converts p to a grid.Position.
func (p Point) Position() grid.Position {
	return grid.Position{Row: p.Row, Col: p.Col}
}

// PolicySpec selects a motion.Policy by preset name or by explicit bounds.
// An empty spec means the crucible preset.
type PolicySpec struct {
	Preset string `yaml:"preset"`
	MinRun int    `yaml:"min_run"`
	MaxRun int    `yaml:"max_run"`
}

// Resolve returns the motion.Policy the spec describes.
// A zero MaxRun with a non-zero MinRun means "unbounded".
func (s PolicySpec) Resolve() (motion.Policy, error) {
	hasBounds := s.MinRun != 0 || s.MaxRun != 0
	switch {
	case s.Preset != "" && hasBounds:
		return motion.Policy{}, ErrPresetAndBounds
	case s.Preset != "":
		p, ok := motion.Presets[s.Preset]
		if !ok {
			return motion.Policy{}, fmt.Errorf("%w: %q", ErrUnknownPreset, s.Preset)
		}
		return p, nil
	case !hasBounds:
		return motion.Crucible, nil
	}
	maxRun := s.MaxRun
	if maxRun == 0 {
		maxRun = motion.Unbounded
	}

	return motion.NewPolicy(s.MinRun, maxRun)
}

// TimeoutDuration parses Timeout; an empty string means no timeout (0).
func (r Run) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadTimeout, r.Timeout, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrBadTimeout, r.Timeout)
	}

	return d, nil
}

// Level parses LogLevel; an empty string means logrus.InfoLevel.
func (c Config) Level() (logrus.Level, error) {
	if c.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return lvl, nil
}
