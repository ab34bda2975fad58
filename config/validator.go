package config

import "fmt"

// Validator checks a Config for semantic errors.
type Validator struct{}

// NewValidator creates a new configuration validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns the first problem found, wrapped with the offending run's name.
func (v *Validator) Validate(cfg *Config) error {
	if _, err := cfg.Level(); err != nil {
		return err
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrBadWorkers, cfg.Workers)
	}
	if len(cfg.Runs) == 0 {
		return ErrNoRuns
	}

	seen := make(map[string]bool, len(cfg.Runs))
	for i := range cfg.Runs {
		r := &cfg.Runs[i]
		if r.Name == "" {
			r.Name = fmt.Sprintf("run-%d", i+1)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: %q", ErrRunNameDuplicate, r.Name)
		}
		seen[r.Name] = true

		if err := v.validateRun(r); err != nil {
			return fmt.Errorf("run %q: %w", r.Name, err)
		}
	}

	return nil
}

func (v *Validator) validateRun(r *Run) error {
	if r.Grid == "" {
		return ErrRunGridEmpty
	}
	if _, err := r.Policy.Resolve(); err != nil {
		return err
	}
	if _, err := r.TimeoutDuration(); err != nil {
		return err
	}
	if r.MaxExpansions < 0 {
		return fmt.Errorf("%w: %d", ErrBadMaxExpansions, r.MaxExpansions)
	}
	for _, p := range []*Point{r.Start, r.Goal} {
		if p != nil && (p.Row < 0 || p.Col < 0) {
			return fmt.Errorf("%w: (%d,%d)", ErrBadPoint, p.Row, p.Col)
		}
	}

	return nil
}
