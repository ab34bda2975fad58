package config

import "errors"

// Sentinel errors for run configuration validation.
var (
	// ErrConfigEmpty is returned when the config data is empty (zero bytes).
	ErrConfigEmpty = errors.New("config: configuration is empty")

	// ErrNoRuns is returned when runs is empty.
	ErrNoRuns = errors.New("config: runs must not be empty")

	// ErrRunNameDuplicate is returned when two runs share a name.
	ErrRunNameDuplicate = errors.New("config: duplicate run name")

	// ErrRunGridEmpty is returned when a run has no grid path.
	ErrRunGridEmpty = errors.New("config: run grid path is required")

	// ErrUnknownPreset is returned when policy.preset names no known policy.
	ErrUnknownPreset = errors.New("config: unknown policy preset")

	// ErrPresetAndBounds is returned when a policy sets both a preset and explicit run bounds.
	ErrPresetAndBounds = errors.New("config: policy sets both preset and min_run/max_run")

	// ErrBadTimeout is returned when timeout is not a positive Go duration.
	ErrBadTimeout = errors.New("config: timeout must be a positive duration")

	// ErrBadMaxExpansions is returned when max_expansions is negative.
	ErrBadMaxExpansions = errors.New("config: max_expansions must be non-negative")

	// ErrBadWorkers is returned when workers is negative.
	ErrBadWorkers = errors.New("config: workers must be non-negative")

	// ErrBadLogLevel is returned when log_level is not a logrus level name.
	ErrBadLogLevel = errors.New("config: unknown log level")

	// ErrBadPoint is returned when start or goal has a negative coordinate.
	ErrBadPoint = errors.New("config: coordinates must be non-negative")
)
