package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridrun/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoSource indicates that the Source option was not supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrSourceOutOfGrid indicates that the source lies outside the grid.
	ErrSourceOutOfGrid = errors.New("dijkstra: source cell out of bounds")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would turn every cell into a wall.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting cell (required, must be in bounds).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – cells whose distance would exceed this are not explored.
// InfEdgeThreshold – cells with cost ≥ this threshold cannot be entered.
type Options struct {
	Source           grid.Position
	HasSource        bool
	ReturnPath       bool
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be called.
func Source(p grid.Position) Option {
	return func(o *Options) {
		o.Source = p
		o.HasSource = true
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// A negative max makes Dijkstra panic with ErrBadMaxDistance when the option is applied.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold marks every cell costing ≥ threshold as impassable.
// A threshold ≤ 0 makes Dijkstra panic with ErrBadInfThreshold when the option is applied.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns Options with no source, no path, and no caps.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
