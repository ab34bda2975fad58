package search

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to Solve.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("search: goal predicate is nil")

	// ErrInvalidStart indicates that the start position lies outside the grid.
	ErrInvalidStart = errors.New("search: start position out of bounds")

	// ErrNoPath indicates that no legal walk reaches a goal cell in a stoppable state.
	ErrNoPath = errors.New("search: no path found")

	// ErrDeadlineExceeded indicates that the search was cut short before it could
	// either find the optimum or prove that none exists.
	ErrDeadlineExceeded = errors.New("search: deadline exceeded")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be non-negative")
)

// Goal reports whether a walk may finish at p (subject to the policy's stop rule).
type Goal func(p grid.Position) bool

// At returns a Goal satisfied only by target.
func At(target grid.Position) Goal {
	return func(p grid.Position) bool { return p == target }
}

// BottomRight returns a Goal satisfied only by the last cell of g.
func BottomRight(g *grid.Grid) Goal {
	return At(g.BottomRight())
}

// Heuristic estimates the remaining cost from p to the goal.
// It must never overestimate, or Solve may return a non-optimal cost.
type Heuristic func(p grid.Position) int64

// Node is one vertex of the search graph: a cell plus the motion history that led there.
type Node struct {
	Pos   grid.Position
	State motion.State
}

// Result is the outcome of a successful search.
//
//	Cost     – sum of the costs of every cell entered (start excluded).
//	Path     – positions from start to goal inclusive; nil unless WithReturnPath.
//	Nodes    – the same walk with motion states; nil unless WithReturnPath.
//	Expanded – number of product vertices expanded.
type Result struct {
	Cost     int64
	Path     []grid.Position
	Nodes    []Node
	Expanded int
}

// Options configures Solve.
//
//	ReturnPath    – reconstruct the walk on success.
//	Heuristic     – optional admissible estimate; nil means plain Dijkstra ordering.
//	Ctx           – cancellation; checked every ctxCheckInterval expansions.
//	MaxExpansions – 0 means unlimited.
//	Logger        – debug tracing; discards by default.
type Options struct {
	ReturnPath    bool
	Heuristic     Heuristic
	Ctx           context.Context
	MaxExpansions int
	Logger        logrus.FieldLogger
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath enables reconstruction of the optimal walk.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithHeuristic switches the frontier to A* ordering using h.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		o.Heuristic = h
	}
}

// WithContext makes Solve stop with ErrDeadlineExceeded once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions bounds the number of vertices Solve may expand.
// A negative n makes Solve panic with ErrBadMaxExpansions when the option is applied.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes debug tracing to l.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns plain Dijkstra ordering, no path, no bounds and a silent logger.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
