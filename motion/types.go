package motion

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadPolicy indicates run bounds that no walk could satisfy.
var ErrBadPolicy = errors.New("motion: policy requires 1 <= MinRun <= MaxRun")

// Direction is one of the four cardinal headings on a row-major grid.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
)

// All lists the four directions in clockwise order starting from Up.
var All = [4]Direction{Up, Right, Down, Left}

// deltas holds the (row, col) offset of each direction, indexed by Direction.
var deltas = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the row and column offsets of a single step in d.
func (d Direction) Delta() (dRow, dCol int) {
	return deltas[d][0], deltas[d][1]
}

// Reverse returns the 180° opposite of d.
func (d Direction) Reverse() Direction {
	return (d + 2) % 4
}

// IsReverseOf reports whether d points exactly opposite to o.
func (d Direction) IsReverseOf(o Direction) bool {
	return d.Reverse() == o
}

// IsTurnFrom reports whether d is a 90° turn relative to o.
func (d Direction) IsTurnFrom(o Direction) bool {
	return d != o && !d.IsReverseOf(o)
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Glyph returns a one-character arrow for d, used when rendering paths.
func (d Direction) Glyph() byte {
	return "^>v<"[d%4]
}

// State describes how a walk arrived at its current cell.
// The zero value is the Initial state. States are comparable and can key maps.
type State struct {
	dir Direction
	run int // 0 only for Initial
}

// Initial returns the state of a walk that has not moved yet.
func Initial() State { return State{} }

// Moving returns the state of a walk that has travelled run cells in dir.
// run must be ≥ 1; smaller values are clamped to 1.
func Moving(dir Direction, run int) State {
	if run < 1 {
		run = 1
	}

	return State{dir: dir, run: run}
}

// IsInitial reports whether no move has been made yet.
func (s State) IsInitial() bool { return s.run == 0 }

// Direction returns the current heading. Meaningless for Initial.
func (s State) Direction() Direction { return s.dir }

// Run returns the number of consecutive cells travelled in Direction (0 for Initial).
func (s State) Run() int { return s.run }

// String formats the state as "Initial" or "Right×3".
func (s State) String() string {
	if s.IsInitial() {
		return "Initial"
	}

	return fmt.Sprintf("%s×%d", s.dir, s.run)
}

// Unbounded is a MaxRun value meaning "never forced to turn".
const Unbounded = math.MaxInt

// Policy bounds the straight runs of a walk.
//
//	MinRun – cells that must be travelled in one direction before turning or stopping.
//	MaxRun – cells after which continuing straight becomes illegal.
type Policy struct {
	MinRun int
	MaxRun int
}

// NewPolicy validates and returns a Policy.
func NewPolicy(minRun, maxRun int) (Policy, error) {
	p := Policy{MinRun: minRun, MaxRun: maxRun}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate returns ErrBadPolicy (with the offending bounds) when the policy is unusable.
func (p Policy) Validate() error {
	if p.MinRun < 1 || p.MaxRun < p.MinRun {
		return fmt.Errorf("%w: MinRun=%d MaxRun=%d", ErrBadPolicy, p.MinRun, p.MaxRun)
	}

	return nil
}

// Preset policies.
var (
	// Crucible allows a turn after any run and forces one after three cells.
	Crucible = Policy{MinRun: 1, MaxRun: 3}
	// UltraCrucible needs four cells before turning or stopping and at most ten in a row.
	UltraCrucible = Policy{MinRun: 4, MaxRun: 10}
	// Free never forces a turn; with it the search degenerates to plain Dijkstra.
	Free = Policy{MinRun: 1, MaxRun: Unbounded}
)

// Presets maps preset names (as used in config files and flags) to policies.
var Presets = map[string]Policy{
	"crucible":       Crucible,
	"ultra-crucible": UltraCrucible,
	"free":           Free,
}
