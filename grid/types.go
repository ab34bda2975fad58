package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/gridrun/motion"
)

// Position addresses one cell of a Grid.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Add returns p moved one step in d. The result may be off-grid.
func (p Position) Add(d motion.Direction) Position {
	dr, dc := d.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Manhattan returns the L1 distance between p and q.
func (p Position) Manhattan(q Position) int {
	return AbsDiff(p.Row, q.Row) + AbsDiff(p.Col, q.Col)
}

// DirectionTo returns the direction of a single orthogonal step from p to q.
// ok is false when q is not an orthogonal neighbour of p.
func (p Position) DirectionTo(q Position) (d motion.Direction, ok bool) {
	for _, d = range motion.All {
		if p.Add(d) == q {
			return d, true
		}
	}

	return 0, false
}

// AbsDiff returns |x - y|.
func AbsDiff[T constraints.Signed](x, y T) T {
	v := x - y
	if v < 0 {
		v = -v
	}

	return v
}

// Grid is an immutable rectangle of non-negative cell costs.
// cells is stored row-major: cells[row*width+col].
type Grid struct {
	height, width int
	cells         []int
	minCost       int
}
