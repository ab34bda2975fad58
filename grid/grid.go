package grid

import (
	"fmt"

	"github.com/katalvlaran/gridrun/motion"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of costs,
// indexed costs[row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrNegativeCost.
// Complexity: O(W×H) time and memory.
func NewGrid(costs [][]int) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])
	cells := make([]int, 0, h*w)
	minCost := costs[0][0]
	for r, row := range costs {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCost, r, c, v)
			}
			if v < minCost {
				minCost = v
			}
			cells = append(cells, v)
		}
	}

	return &Grid{height: h, width: w, cells: cells, minCost: minCost}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// MinCost returns the smallest cell cost in the grid.
func (g *Grid) MinCost() int { return g.minCost }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// Cost returns the cost of entering p. p must be in bounds.
func (g *Grid) Cost(p Position) int {
	return g.cells[g.Index(p)]
}

// CostAt returns the cost of the cell with row-major index idx.
func (g *Grid) CostAt(idx int) int {
	return g.cells[idx]
}

// Step returns the neighbour of p in direction d, and false when it falls off the grid.
func (g *Grid) Step(p Position, d motion.Direction) (Position, bool) {
	q := p.Add(d)

	return q, g.InBounds(q)
}

// Index maps p to its row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Row*g.width + p.Col
}

// PositionAt converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) PositionAt(idx int) Position {
	return Position{Row: idx / g.width, Col: idx % g.width}
}

// BottomRight returns the position of the last cell.
func (g *Grid) BottomRight() Position {
	return Position{Row: g.height - 1, Col: g.width - 1}
}

// PathCost sums the cost of every cell in path except the first, which is
// where the walk starts and is never paid for.
func (g *Grid) PathCost(path []Position) int64 {
	var total int64
	for i := 1; i < len(path); i++ {
		total += int64(g.Cost(path[i]))
	}

	return total
}
