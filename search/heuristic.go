package search

import "github.com/katalvlaran/gridrun/grid"

// Manhattan returns a Heuristic estimating the cost to target as the L1
// distance times the cheapest cell of g. Each remaining step costs at least
// g.MinCost(), so the estimate never overestimates; on a grid containing a
// zero-cost cell it degenerates to zero (plain Dijkstra).
func Manhattan(g *grid.Grid, target grid.Position) Heuristic {
	unit := int64(g.MinCost())

	return func(p grid.Position) int64 {
		return int64(p.Manhattan(target)) * unit
	}
}

// WithManhattan switches to A* ordering towards target using Manhattan(g, target).
func WithManhattan(g *grid.Grid, target grid.Position) Option {
	return WithHeuristic(Manhattan(g, target))
}
