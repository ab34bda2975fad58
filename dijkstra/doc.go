// Package dijkstra provides plain single-source Dijkstra over the cells of a
// grid.Grid, with no movement-history rules at all.
//
// Overview:
//
//   - Moving into a cell costs that cell's value; the source cell is free.
//   - Every orthogonal neighbour is reachable from every cell, so the result is
//     the unconstrained lower bound of any motion.Policy walk, and equals the
//     search package's result under motion.Free.
//   - It is the independent baseline the constrained engine is checked against.
//
// Key features:
//
//   - ReturnPath: if enabled, returns a predecessor slice so you can rebuild each path.
//   - MaxDistance: aborts exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any cell with cost ≥ threshold as a wall.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell has at most four edges).
//   - Space: O(N) for the distance, predecessor and visited slices, plus the heap.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:         nil *grid.Grid.
//   - ErrNoSource:        Source option missing.
//   - ErrSourceOutOfGrid: Source outside the grid.
//   - ErrBadMaxDistance:  (panic) negative MaxDistance.
//   - ErrBadInfThreshold: (panic) non-positive InfEdgeThreshold.
//
// API reference:
//
//	func Dijkstra(g *grid.Grid, opts ...Option) (dist []int64, prev []int, err error)
//
//	  - dist[i]: minimal cost to reach cell i (row-major), math.MaxInt64 if unreachable.
//	  - prev[i]: row-major index of i's predecessor, -1 for the source or unreachable
//	             cells. Nil unless WithReturnPath.
package dijkstra
