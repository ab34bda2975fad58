// Package dijkstra implements Dijkstra's shortest-path algorithm on grid cells.
//
// Notes on implementation choices:
//
//   - Cells are addressed by row-major index so every per-cell table is a slice.
//   - We treat any cell with cost ≥ InfEdgeThreshold as a wall.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and
//     ignoring stale entries via the visited slice.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

// Dijkstra computes the cheapest cost of entering every cell of g from the
// Source cell, with no restriction on how the walk turns.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. Source must be set (ErrNoSource).
//  3. Source must lie inside g (ErrSourceOutOfGrid).
func Dijkstra(g *grid.Grid, opts ...Option) ([]int64, []int, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate
	if g == nil {
		return nil, nil, ErrNilGrid
	}
	if !cfg.HasSource {
		return nil, nil, ErrNoSource
	}
	if !g.InBounds(cfg.Source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrSourceOutOfGrid, cfg.Source)
	}

	// 3) Prepare data structures
	n := g.Len()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		visited: make([]bool, n),
		pq:      make(cellPQ, 0, n),
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	// 4) Run
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// PathTo rebuilds the cell sequence from the source to target using prev.
// It returns nil when target was never reached.
func PathTo(g *grid.Grid, dist []int64, prev []int, target grid.Position) []grid.Position {
	if prev == nil || !g.InBounds(target) {
		return nil
	}
	idx := g.Index(target)
	if dist[idx] == math.MaxInt64 {
		return nil
	}
	var path []grid.Position
	for at := idx; at >= 0; at = prev[at] {
		path = append(path, g.PositionAt(at))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // read-only
	options Options
	dist    []int64 // best distance per cell
	prev    []int   // predecessor per cell; nil unless ReturnPath
	visited []bool  // finalized cells
	pq      cellPQ
}

// init sets all distances to +∞ and pushes the source at distance 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		if r.prev != nil {
			r.prev[i] = -1
		}
	}
	src := r.g.Index(r.options.Source)
	r.dist[src] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &cellItem{idx: src, dist: 0})
}

// process repeatedly extracts the closest unvisited cell and relaxes its neighbours.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*cellItem)
		if r.visited[item.idx] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[item.idx] = true
		r.relax(item.idx)
	}
}

// relax tries to improve each in-bounds, passable neighbour of cell u.
func (r *runner) relax(u int) {
	from := r.g.PositionAt(u)
	for _, d := range motion.All {
		to, ok := r.g.Step(from, d)
		if !ok {
			continue
		}
		v := r.g.Index(to)
		w := int64(r.g.CostAt(v))
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		newDist := r.dist[u] + w
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &cellItem{idx: v, dist: newDist})
	}
}

// cellItem is a cell index and its tentative distance.
type cellItem struct {
	idx  int
	dist int64
}

// cellPQ is a min-heap of *cellItem ordered by dist ascending.
type cellPQ []*cellItem

// Len returns the number of items in the heap.
func (pq cellPQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq cellPQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *cellPQ) Push(x interface{}) { *pq = append(*pq, x.(*cellItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *cellPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
