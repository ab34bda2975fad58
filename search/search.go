// Package search implements the constrained best-first search over
// (cell, motion state) pairs.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improved vertices are pushed again
//     and stale heap entries are skipped when popped (their g no longer matches best).
//   - Stale entries are detected by cost rather than by a closed set, so a
//     vertex reopened through a cheaper route is expanded again. This keeps A*
//     optimal for heuristics that are admissible but not consistent.
//   - The goal test happens on pop, not on push: the first stoppable goal popped
//     carries the minimum cost because priorities never decrease along the queue.
package search

import (
	"container/heap"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

// ctxCheckInterval is how many expansions happen between two context polls.
const ctxCheckInterval = 1024

// Solve computes the minimum total cost of any policy-legal walk from start to
// a cell satisfying goal, arriving in a state the policy allows to stop in.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. goal must be non-nil (ErrNilGoal).
//  3. p must satisfy 1 ≤ MinRun ≤ MaxRun (motion.ErrBadPolicy).
//  4. start must lie inside g (ErrInvalidStart).
//
// On failure to reach the goal Solve returns ErrNoPath; Result.Expanded is
// still filled in. With WithContext / WithMaxExpansions it may instead return
// ErrDeadlineExceeded.
func Solve(g *grid.Grid, start grid.Position, goal Goal, p motion.Policy, opts ...Option) (Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if goal == nil {
		return Result{}, ErrNilGoal
	}
	if err := p.Validate(); err != nil {
		return Result{}, err
	}
	if !g.InBounds(start) {
		return Result{}, fmt.Errorf("%w: %v not in %dx%d grid", ErrInvalidStart, start, g.Height(), g.Width())
	}

	// 3) Size the maps; MaxStates is 0 for unbounded runs.
	hint := g.Len()
	if n := p.MaxStates(); n > 0 && n < 64 {
		hint *= n
	}

	r := &runner{
		g:      g,
		policy: p,
		goal:   goal,
		opts:   cfg,
		log:    cfg.Logger.WithField("component", "search"),
		best:   make(map[Node]int64, hint),
		pq:     make(nodePQ, 0, hint/4+1),
	}
	if cfg.ReturnPath {
		r.prev = make(map[Node]Node, hint)
	}

	// 4) Seed and run
	startNode := Node{Pos: start, State: motion.Initial()}
	r.log.WithFields(logrus.Fields{
		"start":   start,
		"min_run": p.MinRun,
		"max_run": p.MaxRun,
		"astar":   cfg.Heuristic != nil,
	}).Debug("search started")

	r.push(startNode, 0)
	found, err := r.process()
	if err != nil {
		r.log.WithError(err).WithField("expanded", r.expanded).Debug("search stopped")
		return Result{Expanded: r.expanded}, err
	}

	res := Result{Cost: r.best[found], Expanded: r.expanded}
	if cfg.ReturnPath {
		res.Nodes = r.reconstruct(startNode, found)
		res.Path = make([]grid.Position, len(res.Nodes))
		for i, n := range res.Nodes {
			res.Path[i] = n.Pos
		}
	}
	r.log.WithFields(logrus.Fields{
		"cost":     res.Cost,
		"expanded": res.Expanded,
		"arrival":  found.State,
	}).Debug("search finished")

	return res, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	g        *grid.Grid         // read-only
	policy   motion.Policy      // movement rules
	goal     Goal               // goal predicate over positions
	opts     Options            // configuration
	log      logrus.FieldLogger // debug tracing
	best     map[Node]int64     // lowest accumulated cost per vertex; absent = +∞
	prev     map[Node]Node      // predecessor per vertex; nil unless ReturnPath
	pq       nodePQ             // lazy min-heap
	expanded int                // vertices expanded so far
}

// push records cost c for n and enqueues it with priority c + h(n).
func (r *runner) push(n Node, c int64) {
	r.best[n] = c
	f := c
	if r.opts.Heuristic != nil {
		f += r.opts.Heuristic(n.Pos)
	}
	heap.Push(&r.pq, &nodeItem{node: n, g: c, f: f})
}

// process pops vertices in priority order until a stoppable goal vertex
// surfaces, the frontier empties, or a bound is hit.
func (r *runner) process() (Node, error) {
	for r.pq.Len() > 0 {
		// 1) Honour cancellation and the expansion budget.
		if r.expanded%ctxCheckInterval == 0 {
			if err := r.opts.Ctx.Err(); err != nil {
				return Node{}, fmt.Errorf("%w: %w", ErrDeadlineExceeded, err)
			}
		}
		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return Node{}, fmt.Errorf("%w: expansion budget %d spent", ErrDeadlineExceeded, r.opts.MaxExpansions)
		}

		// 2) Pop and discard stale entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.g > r.best[item.node] {
			continue
		}
		r.expanded++

		// 3) Goal test on pop.
		if r.goal(item.node.Pos) && r.policy.CanStop(item.node.State) {
			return item.node, nil
		}

		// 4) Relax the legal successors.
		r.relax(item.node, item.g)
	}

	return Node{}, ErrNoPath
}

// relax tries each of the four directions from u, which currently costs gu.
func (r *runner) relax(u Node, gu int64) {
	for _, d := range motion.All {
		q, ok := r.g.Step(u.Pos, d)
		if !ok {
			continue
		}
		st, ok := r.policy.Next(u.State, d)
		if !ok {
			continue
		}
		v := Node{Pos: q, State: st}
		c := gu + int64(r.g.Cost(q))

		// Strictly better only; equal costs would just duplicate heap entries.
		if old, seen := r.best[v]; seen && c >= old {
			continue
		}
		if r.prev != nil {
			r.prev[v] = u
		}
		r.push(v, c)
	}
}

// reconstruct walks predecessors from end back to start and reverses the result.
func (r *runner) reconstruct(start, end Node) []Node {
	nodes := []Node{end}
	for at := end; at != start; {
		p, ok := r.prev[at]
		if !ok {
			break
		}
		nodes = append(nodes, p)
		at = p
	}
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}

	return nodes
}

// nodeItem is a frontier entry. g is the accumulated cost, f = g + heuristic.
type nodeItem struct {
	node Node
	g    int64
	f    int64
}

// nodePQ is a min-heap of *nodeItem ordered by f, then by larger g (deeper first).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].g > pq[j].g
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
