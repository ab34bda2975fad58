// Package search finds the minimum-cost walk across a grid.Grid when the legal
// moves depend on how far the walk has already gone in a straight line.
//
// Overview:
//
//   - The search runs over the product space of (cell, motion.State): the same
//     cell reached facing Right after two steps and facing Down after one step
//     are different vertices, because their legal continuations differ.
//   - Entering a cell costs that cell's value; the start cell is never paid for.
//   - A walk may only end on a goal cell when its policy lets it stop there
//     (motion.Policy.CanStop), so a walk that has just turned into the goal
//     under a MinRun>1 policy keeps going.
//   - Ordering is plain Dijkstra by default, or A* when a Heuristic is supplied.
//     WithManhattan installs Manhattan distance × the grid's cheapest cell,
//     which never overestimates and therefore never changes the optimum.
//
// API reference:
//
//	func Solve(
//	    g *grid.Grid,
//	    start grid.Position,
//	    goal Goal,
//	    p motion.Policy,
//	    opts ...Option,
//	) (Result, error)
//
//	  - WithReturnPath():        fill Result.Path / Result.Nodes.
//	  - WithHeuristic(h):        A* ordering with an admissible estimate h.
//	  - WithManhattan(g, t):     A* ordering towards a single target cell t.
//	  - WithContext(ctx):        stop with ErrDeadlineExceeded when ctx is done.
//	  - WithMaxExpansions(n):    stop with ErrDeadlineExceeded after n expansions.
//	  - WithLogger(l):           debug tracing through a logrus.FieldLogger.
//
// Complexity:
//
//   - Let S = W×H×4×MaxRun product vertices. Time O(S log S), memory O(S).
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid, ErrNilGoal:  missing inputs.
//   - ErrInvalidStart:         start outside the grid; the search never starts.
//   - motion.ErrBadPolicy:     run bounds that make no sense.
//   - ErrNoPath:               the frontier emptied without a stoppable goal
//     arrival. This is an ordinary answer, not a failure of the engine.
//   - ErrDeadlineExceeded:     the context ended or the expansion budget ran out;
//     the search is incomplete, so no cost is reported.
//
// Thread safety:
//
//   - Each Solve call owns its frontier and cost map. A Grid may be shared by
//     any number of concurrent Solve calls as long as nothing mutates it.
package search
