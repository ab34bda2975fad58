// Package gridrun finds cheapest routes across weighted grids when the
// mover is constrained by how long it may keep going in one direction.
//
// The module is organized into small subpackages:
//
//	motion/   — directions, motion state and run-length policies (Crucible, UltraCrucible, Free)
//	grid/     — immutable rectangular cost grid, digit-grid parser and path overlay
//	search/   — state-augmented Dijkstra / A* over (position, motion state)
//	dijkstra/ — unconstrained single-source shortest paths on a grid, used as a baseline
//	batch/    — concurrent solving of many independent queries
//	config/   — YAML run files (policies, grids, limits) with validation
//	cmd/      — the gridrun command line tool
//
// Quick example:
//
//	g, _ := grid.ParseDigits([]string{"2413", "3215", "3255"})
//	res, err := search.Solve(g, grid.Position{}, search.At(g.BottomRight()),
//		motion.Crucible, search.WithManhattan(g, g.BottomRight()))
//	if err != nil {
//		// errors.Is(err, search.ErrNoPath) when the goal cannot be reached
//	}
//	fmt.Println(res.Cost)
package gridrun
