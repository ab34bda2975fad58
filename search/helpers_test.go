package search_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

// loadGrid reads a digit grid from testdata.
func loadGrid(t testing.TB, name string) *grid.Grid {
	t.Helper()
	g, err := grid.LoadFile("testdata/" + name)
	require.NoError(t, err)

	return g
}

// randomGrid returns an h×w grid with costs in [lo, hi].
func randomGrid(t testing.TB, rng *rand.Rand, h, w, lo, hi int) *grid.Grid {
	t.Helper()
	costs := make([][]int, h)
	for r := range costs {
		costs[r] = make([]int, w)
		for c := range costs[r] {
			costs[r][c] = lo + rng.Intn(hi-lo+1)
		}
	}
	g, err := grid.NewGrid(costs)
	require.NoError(t, err)

	return g
}

// refState is a vertex of the exhaustive reference: dir = -1 means "not moved yet".
type refState struct {
	pos grid.Position
	dir int
	run int
}

// exhaustiveCost computes the optimum by relaxing every known vertex until
// nothing changes (Bellman–Ford style), independent of any priority order.
// It returns -1 when no stoppable goal arrival exists.
func exhaustiveCost(g *grid.Grid, start, goal grid.Position, p motion.Policy) int64 {
	dist := map[refState]int64{{pos: start, dir: -1}: 0}
	for changed := true; changed; {
		changed = false
		for s, c := range dist {
			for di, d := range motion.All {
				q := s.pos.Add(d)
				if !g.InBounds(q) {
					continue
				}
				next := refState{pos: q, dir: di, run: 1}
				switch {
				case s.dir < 0:
				case di == (s.dir+2)%4:
					continue
				case di == s.dir:
					if s.run >= p.MaxRun {
						continue
					}
					next.run = s.run + 1
				default:
					if s.run < p.MinRun {
						continue
					}
				}
				nc := c + int64(g.Cost(q))
				if old, ok := dist[next]; !ok || nc < old {
					dist[next] = nc
					changed = true
				}
			}
		}
	}

	best := int64(math.MaxInt64)
	for s, c := range dist {
		if s.pos != goal {
			continue
		}
		if s.dir >= 0 && s.run < p.MinRun {
			continue
		}
		if c < best {
			best = c
		}
	}
	if best == math.MaxInt64 {
		return -1
	}

	return best
}

// requireLegalWalk checks every structural property a reconstructed walk must have.
func requireLegalWalk(t *testing.T, g *grid.Grid, p motion.Policy, start grid.Position, path []grid.Position, cost int64) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0], "walk must begin at start")
	require.Equal(t, cost, g.PathCost(path), "summed cell costs (start excluded) must equal the reported cost")

	var runs []int
	var prevDir motion.Direction
	for i := 1; i < len(path); i++ {
		require.True(t, g.InBounds(path[i]))
		d, ok := path[i-1].DirectionTo(path[i])
		require.True(t, ok, "step %d: %v→%v is not orthogonal", i, path[i-1], path[i])
		switch {
		case i == 1:
			runs = append(runs, 1)
		case d.IsReverseOf(prevDir):
			t.Fatalf("step %d reverses %s→%s", i, prevDir, d)
		case d == prevDir:
			runs[len(runs)-1]++
		default:
			runs = append(runs, 1)
		}
		prevDir = d
	}
	for i, n := range runs {
		require.LessOrEqual(t, n, p.MaxRun, "run %d too long", i)
		require.GreaterOrEqual(t, n, p.MinRun, "run %d ended (by turn or stop) too early", i)
	}
}
