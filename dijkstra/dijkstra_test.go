// Package dijkstra_test contains unit tests for the grid Dijkstra baseline.
// These tests validate input checking, basic distances, walls (InfEdgeThreshold),
// MaxDistance and path reconstruction.
package dijkstra_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridrun/dijkstra"
	"github.com/katalvlaran/gridrun/grid"
)

func mustGrid(t *testing.T, rows ...string) *grid.Grid {
	t.Helper()
	g, err := grid.ParseDigits(rows)
	require.NoError(t, err)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests
// ------------------------------------------------------------------------

func TestDijkstra_NilGrid(t *testing.T) {
	_, _, err := dijkstra.Dijkstra(nil, dijkstra.Source(grid.Position{}))
	if !errors.Is(err, dijkstra.ErrNilGrid) {
		t.Fatalf("Expected ErrNilGrid, got %v", err)
	}
}

func TestDijkstra_NoSource(t *testing.T) {
	g := mustGrid(t, "12")
	_, _, err := dijkstra.Dijkstra(g)
	if !errors.Is(err, dijkstra.ErrNoSource) {
		t.Fatalf("Expected ErrNoSource, got %v", err)
	}
}

func TestDijkstra_SourceOutOfGrid(t *testing.T) {
	g := mustGrid(t, "12")
	_, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Position{Row: 1}))
	if !errors.Is(err, dijkstra.ErrSourceOutOfGrid) {
		t.Fatalf("Expected ErrSourceOutOfGrid, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	g := mustGrid(t, "12")
	src := dijkstra.Source(grid.Position{})
	require.Panics(t, func() { _, _, _ = dijkstra.Dijkstra(g, src, dijkstra.WithMaxDistance(-1)) })
	require.Panics(t, func() { _, _, _ = dijkstra.Dijkstra(g, src, dijkstra.WithInfEdgeThreshold(0)) })
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Distances(t *testing.T) {
	g := mustGrid(t,
		"131",
		"191",
		"111",
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Position{}))
	require.NoError(t, err)
	require.Nil(t, prev, "prev must be nil without WithReturnPath")

	want := []int64{
		0, 3, 4,
		1, 10, 5,
		2, 3, 4,
	}
	require.Equal(t, want, dist)
}

func TestDijkstra_PathReconstruction(t *testing.T) {
	g := mustGrid(t,
		"131",
		"191",
		"111",
	)
	dist, prev, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Position{}), dijkstra.WithReturnPath())
	require.NoError(t, err)

	target := grid.Position{Row: 0, Col: 2}
	path := dijkstra.PathTo(g, dist, prev, target)
	require.Equal(t, []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}}, path)
	require.Equal(t, dist[g.Index(target)], g.PathCost(path))
	require.Equal(t, -1, prev[0])
}

// ------------------------------------------------------------------------
// 3. Thresholds
// ------------------------------------------------------------------------

func TestDijkstra_InfEdgeThresholdWalls(t *testing.T) {
	g := mustGrid(t,
		"191",
		"191",
		"191",
	)
	dist, prev, err := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.Position{}),
		dijkstra.WithInfEdgeThreshold(9),
		dijkstra.WithReturnPath(),
	)
	require.NoError(t, err)
	far := grid.Position{Row: 0, Col: 2}
	require.Equal(t, int64(math.MaxInt64), dist[g.Index(far)], "the 9-column is a wall")
	require.Nil(t, dijkstra.PathTo(g, dist, prev, far))
	require.Equal(t, int64(2), dist[g.Index(grid.Position{Row: 2, Col: 0})])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := mustGrid(t, "11111")
	dist, _, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Position{}), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	require.Equal(t, []int64{0, 1, 2, math.MaxInt64, math.MaxInt64}, dist)
}
