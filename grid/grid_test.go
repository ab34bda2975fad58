package grid_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridrun/grid"
	"github.com/katalvlaran/gridrun/motion"
)

//----------------------------------------------------------------------------//
// NewGrid and accessors
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or negative inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]int
		err   error
	}{
		{"EmptyRows", [][]int{}, grid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, grid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, grid.ErrNonRectangular},
		{"Negative", [][]int{{1, -2}}, grid.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGrid(tc.costs)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewGrid(%v) error = %v; want %v", tc.costs, err, tc.err)
			}
		})
	}
}

// TestNewGrid_DeepCopy ensures later mutation of the input does not leak in.
func TestNewGrid_DeepCopy(t *testing.T) {
	in := [][]int{{1, 2, 3}, {4, 5, 6}}
	g, err := grid.NewGrid(in)
	require.NoError(t, err)
	in[0][0] = 9
	require.Equal(t, 1, g.Cost(grid.Position{}))
	require.Equal(t, 2, g.Height())
	require.Equal(t, 3, g.Width())
	require.Equal(t, 6, g.Len())
	require.Equal(t, 1, g.MinCost())
	require.Equal(t, grid.Position{Row: 1, Col: 2}, g.BottomRight())
}

// TestInBoundsAndStep checks bounds and single steps on a 2×3 grid.
func TestInBoundsAndStep(t *testing.T) {
	g, err := grid.NewGrid([][]int{{0, 1, 0}, {1, 0, 1}})
	require.NoError(t, err)

	for _, p := range []grid.Position{{0, 0}, {1, 2}, {1, 1}} {
		assert.True(t, g.InBounds(p), "InBounds(%v)", p)
	}
	for _, p := range []grid.Position{{0, -1}, {0, 3}, {2, 1}, {-1, 2}} {
		assert.False(t, g.InBounds(p), "InBounds(%v)", p)
	}

	_, ok := g.Step(grid.Position{}, motion.Up)
	require.False(t, ok)
	q, ok := g.Step(grid.Position{}, motion.Right)
	require.True(t, ok)
	require.Equal(t, grid.Position{Row: 0, Col: 1}, q)

	for idx := 0; idx < g.Len(); idx++ {
		p := g.PositionAt(idx)
		require.Equal(t, idx, g.Index(p))
		require.Equal(t, g.Cost(p), g.CostAt(idx))
	}
}

func TestPosition_Geometry(t *testing.T) {
	a, b := grid.Position{Row: 1, Col: 4}, grid.Position{Row: 3, Col: 1}
	require.Equal(t, 5, a.Manhattan(b))
	require.Equal(t, a.Manhattan(b), b.Manhattan(a))

	d, ok := a.DirectionTo(grid.Position{Row: 0, Col: 4})
	require.True(t, ok)
	require.Equal(t, motion.Up, d)
	_, ok = a.DirectionTo(b)
	require.False(t, ok)
	require.Equal(t, 3, grid.AbsDiff(-1, 2))
}

func TestPathCost_ExcludesStart(t *testing.T) {
	g, err := grid.NewGrid([][]int{{9, 1}, {5, 2}})
	require.NoError(t, err)
	path := []grid.Position{{0, 0}, {0, 1}, {1, 1}}
	require.Equal(t, int64(3), g.PathCost(path))
	require.Equal(t, int64(0), g.PathCost(path[:1]))
}

//----------------------------------------------------------------------------//
// Digit adapter
//----------------------------------------------------------------------------//

func TestParseDigits(t *testing.T) {
	g, err := grid.ParseDigits([]string{"241", "321\r", "325", "", ""})
	require.NoError(t, err)
	require.Equal(t, 3, g.Height())
	require.Equal(t, 3, g.Width())
	require.Equal(t, 5, g.Cost(grid.Position{Row: 2, Col: 2}))
	require.Equal(t, "241\n321\n325", g.String())
}

func TestParseDigits_LeadingBlankLines(t *testing.T) {
	g, err := grid.ParseDigits([]string{"", "\r", "19", "91"})
	require.NoError(t, err)
	require.Equal(t, 2, g.Height())
	require.Equal(t, "19\n91", g.String())

	_, err = grid.ParseDigits([]string{"19", "", "91"})
	require.ErrorIs(t, err, grid.ErrNonRectangular, "a blank line inside the grid is a ragged row")
}

func TestParseDigits_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		also  error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"OnlyBlank", []string{"", "  "}, grid.ErrEmptyGrid},
		{"Ragged", []string{"123", "12"}, grid.ErrNonRectangular},
		{"Letter", []string{"12a"}, nil},
		{"Space", []string{"1 2"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.ParseDigits(tc.lines)
			require.ErrorIs(t, err, grid.ErrMalformedGrid)
			if tc.also != nil {
				require.ErrorIs(t, err, tc.also)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("19\n91\n"), 0o600))

	g, err := grid.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 9, g.Cost(grid.Position{Row: 0, Col: 1}))

	_, err = grid.LoadFile(filepath.Join(dir, "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = grid.Read(strings.NewReader("1x\n"))
	require.ErrorIs(t, err, grid.ErrMalformedGrid)
}

func TestOverlay(t *testing.T) {
	g, err := grid.ParseDigits([]string{"111", "111"})
	require.NoError(t, err)
	path := []grid.Position{{0, 0}, {0, 1}, {1, 1}, {1, 2}}
	require.Equal(t, []string{"1>1", "1v>"}, g.Overlay(path))
}
