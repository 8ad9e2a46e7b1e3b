package obstacle_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridmap/grid"
	"github.com/katalvlaran/gridmap/obstacle"
)

// newGrid is a test helper that allocates an n×n grid or fails the test.
func newGrid(t *testing.T, n int) *grid.Grid {
	t.Helper()
	g, err := grid.New(n, n)
	require.NoError(t, err)
	return g
}

// TestNewPlacer_Errors checks constructor validation.
func TestNewPlacer_Errors(t *testing.T) {
	g := newGrid(t, 8)
	cases := []struct {
		name    string
		g       *grid.Grid
		maxSize int
		budget  *obstacle.Budget
		err     error
	}{
		{"NilGrid", nil, 2, obstacle.NewBudget(1), obstacle.ErrNilGrid},
		{"NilBudget", g, 2, nil, obstacle.ErrNilBudget},
		{"ZeroMax", g, 0, obstacle.NewBudget(1), obstacle.ErrBadMaxSize},
		{"MaxEqualsDim", g, 8, obstacle.NewBudget(1), obstacle.ErrBadMaxSize},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := obstacle.NewPlacer(tc.g, tc.maxSize, tc.budget)
			if !errors.Is(err, tc.err) {
				t.Errorf("NewPlacer error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestPlace_ExhaustsBudget verifies that the number of stamped rectangles
// equals the initial budget for one and for many placers.
func TestPlace_ExhaustsBudget(t *testing.T) {
	for _, placers := range []int{1, 2, 7} {
		g := newGrid(t, 64)
		b := obstacle.NewBudget(300)
		p, err := obstacle.NewPlacer(g, 6, b, obstacle.WithSeed(99), obstacle.WithPlacers(placers))
		require.NoError(t, err)

		require.Equal(t, 300, p.Place(), "placers=%d", placers)
		require.Zero(t, b.Remaining(), "placers=%d", placers)
		require.Positive(t, g.Count(grid.Obstacle))
	}
}

// TestPlace_RectanglesClipped observes every stamped rectangle and checks
// that it is non-empty, inside the grid and away from row/col 0.
func TestPlace_RectanglesClipped(t *testing.T) {
	const n, maxSize = 16, 15
	g := newGrid(t, n)

	var rects []obstacle.Rect
	p, err := obstacle.NewPlacer(g, maxSize, obstacle.NewBudget(200),
		obstacle.WithSeed(7),
		obstacle.WithPlacers(4),
		obstacle.WithStampHook(func(r obstacle.Rect) { rects = append(rects, r) }),
	)
	require.NoError(t, err)
	require.Equal(t, 200, p.Place())
	require.Len(t, rects, 200)

	for _, r := range rects {
		assert.GreaterOrEqual(t, r.Row, 1)
		assert.GreaterOrEqual(t, r.Col, 1)
		assert.LessOrEqual(t, r.EndRow, n)
		assert.LessOrEqual(t, r.EndCol, n)
		assert.Positive(t, r.Height())
		assert.Positive(t, r.Width())
		assert.Less(t, r.Height(), maxSize)
		assert.Less(t, r.Width(), maxSize)
	}
	for i := 0; i < n; i++ {
		require.Equal(t, grid.Open, g.At(0, i), "row 0 must stay open")
		require.Equal(t, grid.Open, g.At(i, 0), "col 0 must stay open")
	}
}

// TestPlace_SeedDeterminism locks a single-placer run to its seed.
func TestPlace_SeedDeterminism(t *testing.T) {
	run := func(seed int64) string {
		g := newGrid(t, 32)
		p, err := obstacle.NewPlacer(g, 5, obstacle.NewBudget(40), obstacle.WithSeed(seed))
		require.NoError(t, err)
		p.Place()
		return g.String()
	}
	require.Equal(t, run(42), run(42))
	require.NotEqual(t, run(42), run(43))
}

// TestPlace_DegenerateRanges covers maxSize == 1 on a 2×2 grid, where
// every draw range is empty and each obstacle resolves to the cell (1,1).
func TestPlace_DegenerateRanges(t *testing.T) {
	g := newGrid(t, 2)
	p, err := obstacle.NewPlacer(g, 1, obstacle.NewBudget(5), obstacle.WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, err)

	require.Equal(t, 5, p.Place())
	require.Equal(t, ". . \n. @ \n", g.String())
}

// TestRun_StopsOnEmptyBudget confirms that a worker exits at once when the
// budget is already zero.
func TestRun_StopsOnEmptyBudget(t *testing.T) {
	g := newGrid(t, 8)
	p, err := obstacle.NewPlacer(g, 3, obstacle.NewBudget(0))
	require.NoError(t, err)
	require.Zero(t, p.Run(rand.New(rand.NewSource(1))))
	require.Zero(t, g.Count(grid.Obstacle))
}

// TestOptions_Panics checks that option constructors reject nonsense.
func TestOptions_Panics(t *testing.T) {
	require.Panics(t, func() { obstacle.WithRand(nil) })
	require.Panics(t, func() { obstacle.WithPlacers(0) })
	require.Panics(t, func() { obstacle.WithStampHook(nil) })
}
