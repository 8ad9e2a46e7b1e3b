package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/gridmap/grid"
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// FromGrid snapshots g. Later changes to g are not seen by the graph.
// Returns ErrNilGrid if g is nil.
// Complexity: O(R×C) time and memory.
func FromGrid(g *grid.Grid, conn Connectivity) (*GridGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("FromGrid: %w", ErrNilGrid)
	}
	open := make([]bool, 0, g.Rows()*g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for _, c := range g.Row(r) {
			open = append(open, c == grid.Open)
		}
	}
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}

	return &GridGraph{Rows: g.Rows(), Cols: g.Cols(), Conn: conn, open: open, offsets: offsets}, nil
}

// InBounds reports whether (row,col) lies within the graph.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Rows && col >= 0 && col < gg.Cols
}

// IsOpen reports whether the cell at idx is traversable.
func (gg *GridGraph) IsOpen(idx int) bool { return gg.open[idx] }

func (gg *GridGraph) index(row, col int) int {
	return row*gg.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Cols, idx % gg.Cols
}
