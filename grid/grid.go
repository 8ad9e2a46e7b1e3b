package grid

import (
	"fmt"
	"math"
)

// New allocates a rows×cols grid with every cell set to Open.
// Returns ErrBadDimension if either dimension is not positive and
// ErrAllocation if rows×cols overflows int or exceeds MaxCells.
// Complexity: O(R×C) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrBadDimension)
	}
	if rows > math.MaxInt/cols || rows*cols > MaxCells {
		return nil, fmt.Errorf("New(%d, %d): %w", rows, cols, ErrAllocation)
	}
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = Open
	}

	return &Grid{rows: rows, cols: cols, cells: cells}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// At returns the marker at (row, col). The caller guarantees the
// coordinates are in range.
// Complexity: O(1).
func (g *Grid) At(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Set stores c at (row, col). Not synchronized.
// Complexity: O(1).
func (g *Grid) Set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// Row returns the read-only view of one row. The slice aliases the grid
// buffer and must not be modified.
func (g *Grid) Row(row int) []Cell {
	start := row * g.cols
	return g.cells[start : start+g.cols : start+g.cols]
}

// Fill stamps c over the half-open rectangle [r0,r1)×[c0,c1).
// The rectangle must already be clipped to the grid.
// Complexity: O((r1-r0)×(c1-c0)).
func (g *Grid) Fill(r0, c0, r1, c1 int, c Cell) {
	for r := r0; r < r1; r++ {
		row := g.cells[r*g.cols : (r+1)*g.cols]
		for col := c0; col < c1; col++ {
			row[col] = c
		}
	}
}

// Count returns how many cells hold c.
// Complexity: O(R×C).
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// index maps (row, col) to a row-major offset: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major offset back to (row, col).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.cols, idx % g.cols
}
