package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrBadDimension indicates a non-positive row or column count.
	ErrBadDimension = errors.New("grid: rows and cols must be positive")
	// ErrAllocation indicates the requested buffer cannot be allocated.
	ErrAllocation = errors.New("grid: cannot allocate cell buffer")
	// ErrMalformedMap indicates ReadText input that is not a valid map file.
	ErrMalformedMap = errors.New("grid: malformed map text")
)

// Cell is a single marker stored in the grid.
type Cell = byte

const (
	// Open marks a traversable cell.
	Open Cell = '.'
	// Obstacle marks a blocked cell.
	Obstacle Cell = '@'
)

// MaxCells is the largest rows×cols New accepts.
const MaxCells = 1 << 30

// Grid is a fixed-size rectangular map of Open/Obstacle markers.
// cells[r*cols+c] holds the marker of (row r, col c).
type Grid struct {
	rows, cols int
	cells      []Cell
}
