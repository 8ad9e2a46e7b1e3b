package gridgraph

import "errors"

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates FromGrid was given a nil grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrNoPath indicates no path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// GridGraph is an immutable snapshot of a map's open cells.
// Cells are addressed by row-major index row*Cols+col.
type GridGraph struct {
	Rows, Cols int
	Conn       Connectivity
	open       []bool
	offsets    [][2]int // {dRow, dCol}
}

// Summary describes the open space of a map.
type Summary struct {
	Open       int // open cells
	Obstacles  int // obstacle cells
	Components int // connected regions of open cells
	Largest    int // size of the largest region, 0 when there is none
}
