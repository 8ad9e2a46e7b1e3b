// Package render converts a contiguous band of grid rows into scaled map
// text and writes it to a shard file.
//
// Each source row becomes Scale identical output lines; each source cell
// becomes Scale copies of "<marker> ". A partition of k rows over a grid
// with C columns therefore yields k×Scale lines of C×Scale tokens.
//
// Rows are addressed with the grid's column count as stride. The tool only
// builds square grids, where this matches a rows-stride layout byte for byte.
package render

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for rendering.
var (
	// ErrInvalidPartition indicates a partition that cannot be rendered.
	ErrInvalidPartition = errors.New("render: invalid partition")
	// ErrNilGrid indicates a nil grid was passed to the renderer.
	ErrNilGrid = errors.New("render: grid is nil")
	// ErrShardIO indicates the shard file could not be created or written.
	ErrShardIO = errors.New("render: shard i/o failed")
)

// Partition assigns rows [StartRow, EndRow) of the grid to one renderer.
// It is read-only once built.
type Partition struct {
	StartRow int // first source row, inclusive
	EndRow   int // last source row, exclusive
	Scale    int // replication factor on both axes, ≥1
	Shard    int // shard index used in the shard file name, ≥0
}

// Rows returns the number of source rows in the partition.
func (p Partition) Rows() int { return p.EndRow - p.StartRow }

// Validate reports ErrInvalidPartition for a reversed range, a negative
// start or shard index, or a scale below 1.
func (p Partition) Validate() error {
	switch {
	case p.EndRow < p.StartRow:
		return fmt.Errorf("rows [%d,%d) reversed: %w", p.StartRow, p.EndRow, ErrInvalidPartition)
	case p.StartRow < 0:
		return fmt.Errorf("start row %d negative: %w", p.StartRow, ErrInvalidPartition)
	case p.Shard < 0:
		return fmt.Errorf("shard %d negative: %w", p.Shard, ErrInvalidPartition)
	case p.Scale < 1:
		return fmt.Errorf("scale %d below 1: %w", p.Scale, ErrInvalidPartition)
	}
	return nil
}

// ShardName returns the transient file name for a shard: prefix + "." + index.
func ShardName(prefix string, shard int) string {
	return prefix + "." + strconv.Itoa(shard)
}
