// Package grid is the shared cell store behind a generated map.
//
// What:
//
//   - Grid owns a flat, row-major buffer of rows×cols single-byte markers.
//   - Every cell is either Open ('.') or Obstacle ('@'); New fills all cells Open.
//   - Dimensions are fixed at creation and never resized.
//   - ReadText parses a written map file back into a Grid.
//
// Concurrency:
//
//   - Grid has no internal locking. While obstacles are being stamped the
//     caller serializes writers (see package obstacle); after that phase the
//     grid is treated as immutable and any number of goroutines may read it.
//
// Complexity:
//
//   - New:      O(R×C) time and memory.
//   - At / Set: O(1).
//   - Fill:     O(area of the rectangle).
//   - ReadText: O(R×C).
//
// Errors:
//
//   - ErrBadDimension: rows or cols not positive.
//   - ErrAllocation:   rows×cols overflows or exceeds MaxCells.
//   - ErrMalformedMap: ReadText input does not follow the map file layout.
package grid
