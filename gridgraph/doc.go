// Package gridgraph treats a generated map as a graph of open cells,
// enabling component analysis and minimal-cost "breach" paths between
// disconnected regions.
//
// What:
//
//   - GridGraph snapshots a grid.Grid: Open cells are traversable, Obstacle
//     cells are walls.
//   - ConnectedComponents finds contiguous regions of open cells.
//   - ExpandIsland computes the fewest obstacle cells to clear (0-1 BFS) to
//     join two regions.
//   - Summarize reports open/obstacle counts and region sizes so a caller
//     can tell whether a map is usable for path-finding.
//
// Complexity:
//
//   - ConnectedComponents: O(R×C×d), Memory: O(R×C)    (d = 4 or 8 neighbors).
//   - ExpandIsland:        O(R×C×d), Memory: O(R×C).
//   - Summarize:           O(R×C×d), Memory: O(R×C).
//
// Errors:
//
//   - ErrNilGrid: FromGrid got a nil grid.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrNoPath: no path exists between the specified components.
package gridgraph
