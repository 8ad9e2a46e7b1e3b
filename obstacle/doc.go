// SPDX-License-Identifier: MIT
// Package: gridmap/obstacle
//
// Package obstacle stamps randomly sized and positioned rectangular
// obstacles onto a grid.Grid until a shared obstacle budget runs out.
//
// What:
//
//   - Budget is the shared obstacle counter. Take() is a short critical
//     section (check, decrement, release) under its own mutex; it never
//     goes below zero.
//   - Placer owns a second, distinct mutex that guards the grid while a
//     rectangle is stamped. The budget lock is never held while drawing
//     random numbers or writing cells.
//   - Run is one worker loop; Place runs one or many workers and joins them.
//
// Drawing (per obstacle):
//
//  1. Take one unit of budget; stop when none is left.
//  2. width, height: non-zero draws from rng.Intn(maxSize) (rejection sampled).
//  3. row, col: non-zero draws from rng.Intn(dim-1), keeping row/col 0 open.
//  4. Clip: endRow = min(row+height, rows), endCol = min(col+width, cols).
//  5. Stamp the clipped rectangle under the grid lock. Overlaps overwrite.
//
// Degenerate ranges (maxSize == 1, or a dimension of 2) have no non-zero
// draw; they resolve to 1 instead of looping forever.
//
// Determinism:
//
//   - With one placer (the default) and a fixed seed the stamped map is
//     identical across runs. With several placers every worker owns its own
//     RNG stream derived from the seed; the set of rectangles per worker is
//     fixed but their interleaving on the grid is not.
//
// Errors:
//
//   - ErrNilGrid:    NewPlacer got a nil grid.
//   - ErrBadMaxSize: maxSize < 1 or ≥ min(rows, cols).
package obstacle
