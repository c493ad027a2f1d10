// Package gridgraph treats a rectangular rows×cols grid of cells as an
// implicit graph and runs multi-source flood fills over it.
//
// What:
//
//   - Grid is a passive coordinate-space descriptor: Rows × Cols, valid
//     cells are [0,Rows) × [0,Cols).
//   - Coordinate is a fixed-shape (Row, Col) value; it may point outside a Grid.
//   - Conn4 (N/E/S/W) or Conn8 (king moves) neighbour offsets.
//   - FloodFill runs a breadth-first expansion from many seeds at once and
//     assigns every cell its discovery layer ("ring count").
//
// Why:
//
//   - Under Conn8 the discovery layer of a cell equals its Chebyshev distance
//     to the nearest seed, so one O(Rows×Cols) pass yields a full
//     nearest-facility distance field.
//   - Under Conn4 the same pass yields Manhattan distances.
//
// Complexity:
//
//   - FloodFill: O(Rows×Cols×d) time, O(Rows×Cols) memory (d = 4 or 8).
//   - Sequential mode pops from a head-indexed FIFO in O(1).
//   - Layered mode expands each BFS layer across workers; the layer is the
//     only synchronisation barrier and visited marks are claimed with a
//     per-cell compare-and-swap.
//
// Errors:
//
//   - ErrBadShape:        rows or cols are not positive.
//   - ErrNoSeeds:         FloodFill was given no seeds.
//   - ErrSeedOutOfBounds: a seed lies outside the grid.
//   - ErrDisconnected:    some cell was never reached. Reserved for
//     non-rectangular topologies; a rectangular grid is always connected.
//   - ErrOptionViolation: an invalid Option was supplied.
package gridgraph
