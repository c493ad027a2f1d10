// Package radius reduces a nearest-station distance source to the minimal
// covering radius: the largest nearest-station distance over all cells.
//
// The reduction is a max-fold over every cell. It runs either over a
// materialised field.Field (FromField) or directly over a per-cell
// distance.Querier (FromQuerier), in which case no rows×cols matrix is
// allocated and row blocks are folded in parallel.
//
// Ties on the maximum go to the lowest row-major index, so a Result does
// not depend on the worker count.
//
//	g, _ := gridgraph.NewGrid(4, 4)
//	s, _ := station.New(gridgraph.Coordinate{}, gridgraph.Coordinate{Row: 3, Col: 3})
//	res, _ := radius.Solve(g, s, metric.Chebyshev, distance.Flood)
//	// res.Radius == 3, res.Farthest == (0,3)
//
// Uncovered reports the cells a candidate radius leaves uncovered; it is
// empty exactly when the candidate is at least the covering radius.
package radius
