// Package distance computes, for every cell of a grid, the distance to the
// nearest station. Three interchangeable strategies answer the same question
// with different trade-offs.
//
// What
//
//   - Brute:  scan every station per cell. O(|S|) per query,
//     O(R·C·|S|) per field. Any metric. The correctness baseline.
//   - Flood:  multi-source king-move BFS (gridgraph.FloodFill). O(R·C) per
//     field. Chebyshev only; every station must lie inside the grid.
//   - KDTree: static k-d tree over the stations, built once in O(|S| log |S|),
//     answering a nearest query in O(log |S|) under any Minkowski metric.
//
// Brute and KDTree implement Querier, the per-cell contract, so a caller
// that only needs a running maximum never allocates an R×C field. Flood
// produces whole fields only.
//
// Choosing
//
//	Recommend(m, fullField) returns Flood for Chebyshev full fields and
//	KDTree otherwise.
//
// Concurrency
//
//	Queriers are immutable after construction and safe for concurrent use.
//	Compute splits rows into blocks processed by WithWorkers(n) goroutines;
//	the flood fill parallelises per BFS layer instead.
//
// Errors
//
//   - ErrUnknownKind        unrecognised strategy.
//   - ErrInvalidMetric      zero-value metric.
//   - ErrUnsupportedMetric  Flood with a non-Chebyshev metric.
//   - ErrFieldOnly          a per-cell Querier was requested for Flood.
//   - ErrOptionViolation    invalid Option.
//   - station.ErrEmpty, station.ErrOutOfBounds, gridgraph.ErrBadShape from input validation.
//
// Usage
//
//	f, err := distance.Compute(g, stations, metric.Chebyshev, distance.Flood)
//
//	idx, err := distance.NewSpatialIndex(stations, metric.Euclidean)
//	d := idx.Distance(gridgraph.Coordinate{Row: 3, Col: 4})
package distance
