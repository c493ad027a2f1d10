// Package coverage computes the minimal covering radius of a set of
// stations on a rectangular grid: the smallest r such that every cell lies
// within distance r of some station.
//
// The root package exposes the three entry points of the library:
//
//	BuildStationSet      validate grid dimensions and raw (row, col) pairs
//	ComputeDistanceField the nearest-station distance of every cell
//	SolveMinimalRadius   the maximum of that field, without materialising it when possible
//
// Every failure is classified: errors.Is(err, ErrValidation) for bad input
// and errors.Is(err, ErrComputation) for a computation that cannot proceed
// with valid input. The underlying sentinel stays reachable through
// errors.Is as well.
//
// Under the hood the work is split over subpackages:
//
//	gridgraph/ Grid, Coordinate, king-move adjacency and the multi-source flood fill
//	metric/    Chebyshev, Euclidean, Manhattan and general Minkowski distances
//	station/   the validated, immutable StationSet
//	field/     dense row-major distance fields
//	distance/  brute force, flood fill and k-d tree strategies
//	radius/    the max-fold over a field or a per-cell querier
//
// Quick example, two stations in opposite corners of a 4×4 grid:
//
//	0 1 2 3
//	1 1 2 2
//	2 2 1 1
//	3 2 1 0
//
// has covering radius 3, attained at (0,3) and (3,0).
//
//	go get github.com/katalvlaran/coverage
package coverage
