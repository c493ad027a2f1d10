package gridgraph

import "errors"

var (
	// ErrBadShape indicates a grid with a non-positive number of rows or columns.
	ErrBadShape = errors.New("gridgraph: rows and cols must be > 0")
	// ErrNoSeeds indicates a flood fill started without any seed cell.
	ErrNoSeeds = errors.New("gridgraph: at least one seed is required")
	// ErrSeedOutOfBounds indicates a seed coordinate outside the grid.
	ErrSeedOutOfBounds = errors.New("gridgraph: seed lies outside the grid")
	// ErrDisconnected indicates a cell unreachable from every seed.
	ErrDisconnected = errors.New("gridgraph: grid is not connected to any seed")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)
