// Package gridgraph defines the grid geometry, connectivity and flood-fill
// options used across the coverage module.
package gridgraph

import (
	"context"
	"fmt"
	"runtime"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional (king move) connectivity.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// Offsets returns the (Δrow, Δcol) neighbor offsets for c.
// The returned slice is shared and must not be modified.
func (c Connectivity) Offsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// Coordinate is a (Row, Col) cell address. It may lie outside any Grid.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid describes a Rows×Cols coordinate space. It carries no cell values.
// Use NewGrid to obtain a validated Grid; the zero value is not valid.
type Grid struct {
	Rows, Cols int
}

// FloodOptions holds parameters for FloodFill.
type FloodOptions struct {
	// Ctx is checked once per BFS layer.
	Ctx context.Context
	// Conn chooses the neighbor offsets; Conn8 yields Chebyshev rings.
	Conn Connectivity
	// Workers > 1 enables layer-parallel expansion.
	Workers int
	// ParallelThreshold is the minimum frontier size expanded in parallel;
	// smaller layers are expanded on the calling goroutine.
	ParallelThreshold int

	err error
}

// FloodOption configures FloodFill via functional arguments.
type FloodOption func(*FloodOptions)

// DefaultFloodOptions returns Background context, Conn8, one worker and a
// parallel threshold of 1024 frontier cells.
func DefaultFloodOptions() FloodOptions {
	return FloodOptions{
		Ctx:               context.Background(),
		Conn:              Conn8,
		Workers:           1,
		ParallelThreshold: 1024,
	}
}

// WithContext sets a context checked between BFS layers.
func WithContext(ctx context.Context) FloodOption {
	return func(o *FloodOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithConnectivity selects Conn4 or Conn8 expansion.
func WithConnectivity(c Connectivity) FloodOption {
	return func(o *FloodOptions) {
		if c != Conn4 && c != Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, c)
			return
		}
		o.Conn = c
	}
}

// WithWorkers sets the number of goroutines used per layer.
//
//	n > 0:  use n workers
//	n == 0: use runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) FloodOption {
	return func(o *FloodOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithParallelThreshold sets the minimum frontier size that is split across workers.
func WithParallelThreshold(n int) FloodOption {
	return func(o *FloodOptions) {
		if n < 1 {
			o.err = fmt.Errorf("%w: parallel threshold must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}
