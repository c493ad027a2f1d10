package radius

import (
	"context"
	"sync"

	"github.com/katalvlaran/coverage/distance"
	"github.com/katalvlaran/coverage/field"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/internal/parallel"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// Result is the covering radius and the cell that attains it.
type Result struct {
	// Radius is the smallest r such that every cell lies within r of a station.
	Radius float64
	// Farthest is the row-major-first cell at distance exactly Radius.
	Farthest gridgraph.Coordinate
}

// FromField returns the maximum of f.
// Complexity: O(rows*cols).
func FromField(f *field.Field) Result {
	r, at := f.Max()
	return Result{Radius: r, Farthest: at}
}

// candidate is a partial maximum over a block of rows.
type candidate struct {
	dist float64
	idx  int
}

// better reports whether a beats b: larger distance, then lower index.
func (a candidate) better(b candidate) bool {
	return a.dist > b.dist || (a.dist == b.dist && a.idx < b.idx)
}

// FromQuerier folds q over every cell of g without materialising a field.
// Rows are split into blocks folded by up to WithWorkers(n) goroutines and
// the partial maxima are combined under a mutex.
// Returns gridgraph.ErrBadShape, distance.ErrOptionViolation or a context error.
// Complexity: O(rows*cols*Q) where Q is the per-query cost of q.
func FromQuerier(g gridgraph.Grid, q distance.Querier, opts ...distance.Option) (Result, error) {
	o, err := distance.Apply(opts...)
	if err != nil {
		return Result{}, err
	}
	if err := g.Validate(); err != nil {
		return Result{}, err
	}

	var (
		mu   sync.Mutex
		best = candidate{dist: -1, idx: -1}
	)
	err = parallel.Rows(o.Ctx, g.Rows, o.Workers, func(ctx context.Context, lo, hi int) error {
		local := candidate{dist: -1, idx: -1}
		for row := lo; row < hi; row++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			for col := 0; col < g.Cols; col++ {
				d := q.Distance(gridgraph.Coordinate{Row: row, Col: col})
				// scanning in index order, so strict > keeps the first maximum
				if d > local.dist {
					local = candidate{dist: d, idx: row*g.Cols + col}
				}
			}
		}
		mu.Lock()
		if local.better(best) {
			best = local
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	return Result{Radius: best.dist, Farthest: g.Coordinate(best.idx)}, nil
}

// Solve computes the covering radius of g for s under m with kind.
// Flood materialises its field (the BFS is inherently whole-grid); Brute
// and KDTree are folded cell by cell through their Querier.
func Solve(g gridgraph.Grid, s station.Set, m metric.Metric, kind distance.Kind, opts ...distance.Option) (Result, error) {
	if _, err := distance.Apply(opts...); err != nil {
		return Result{}, err
	}
	if err := distance.Validate(g, s, m); err != nil {
		return Result{}, err
	}

	if kind == distance.Flood {
		f, err := distance.Compute(g, s, m, kind, opts...)
		if err != nil {
			return Result{}, err
		}
		return FromField(f), nil
	}

	q, err := distance.NewQuerier(kind, s, m)
	if err != nil {
		return Result{}, err
	}
	return FromQuerier(g, q, opts...)
}

// Uncovered lists, in row-major order, the cells of f farther than r from
// every station. It is empty exactly when r >= the covering radius.
func Uncovered(f *field.Field, r float64) []gridgraph.Coordinate {
	var out []gridgraph.Coordinate
	f.Each(func(c gridgraph.Coordinate, d float64) {
		if d > r {
			out = append(out, c)
		}
	})
	return out
}
