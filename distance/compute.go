package distance

import (
	"context"
	"fmt"

	"github.com/katalvlaran/coverage/field"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/internal/parallel"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// NewQuerier returns the per-cell Querier for kind.
// Returns ErrFieldOnly for Flood and ErrUnknownKind for anything else unknown.
func NewQuerier(kind Kind, s station.Set, m metric.Metric) (Querier, error) {
	switch kind {
	case Brute:
		return NewBruteForce(s, m)
	case KDTree:
		return NewSpatialIndex(s, m)
	case Flood:
		return nil, fmt.Errorf("%w: %v", ErrFieldOnly, kind)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// Compute builds the full distance field of g for stations s under m with
// the selected strategy. Inputs are validated before any work starts and no
// partial field is ever returned.
//
// Behavior:
//  1. Apply options; validate grid, stations and metric.
//  2. Flood: reject non-Chebyshev metrics and out-of-grid stations, then
//     convert BFS rings to distances.
//  3. Brute/KDTree: build the Querier once, then evaluate every cell with
//     rows split across workers.
//
// Complexity: Brute O(R·C·|S|), Flood O(R·C), KDTree O(|S| log |S| + R·C·log |S|).
func Compute(g gridgraph.Grid, s station.Set, m metric.Metric, kind Kind, opts ...Option) (*field.Field, error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err := Validate(g, s, m); err != nil {
		return nil, err
	}

	switch kind {
	case Flood:
		return floodField(g, s, m, o)
	case Brute, KDTree:
		q, err := NewQuerier(kind, s, m)
		if err != nil {
			return nil, err
		}
		return materialize(g, q, o)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
}

// Materialize evaluates q on every cell of g and returns the field.
func Materialize(g gridgraph.Grid, q Querier, opts ...Option) (*field.Field, error) {
	o, err := Apply(opts...)
	if err != nil {
		return nil, err
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return materialize(g, q, o)
}

func materialize(g gridgraph.Grid, q Querier, o Options) (*field.Field, error) {
	data := make([]float64, g.Cells())
	err := parallel.Rows(o.Ctx, g.Rows, o.Workers, func(ctx context.Context, lo, hi int) error {
		for row := lo; row < hi; row++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			base := row * g.Cols
			for col := 0; col < g.Cols; col++ {
				data[base+col] = q.Distance(gridgraph.Coordinate{Row: row, Col: col})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return field.FromRowMajor(g.Rows, g.Cols, data)
}

// floodField runs the king-move flood fill and converts rings to distances.
func floodField(g gridgraph.Grid, s station.Set, m metric.Metric, o Options) (*field.Field, error) {
	if !m.IsChebyshev() {
		return nil, fmt.Errorf("%w: %v with %v", ErrUnsupportedMetric, Flood, m)
	}
	// out-of-grid stations can be nearer than any in-grid seed, so they are
	// rejected rather than dropped
	if err := s.Validate(g); err != nil {
		return nil, err
	}

	rings, err := gridgraph.FloodFill(g, s.Coordinates(),
		gridgraph.WithContext(o.Ctx),
		gridgraph.WithConnectivity(gridgraph.Conn8),
		gridgraph.WithWorkers(o.Workers),
	)
	if err != nil {
		return nil, err
	}

	data := make([]float64, g.Cells())
	for i := range data {
		data[i] = float64(rings.Depth(i))
	}
	return field.FromRowMajor(g.Rows, g.Cols, data)
}
