package coverage

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/coverage/distance"
	"github.com/katalvlaran/coverage/field"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/radius"
	"github.com/katalvlaran/coverage/station"
)

var (
	// ErrValidation classifies failures caused by invalid input.
	ErrValidation = errors.New("coverage: validation failed")
	// ErrComputation classifies failures of a computation on valid input.
	ErrComputation = errors.New("coverage: computation failed")
)

// computation lists the causes that are not the caller's input at fault.
var computation = []error{
	gridgraph.ErrDisconnected,
	distance.ErrUnsupportedMetric,
	context.Canceled,
	context.DeadlineExceeded,
}

// classify wraps err with ErrValidation or ErrComputation, keeping err
// reachable through errors.Is. A nil err stays nil.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range computation {
		if errors.Is(err, c) {
			return fmt.Errorf("%w: %w", ErrComputation, err)
		}
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// BuildStationSet validates a rows×cols grid and raw (row, col) pairs.
// Every failure wraps ErrValidation.
func BuildStationSet(rows, cols int, raw [][2]int) (station.Set, error) {
	s, err := station.Build(rows, cols, raw)
	if err != nil {
		return station.Set{}, classify(err)
	}
	return s, nil
}

// ComputeDistanceField returns the nearest-station distance of every cell
// of g, computed with kind. No partial field is returned on failure.
func ComputeDistanceField(g gridgraph.Grid, s station.Set, m metric.Metric, kind distance.Kind, opts ...distance.Option) (*field.Field, error) {
	f, err := distance.Compute(g, s, m, kind, opts...)
	if err != nil {
		return nil, classify(err)
	}
	return f, nil
}

// SolveMinimalRadius returns the covering radius of g for s under m.
func SolveMinimalRadius(g gridgraph.Grid, s station.Set, m metric.Metric, kind distance.Kind, opts ...distance.Option) (float64, error) {
	res, err := SolveCoverage(g, s, m, kind, opts...)
	if err != nil {
		return 0, err
	}
	return res.Radius, nil
}

// SolveCoverage is SolveMinimalRadius that also reports the farthest cell.
func SolveCoverage(g gridgraph.Grid, s station.Set, m metric.Metric, kind distance.Kind, opts ...distance.Option) (radius.Result, error) {
	res, err := radius.Solve(g, s, m, kind, opts...)
	if err != nil {
		return radius.Result{}, classify(err)
	}
	return res, nil
}
