// Package app runs one covering-radius solve with logging, metrics and
// tracing around it. It is the layer between the CLI and the library.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/coverage"
	"github.com/katalvlaran/coverage/distance"
	"github.com/katalvlaran/coverage/field"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/internal/logging"
	"github.com/katalvlaran/coverage/internal/observability"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/radius"
	"github.com/katalvlaran/coverage/station"
)

// StrategyAuto defers the strategy choice to distance.Recommend.
const StrategyAuto = "auto"

// Request is one solve.
type Request struct {
	Name      string
	Grid      gridgraph.Grid
	Stations  station.Set
	Metric    metric.Metric
	// Strategy is StrategyAuto, empty (same as auto) or a distance.ParseKind name.
	Strategy  string
	// Workers bounds goroutines; 0 means GOMAXPROCS.
	Workers   int
	// WithField materialises and returns the full distance field.
	WithField bool
}

// Report is the outcome of a successful Run.
type Report struct {
	RunID    string
	Name     string
	Strategy distance.Kind
	Metric   metric.Metric
	Result   radius.Result
	Field    *field.Field
	Cells    int
	Elapsed  time.Duration
}

// Runner executes Requests. The zero value is not usable; use NewRunner.
type Runner struct {
	log     logging.Logger
	metrics *observability.Metrics
	tracer  trace.Tracer
}

// NewRunner returns a Runner. A nil log discards output; nil metrics
// disables recording.
func NewRunner(log logging.Logger, metrics *observability.Metrics) *Runner {
	if log == nil {
		log = logging.Noop()
	}
	return &Runner{log: log, metrics: metrics, tracer: observability.Tracer()}
}

// ResolveStrategy maps a strategy name to a Kind, applying
// distance.Recommend for StrategyAuto.
func ResolveStrategy(name string, m metric.Metric, withField bool) (distance.Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == StrategyAuto {
		return distance.Recommend(m, withField), nil
	}
	return distance.ParseKind(name)
}

// Run solves req. Failures wrap coverage.ErrValidation or
// coverage.ErrComputation.
func (r *Runner) Run(ctx context.Context, req Request) (Report, error) {
	ctx, log := logging.WithRunLogger(ctx, r.log)
	runID := logging.RunIDFromContext(ctx)

	kind, err := ResolveStrategy(req.Strategy, req.Metric, req.WithField)
	if err != nil {
		err = fmt.Errorf("%w: %w", coverage.ErrValidation, err)
		log.Error(ctx, "strategy rejected", logging.String("strategy", req.Strategy), logging.Err(err))
		return Report{}, err
	}

	log = log.With(
		logging.String("strategy", kind.String()),
		logging.String("metric", req.Metric.String()),
	)
	ctx, span := r.tracer.Start(ctx, "coverage.solve", trace.WithAttributes(
		attribute.String("run.id", runID),
		attribute.String("coverage.strategy", kind.String()),
		attribute.String("coverage.metric", req.Metric.String()),
		attribute.Int("coverage.rows", req.Grid.Rows),
		attribute.Int("coverage.cols", req.Grid.Cols),
		attribute.Int("coverage.stations", req.Stations.Len()),
	))
	defer span.End()

	log.Debug(ctx, "solve started",
		logging.String("grid", req.Grid.String()),
		logging.Int("stations", req.Stations.Len()),
		logging.Int("workers", req.Workers),
	)

	opts := []distance.Option{distance.WithContext(ctx), distance.WithWorkers(req.Workers)}
	start := time.Now()
	var (
		res radius.Result
		f   *field.Field
	)
	if req.WithField {
		f, err = coverage.ComputeDistanceField(req.Grid, req.Stations, req.Metric, kind, opts...)
		if err == nil {
			res = radius.FromField(f)
		}
	} else {
		res, err = coverage.SolveCoverage(req.Grid, req.Stations, req.Metric, kind, opts...)
	}
	took := time.Since(start)

	if err != nil {
		outcome := Outcome(err)
		r.metrics.ObserveSolve(kind.String(), req.Metric.String(), outcome, took, 0, 0)
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
		log.Error(ctx, "solve failed", logging.String("outcome", outcome), logging.Err(err))
		return Report{}, err
	}

	cells := req.Grid.Cells()
	r.metrics.ObserveSolve(kind.String(), req.Metric.String(), observability.OutcomeOK, took, cells, res.Radius)
	span.SetAttributes(
		attribute.Float64("coverage.radius", res.Radius),
		attribute.String("coverage.farthest", res.Farthest.String()),
	)
	log.Info(ctx, "solve finished",
		logging.Float("radius", res.Radius),
		logging.String("farthest", res.Farthest.String()),
		logging.Any("elapsed", took),
	)

	return Report{
		RunID:    runID,
		Name:     req.Name,
		Strategy: kind,
		Metric:   req.Metric,
		Result:   res,
		Field:    f,
		Cells:    cells,
		Elapsed:  took,
	}, nil
}

// Outcome classifies err into an observability outcome label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return observability.OutcomeOK
	case errors.Is(err, coverage.ErrComputation):
		return observability.OutcomeComputation
	}
	return observability.OutcomeValidation
}
