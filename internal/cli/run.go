package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/coverage"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/internal/app"
	"github.com/katalvlaran/coverage/internal/config"
	"github.com/katalvlaran/coverage/internal/logging"
	"github.com/katalvlaran/coverage/internal/observability"
	"github.com/katalvlaran/coverage/internal/scenario"
	"github.com/katalvlaran/coverage/metric"
)

// IO bundles the process streams.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Run parses args, resolves the problem from flags, a scenario file or
// stdin, solves it and prints the report to streams.Out. Logs and spans go
// to streams.Err. Failures are *ExitError values.
func Run(ctx context.Context, args []string, streams IO, cfg config.Config) error {
	opts, exit, err := Parse(args, streams.Err, cfg)
	if err != nil || exit {
		return err
	}

	log := logging.New(logging.Config{Level: opts.LogLevel, Format: opts.LogFormat, Output: streams.Err})
	shutdown, err := observability.InitTracing(ctx, observability.TracingConfig{
		Enabled: opts.Tracing == config.TracingStdout,
		Writer:  streams.Err,
	}, log)
	if err != nil {
		return &ExitError{Code: CodeFailure, Message: err.Error()}
	}
	defer observability.ShutdownWithTimeout(context.WithoutCancel(ctx), shutdown, log)

	metrics, err := observability.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return &ExitError{Code: CodeFailure, Message: err.Error()}
	}

	req, err := buildRequest(opts, streams)
	if err != nil {
		return toExitError(err)
	}

	rep, err := app.NewRunner(log, metrics).Run(ctx, req)
	if err != nil {
		return toExitError(err)
	}

	printReport(streams.Out, rep, req)
	if opts.PrintField && rep.Field != nil {
		fmt.Fprintln(streams.Out)
		fmt.Fprint(streams.Out, rep.Field)
	}
	if opts.PrintMetrics {
		fmt.Fprintln(streams.Out)
		if err := metrics.WriteText(streams.Out); err != nil {
			return &ExitError{Code: CodeFailure, Message: err.Error()}
		}
	}
	return nil
}

// buildRequest resolves grid, stations, metric and strategy. Flags win
// over scenario values.
func buildRequest(opts *Options, streams IO) (app.Request, error) {
	req := app.Request{
		Strategy:  opts.Strategy,
		Workers:   opts.Workers,
		WithField: opts.PrintField,
	}
	metricName := opts.Metric

	switch {
	case opts.ScenarioPath != "":
		sc, err := scenario.Load(opts.ScenarioPath)
		if err != nil {
			return app.Request{}, err
		}
		if req.Grid, req.Stations, err = sc.Build(); err != nil {
			return app.Request{}, err
		}
		req.Name = sc.Name
		if metricName == "" {
			metricName = sc.Metric
		}
		if req.Strategy == "" {
			req.Strategy = sc.Strategy
		}

	case opts.Interactive():
		p := NewPrompter(streams.In, streams.Out)
		rows, cols, err := p.Grid()
		if err != nil {
			return app.Request{}, err
		}
		raw, err := p.Stations()
		if err != nil {
			return app.Request{}, err
		}
		if req.Stations, err = coverage.BuildStationSet(rows, cols, raw); err != nil {
			return app.Request{}, err
		}
		req.Grid = gridgraph.Grid{Rows: rows, Cols: cols}

	default:
		var err error
		if req.Stations, err = coverage.BuildStationSet(opts.Rows, opts.Cols, opts.Stations); err != nil {
			return app.Request{}, err
		}
		req.Grid = gridgraph.Grid{Rows: opts.Rows, Cols: opts.Cols}
	}

	if metricName == "" {
		metricName = "chebyshev"
	}
	m, err := metric.Parse(metricName)
	if err != nil {
		return app.Request{}, fmt.Errorf("%w: %w", coverage.ErrValidation, err)
	}
	req.Metric = m
	return req, nil
}

func printReport(w io.Writer, rep app.Report, req app.Request) {
	if rep.Name != "" {
		fmt.Fprintf(w, "scenario: %s\n", rep.Name)
	}
	fmt.Fprintf(w, "grid:     %s (%s cells), %d stations\n", req.Grid, humanize.Comma(int64(rep.Cells)), req.Stations.Len())
	fmt.Fprintf(w, "solver:   %s, %s metric\n", rep.Strategy, rep.Metric)
	fmt.Fprintf(w, "radius:   %s at %v\n", humanize.FtoaWithDigits(rep.Result.Radius, 6), rep.Result.Farthest)
}

// toExitError maps validation failures to CodeUsage and everything else to
// CodeFailure.
func toExitError(err error) error {
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee
	}
	code := CodeFailure
	if errors.Is(err, coverage.ErrValidation) || errors.Is(err, ErrTooManyAttempts) ||
		errors.Is(err, scenario.ErrDecode) || errors.Is(err, scenario.ErrUnknownFormat) {
		code = CodeUsage
	}
	return &ExitError{Code: code, Message: err.Error()}
}
