// Package observability wires Prometheus metrics and OpenTelemetry tracing
// around coverage solves.
package observability

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// Solve outcomes used as the "outcome" label.
const (
	OutcomeOK          = "ok"
	OutcomeValidation  = "validation"
	OutcomeComputation = "computation"
)

// Metrics bundles the solver collectors.
type Metrics struct {
	gatherer prometheus.Gatherer

	Solves         *prometheus.CounterVec
	SolveDurations *prometheus.HistogramVec
	CellsEvaluated *prometheus.CounterVec
	LastRadius     prometheus.Gauge
}

// NewMetrics registers the solver collectors on reg, defaulting to the
// global registry when nil. Registering twice on the same registry returns
// the existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	solves, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_solves_total",
		Help: "Covering-radius solves, labeled by strategy, metric and outcome.",
	}, []string{"strategy", "metric", "outcome"}), "coverage_solves_total")
	if err != nil {
		return nil, err
	}

	durations, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "coverage_solve_duration_seconds",
		Help:    "Covering-radius solve latency in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"}), "coverage_solve_duration_seconds")
	if err != nil {
		return nil, err
	}

	cells, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "coverage_cells_evaluated_total",
		Help: "Grid cells whose nearest-station distance was evaluated.",
	}, []string{"strategy"}), "coverage_cells_evaluated_total")
	if err != nil {
		return nil, err
	}

	last, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "coverage_last_radius",
		Help: "Covering radius of the most recent successful solve.",
	}), "coverage_last_radius")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		gatherer:       gatherer,
		Solves:         solves,
		SolveDurations: durations,
		CellsEvaluated: cells,
		LastRadius:     last,
	}, nil
}

// ObserveSolve records one solve. cells and radius are only recorded for
// OutcomeOK. A nil receiver is a no-op.
func (m *Metrics) ObserveSolve(strategy, metric, outcome string, took time.Duration, cells int, radius float64) {
	if m == nil {
		return
	}
	m.Solves.WithLabelValues(strategy, metric, outcome).Inc()
	m.SolveDurations.WithLabelValues(strategy).Observe(took.Seconds())
	if outcome != OutcomeOK {
		return
	}
	m.CellsEvaluated.WithLabelValues(strategy).Add(float64(cells))
	m.LastRadius.Set(radius)
}

// WriteText writes every gathered family in the Prometheus text format.
func (m *Metrics) WriteText(w io.Writer) error {
	gatherer := m.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	families, err := gatherer.Gather()
	if err != nil {
		return fmt.Errorf("observability: gather: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("observability: encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("observability: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("observability: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("observability: collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
