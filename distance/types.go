// Package distance defines strategy kinds, the per-cell query contract,
// options and sentinel errors.
package distance

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// Sentinel errors for distance computations.
var (
	// ErrUnknownKind is returned for a Kind outside Brute, Flood, KDTree.
	ErrUnknownKind = errors.New("distance: unknown strategy")
	// ErrInvalidMetric is returned for the zero metric.Metric.
	ErrInvalidMetric = errors.New("distance: invalid metric")
	// ErrUnsupportedMetric is returned when Flood is used with a non-Chebyshev metric.
	ErrUnsupportedMetric = errors.New("distance: metric not supported by strategy")
	// ErrFieldOnly is returned when a per-cell Querier is requested for Flood.
	ErrFieldOnly = errors.New("distance: strategy only produces whole fields")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("distance: invalid option supplied")
)

// Kind selects a distance strategy.
type Kind int

const (
	// Brute scans every station for every cell.
	Brute Kind = iota
	// Flood runs a multi-source king-move BFS.
	Flood
	// KDTree queries a static k-d tree over the stations.
	KDTree
)

// String returns "brute", "flood" or "kdtree".
func (k Kind) String() string {
	switch k {
	case Brute:
		return "brute"
	case Flood:
		return "flood"
	case KDTree:
		return "kdtree"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// ParseKind resolves a strategy name. Accepted spellings:
// brute|bruteforce|brute-force, flood|floodfill|bfs, kdtree|kd|spatial.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "brute", "bruteforce", "brute-force":
		return Brute, nil
	case "flood", "floodfill", "flood-fill", "bfs":
		return Flood, nil
	case "kdtree", "kd", "kd-tree", "spatial", "spatial-index":
		return KDTree, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Recommend picks the cheapest strategy for m. Flood is optimal when the
// whole Chebyshev field is needed; KDTree otherwise.
func Recommend(m metric.Metric, fullField bool) Kind {
	if m.IsChebyshev() && fullField {
		return Flood
	}
	return KDTree
}

// Querier answers nearest-station distance queries for single cells.
type Querier interface {
	// Distance returns the distance from c to its nearest station.
	Distance(c gridgraph.Coordinate) float64
}

// Option configures a computation via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters shared by Compute and the radius solver.
type Options struct {
	// Ctx is checked between rows (and between BFS layers for Flood).
	Ctx context.Context
	// Workers bounds the goroutines used per computation.
	Workers int

	err error
}

// DefaultOptions returns Background context and runtime.GOMAXPROCS(0) workers.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: runtime.GOMAXPROCS(0),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds parallelism.
//
//	n > 0:  at most n goroutines
//	n == 0: runtime.GOMAXPROCS(0)
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
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

// Apply folds opts over DefaultOptions and returns the first violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}

// Validate checks the inputs every strategy shares: a valid grid, a
// non-empty station set and a valid metric.
func Validate(g gridgraph.Grid, s station.Set, m metric.Metric) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if s.Empty() {
		return station.ErrEmpty
	}
	if !m.Valid() {
		return ErrInvalidMetric
	}
	return nil
}
