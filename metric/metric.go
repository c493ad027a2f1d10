// Package metric defines the cell-to-cell distance functions used by the
// coverage engine: Chebyshev (L∞), Euclidean (L2), Manhattan (L1) and the
// general Minkowski Lp family they belong to.
//
// A Metric is a small immutable value. The zero Metric is invalid; obtain one
// from the package variables, Minkowski, or Parse.
package metric

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/coverage/gridgraph"
)

var (
	// ErrInvalidOrder indicates a Minkowski order p < 1 or NaN.
	ErrInvalidOrder = errors.New("metric: Minkowski order must be >= 1")
	// ErrUnknownMetric indicates a metric name Parse does not recognise.
	ErrUnknownMetric = errors.New("metric: unknown metric")
)

// Metric is a Minkowski distance of order P over (Δrow, Δcol).
type Metric struct {
	p    float64
	name string
}

var (
	// Chebyshev is max(|Δrow|, |Δcol|): king-move distance.
	Chebyshev = Metric{p: math.Inf(1), name: "chebyshev"}
	// Euclidean is sqrt(Δrow² + Δcol²).
	Euclidean = Metric{p: 2, name: "euclidean"}
	// Manhattan is |Δrow| + |Δcol|: rook-step distance.
	Manhattan = Metric{p: 1, name: "manhattan"}
)

// Minkowski returns the Lp metric. p may be +Inf (Chebyshev).
// Returns ErrInvalidOrder for p < 1 or NaN.
func Minkowski(p float64) (Metric, error) {
	switch {
	case math.IsNaN(p) || p < 1:
		return Metric{}, fmt.Errorf("%w: got %v", ErrInvalidOrder, p)
	case math.IsInf(p, 1):
		return Chebyshev, nil
	case p == 2:
		return Euclidean, nil
	case p == 1:
		return Manhattan, nil
	}
	return Metric{p: p, name: "minkowski(" + strconv.FormatFloat(p, 'g', -1, 64) + ")"}, nil
}

// Parse resolves a metric name: "chebyshev" (or "linf"), "euclidean" ("l2"),
// "manhattan" ("l1"), or "minkowski:<p>". Matching is case-insensitive.
func Parse(s string) (Metric, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "chebyshev", "linf", "inf":
		return Chebyshev, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "manhattan", "l1", "taxicab":
		return Manhattan, nil
	}
	if rest, ok := strings.CutPrefix(name, "minkowski:"); ok {
		p, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
		}
		return Minkowski(p)
	}
	return Metric{}, fmt.Errorf("%w: %q", ErrUnknownMetric, s)
}

// P returns the Minkowski order; +Inf for Chebyshev.
func (m Metric) P() float64 {
	return m.p
}

// Valid reports whether m was built by this package.
func (m Metric) Valid() bool {
	return m.p >= 1
}

// IsChebyshev reports whether m is the L∞ metric.
func (m Metric) IsChebyshev() bool {
	return math.IsInf(m.p, 1)
}

// String returns the metric name.
func (m Metric) String() string {
	if m.name == "" {
		return "invalid"
	}
	return m.name
}

// Norm returns the length of the offset (dr, dc) under m.
// Complexity: O(1).
func (m Metric) Norm(dr, dc float64) float64 {
	dr, dc = math.Abs(dr), math.Abs(dc)
	switch {
	case math.IsInf(m.p, 1):
		return math.Max(dr, dc)
	case m.p == 2:
		return math.Sqrt(dr*dr + dc*dc)
	case m.p == 1:
		return dr + dc
	}
	return math.Pow(math.Pow(dr, m.p)+math.Pow(dc, m.p), 1/m.p)
}

// Distance returns the distance between cells a and b under m.
func (m Metric) Distance(a, b gridgraph.Coordinate) float64 {
	return m.Norm(float64(a.Row-b.Row), float64(a.Col-b.Col))
}
