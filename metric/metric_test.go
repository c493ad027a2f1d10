package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
)

// TestDistance pins each named metric on a 3-4-5 offset.
func TestDistance(t *testing.T) {
	a := gridgraph.Coordinate{Row: 1, Col: 2}
	b := gridgraph.Coordinate{Row: 4, Col: 6}

	assert.Equal(t, 4.0, metric.Chebyshev.Distance(a, b))
	assert.Equal(t, 5.0, metric.Euclidean.Distance(a, b))
	assert.Equal(t, 7.0, metric.Manhattan.Distance(a, b))

	l3, err := metric.Minkowski(3)
	require.NoError(t, err)
	assert.InDelta(t, math.Cbrt(27+64), l3.Distance(a, b), 1e-12)
}

// TestDistance_Symmetric checks d(a,b) == d(b,a) and d(a,a) == 0.
func TestDistance_Symmetric(t *testing.T) {
	a := gridgraph.Coordinate{Row: -3, Col: 7}
	b := gridgraph.Coordinate{Row: 5, Col: -1}
	for _, m := range []metric.Metric{metric.Chebyshev, metric.Euclidean, metric.Manhattan} {
		assert.Equal(t, m.Distance(a, b), m.Distance(b, a), m.String())
		assert.Zero(t, m.Distance(a, a), m.String())
	}
}

// TestMinkowski_Canonical verifies that special orders collapse to the named metrics.
func TestMinkowski_Canonical(t *testing.T) {
	m, err := metric.Minkowski(math.Inf(1))
	require.NoError(t, err)
	assert.Equal(t, metric.Chebyshev, m)
	assert.True(t, m.IsChebyshev())

	m, _ = metric.Minkowski(2)
	assert.Equal(t, metric.Euclidean, m)
	m, _ = metric.Minkowski(1)
	assert.Equal(t, metric.Manhattan, m)

	m, _ = metric.Minkowski(1.5)
	assert.Equal(t, "minkowski(1.5)", m.String())
	assert.False(t, m.IsChebyshev())
}

// TestMinkowski_Invalid rejects orders below 1 and NaN.
func TestMinkowski_Invalid(t *testing.T) {
	for _, p := range []float64{0, 0.5, -2, math.NaN()} {
		_, err := metric.Minkowski(p)
		assert.ErrorIs(t, err, metric.ErrInvalidOrder, "p=%v", p)
	}
	var zero metric.Metric
	assert.False(t, zero.Valid())
	assert.Equal(t, "invalid", zero.String())
}

// TestParse covers names, aliases and failures.
func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want metric.Metric
	}{
		{"chebyshev", metric.Chebyshev},
		{" Chebyshev ", metric.Chebyshev},
		{"linf", metric.Chebyshev},
		{"EUCLIDEAN", metric.Euclidean},
		{"l2", metric.Euclidean},
		{"manhattan", metric.Manhattan},
		{"l1", metric.Manhattan},
		{"minkowski:2", metric.Euclidean},
	}
	for _, tc := range cases {
		got, err := metric.Parse(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := metric.Parse("hamming")
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
	_, err = metric.Parse("minkowski:abc")
	assert.ErrorIs(t, err, metric.ErrUnknownMetric)
	_, err = metric.Parse("minkowski:0.5")
	assert.ErrorIs(t, err, metric.ErrInvalidOrder)
}
