package radius_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/coverage/distance"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/radius"
	"github.com/katalvlaran/coverage/station"
)

var kinds = []distance.Kind{distance.Brute, distance.Flood, distance.KDTree}

func mustSet(t testing.TB, coords ...gridgraph.Coordinate) station.Set {
	t.Helper()
	s, err := station.New(coords...)
	require.NoError(t, err)
	return s
}

func mustGrid(t testing.TB, rows, cols int) gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.NewGrid(rows, cols)
	require.NoError(t, err)
	return g
}

// TestScenarios pins the radius of small hand-checked layouts for every strategy.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name     string
		rows     int
		cols     int
		stations []gridgraph.Coordinate
		want     float64
		farthest gridgraph.Coordinate
	}{
		{"single cell", 1, 1, []gridgraph.Coordinate{{Row: 0, Col: 0}}, 0, gridgraph.Coordinate{}},
		{"5x5 center", 5, 5, []gridgraph.Coordinate{{Row: 2, Col: 2}}, 2, gridgraph.Coordinate{Row: 0, Col: 0}},
		{"4x4 corners", 4, 4, []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 3, Col: 3}}, 3, gridgraph.Coordinate{Row: 0, Col: 3}},
		{"row strip", 1, 9, []gridgraph.Coordinate{{Row: 0, Col: 4}}, 4, gridgraph.Coordinate{Row: 0, Col: 0}},
	}
	for _, tc := range cases {
		g := mustGrid(t, tc.rows, tc.cols)
		s := mustSet(t, tc.stations...)
		for _, kind := range kinds {
			t.Run(tc.name+"/"+kind.String(), func(t *testing.T) {
				res, err := radius.Solve(g, s, metric.Chebyshev, kind)
				require.NoError(t, err)
				assert.Equal(t, tc.want, res.Radius)
				assert.Equal(t, tc.farthest, res.Farthest)
			})
		}
	}
}

// TestEuclideanCorners: the free corners of a 4×4 grid are 3 from both
// stations, farther than the √5 of the inner diagonal.
func TestEuclideanCorners(t *testing.T) {
	g := mustGrid(t, 4, 4)
	s := mustSet(t, gridgraph.Coordinate{}, gridgraph.Coordinate{Row: 3, Col: 3})
	for _, kind := range []distance.Kind{distance.Brute, distance.KDTree} {
		res, err := radius.Solve(g, s, metric.Euclidean, kind)
		require.NoError(t, err)
		assert.InDelta(t, 3.0, res.Radius, 1e-9, kind.String())
		assert.Equal(t, gridgraph.Coordinate{Row: 0, Col: 3}, res.Farthest)
	}
}

// TestErrors checks that failures surface before any work and carry no result.
func TestErrors(t *testing.T) {
	g := mustGrid(t, 3, 3)
	s := mustSet(t, gridgraph.Coordinate{Row: 1, Col: 1})

	for _, kind := range kinds {
		res, err := radius.Solve(g, station.Set{}, metric.Chebyshev, kind)
		require.ErrorIs(t, err, station.ErrEmpty, kind.String())
		require.Zero(t, res)
	}

	_, err := radius.Solve(gridgraph.Grid{Rows: 0, Cols: 3}, s, metric.Chebyshev, distance.Brute)
	require.ErrorIs(t, err, gridgraph.ErrBadShape)

	_, err = radius.Solve(g, s, metric.Euclidean, distance.Flood)
	require.ErrorIs(t, err, distance.ErrUnsupportedMetric)

	_, err = radius.Solve(g, s, metric.Chebyshev, distance.Kind(7))
	require.ErrorIs(t, err, distance.ErrUnknownKind)

	_, err = radius.Solve(g, s, metric.Chebyshev, distance.KDTree, distance.WithWorkers(-1))
	require.ErrorIs(t, err, distance.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = radius.Solve(mustGrid(t, 40, 40), s, metric.Chebyshev, distance.Brute, distance.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestUncovered checks the cells left out by a too-small radius.
func TestUncovered(t *testing.T) {
	g := mustGrid(t, 5, 5)
	s := mustSet(t, gridgraph.Coordinate{Row: 2, Col: 2})
	f, err := distance.Compute(g, s, metric.Chebyshev, distance.Flood)
	require.NoError(t, err)

	assert.Empty(t, radius.Uncovered(f, 2))
	assert.Len(t, radius.Uncovered(f, 1), 16)
	assert.Len(t, radius.Uncovered(f, 0), 24)
	assert.Equal(t, gridgraph.Coordinate{Row: 0, Col: 0}, radius.Uncovered(f, 1)[0])
}

// PropertySuite runs randomized invariants over every strategy.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(7))
}

func (s *PropertySuite) randomCase() (gridgraph.Grid, station.Set) {
	g := mustGrid(s.T(), 1+s.rng.Intn(30), 1+s.rng.Intn(30))
	n := 1 + s.rng.Intn(6)
	coords := make([]gridgraph.Coordinate, n)
	for i := range coords {
		coords[i] = gridgraph.Coordinate{Row: s.rng.Intn(g.Rows), Col: s.rng.Intn(g.Cols)}
	}
	return g, mustSet(s.T(), coords...)
}

// TestAgreement: all strategies return the same Result under Chebyshev.
func (s *PropertySuite) TestAgreement() {
	for trial := 0; trial < 40; trial++ {
		g, set := s.randomCase()
		want, err := radius.Solve(g, set, metric.Chebyshev, distance.Brute)
		s.Require().NoError(err)
		for _, kind := range kinds[1:] {
			got, err := radius.Solve(g, set, metric.Chebyshev, kind, distance.WithWorkers(3))
			s.Require().NoError(err)
			s.Require().Equal(want, got, "trial %d %v", trial, kind)
		}
	}
}

// TestTightness: no cell exceeds R and the farthest cell sits exactly at R.
func (s *PropertySuite) TestTightness() {
	for trial := 0; trial < 30; trial++ {
		g, set := s.randomCase()
		f, err := distance.Compute(g, set, metric.Euclidean, distance.KDTree)
		s.Require().NoError(err)
		res, err := radius.Solve(g, set, metric.Euclidean, distance.KDTree)
		s.Require().NoError(err)

		s.Require().True(f.CoveredBy(res.Radius))
		s.Require().Empty(radius.Uncovered(f, res.Radius))
		at, err := f.At(res.Farthest.Row, res.Farthest.Col)
		s.Require().NoError(err)
		s.Require().Equal(res.Radius, at)
		s.Require().Equal(radius.FromField(f), res)
	}
}

// TestMonotonicity: adding a station never grows R, removing one never shrinks it.
func (s *PropertySuite) TestMonotonicity() {
	for trial := 0; trial < 30; trial++ {
		g, set := s.randomCase()
		base, err := radius.Solve(g, set, metric.Chebyshev, distance.Flood)
		s.Require().NoError(err)

		more := set.With(gridgraph.Coordinate{Row: s.rng.Intn(g.Rows), Col: s.rng.Intn(g.Cols)})
		grown, err := radius.Solve(g, more, metric.Chebyshev, distance.Flood)
		s.Require().NoError(err)
		s.Require().LessOrEqual(grown.Radius, base.Radius)

		if set.Len() > 1 {
			fewer, err := set.Without(s.rng.Intn(set.Len()))
			s.Require().NoError(err)
			shrunk, err := radius.Solve(g, fewer, metric.Chebyshev, distance.KDTree)
			s.Require().NoError(err)
			s.Require().GreaterOrEqual(shrunk.Radius, base.Radius)
		}
	}
}

// TestWorkerInvariance: the farthest cell does not depend on the partition.
func (s *PropertySuite) TestWorkerInvariance() {
	g := mustGrid(s.T(), 64, 48)
	// symmetric layout gives many tied maxima
	set := mustSet(s.T(), gridgraph.Coordinate{Row: 31, Col: 23}, gridgraph.Coordinate{Row: 32, Col: 24})
	want, err := radius.Solve(g, set, metric.Chebyshev, distance.Brute, distance.WithWorkers(1))
	s.Require().NoError(err)
	for _, w := range []int{2, 5, 16} {
		got, err := radius.Solve(g, set, metric.Chebyshev, distance.Brute, distance.WithWorkers(w))
		s.Require().NoError(err)
		s.Require().Equal(want, got, "workers=%d", w)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}
