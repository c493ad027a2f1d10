package distance_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coverage/distance"
	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// benchCase is a 300×300 grid with 64 random stations.
func benchCase(b *testing.B) (gridgraph.Grid, station.Set) {
	b.Helper()
	const n, k = 300, 64
	r := rand.New(rand.NewSource(42))
	g, _ := gridgraph.NewGrid(n, n)
	coords := make([]gridgraph.Coordinate, k)
	for i := range coords {
		coords[i] = gridgraph.Coordinate{Row: r.Intn(n), Col: r.Intn(n)}
	}
	s, err := station.New(coords...)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	return g, s
}

// BenchmarkCompute compares the three strategies on the same Chebyshev input.
func BenchmarkCompute(b *testing.B) {
	g, s := benchCase(b)
	for _, kind := range []distance.Kind{distance.Brute, distance.Flood, distance.KDTree} {
		b.Run(kind.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = distance.Compute(g, s, metric.Chebyshev, kind)
			}
		})
	}
}

// BenchmarkSpatialIndex_Nearest measures a single k-d tree query.
func BenchmarkSpatialIndex_Nearest(b *testing.B) {
	g, s := benchCase(b)
	idx, _ := distance.NewSpatialIndex(s, metric.Euclidean)
	q := gridgraph.Coordinate{Row: g.Rows / 2, Col: g.Cols / 3}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = idx.Distance(q)
	}
}
