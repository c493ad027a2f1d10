package gridgraph_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/coverage/gridgraph"
)

// BenchmarkFloodFill_Sequential measures FIFO flood fill on a 1000×1000 grid
// with 16 random seeds.
// Complexity: O(W×H×8)
func BenchmarkFloodFill_Sequential(b *testing.B) {
	const n = 1000
	g, _ := gridgraph.NewGrid(n, n)
	seeds := randomSeeds(rand.New(rand.NewSource(42)), g, 16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.FloodFill(g, seeds)
	}
}

// BenchmarkFloodFill_Layered measures the layer-parallel mode on the same input.
func BenchmarkFloodFill_Layered(b *testing.B) {
	const n = 1000
	g, _ := gridgraph.NewGrid(n, n)
	seeds := randomSeeds(rand.New(rand.NewSource(42)), g, 16)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = gridgraph.FloodFill(g, seeds, gridgraph.WithWorkers(0))
	}
}
