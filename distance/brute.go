package distance

import (
	"math"

	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// BruteForce answers queries by scanning every station.
type BruteForce struct {
	stations []gridgraph.Coordinate
	metric   metric.Metric
}

// NewBruteForce returns a brute-force Querier over s.
// Returns station.ErrEmpty or ErrInvalidMetric.
func NewBruteForce(s station.Set, m metric.Metric) (*BruteForce, error) {
	if s.Empty() {
		return nil, station.ErrEmpty
	}
	if !m.Valid() {
		return nil, ErrInvalidMetric
	}
	return &BruteForce{stations: s.Coordinates(), metric: m}, nil
}

// Nearest returns the index (insertion order) of the first nearest station
// and its distance from c.
// Complexity: O(|S|).
func (b *BruteForce) Nearest(c gridgraph.Coordinate) (int, float64) {
	best, at := math.Inf(1), -1
	for i, s := range b.stations {
		if d := b.metric.Distance(c, s); d < best {
			best, at = d, i
		}
	}
	return at, best
}

// Distance implements Querier.
func (b *BruteForce) Distance(c gridgraph.Coordinate) float64 {
	_, d := b.Nearest(c)
	return d
}
