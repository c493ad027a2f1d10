package distance

import (
	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/coverage/gridgraph"
	"github.com/katalvlaran/coverage/metric"
	"github.com/katalvlaran/coverage/station"
)

// site is a station (or query cell) as a k-d tree point.
// idx is the station's insertion index, -1 for queries.
type site struct {
	row, col float64
	idx      int
	metric   metric.Metric
}

// Compare returns the signed offset of s from the splitting plane through c
// perpendicular to dimension d.
func (s site) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(site)
	if d == 0 {
		return s.row - q.row
	}
	return s.col - q.col
}

// Dims is always 2: row and column.
func (s site) Dims() int { return 2 }

// Distance returns the squared metric distance. The tree prunes a subtree
// when the squared plane offset exceeds the best distance, which is sound
// for every Minkowski metric since |Δaxis| <= ‖Δ‖p.
func (s site) Distance(c kdtree.Comparable) float64 {
	q := c.(site)
	dr, dc := s.row-q.row, s.col-q.col
	if s.metric.P() == 2 {
		return dr*dr + dc*dc
	}
	d := s.metric.Norm(dr, dc)
	return d * d
}

// sites implements kdtree.Interface.
type sites []site

func (s sites) Index(i int) kdtree.Comparable         { return s[i] }
func (s sites) Len() int                              { return len(s) }
func (s sites) Pivot(d kdtree.Dim) int                { return plane{sites: s, dim: d}.Pivot() }
func (s sites) Slice(start, end int) kdtree.Interface { return s[start:end] }

// plane orders sites along one dimension for median partitioning.
type plane struct {
	sites
	dim kdtree.Dim
}

func (p plane) Less(i, j int) bool {
	if p.dim == 0 {
		return p.sites[i].row < p.sites[j].row
	}
	return p.sites[i].col < p.sites[j].col
}
func (p plane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.sites = p.sites[start:end]
	return p
}
func (p plane) Swap(i, j int) { p.sites[i], p.sites[j] = p.sites[j], p.sites[i] }

// SpatialIndex is a static k-d tree over a station set. It is built once
// and shared by every query; it is safe for concurrent use.
type SpatialIndex struct {
	tree     *kdtree.Tree
	stations []gridgraph.Coordinate
	metric   metric.Metric
}

// NewSpatialIndex builds the tree over s under m.
// Returns station.ErrEmpty or ErrInvalidMetric.
// Complexity: O(|S| log |S|).
func NewSpatialIndex(s station.Set, m metric.Metric) (*SpatialIndex, error) {
	if s.Empty() {
		return nil, station.ErrEmpty
	}
	if !m.Valid() {
		return nil, ErrInvalidMetric
	}
	coords := s.Coordinates()
	pts := make(sites, len(coords))
	for i, c := range coords {
		pts[i] = site{row: float64(c.Row), col: float64(c.Col), idx: i, metric: m}
	}

	return &SpatialIndex{
		tree:     kdtree.New(pts, false),
		stations: coords,
		metric:   m,
	}, nil
}

// Len returns the number of indexed stations.
func (x *SpatialIndex) Len() int {
	return len(x.stations)
}

// Nearest returns the insertion index of a nearest station and its exact
// metric distance from c.
// Complexity: O(log |S|) expected.
func (x *SpatialIndex) Nearest(c gridgraph.Coordinate) (int, float64) {
	q := site{row: float64(c.Row), col: float64(c.Col), idx: -1, metric: x.metric}
	got, _ := x.tree.Nearest(q)
	idx := got.(site).idx
	// recompute from integers so results match BruteForce bit for bit
	return idx, x.metric.Distance(c, x.stations[idx])
}

// Distance implements Querier.
func (x *SpatialIndex) Distance(c gridgraph.Coordinate) float64 {
	_, d := x.Nearest(c)
	return d
}
