// Package station holds the validated, ordered set of facility positions a
// coverage computation runs against.
//
// A Set is never empty. Its insertion order is preserved for reporting but
// has no influence on distances; duplicate positions are allowed and
// harmless. Sets are immutable: With and Without return new Sets.
package station

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/coverage/gridgraph"
)

var (
	// ErrEmpty indicates a station set with no stations.
	ErrEmpty = errors.New("station: at least one station is required")
	// ErrOutOfBounds indicates a station outside [0,rows)×[0,cols).
	ErrOutOfBounds = errors.New("station: station lies outside the grid")
	// ErrIndex indicates a station index outside [0,Len()).
	ErrIndex = errors.New("station: index out of range")
)

// Set is a non-empty ordered sequence of station coordinates.
type Set struct {
	coords []gridgraph.Coordinate
}

// New copies coords into a Set. Coordinates are not bounds-checked; use
// Validate or Build when a grid is known.
// Returns ErrEmpty when coords is empty.
func New(coords ...gridgraph.Coordinate) (Set, error) {
	if len(coords) == 0 {
		return Set{}, ErrEmpty
	}
	cp := make([]gridgraph.Coordinate, len(coords))
	copy(cp, coords)
	return Set{coords: cp}, nil
}

// Build validates a rows×cols grid and raw (row, col) pairs and returns the
// resulting Set. Every station must lie inside the grid.
// Returns gridgraph.ErrBadShape, ErrEmpty or ErrOutOfBounds.
func Build(rows, cols int, raw [][2]int) (Set, error) {
	g, err := gridgraph.NewGrid(rows, cols)
	if err != nil {
		return Set{}, err
	}
	coords := make([]gridgraph.Coordinate, len(raw))
	for i, rc := range raw {
		coords[i] = gridgraph.Coordinate{Row: rc[0], Col: rc[1]}
	}
	s, err := New(coords...)
	if err != nil {
		return Set{}, err
	}
	if err := s.Validate(g); err != nil {
		return Set{}, err
	}
	return s, nil
}

// Validate returns ErrOutOfBounds for the first station outside g, and
// ErrEmpty for the zero Set.
func (s Set) Validate(g gridgraph.Grid) error {
	if len(s.coords) == 0 {
		return ErrEmpty
	}
	for i, c := range s.coords {
		if !g.InBounds(c) {
			return fmt.Errorf("%w: station %d at %v not in %v", ErrOutOfBounds, i, c, g)
		}
	}
	return nil
}

// Len returns the number of stations.
func (s Set) Len() int {
	return len(s.coords)
}

// Empty reports whether s is the zero Set.
func (s Set) Empty() bool {
	return len(s.coords) == 0
}

// At returns the i-th station in insertion order.
func (s Set) At(i int) gridgraph.Coordinate {
	return s.coords[i]
}

// Coordinates returns a copy of the stations in insertion order.
func (s Set) Coordinates() []gridgraph.Coordinate {
	cp := make([]gridgraph.Coordinate, len(s.coords))
	copy(cp, s.coords)
	return cp
}

// With returns a new Set with c appended.
func (s Set) With(c gridgraph.Coordinate) Set {
	cp := make([]gridgraph.Coordinate, len(s.coords), len(s.coords)+1)
	copy(cp, s.coords)
	return Set{coords: append(cp, c)}
}

// Without returns a new Set without the i-th station.
// Returns ErrIndex for a bad index and ErrEmpty if nothing would remain.
func (s Set) Without(i int) (Set, error) {
	if i < 0 || i >= len(s.coords) {
		return Set{}, fmt.Errorf("%w: %d of %d", ErrIndex, i, len(s.coords))
	}
	if len(s.coords) == 1 {
		return Set{}, ErrEmpty
	}
	cp := make([]gridgraph.Coordinate, 0, len(s.coords)-1)
	cp = append(cp, s.coords[:i]...)
	cp = append(cp, s.coords[i+1:]...)
	return Set{coords: cp}, nil
}

// String renders the set as "[(r,c) (r,c) ...]".
func (s Set) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, c := range s.coords {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(']')
	return b.String()
}
