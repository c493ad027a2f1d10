package gridgraph

import "fmt"

// NewGrid validates and returns a rows×cols Grid.
// Returns ErrBadShape if rows or cols is not positive.
// Complexity: O(1).
func NewGrid(rows, cols int) (Grid, error) {
	if rows <= 0 || cols <= 0 {
		return Grid{}, fmt.Errorf("%w: got %d×%d", ErrBadShape, rows, cols)
	}
	return Grid{Rows: rows, Cols: cols}, nil
}

// Validate reports ErrBadShape for a zero or hand-built invalid Grid.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: got %d×%d", ErrBadShape, g.Rows, g.Cols)
	}
	return nil
}

// Cells returns Rows×Cols.
func (g Grid) Cells() int {
	return g.Rows * g.Cols
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Index maps c to its row-major index: Row*Cols + Col.
// The caller must ensure c is in bounds.
// Complexity: O(1).
func (g Grid) Index(c Coordinate) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Neighbors appends the in-bounds neighbors of c under conn to dst and returns it.
func (g Grid) Neighbors(dst []Coordinate, c Coordinate, conn Connectivity) []Coordinate {
	for _, d := range conn.Offsets() {
		n := Coordinate{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.InBounds(n) {
			dst = append(dst, n)
		}
	}
	return dst
}

// String renders the grid as "rows×cols".
func (g Grid) String() string {
	return fmt.Sprintf("%d×%d", g.Rows, g.Cols)
}
