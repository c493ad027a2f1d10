// Package field provides DistanceField, an immutable rows×cols matrix of
// non-negative nearest-station distances.
//
// A Field stores its values in a flat row-major slice for cache friendliness.
// It has no exported mutators: strategies build the backing slice and hand it
// over once through FromRowMajor, after which the Field is read-only.
package field

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/coverage/gridgraph"
)

var (
	// ErrBadShape indicates non-positive dimensions or a backing slice whose
	// length is not rows*cols.
	ErrBadShape = errors.New("field: invalid shape")
	// ErrOutOfRange indicates a row or column outside the field.
	ErrOutOfRange = errors.New("field: index out of range")
	// ErrInvalidValue indicates a negative, NaN or infinite distance.
	ErrInvalidValue = errors.New("field: distance must be finite and >= 0")
)

// fieldErrorf wraps an underlying error with Field method context.
func fieldErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, row, col, err)
}

// Field is a row-major matrix of nearest-station distances.
type Field struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// FromRowMajor takes ownership of data and returns it as a rows×cols Field.
// The caller must not modify data afterwards.
// Stage 1 (Validate): shape and every value.
// Stage 2 (Finalize): wrap without copying.
// Complexity: O(rows*cols).
func FromRowMajor(rows, cols int, data []float64) (*Field, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d×%d with %d values", ErrBadShape, rows, cols, len(data))
	}
	for i, v := range data {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fieldErrorf("FromRowMajor", i/cols, i%cols, ErrInvalidValue)
		}
	}

	return &Field{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (f *Field) Rows() int {
	return f.r
}

// Cols returns the number of columns.
func (f *Field) Cols() int {
	return f.c
}

// Grid returns the grid the field spans.
func (f *Field) Grid() gridgraph.Grid {
	return gridgraph.Grid{Rows: f.r, Cols: f.c}
}

// At retrieves the distance at (row, col).
// Returns ErrOutOfRange wrapped with method context on a bad index.
// Complexity: O(1).
func (f *Field) At(row, col int) (float64, error) {
	if row < 0 || row >= f.r || col < 0 || col >= f.c {
		return 0, fieldErrorf("At", row, col, ErrOutOfRange)
	}
	return f.data[row*f.c+col], nil
}

// Max returns the largest distance and the row-major-first cell holding it.
// Complexity: O(rows*cols).
func (f *Field) Max() (float64, gridgraph.Coordinate) {
	best, at := f.data[0], 0
	for i, v := range f.data[1:] {
		if v > best {
			best, at = v, i+1
		}
	}
	return best, gridgraph.Coordinate{Row: at / f.c, Col: at % f.c}
}

// CoveredBy reports whether every cell lies within radius r.
func (f *Field) CoveredBy(r float64) bool {
	for _, v := range f.data {
		if v > r {
			return false
		}
	}
	return true
}

// Each calls fn for every cell in row-major order.
func (f *Field) Each(fn func(c gridgraph.Coordinate, d float64)) {
	for i, v := range f.data {
		fn(gridgraph.Coordinate{Row: i / f.c, Col: i % f.c}, v)
	}
}

// Values returns a deep copy of the field as rows of columns.
func (f *Field) Values() [][]float64 {
	out := make([][]float64, f.r)
	for i := range out {
		out[i] = make([]float64, f.c)
		copy(out[i], f.data[i*f.c:(i+1)*f.c])
	}
	return out
}

// Equal reports whether f and g share a shape and differ by at most tol per cell.
func (f *Field) Equal(g *Field, tol float64) bool {
	if f.r != g.r || f.c != g.c {
		return false
	}
	for i := range f.data {
		if math.Abs(f.data[i]-g.data[i]) > tol {
			return false
		}
	}
	return true
}

// String renders one line per row with space-separated cells. Integral
// fields print as integers, others with two decimals.
// Complexity: O(rows*cols).
func (f *Field) String() string {
	integral := true
	for _, v := range f.data {
		if v != math.Trunc(v) {
			integral = false
			break
		}
	}

	cells := make([]string, len(f.data))
	width := 0
	for i, v := range f.data {
		if integral {
			cells[i] = strconv.FormatFloat(v, 'f', 0, 64)
		} else {
			cells[i] = strconv.FormatFloat(v, 'f', 2, 64)
		}
		width = max(width, len(cells[i]))
	}

	var b strings.Builder
	for row := 0; row < f.r; row++ {
		for col := 0; col < f.c; col++ {
			if col > 0 {
				b.WriteByte(' ')
			}
			s := cells[row*f.c+col]
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
