package field_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coverage/field"
	"github.com/katalvlaran/coverage/gridgraph"
)

// TestFromRowMajor_Errors verifies shape and value validation.
func TestFromRowMajor_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		data       []float64
		err        error
	}{
		{"ZeroRows", 0, 2, nil, field.ErrBadShape},
		{"ShortData", 2, 2, []float64{0, 1, 2}, field.ErrBadShape},
		{"Negative", 1, 2, []float64{0, -1}, field.ErrInvalidValue},
		{"NaN", 1, 2, []float64{math.NaN(), 0}, field.ErrInvalidValue},
		{"Inf", 1, 1, []float64{math.Inf(1)}, field.ErrInvalidValue},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := field.FromRowMajor(tc.rows, tc.cols, tc.data)
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, f)
		})
	}
}

// TestAt covers reads and bounds errors.
func TestAt(t *testing.T) {
	f, err := field.FromRowMajor(2, 3, []float64{0, 1, 2, 3, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, 2, f.Rows())
	assert.Equal(t, 3, f.Cols())
	assert.Equal(t, gridgraph.Grid{Rows: 2, Cols: 3}, f.Grid())

	v, err := f.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	for _, rc := range [][2]int{{-1, 0}, {2, 0}, {0, 3}, {0, -1}} {
		_, err := f.At(rc[0], rc[1])
		assert.ErrorIs(t, err, field.ErrOutOfRange, "At(%d,%d)", rc[0], rc[1])
	}
}

// TestMax returns the first cell attaining the maximum.
func TestMax(t *testing.T) {
	f, _ := field.FromRowMajor(2, 3, []float64{1, 3, 0, 3, 2, 1})
	v, at := f.Max()
	assert.Equal(t, 3.0, v)
	assert.Equal(t, gridgraph.Coordinate{Row: 0, Col: 1}, at)
	assert.True(t, f.CoveredBy(3))
	assert.False(t, f.CoveredBy(2.999))
}

// TestValuesIsCopy verifies Values cannot mutate the field.
func TestValuesIsCopy(t *testing.T) {
	f, _ := field.FromRowMajor(1, 2, []float64{4, 5})
	vals := f.Values()
	vals[0][0] = 99
	v, _ := f.At(0, 0)
	assert.Equal(t, 4.0, v)
}

// TestEachAndEqual walks the field and compares with tolerance.
func TestEachAndEqual(t *testing.T) {
	a, _ := field.FromRowMajor(2, 2, []float64{0, 1, 1, 1.4142135623})
	b, _ := field.FromRowMajor(2, 2, []float64{0, 1, 1, math.Sqrt2})
	c, _ := field.FromRowMajor(1, 4, []float64{0, 1, 1, math.Sqrt2})

	assert.True(t, a.Equal(b, 1e-9))
	assert.False(t, a.Equal(b, 0))
	assert.False(t, b.Equal(c, 1))

	var sum float64
	var visited []gridgraph.Coordinate
	a.Each(func(at gridgraph.Coordinate, d float64) {
		sum += d
		visited = append(visited, at)
	})
	assert.InDelta(t, 3.4142135623, sum, 1e-12)
	assert.Equal(t, []gridgraph.Coordinate{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 1, Col: 0}, {Row: 1, Col: 1}}, visited)
}

// TestString pins integral and fractional rendering.
func TestString(t *testing.T) {
	f, _ := field.FromRowMajor(2, 3, []float64{0, 1, 10, 2, 1, 0})
	assert.Equal(t, " 0  1 10\n 2  1  0\n", f.String())

	g, _ := field.FromRowMajor(1, 2, []float64{0, math.Sqrt2})
	assert.Equal(t, "0.00 1.41\n", g.String())
}
