package parallel

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRows_CoversEveryRowOnce checks the partition for several worker counts.
func TestRows_CoversEveryRowOnce(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		for _, rows := range []int{1, 2, 7, 100, 101} {
			var mu sync.Mutex
			seen := make([]int, rows)
			err := Rows(context.Background(), rows, workers, func(_ context.Context, lo, hi int) error {
				mu.Lock()
				defer mu.Unlock()
				for r := lo; r < hi; r++ {
					seen[r]++
				}
				return nil
			})
			require.NoError(t, err)
			for r, n := range seen {
				require.Equal(t, 1, n, "workers=%d rows=%d row=%d", workers, rows, r)
			}
		}
	}
}

// TestRows_ZeroRows is a no-op.
func TestRows_ZeroRows(t *testing.T) {
	called := false
	err := Rows(context.Background(), 0, 4, func(context.Context, int, int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

// TestRows_PropagatesError returns the block error.
func TestRows_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Rows(context.Background(), 50, 4, func(_ context.Context, lo, _ int) error {
		if lo == 0 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}
