// Package parallel splits grid rows into contiguous blocks and processes
// them on a bounded number of goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// blocksPerWorker oversubscribes blocks so uneven rows still balance.
const blocksPerWorker = 4

// Rows runs fn over disjoint [lo,hi) row ranges covering [0,rows), using at
// most workers goroutines. With one worker fn is called once on the calling
// goroutine. The first error cancels the context passed to the remaining
// blocks and is returned.
func Rows(ctx context.Context, rows, workers int, fn func(ctx context.Context, lo, hi int) error) error {
	if rows <= 0 {
		return nil
	}
	if workers <= 1 || rows == 1 {
		return fn(ctx, 0, rows)
	}

	blocks := min(rows, workers*blocksPerWorker)
	size := (rows + blocks - 1) / blocks

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < rows; lo += size {
		hi := min(lo+size, rows)
		g.Go(func() error {
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}
