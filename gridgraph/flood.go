package gridgraph

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// unvisited marks a cell no BFS layer has claimed yet.
const unvisited int32 = -1

// Rings holds the BFS discovery layer of every grid cell, row-major.
// It is immutable once returned by FloodFill.
type Rings struct {
	grid  Grid
	depth []int32
	max   int32
}

// Grid returns the grid the rings were computed on.
func (r *Rings) Grid() Grid {
	return r.grid
}

// Depth returns the layer of the cell at row-major index idx.
func (r *Rings) Depth(idx int) int {
	return int(r.depth[idx])
}

// At returns the layer of c, or false if c lies outside the grid.
func (r *Rings) At(c Coordinate) (int, bool) {
	if !r.grid.InBounds(c) {
		return 0, false
	}
	return int(r.depth[r.grid.Index(c)]), true
}

// MaxDepth returns the deepest layer reached.
func (r *Rings) MaxDepth() int {
	return int(r.max)
}

// flooder encapsulates mutable flood-fill state.
type flooder struct {
	grid    Grid
	opts    FloodOptions
	ctx     context.Context
	offsets [][2]int
	depth   []int32
	max     int32
}

// FloodFill runs a multi-source breadth-first expansion over g from seeds.
// Every seed starts at layer 0; a cell first reached while expanding layer k
// gets layer k+1. Duplicate seeds are harmless.
//
// Behavior:
//  1. Validate grid, options and seeds (all seeds must be in bounds).
//  2. Expand layers until the frontier is empty:
//     • Workers == 1: head-indexed FIFO queue, O(1) pop.
//     • Workers  > 1: one barrier per layer, large layers split across workers.
//  3. Verify every cell was reached.
//
// Returns ErrBadShape, ErrOptionViolation, ErrNoSeeds, ErrSeedOutOfBounds,
// ErrDisconnected, or the context error if the context is cancelled.
//
// Complexity: O(Rows×Cols×d) time, O(Rows×Cols) memory.
func FloodFill(g Grid, seeds []Coordinate, opts ...FloodOption) (*Rings, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	o := DefaultFloodOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(seeds) == 0 {
		return nil, ErrNoSeeds
	}
	for _, s := range seeds {
		if !g.InBounds(s) {
			return nil, fmt.Errorf("%w: %v not in %v", ErrSeedOutOfBounds, s, g)
		}
	}

	f := &flooder{
		grid:    g,
		opts:    o,
		ctx:     o.Ctx,
		offsets: o.Conn.Offsets(),
		depth:   make([]int32, g.Cells()),
	}
	for i := range f.depth {
		f.depth[i] = unvisited
	}

	var err error
	if o.Workers > 1 {
		err = f.layered(seeds)
	} else {
		err = f.sequential(seeds)
	}
	if err != nil {
		return nil, err
	}

	for i, d := range f.depth {
		if d == unvisited {
			return nil, fmt.Errorf("%w: cell %v", ErrDisconnected, g.Coordinate(i))
		}
	}

	return &Rings{grid: g, depth: f.depth, max: f.max}, nil
}

// sequential is the single-goroutine FIFO expansion.
func (f *flooder) sequential(seeds []Coordinate) error {
	// each cell is enqueued at most once, so the queue never reallocates
	queue := make([]int, 0, f.grid.Cells())
	for _, s := range seeds {
		i := f.grid.Index(s)
		if f.depth[i] == unvisited {
			f.depth[i] = 0
			queue = append(queue, i)
		}
	}

	layer := int32(0)
	for head := 0; head < len(queue); head++ {
		u := queue[head]
		du := f.depth[u]
		if du != layer {
			layer = du
			if err := f.ctx.Err(); err != nil {
				return err
			}
		}
		uc := f.grid.Coordinate(u)
		for _, d := range f.offsets {
			v := Coordinate{Row: uc.Row + d[0], Col: uc.Col + d[1]}
			if !f.grid.InBounds(v) {
				continue
			}
			vi := f.grid.Index(v)
			if f.depth[vi] == unvisited {
				f.depth[vi] = du + 1
				queue = append(queue, vi)
			}
		}
	}
	f.max = layer

	return nil
}

// layered expands one whole BFS layer at a time. All cells of layer k are
// expanded before any cell of layer k+1.
func (f *flooder) layered(seeds []Coordinate) error {
	frontier := make([]int, 0, len(seeds))
	for _, s := range seeds {
		i := f.grid.Index(s)
		if f.depth[i] == unvisited {
			f.depth[i] = 0
			frontier = append(frontier, i)
		}
	}

	for k := int32(0); len(frontier) > 0; k++ {
		if err := f.ctx.Err(); err != nil {
			return err
		}
		f.max = k
		if len(frontier) >= f.opts.ParallelThreshold {
			frontier = f.expandParallel(frontier, k+1)
		} else {
			frontier = f.expand(frontier, k+1, make([]int, 0, len(frontier)*2))
		}
	}

	return nil
}

// expand claims every unvisited neighbor of frontier for layer d and
// appends the claimed cells to next.
func (f *flooder) expand(frontier []int, d int32, next []int) []int {
	for _, u := range frontier {
		uc := f.grid.Coordinate(u)
		for _, off := range f.offsets {
			v := Coordinate{Row: uc.Row + off[0], Col: uc.Col + off[1]}
			if !f.grid.InBounds(v) {
				continue
			}
			vi := f.grid.Index(v)
			if atomic.CompareAndSwapInt32(&f.depth[vi], unvisited, d) {
				next = append(next, vi)
			}
		}
	}
	return next
}

// expandParallel splits frontier into contiguous chunks, one per worker.
// Each cell is claimed by exactly one worker via compare-and-swap.
func (f *flooder) expandParallel(frontier []int, d int32) []int {
	w := f.opts.Workers
	chunk := (len(frontier) + w - 1) / w
	parts := make([][]int, w)

	var g errgroup.Group
	for i := 0; i < w; i++ {
		lo := i * chunk
		if lo >= len(frontier) {
			break
		}
		hi := min(lo+chunk, len(frontier))
		g.Go(func() error {
			parts[i] = f.expand(frontier[lo:hi], d, nil)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, p := range parts {
		total += len(p)
	}
	next := make([]int, 0, total)
	for _, p := range parts {
		next = append(next, p...)
	}
	return next
}
