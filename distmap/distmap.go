// SPDX-License-Identifier: MIT

package distmap

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/rigid"
)

// Map is a read-only F_A×F_B table of aligned pose distances paired with
// the transforms that produced them.
type Map struct {
	rows, cols int
	cost       []float64
	xf         []rigid.Transform
	degenerate int
}

// Build computes the distance map between a and b.
// Stage 1 (Validate): options and matching skeletons, before any allocation.
// Stage 2 (Prepare): one pose window per frame of each clip.
// Stage 3 (Fill): rows in parallel; ctx is checked before every row.
func Build(ctx context.Context, a, b *motion.Clip, opts Options) (*Map, error) {
	if opts.Window <= 0 {
		return nil, fmt.Errorf("distmap.Build: window %d: %w", opts.Window, ErrBadWindow)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("distmap.Build: workers %d: %w", opts.Workers, ErrBadWorkers)
	}
	if err := motion.MatchSkeletons(a.Skeleton(), b.Skeleton(), opts.BoneMap); err != nil {
		return nil, fmt.Errorf("distmap.Build: %w", err)
	}
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	winA := windows(a, opts.Window)
	winB := windows(b, opts.Window)

	m := &Map{
		rows: a.Frames(),
		cols: b.Frames(),
		cost: make([]float64, a.Frames()*b.Frames()),
		xf:   make([]rigid.Transform, a.Frames()*b.Frames()),
	}
	rowDegenerate := make([]int, m.rows)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := 0; i < m.rows; i++ {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			poseA := winA[i][center(opts.Window)*a.Bones():][:a.Bones()]
			for j := 0; j < m.cols; j++ {
				t, ok := rigid.Align(winA[i], winB[j], opts.Epsilon)
				if !ok {
					rowDegenerate[i]++
				}
				poseB := winB[j][center(opts.Window)*b.Bones():][:b.Bones()]
				m.cost[i*m.cols+j] = rigid.Distance(poseA, poseB, t)
				m.xf[i*m.cols+j] = t
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("distmap.Build: %w", err)
	}
	for _, n := range rowDegenerate {
		m.degenerate += n
	}

	return m, nil
}

// windows returns the clamped pose window centred on every frame of c.
func windows(c *motion.Clip, size int) [][]r3.Vec {
	out := make([][]r3.Vec, c.Frames())
	for f := range out {
		out[f] = rigid.Window(make([]r3.Vec, 0, size*c.Bones()), c, f, size)
	}

	return out
}

// center is the offset of the centre frame inside a window of the given size.
func center(size int) int { return size / 2 }

// Dims returns (rows, cols) = (F_A, F_B).
func (m *Map) Dims() (int, int) { return m.rows, m.cols }

// Cost returns the aligned pose distance of cell (i, j).
func (m *Map) Cost(i, j int) float64 { return m.cost[i*m.cols+j] }

// Transform returns the alignment transform of cell (i, j), mapping clip B
// into clip A's frame.
func (m *Map) Transform(i, j int) rigid.Transform { return m.xf[i*m.cols+j] }

// Degenerate returns how many cells fell back to the identity transform.
func (m *Map) Degenerate() int { return m.degenerate }

// Range returns the smallest and largest cost in the map.
func (m *Map) Range() (lo, hi float64) {
	return floats.Min(m.cost), floats.Max(m.cost)
}
