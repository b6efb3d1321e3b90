// SPDX-License-Identifier: MIT

package timewarp

import (
	"context"
	"fmt"
	"math"
)

// Every cell carries 2·MaxRun+1 states, one per way of entering it:
//
//	0              diagonal step (or the start cell)
//	1 … MaxRun     left step ending a left run of that length
//	MaxRun+1 … 2·MaxRun  up step ending an up run of length s−MaxRun
//
// Keeping the run length in the state lets a costlier prefix with run
// budget left survive next to a cheaper one that has used it up.

// argmin returns the first cheapest state in cell[lo:hi].
func argmin(cell []float64, lo, hi int) (int, float64) {
	best, at := math.Inf(1), -1
	for s := lo; s < hi; s++ {
		if cell[s] < best {
			best, at = cell[s], s
		}
	}

	return at, best
}

// Find returns the minimum-cost slope-constrained path through g and its
// accumulated cost. ctx is checked once per row.
func Find(ctx context.Context, g Grid, opts Options) (Path, float64, error) {
	rows, cols := g.Dims()
	if rows <= 0 || cols <= 0 {
		return nil, 0, ErrEmptyGrid
	}
	if opts.MaxRun < 1 {
		return nil, 0, fmt.Errorf("timewarp.Find: MaxRun=%d: %w", opts.MaxRun, ErrBadMaxRun)
	}

	m := opts.MaxRun
	ns := 2*m + 1
	up := m + 1 // first up state
	cost := make([]float64, rows*cols*ns)
	from := make([]int32, rows*cols*ns) // predecessor state in the predecessor cell
	for k := range cost {
		cost[k] = math.Inf(1)
		from[k] = -1
	}
	cell := func(i, j int) int { return (i*cols + j) * ns }

	for i := 0; i < rows; i++ {
		if err := ctx.Err(); err != nil {
			return nil, 0, fmt.Errorf("timewarp.Find: %w", err)
		}
		for j := 0; j < cols; j++ {
			c := g.Cost(i, j)
			if c < 0 || math.IsNaN(c) || math.IsInf(c, 1) {
				return nil, 0, fmt.Errorf("timewarp.Find: cost(%d,%d)=%v: %w", i, j, c, ErrBadCost)
			}
			cur := cell(i, j)
			if i == 0 && j == 0 {
				cost[cur] = c
				continue
			}

			if i > 0 && j > 0 {
				d := cell(i-1, j-1)
				if s, v := argmin(cost[d:d+ns], 0, ns); s >= 0 {
					cost[cur], from[cur] = v+c, int32(s)
				}
			}
			if j > 0 {
				l := cell(i, j-1)
				// a run of one starts from any state that is not a left run
				s, v := argmin(cost[l:l+ns], 0, 1)
				if su, vu := argmin(cost[l:l+ns], up, ns); vu < v {
					s, v = su, vu
				}
				if s >= 0 {
					cost[cur+1], from[cur+1] = v+c, int32(s)
				}
				for r := 2; r <= m; r++ {
					if v := cost[l+r-1]; !math.IsInf(v, 1) {
						cost[cur+r], from[cur+r] = v+c, int32(r-1)
					}
				}
			}
			if i > 0 {
				u := cell(i-1, j)
				s, v := argmin(cost[u:u+ns], 0, up)
				if s >= 0 {
					cost[cur+up], from[cur+up] = v+c, int32(s)
				}
				for r := 2; r <= m; r++ {
					if v := cost[u+up+r-2]; !math.IsInf(v, 1) {
						cost[cur+up+r-1], from[cur+up+r-1] = v+c, int32(up+r-2)
					}
				}
			}
		}
	}

	end := cell(rows-1, cols-1)
	state, total := argmin(cost[end:end+ns], 0, ns)
	if state < 0 {
		return nil, 0, fmt.Errorf("timewarp.Find: %dx%d grid: %w", rows, cols, ErrUnreachable)
	}

	path := make(Path, 0, rows+cols-1)
	i, j := rows-1, cols-1
	for {
		path = append(path, Coord{I: i, J: j})
		if i == 0 && j == 0 {
			break
		}
		prev := int(from[cell(i, j)+state])
		switch {
		case state == 0:
			i, j = i-1, j-1
		case state < up:
			j--
		default:
			i--
		}
		state = prev
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, total, nil
}

// Validate checks that p starts at (0,0), ends at (rows−1, cols−1), only
// takes unit diagonal/left/up steps and never takes more than maxRun
// consecutive steps along a single axis.
func Validate(p Path, rows, cols, maxRun int) error {
	if len(p) == 0 {
		return fmt.Errorf("timewarp.Validate: empty path: %w", ErrBadPath)
	}
	if p[0] != (Coord{}) {
		return fmt.Errorf("timewarp.Validate: starts at %v: %w", p[0], ErrBadPath)
	}
	if last := p[len(p)-1]; last != (Coord{I: rows - 1, J: cols - 1}) {
		return fmt.Errorf("timewarp.Validate: ends at %v, want (%d,%d): %w", last, rows-1, cols-1, ErrBadPath)
	}

	runLeft, runUp := 0, 0
	for k := 1; k < len(p); k++ {
		di, dj := p[k].I-p[k-1].I, p[k].J-p[k-1].J
		switch {
		case di == 1 && dj == 1:
			runLeft, runUp = 0, 0
		case di == 0 && dj == 1:
			runLeft, runUp = runLeft+1, 0
		case di == 1 && dj == 0:
			runLeft, runUp = 0, runUp+1
		default:
			return fmt.Errorf("timewarp.Validate: step %v→%v: %w", p[k-1], p[k], ErrBadPath)
		}
		if runLeft > maxRun || runUp > maxRun {
			return fmt.Errorf("timewarp.Validate: more than %d single-axis steps ending at %v: %w", maxRun, p[k], ErrBadPath)
		}
	}

	return nil
}
