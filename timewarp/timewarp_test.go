// SPDX-License-Identifier: MIT

package timewarp_test

import (
	"context"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/motionreg/timewarp"
)

// dense is a Grid backed by a [row][col] table.
type dense [][]float64

func (d dense) Dims() (int, int)      { return len(d), len(d[0]) }
func (d dense) Cost(i, j int) float64 { return d[i][j] }

func zeros(rows, cols int) dense {
	d := make(dense, rows)
	for i := range d {
		d[i] = make([]float64, cols)
	}

	return d
}

// TestFind_SquareZerosIsDiagonal relies on the diagonal winning ties.
func TestFind_SquareZerosIsDiagonal(t *testing.T) {
	path, cost, err := timewarp.Find(context.Background(), zeros(6, 6), timewarp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)

	want := timewarp.Path{}
	for i := 0; i < 6; i++ {
		want = append(want, timewarp.Coord{I: i, J: i})
	}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// TestFind_KnownDetour checks a hand-computed 3×3 optimum that mixes all
// three step kinds.
func TestFind_KnownDetour(t *testing.T) {
	g := dense{
		{0, 0, 9},
		{9, 9, 0},
		{9, 9, 0},
	}
	path, cost, err := timewarp.Find(context.Background(), g, timewarp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	assert.Equal(t, timewarp.Path{{0, 0}, {0, 1}, {1, 2}, {2, 2}}, path)
}

// TestFind_FiveBySeven warps a 5-frame ramp onto a 7-frame ramp.
func TestFind_FiveBySeven(t *testing.T) {
	g := zeros(5, 7)
	for i := range g {
		for j := range g[i] {
			g[i][j] = math.Abs(float64(i)/4 - float64(j)/6)
		}
	}
	path, _, err := timewarp.Find(context.Background(), g, timewarp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, timewarp.Validate(path, 5, 7, timewarp.DefaultMaxRun))

	assert.Equal(t, timewarp.Coord{I: 4, J: 6}, path[len(path)-1])
	seenI, seenJ := map[int]bool{}, map[int]bool{}
	for _, c := range path {
		seenI[c.I], seenJ[c.J] = true, true
	}
	assert.Len(t, seenI, 5, "every frame of the first clip")
	assert.Len(t, seenJ, 7, "every frame of the second clip")
}

// TestFind_SlopeBound forbids a long horizontal run even when it is free.
func TestFind_SlopeBound(t *testing.T) {
	g := dense{
		{0, 0, 0, 0, 0, 0},
		{5, 5, 5, 5, 5, 0},
	}
	path, cost, err := timewarp.Find(context.Background(), g, timewarp.DefaultOptions())
	require.NoError(t, err)
	assert.NoError(t, timewarp.Validate(path, 2, 6, timewarp.DefaultMaxRun))
	assert.Greater(t, cost, 0.0, "the free row-0 run is too long to take")

	wide := timewarp.Options{MaxRun: 5}
	path, cost, err = timewarp.Find(context.Background(), g, wide)
	require.NoError(t, err)
	assert.Equal(t, 0.0, cost)
	assert.NoError(t, timewarp.Validate(path, 2, 6, 5))
}

// TestFind_CheapPrefixWithoutBudget: the cheapest way into (1,3) has
// already spent its left run, so the only finishing path goes through the
// expensive cell (0,1).
func TestFind_CheapPrefixWithoutBudget(t *testing.T) {
	g := dense{
		{0, 100, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}
	path, cost, err := timewarp.Find(context.Background(), g, timewarp.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, timewarp.Validate(path, 2, 5, timewarp.DefaultMaxRun))
	assert.Equal(t, 100.0, cost)
	assert.Equal(t, timewarp.Path{{0, 0}, {0, 1}, {0, 2}, {1, 3}, {1, 4}}, path)
}

// TestFind_SteepRatios covers shapes at or near the slope limit. At 30x90
// every row step must be diagonal and every gap a full left run.
func TestFind_SteepRatios(t *testing.T) {
	for _, dims := range [][2]int{{30, 80}, {30, 90}, {10, 29}, {29, 10}} {
		rows, cols := dims[0], dims[1]
		g := zeros(rows, cols)
		for i := range g {
			for j := range g[i] {
				// cheap along the straight diagonal, which runs out of
				// left budget long before the corner
				g[i][j] = math.Abs(float64(i) - float64(j))
			}
		}
		path, _, err := timewarp.Find(context.Background(), g, timewarp.DefaultOptions())
		require.NoError(t, err, "%dx%d", rows, cols)
		assert.NoError(t, timewarp.Validate(path, rows, cols, timewarp.DefaultMaxRun), "%dx%d", rows, cols)
	}

	_, _, err := timewarp.Find(context.Background(), zeros(30, 91), timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrUnreachable, "one column past 29 diagonals plus 30 full runs")
}

// TestFind_Unreachable: one frame cannot absorb more than MaxRun columns.
func TestFind_Unreachable(t *testing.T) {
	_, _, err := timewarp.Find(context.Background(), zeros(1, 5), timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrUnreachable)

	_, _, err = timewarp.Find(context.Background(), zeros(7, 2), timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrUnreachable)

	path, _, err := timewarp.Find(context.Background(), zeros(1, 3), timewarp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, timewarp.Path{{0, 0}, {0, 1}, {0, 2}}, path)

	path, _, err = timewarp.Find(context.Background(), zeros(1, 1), timewarp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, timewarp.Path{{0, 0}}, path)
}

// TestFind_Errors covers input validation and cancellation.
func TestFind_Errors(t *testing.T) {
	ctx := context.Background()

	_, _, err := timewarp.Find(ctx, dense{{}}, timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrEmptyGrid)

	_, _, err = timewarp.Find(ctx, zeros(2, 2), timewarp.Options{MaxRun: 0})
	assert.ErrorIs(t, err, timewarp.ErrBadMaxRun)

	_, _, err = timewarp.Find(ctx, dense{{0, -1}}, timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrBadCost)

	_, _, err = timewarp.Find(ctx, dense{{math.NaN()}}, timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrBadCost)

	_, _, err = timewarp.Find(ctx, dense{{0, math.Inf(1)}}, timewarp.DefaultOptions())
	assert.ErrorIs(t, err, timewarp.ErrBadCost)

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	_, _, err = timewarp.Find(cctx, zeros(3, 3), timewarp.DefaultOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestValidate rejects every malformed path shape.
func TestValidate(t *testing.T) {
	cases := map[string]timewarp.Path{
		"empty":     {},
		"bad start": {{0, 1}, {1, 2}},
		"bad end":   {{0, 0}, {1, 1}},
		"jump":      {{0, 0}, {2, 2}},
		"backwards": {{0, 0}, {1, 1}, {1, 0}, {2, 2}},
		"long run":  {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 4}, {2, 4}},
	}
	for name, p := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, timewarp.Validate(p, 3, 5, 2), timewarp.ErrBadPath)
		})
	}

	assert.NoError(t, timewarp.Validate(timewarp.Path{{0, 0}, {0, 1}, {1, 2}, {1, 3}, {2, 4}}, 3, 5, 2))
}
