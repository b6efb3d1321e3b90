// SPDX-License-Identifier: MIT

package regcurve_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/builder"
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/regcurve"
	"github.com/katalvlaran/motionreg/rigid"
	"github.com/katalvlaran/motionreg/timewarp"
)

const deg = math.Pi / 180

// table serves fixed transforms per cell.
type table map[timewarp.Coord]rigid.Transform

func (t table) Transform(i, j int) rigid.Transform { return t[timewarp.Coord{I: i, J: j}] }

// Dims spans the populated cells.
func (t table) Dims() (rows, cols int) {
	for c := range t {
		rows, cols = max(rows, c.I+1), max(cols, c.J+1)
	}

	return rows, cols
}

func diagonal(n int) timewarp.Path {
	p := make(timewarp.Path, n)
	for i := range p {
		p[i] = timewarp.Coord{I: i, J: i}
	}

	return p
}

func track(t *testing.T, n int) *motion.Clip {
	t.Helper()
	pts := make([]r3.Vec, n)
	for f := range pts {
		pts[f] = r3.Vec{X: float64(f), Y: 1, Z: 0.5 * float64(f*f)}
	}
	c, err := builder.Track(pts)
	require.NoError(t, err)

	return c
}

// TestNew_CorrectsFlips removes a half turn and a full turn while keeping
// clip B's root where the uncorrected transform put it.
func TestNew_CorrectsFlips(t *testing.T) {
	path := diagonal(5)
	raw := []rigid.Transform{
		{Theta: 0.1, X: 1},
		{Theta: 0.1 + math.Pi, X: 2, Z: -1},
		{Theta: 0.2, X: 1.5},
		{Theta: 0.2 + 2*math.Pi, X: -1, Z: 3},
		{Theta: 0.2 + 50*deg, X: 1},
	}
	xf := table{}
	for s, c := range path {
		xf[c] = raw[s]
	}
	roots := track(t, 5)

	curve, err := regcurve.New(path, xf, roots, regcurve.DefaultThresholdDegrees*deg)
	require.NoError(t, err)
	assert.Equal(t, 2, curve.Corrected())

	_, s1 := curve.Step(1)
	_, s3 := curve.Step(3)
	_, s4 := curve.Step(4)
	assert.InDelta(t, 0.1, s1.Theta, 1e-12)
	assert.InDelta(t, 0.2, s3.Theta, 1e-12)
	assert.InDelta(t, 0.2+50*deg, s4.Theta, 1e-12, "a real 50° turn rounds to zero half turns")

	for _, s := range []int{1, 3} {
		c, got := curve.Step(s)
		want := raw[s].Apply(roots.Root(c.J))
		p := got.Apply(roots.Root(c.J))
		assert.InDelta(t, 0, r3.Norm(r3.Sub(want, p)), 1e-9, "root preserved at step %d", s)
	}
}

// TestNew_Continuity injects periodic half turns and a full-turn wrap;
// after correction consecutive steps stay within the threshold.
func TestNew_Continuity(t *testing.T) {
	path := diagonal(40)
	xf := table{}
	for s, c := range path {
		theta := 0.05 * float64(s)
		if s%7 == 3 {
			theta += math.Pi
		}
		if s > 20 {
			theta -= 2 * math.Pi
		}
		xf[c] = rigid.Transform{Theta: theta}
	}

	curve, err := regcurve.New(path, xf, track(t, 40), 40*deg)
	require.NoError(t, err)
	for s := 1; s < curve.Len(); s++ {
		_, prev := curve.Step(s - 1)
		_, cur := curve.Step(s)
		assert.LessOrEqual(t, math.Abs(cur.Theta-prev.Theta), 40*deg, "step %d", s)
	}
}

// TestCurve_Sampling covers S and A between steps and clamping.
func TestCurve_Sampling(t *testing.T) {
	path := timewarp.Path{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 2}}
	xf := table{
		{I: 0, J: 0}: {Theta: 0, X: 0},
		{I: 0, J: 1}: {Theta: 0.2, X: 2},
		{I: 1, J: 2}: {Theta: 0.4, X: 4, Z: 2},
	}
	curve, err := regcurve.New(path, xf, track(t, 3), 40*deg)
	require.NoError(t, err)
	assert.Equal(t, 3, curve.Len())

	fa, fb := curve.S(0.5)
	assert.Equal(t, [2]float64{0, 0.5}, [2]float64{fa, fb})
	fa, fb = curve.S(1.5)
	assert.Equal(t, [2]float64{0.5, 1.5}, [2]float64{fa, fb})
	fa, fb = curve.S(-2)
	assert.Equal(t, [2]float64{0, 0}, [2]float64{fa, fb})
	fa, fb = curve.S(17)
	assert.Equal(t, [2]float64{1, 2}, [2]float64{fa, fb})

	alignA, alignB := curve.A(1.5)
	assert.Equal(t, rigid.Identity(), alignA)
	assert.InDelta(t, 0.3, alignB.Theta, 1e-12)
	assert.InDelta(t, 3, alignB.X, 1e-12)
	assert.InDelta(t, 1, alignB.Z, 1e-12)

	lastA, lastB := curve.Ends()
	assert.Equal(t, 1, lastA)
	assert.Equal(t, 2, lastB)

	p := curve.Path()
	p[0].I = 9
	c, _ := curve.Step(0)
	assert.Equal(t, 0, c.I, "Path returns a copy")
}

// TestNew_Errors rejects bad thresholds and paths that leave clip B.
func TestNew_Errors(t *testing.T) {
	roots := track(t, 3)
	_, err := regcurve.New(diagonal(3), table{}, roots, 0)
	assert.ErrorIs(t, err, regcurve.ErrBadThreshold)
	_, err = regcurve.New(diagonal(3), table{}, roots, 4)
	assert.ErrorIs(t, err, regcurve.ErrBadThreshold)

	_, err = regcurve.New(nil, table{}, roots, 1)
	assert.ErrorIs(t, err, regcurve.ErrPathMismatch)
	_, err = regcurve.New(diagonal(4), table{}, roots, 1)
	assert.ErrorIs(t, err, regcurve.ErrPathMismatch)
}

// TestNew_PathOutsideTransforms rejects path cells the transform grid does
// not cover, in either direction.
func TestNew_PathOutsideTransforms(t *testing.T) {
	roots := track(t, 5)
	small := table{}
	for _, c := range diagonal(2) {
		small[c] = rigid.Transform{Theta: 0.1}
	}

	_, err := regcurve.New(diagonal(3), small, roots, 1)
	assert.ErrorIs(t, err, regcurve.ErrPathMismatch, "row past the grid")

	wide := table{{I: 2, J: 0}: {}, {I: 0, J: 1}: {}}
	_, err = regcurve.New(timewarp.Path{{I: 0, J: 0}, {I: 0, J: 1}, {I: 1, J: 2}}, wide, roots, 1)
	assert.ErrorIs(t, err, regcurve.ErrPathMismatch, "column past the grid")

	_, err = regcurve.New(diagonal(2), small, roots, 1)
	assert.NoError(t, err)
}

// TestBuild_Walks runs the whole chain on two different walks.
func TestBuild_Walks(t *testing.T) {
	a, err := builder.Walk(builder.WithFrames(30))
	require.NoError(t, err)
	b, err := builder.Walk(builder.WithFrames(24), builder.WithHeading(90), builder.WithCycle(24),
		builder.WithOrigin(r3.Vec{X: -2, Y: 0.9, Z: 4}))
	require.NoError(t, err)

	curve, err := regcurve.Build(context.Background(), a, b, regcurve.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, timewarp.Validate(curve.Path(), 30, 24, timewarp.DefaultMaxRun))
	assert.Greater(t, curve.Cost(), 0.0)

	// b walks along +X from (-2, 4); the alignment turns it back onto +Z
	_, mid := curve.Step(curve.Len() / 2)
	assert.InDelta(t, -90*deg, math.Remainder(mid.Theta, 2*math.Pi), 10*deg)

	_, err = regcurve.Build(context.Background(), a, track(t, 5), regcurve.DefaultOptions())
	assert.ErrorIs(t, err, motion.ErrSkeletonMismatch)
}

// TestBuild_Self yields the diagonal and identity alignments.
func TestBuild_Self(t *testing.T) {
	a, err := builder.Walk(builder.WithFrames(20))
	require.NoError(t, err)

	curve, err := regcurve.Build(context.Background(), a, a, regcurve.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, diagonal(20), curve.Path())
	assert.Zero(t, curve.Corrected())
	for s := 0; s < curve.Len(); s++ {
		_, x := curve.Step(s)
		assert.InDelta(t, 0, x.Theta, 1e-9)
	}
}

// TestBuild_Offset pairs two single-bone clips on the same bending track,
// one shifted five units along X: the path is the diagonal and every step
// recovers the shift without rotation.
func TestBuild_Offset(t *testing.T) {
	ptsA := make([]r3.Vec, 10)
	ptsB := make([]r3.Vec, 10)
	for f := range ptsB {
		x := float64(f)
		ptsB[f] = r3.Vec{X: x, Z: 0.05 * x * x * x}
		ptsA[f] = r3.Add(ptsB[f], r3.Vec{X: 5})
	}
	a, err := builder.Track(ptsA)
	require.NoError(t, err)
	b, err := builder.Track(ptsB)
	require.NoError(t, err)

	curve, err := regcurve.Build(context.Background(), a, b, regcurve.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, diagonal(10), curve.Path())
	for s := 0; s < curve.Len(); s++ {
		_, x := curve.Step(s)
		assert.InDelta(t, 0, x.Theta, 1e-9, "step %d", s)
		assert.InDelta(t, 5, math.Hypot(x.X, x.Z), 1e-9, "step %d", s)
	}
}
