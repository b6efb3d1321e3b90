// SPDX-License-Identifier: MIT

package motion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
)

const tol = 1e-9

// chain returns a three-bone chain: root → mid (up 1) → tip (up 1).
func chain(t *testing.T, names ...string) *motion.Skeleton {
	t.Helper()
	if len(names) == 0 {
		names = []string{"root", "mid", "tip"}
	}
	s, err := motion.NewSkeleton([]motion.Bone{
		{Name: names[0], Parent: -1},
		{Name: names[1], Parent: 0, Offset: r3.Vec{Y: 1}},
		{Name: names[2], Parent: 1, Offset: r3.Vec{Y: 1}},
	})
	require.NoError(t, err)

	return s
}

// still returns n frames with the root at roots[f] and identity rotations.
func still(t *testing.T, s *motion.Skeleton, roots ...r3.Vec) *motion.Clip {
	t.Helper()
	rot := make([][]quat.Number, len(roots))
	for f := range rot {
		rot[f] = make([]quat.Number, s.Len())
		for k := range rot[f] {
			rot[f][k] = motion.Identity
		}
	}
	c, err := motion.NewClip(s, 1.0/30, roots, rot)
	require.NoError(t, err)

	return c
}

func vecNear(t *testing.T, want, got r3.Vec, msg string) {
	t.Helper()
	if r3.Norm(r3.Sub(want, got)) > 1e-9 {
		t.Fatalf("%s: want %v, got %v", msg, want, got)
	}
}

// sameRotation treats q and -q as equal.
func sameRotation(a, b quat.Number) bool {
	d := math.Abs(a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag)
	return math.Abs(d-1) < 1e-9
}
