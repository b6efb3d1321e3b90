// SPDX-License-Identifier: MIT

package rigid

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultWindow is the number of consecutive frames in an alignment window.
const DefaultWindow = 5

// DefaultEpsilon is the magnitude below which both closed-form sums are
// treated as zero.
const DefaultEpsilon = 1e-9

// Poses is the read-only view of a clip the aligner needs.
type Poses interface {
	Frames() int
	Bones() int
	World(frame, bone int) r3.Vec
}

// Window appends to dst the world positions of every bone for size frames
// centred on center, frame-major. Frame indices are clamped to the clip,
// so windows at the boundaries repeat the first or last frame.
func Window(dst []r3.Vec, p Poses, center, size int) []r3.Vec {
	last := p.Frames() - 1
	half := size / 2
	for u := 0; u < size; u++ {
		f := min(max(center+u-half, 0), last)
		for k := 0; k < p.Bones(); k++ {
			dst = append(dst, p.World(f, k))
		}
	}

	return dst
}

// Align returns the planar transform T minimising Σ‖a_k − T(b_k)‖² over
// the horizontal plane. ok is false when the problem is degenerate (or the
// windows are empty or differ in length); T is then the identity.
func Align(a, b []r3.Vec, eps float64) (t Transform, ok bool) {
	n := len(a)
	if n == 0 || n != len(b) {
		return Transform{}, false
	}

	w := 1 / float64(n)
	var xa, za, xb, zb, cross, dot float64
	for k := range a {
		xa += a[k].X * w
		za += a[k].Z * w
		xb += b[k].X * w
		zb += b[k].Z * w
		cross += (a[k].X*b[k].Z - a[k].Z*b[k].X) * w
		dot += (a[k].X*b[k].X + a[k].Z*b[k].Z) * w
	}
	// centre the sums: Σa'×b' = Σa×b − ā×b̄
	s := cross - (xa*zb - za*xb)
	c := dot - (xa*xb + za*zb)
	if math.Abs(s) < eps && math.Abs(c) < eps {
		return Transform{}, false
	}

	t.Theta = math.Atan2(s, c)
	rx, rz := rotate(t.Theta, xb, zb)
	t.X, t.Z = xa-rx, za-rz
	if !t.IsFinite() {
		return Transform{}, false
	}

	return t, true
}

// Distance returns Σ‖a_k − t(b_k)‖ over paired points.
func Distance(a, b []r3.Vec, t Transform) float64 {
	var d float64
	for k := range a {
		d += r3.Norm(r3.Sub(a[k], t.Apply(b[k])))
	}

	return d
}
