// SPDX-License-Identifier: MIT

package motion

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// slerpLinearCutoff is the cosine above which Slerp falls back to a
// normalised lerp; sin(θ) is too small to divide by past this point.
const slerpLinearCutoff = 0.9995

// Identity is the unit quaternion with no rotation.
var Identity = quat.Number{Real: 1}

// AxisAngle returns the unit quaternion rotating by angle radians about axis.
func AxisAngle(axis r3.Vec, angle float64) quat.Number {
	axis = r3.Unit(axis)
	s, c := math.Sincos(angle / 2)

	return quat.Number{Real: c, Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// Normalize returns q scaled to unit length. The zero quaternion maps to
// Identity.
func Normalize(q quat.Number) quat.Number {
	n := quat.Abs(q)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Identity
	}

	return quat.Scale(1/n, q)
}

// Rotate applies the unit quaternion q to v.
func Rotate(q quat.Number, v r3.Vec) r3.Vec {
	p := quat.Mul(quat.Mul(q, quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}), quat.Conj(q))

	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// Slerp interpolates between unit quaternions a and b along the shorter arc.
// t=0 yields a, t=1 yields b (or -b, the same rotation).
func Slerp(a, b quat.Number, t float64) quat.Number {
	dot := a.Real*b.Real + a.Imag*b.Imag + a.Jmag*b.Jmag + a.Kmag*b.Kmag
	if dot < 0 {
		b = quat.Scale(-1, b)
		dot = -dot
	}
	if dot > slerpLinearCutoff {
		return Normalize(quat.Add(quat.Scale(1-t, a), quat.Scale(t, b)))
	}

	theta := math.Acos(dot)
	sin := math.Sin(theta)

	return quat.Add(
		quat.Scale(math.Sin((1-t)*theta)/sin, a),
		quat.Scale(math.Sin(t*theta)/sin, b),
	)
}

// lerpVec linearly interpolates between p and q.
func lerpVec(p, q r3.Vec, t float64) r3.Vec {
	return r3.Add(p, r3.Scale(t, r3.Sub(q, p)))
}
