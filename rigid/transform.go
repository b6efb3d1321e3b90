// SPDX-License-Identifier: MIT

package rigid

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Transform is a rotation by Theta radians about +Y followed by a
// horizontal translation (X, Z). The zero value is the identity.
type Transform struct {
	Theta float64
	X, Z  float64
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{} }

// rotate applies R_y(theta) to the horizontal components (x, z).
func rotate(theta, x, z float64) (float64, float64) {
	s, c := math.Sincos(theta)

	return x*c + z*s, -x*s + z*c
}

// Apply maps p through t. p.Y passes through unchanged.
func (t Transform) Apply(p r3.Vec) r3.Vec {
	x, z := rotate(t.Theta, p.X, p.Z)

	return r3.Vec{X: x + t.X, Y: p.Y, Z: z + t.Z}
}

// Compose returns t∘u, the transform applying u first and then t.
func (t Transform) Compose(u Transform) Transform {
	x, z := rotate(t.Theta, u.X, u.Z)

	return Transform{Theta: t.Theta + u.Theta, X: x + t.X, Z: z + t.Z}
}

// Inverse returns the transform undoing t.
func (t Transform) Inverse() Transform {
	x, z := rotate(-t.Theta, t.X, t.Z)

	return Transform{Theta: -t.Theta, X: -x, Z: -z}
}

// IsFinite reports whether every component of t is finite.
func (t Transform) IsFinite() bool {
	for _, v := range [...]float64{t.Theta, t.X, t.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Lerp interpolates the components of a and b. Angles are interpolated
// as plain numbers, so callers keep consecutive angles unwrapped.
func Lerp(a, b Transform, alpha float64) Transform {
	return Transform{
		Theta: a.Theta + alpha*(b.Theta-a.Theta),
		X:     a.X + alpha*(b.X-a.X),
		Z:     a.Z + alpha*(b.Z-a.Z),
	}
}

// Matrix returns t as a 3×3 homogeneous matrix acting on column vectors
// (x, z, 1).
func (t Transform) Matrix() *mat.Dense {
	s, c := math.Sincos(t.Theta)

	return mat.NewDense(3, 3, []float64{
		c, s, t.X,
		-s, c, t.Z,
		0, 0, 1,
	})
}

// FromMatrix recovers a Transform from the homogeneous form produced by
// Matrix (or a product of such matrices).
func FromMatrix(m mat.Matrix) Transform {
	return Transform{
		Theta: math.Atan2(m.At(0, 1), m.At(0, 0)),
		X:     m.At(0, 2),
		Z:     m.At(1, 2),
	}
}
