// SPDX-License-Identifier: MIT

package blend

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// WeightCurve holds the weight of clip A at every clip A frame. Clip B gets
// the complement 1−w.
type WeightCurve []float64

// Constant returns n copies of w.
func Constant(w float64, n int) WeightCurve {
	out := make(WeightCurve, n)
	for i := range out {
		out[i] = w
	}

	return out
}

// Ramp returns n weights moving linearly from `from` to `to`.
func Ramp(from, to float64, n int) WeightCurve {
	out := make(WeightCurve, n)
	if n < 2 {
		for i := range out {
			out[i] = from
		}
		return out
	}
	floats.Span(out, from, to)

	return out
}

// At returns the weight at fractional clip A frame f, linearly interpolated
// and clamped to the curve.
func (w WeightCurve) At(f float64) float64 {
	last := len(w) - 1
	switch {
	case last < 0:
		return 0
	case f <= 0 || math.IsNaN(f):
		return w[0]
	case f >= float64(last):
		return w[last]
	}
	lo := int(math.Floor(f))
	alpha := f - float64(lo)

	return w[lo] + alpha*(w[lo+1]-w[lo])
}

// Validate checks that the curve covers frames clip A frames and that all
// weights lie in [0,1].
func (w WeightCurve) Validate(frames int) error {
	if len(w) < frames || len(w) == 0 {
		return &WeightLengthError{Expected: frames, Got: len(w)}
	}
	if floats.HasNaN(w) {
		return fmt.Errorf("blend: weight curve contains NaN: %w", ErrWeightOutOfRange)
	}
	if lo, hi := floats.Min(w), floats.Max(w); lo < 0 || hi > 1 {
		return fmt.Errorf("blend: weights span [%v, %v]: %w", lo, hi, ErrWeightOutOfRange)
	}

	return nil
}
