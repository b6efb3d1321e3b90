// SPDX-License-Identifier: MIT

package blend

import (
	"errors"
	"fmt"
)

var (
	// ErrWeightCurveLength indicates a weight curve shorter than clip A.
	ErrWeightCurveLength = errors.New("blend: weight curve too short")

	// ErrWeightOutOfRange indicates a weight outside [0,1] or NaN.
	ErrWeightOutOfRange = errors.New("blend: weight out of [0,1]")
)

// WeightLengthError reports the expected and actual weight curve lengths.
// It matches ErrWeightCurveLength under errors.Is.
type WeightLengthError struct {
	Expected, Got int
}

func (e *WeightLengthError) Error() string {
	return fmt.Sprintf("blend: weight curve has %d entries, expected at least %d (one per frame of clip A)", e.Got, e.Expected)
}

// Is reports whether target is ErrWeightCurveLength.
func (e *WeightLengthError) Is(target error) bool {
	return target == ErrWeightCurveLength
}
