// SPDX-License-Identifier: MIT

package regcurve

import "errors"

var (
	// ErrPathMismatch indicates a path that is empty or refers to frames
	// outside the clips it is paired with.
	ErrPathMismatch = errors.New("regcurve: path does not fit the clips")

	// ErrBadThreshold indicates a discontinuity threshold outside (0, π].
	ErrBadThreshold = errors.New("regcurve: discontinuity threshold must be in (0, 180] degrees")
)
