// SPDX-License-Identifier: MIT

package timewarp

import "errors"

var (
	// ErrEmptyGrid indicates a grid with zero rows or columns.
	ErrEmptyGrid = errors.New("timewarp: cost grid must be non-empty")

	// ErrBadCost indicates a negative, infinite or NaN cell cost.
	ErrBadCost = errors.New("timewarp: cost must be a finite non-negative number")

	// ErrBadMaxRun indicates MaxRun < 1.
	ErrBadMaxRun = errors.New("timewarp: MaxRun must be >= 1")

	// ErrUnreachable indicates that no slope-valid path reaches the terminal
	// cell at all (e.g. 1 frame against 5 frames with MaxRun=2).
	ErrUnreachable = errors.New("timewarp: terminal cell unreachable under slope constraint")

	// ErrBadPath is returned by Validate for a path violating the boundary,
	// step or slope rules.
	ErrBadPath = errors.New("timewarp: invalid path")
)
