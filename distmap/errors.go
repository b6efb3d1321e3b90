// SPDX-License-Identifier: MIT

package distmap

import "errors"

var (
	// ErrBadWindow indicates a non-positive alignment window size.
	ErrBadWindow = errors.New("distmap: window size must be > 0")

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = errors.New("distmap: workers must be >= 0")
)
