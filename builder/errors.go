// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewFrames indicates a constructor input with no frames.
var ErrTooFewFrames = errors.New("builder: at least one frame is required")
