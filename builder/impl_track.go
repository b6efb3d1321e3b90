// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
)

// Track returns a single-bone clip whose root visits points in order with
// no rotation. Only WithFrameTime is honoured.
func Track(points []r3.Vec, opts ...Option) (*motion.Clip, error) {
	if len(points) == 0 {
		return nil, ErrTooFewFrames
	}
	c := newConfig(opts...)

	rot := make([][]quat.Number, len(points))
	for f := range rot {
		rot[f] = []quat.Number{motion.Identity}
	}
	clip, err := motion.NewClip(Point(), c.frameTime, points, rot)
	if err != nil {
		return nil, fmt.Errorf("builder.Track: %w", err)
	}

	return clip, nil
}
