// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
)

const tau = 2 * math.Pi

var (
	axisX = r3.Vec{X: 1}
	axisY = r3.Vec{Y: 1}
)

// Walk returns a Biped gait clip. The root advances speed units per frame
// along the current heading, the heading turns by the turn rate each frame,
// and the legs swing with the gait cycle.
// Complexity: O(frames·bones).
func Walk(opts ...Option) (*motion.Clip, error) {
	c := newConfig(opts...)

	root := make([]r3.Vec, c.frames)
	rot := make([][]quat.Number, c.frames)
	pos := c.origin
	for f := 0; f < c.frames; f++ {
		h := c.heading + c.turnRate*float64(f)
		phi := tau*float64(f)/c.cycle + c.phase

		root[f] = r3.Vec{X: pos.X, Y: c.origin.Y + c.bob*math.Cos(2*phi), Z: pos.Z}
		if c.noise > 0 {
			root[f].X += c.rng.NormFloat64() * c.noise
			root[f].Z += c.rng.NormFloat64() * c.noise
		}
		pos = r3.Add(pos, r3.Scale(c.speed, r3.Vec{X: math.Sin(h), Z: math.Cos(h)}))

		knee := func(p float64) quat.Number {
			return motion.AxisAngle(axisX, 0.6*c.swing*(1-math.Cos(p))/2)
		}
		pose := make([]quat.Number, bipedBones)
		pose[Hips] = motion.AxisAngle(axisY, h)
		pose[Spine] = motion.AxisAngle(axisY, -0.2*c.swing*math.Sin(phi))
		pose[Head] = motion.Identity
		pose[LeftThigh] = motion.AxisAngle(axisX, c.swing*math.Sin(phi))
		pose[LeftShin] = knee(phi)
		pose[LeftFoot] = motion.Identity
		pose[RightThigh] = motion.AxisAngle(axisX, -c.swing*math.Sin(phi))
		pose[RightShin] = knee(phi + math.Pi)
		pose[RightFoot] = motion.Identity
		rot[f] = pose
	}

	clip, err := motion.NewClip(Biped(), c.frameTime, root, rot)
	if err != nil {
		return nil, fmt.Errorf("builder.Walk: %w", err)
	}

	return clip, nil
}
