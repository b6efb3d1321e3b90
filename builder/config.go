// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// config aggregates all knobs used by constructors. It is passed by value.
type config struct {
	frames    int
	frameTime float64

	origin   r3.Vec
	heading  float64 // radians
	turnRate float64 // radians per frame
	speed    float64 // units per frame along the heading

	cycle float64 // frames per gait cycle
	swing float64 // thigh swing amplitude, radians
	phase float64 // gait phase offset, radians
	bob   float64 // vertical root oscillation amplitude

	noise float64 // sigma of root jitter, 0 disables
	rng   *rand.Rand
}

// Deterministic defaults.
const (
	defaultFrames    = 60
	defaultFrameTime = 1.0 / 30
	defaultSpeed     = 0.05
	defaultCycle     = 30
	defaultSwing     = 0.5
	defaultBob       = 0.02
	defaultHipHeight = 0.9
)

func newConfig(opts ...Option) config {
	c := config{
		frames:    defaultFrames,
		frameTime: defaultFrameTime,
		origin:    r3.Vec{Y: defaultHipHeight},
		speed:     defaultSpeed,
		cycle:     defaultCycle,
		swing:     defaultSwing,
		bob:       defaultBob,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.noise > 0 && c.rng == nil {
		c.rng = rand.New(rand.NewSource(1))
	}

	return c
}
