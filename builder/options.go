// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r3"
)

// Option customises a constructor. Later options override earlier ones.
type Option func(*config)

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// WithFrames sets the frame count. Panics if n < 1.
func WithFrames(n int) Option {
	if n < 1 {
		panic("builder: WithFrames(n<1)")
	}
	return func(c *config) { c.frames = n }
}

// WithFrameTime sets the frame duration in seconds. Panics unless dt > 0.
func WithFrameTime(dt float64) Option {
	if !(dt > 0) || !finite(dt) {
		panic("builder: WithFrameTime(dt<=0)")
	}
	return func(c *config) { c.frameTime = dt }
}

// WithOrigin sets the root position of frame 0.
func WithOrigin(p r3.Vec) Option {
	return func(c *config) { c.origin = p }
}

// WithHeading sets the initial walking direction in degrees about +Y.
func WithHeading(deg float64) Option {
	if !finite(deg) {
		panic("builder: WithHeading(non-finite)")
	}
	return func(c *config) { c.heading = deg * math.Pi / 180 }
}

// WithTurnRate sets the heading change per frame in degrees.
func WithTurnRate(deg float64) Option {
	if !finite(deg) {
		panic("builder: WithTurnRate(non-finite)")
	}
	return func(c *config) { c.turnRate = deg * math.Pi / 180 }
}

// WithSpeed sets the distance travelled per frame. Panics if v < 0.
func WithSpeed(v float64) Option {
	if !(v >= 0) || !finite(v) {
		panic("builder: WithSpeed(v<0)")
	}
	return func(c *config) { c.speed = v }
}

// WithCycle sets the gait cycle length in frames. Panics unless n > 0.
func WithCycle(n float64) Option {
	if !(n > 0) || !finite(n) {
		panic("builder: WithCycle(n<=0)")
	}
	return func(c *config) { c.cycle = n }
}

// WithSwing sets the thigh swing amplitude in degrees.
func WithSwing(deg float64) Option {
	if !finite(deg) {
		panic("builder: WithSwing(non-finite)")
	}
	return func(c *config) { c.swing = deg * math.Pi / 180 }
}

// WithPhase offsets the gait cycle by rad radians.
func WithPhase(rad float64) Option {
	if !finite(rad) {
		panic("builder: WithPhase(non-finite)")
	}
	return func(c *config) { c.phase = rad }
}

// WithBob sets the vertical root oscillation amplitude.
func WithBob(a float64) Option {
	if !finite(a) {
		panic("builder: WithBob(non-finite)")
	}
	return func(c *config) { c.bob = a }
}

// WithNoise adds Gaussian jitter with standard deviation sigma to the
// horizontal root position. Panics if sigma < 0.
func WithNoise(sigma float64) Option {
	if !(sigma >= 0) || !finite(sigma) {
		panic("builder: WithNoise(sigma<0)")
	}
	return func(c *config) { c.noise = sigma }
}

// WithSeed seeds the jitter source for reproducible noise.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
