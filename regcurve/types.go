// SPDX-License-Identifier: MIT

package regcurve

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/distmap"
	"github.com/katalvlaran/motionreg/rigid"
	"github.com/katalvlaran/motionreg/timewarp"
)

// DefaultThresholdDegrees is the empirical angle jump treated as an
// estimator flip rather than real motion.
const DefaultThresholdDegrees = 40.0

// Options configures Build.
type Options struct {
	DistMap  distmap.Options
	Timewarp timewarp.Options

	// Threshold is the discontinuity threshold in radians.
	Threshold float64
}

// DefaultOptions returns the default distance map and timewarp options and
// a 40° threshold.
func DefaultOptions() Options {
	return Options{
		DistMap:   distmap.DefaultOptions(),
		Timewarp:  timewarp.DefaultOptions(),
		Threshold: DefaultThresholdDegrees * math.Pi / 180,
	}
}

// Transforms yields the alignment transform of a path cell and the extent
// of the grid it covers. distmap.Map satisfies it.
type Transforms interface {
	Dims() (rows, cols int)
	Transform(i, j int) rigid.Transform
}

// Roots is the root channel of clip B, used to keep corrected steps in
// place. motion.Clip satisfies it.
type Roots interface {
	Frames() int
	Root(frame int) r3.Vec
}
