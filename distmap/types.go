// SPDX-License-Identifier: MIT

package distmap

import (
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/rigid"
)

// Options configures Build.
//
//   - Window: frames per alignment window (odd values centre exactly).
//   - Workers: goroutines filling rows; 0 means runtime.GOMAXPROCS(0).
//   - Epsilon: degeneracy threshold forwarded to rigid.Align.
//   - BoneMap: canonical bone naming used for the skeleton check.
type Options struct {
	Window  int
	Workers int
	Epsilon float64
	BoneMap motion.BoneMap
}

// DefaultOptions returns Window=5, Workers=0, Epsilon=rigid.DefaultEpsilon
// and the identity bone map.
func DefaultOptions() Options {
	return Options{
		Window:  rigid.DefaultWindow,
		Workers: 0,
		Epsilon: rigid.DefaultEpsilon,
	}
}
