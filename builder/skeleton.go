// SPDX-License-Identifier: MIT

package builder

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
)

// Bone indices of the Biped skeleton.
const (
	Hips = iota
	Spine
	Head
	LeftThigh
	LeftShin
	LeftFoot
	RightThigh
	RightShin
	RightFoot
	bipedBones
)

const (
	legLength  = 0.45
	hipWidth   = 0.1
	spineRise  = 0.3
	neckLength = 0.4
)

// Biped returns a nine-bone walker skeleton rooted at the hips.
func Biped() *motion.Skeleton {
	s, err := motion.NewSkeleton([]motion.Bone{
		Hips:       {Name: "hips", Parent: -1},
		Spine:      {Name: "spine", Parent: Hips, Offset: r3.Vec{Y: spineRise}},
		Head:       {Name: "head", Parent: Spine, Offset: r3.Vec{Y: neckLength}},
		LeftThigh:  {Name: "l_thigh", Parent: Hips, Offset: r3.Vec{X: hipWidth}},
		LeftShin:   {Name: "l_shin", Parent: LeftThigh, Offset: r3.Vec{Y: -legLength}},
		LeftFoot:   {Name: "l_foot", Parent: LeftShin, Offset: r3.Vec{Y: -legLength}},
		RightThigh: {Name: "r_thigh", Parent: Hips, Offset: r3.Vec{X: -hipWidth}},
		RightShin:  {Name: "r_shin", Parent: RightThigh, Offset: r3.Vec{Y: -legLength}},
		RightFoot:  {Name: "r_foot", Parent: RightShin, Offset: r3.Vec{Y: -legLength}},
	})
	if err != nil {
		// static table; unreachable
		panic(err)
	}

	return s
}

// Point returns a single-bone skeleton.
func Point() *motion.Skeleton {
	s, err := motion.NewSkeleton([]motion.Bone{{Name: "root", Parent: -1}})
	if err != nil {
		panic(err)
	}

	return s
}
