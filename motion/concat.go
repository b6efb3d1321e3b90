// SPDX-License-Identifier: MIT

package motion

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// DefaultConcatFrames is the number of transition frames Concat inserts.
const DefaultConcatFrames = 10

// Concat appends b to a through a fixed window of k transition frames.
// b's root trajectory is translated so that it starts where a ends, the
// transition frames slerp every joint from a's last pose to b's first pose,
// and the result has a.Frames()+k+b.Frames() frames at a's frame time.
// Neither input is modified.
func Concat(a, b *Clip, k int, bm BoneMap) (*Clip, error) {
	if err := MatchSkeletons(a.skel, b.skel, bm); err != nil {
		return nil, fmt.Errorf("motion.Concat: %w", err)
	}
	if k < 0 {
		return nil, fmt.Errorf("motion.Concat: %d transition frames: %w", k, ErrShape)
	}

	shift := r3.Sub(b.root[0], a.root[len(a.root)-1])
	lastA, firstB := len(a.root)-1, 0
	n := a.Frames() + k + b.Frames()
	root := make([]r3.Vec, 0, n)
	rot := make([][]quat.Number, 0, n)

	root = append(root, a.root...)
	for f := range a.rot {
		rot = append(rot, a.rot[f])
	}

	// the shifted first root of b coincides with a's last root, so only
	// joint rotations move during the transition
	for i := 0; i < k; i++ {
		t := float64(i) / float64(k)
		root = append(root, lerpVec(a.root[lastA], r3.Sub(b.root[firstB], shift), t))
		pose := make([]quat.Number, a.Bones())
		for j := range pose {
			pose[j] = Slerp(a.rot[lastA][j], b.rot[firstB][j], t)
		}
		rot = append(rot, pose)
	}

	for f := range b.root {
		root = append(root, r3.Sub(b.root[f], shift))
		rot = append(rot, b.rot[f])
	}

	return NewClip(a.skel, a.frameTime, root, rot)
}
