// SPDX-License-Identifier: MIT

package motion

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Clip is an immutable skeletal motion clip.
type Clip struct {
	skel      *Skeleton
	frameTime float64
	root      []r3.Vec        // per-frame local root position
	rot       [][]quat.Number // [frame][bone] local rotation
	world     [][]r3.Vec      // [frame][bone] world position, derived by FK
}

// NewClip copies root and rot into a new Clip and derives world positions.
// len(root) is the frame count and must equal len(rot); every rot[f] must
// hold one rotation per bone. Rotations are normalised on the way in.
func NewClip(skel *Skeleton, frameTime float64, root []r3.Vec, rot [][]quat.Number) (*Clip, error) {
	if skel == nil {
		return nil, fmt.Errorf("motion.NewClip: nil skeleton: %w", ErrBadSkeleton)
	}
	if len(root) == 0 {
		return nil, fmt.Errorf("motion.NewClip: %w", ErrEmptyClip)
	}
	if len(rot) != len(root) {
		return nil, fmt.Errorf("motion.NewClip: %d root positions, %d rotation frames: %w", len(root), len(rot), ErrShape)
	}
	if !(frameTime > 0) || math.IsInf(frameTime, 0) {
		return nil, fmt.Errorf("motion.NewClip: frame time %v: %w", frameTime, ErrShape)
	}

	c := &Clip{
		skel:      skel,
		frameTime: frameTime,
		root:      make([]r3.Vec, len(root)),
		rot:       make([][]quat.Number, len(rot)),
	}
	copy(c.root, root)
	for f, row := range rot {
		if len(row) != skel.Len() {
			return nil, fmt.Errorf("motion.NewClip: frame %d has %d rotations for %d bones: %w", f, len(row), skel.Len(), ErrShape)
		}
		c.rot[f] = make([]quat.Number, len(row))
		for k, q := range row {
			c.rot[f][k] = Normalize(q)
		}
	}
	c.world = c.forwardKinematics()

	return c, nil
}

// forwardKinematics walks the bone arena once per frame.
func (c *Clip) forwardKinematics() [][]r3.Vec {
	n := c.skel.Len()
	world := make([][]r3.Vec, len(c.root))
	worldRot := make([]quat.Number, n)
	for f := range c.root {
		pos := make([]r3.Vec, n)
		for k, b := range c.skel.bones {
			if b.Parent < 0 {
				worldRot[k] = c.rot[f][k]
				pos[k] = c.root[f]
				continue
			}
			pos[k] = r3.Add(pos[b.Parent], Rotate(worldRot[b.Parent], b.Offset))
			worldRot[k] = quat.Mul(worldRot[b.Parent], c.rot[f][k])
		}
		world[f] = pos
	}

	return world
}

// Skeleton returns the clip's skeleton.
func (c *Clip) Skeleton() *Skeleton { return c.skel }

// Frames returns the frame count.
func (c *Clip) Frames() int { return len(c.root) }

// Bones returns the bone count.
func (c *Clip) Bones() int { return c.skel.Len() }

// FrameTime returns the duration of one frame in seconds.
func (c *Clip) FrameTime() float64 { return c.frameTime }

// Root returns the local root position at frame f.
func (c *Clip) Root(f int) r3.Vec { return c.root[f] }

// Rotation returns the local rotation of bone k at frame f.
func (c *Clip) Rotation(f, k int) quat.Number { return c.rot[f][k] }

// World returns the world-space position of bone k at frame f.
func (c *Clip) World(f, k int) r3.Vec { return c.world[f][k] }

// bracket clamps a fractional frame to the clip and returns the two frames
// around it with the blend factor between them.
func (c *Clip) bracket(f float64) (lo, hi int, alpha float64) {
	last := float64(len(c.root) - 1)
	if f <= 0 || math.IsNaN(f) {
		return 0, 0, 0
	}
	if f >= last {
		return len(c.root) - 1, len(c.root) - 1, 0
	}
	lo = int(math.Floor(f))

	return lo, lo + 1, f - float64(lo)
}

// RootAt returns the root position at fractional frame f, linearly
// interpolated and clamped to the clip.
func (c *Clip) RootAt(f float64) r3.Vec {
	lo, hi, alpha := c.bracket(f)
	if alpha == 0 {
		return c.root[lo]
	}

	return lerpVec(c.root[lo], c.root[hi], alpha)
}

// RotationAt returns bone k's local rotation at fractional frame f using
// spherical interpolation, clamped to the clip.
func (c *Clip) RotationAt(f float64, k int) quat.Number {
	lo, hi, alpha := c.bracket(f)
	if alpha == 0 {
		return c.rot[lo][k]
	}

	return Slerp(c.rot[lo][k], c.rot[hi][k], alpha)
}

// Clone returns a deep copy of c.
func (c *Clip) Clone() *Clip {
	out := &Clip{
		skel:      c.skel,
		frameTime: c.frameTime,
		root:      append([]r3.Vec(nil), c.root...),
		rot:       make([][]quat.Number, len(c.rot)),
		world:     make([][]r3.Vec, len(c.world)),
	}
	for f := range c.rot {
		out.rot[f] = append([]quat.Number(nil), c.rot[f]...)
		out.world[f] = append([]r3.Vec(nil), c.world[f]...)
	}

	return out
}

// Resample returns the same motion sampled at n evenly spaced frames over
// the clip's duration. The frame time is scaled so the total duration is
// preserved.
func (c *Clip) Resample(n int) (*Clip, error) {
	if n <= 0 {
		return nil, fmt.Errorf("motion.Resample(%d): %w", n, ErrEmptyClip)
	}

	step, frameTime := 0.0, c.frameTime
	if n > 1 {
		step = float64(len(c.root)-1) / float64(n-1)
		if step > 0 {
			frameTime = c.frameTime * step
		}
	}

	root := make([]r3.Vec, n)
	rot := make([][]quat.Number, n)
	for i := 0; i < n; i++ {
		f := float64(i) * step
		root[i] = c.RootAt(f)
		rot[i] = make([]quat.Number, c.Bones())
		for k := range rot[i] {
			rot[i][k] = c.RotationAt(f, k)
		}
	}

	return NewClip(c.skel, frameTime, root, rot)
}
