// SPDX-License-Identifier: MIT

// Package motion is the skeletal clip data model consumed by the
// registration and blending packages.
//
// A Skeleton is a flat arena of bones where every bone refers to its parent
// by index (parents always precede children). Forward kinematics walks the
// arena front to back, so there is no recursion and deep hierarchies cost
// nothing extra on the stack.
//
// A Clip is an immutable snapshot:
//
//	clip, err := motion.NewClip(skel, 1.0/30, roots, rotations)
//
// NewClip copies the channels, normalises every rotation and derives the
// per-frame world position of every bone exactly once. Downstream code reads
// World, Root and Rotation but never mutates a clip; operations that produce
// new motion (Resample, Concat, blending) return freshly allocated clips.
//
// Conventions: right-handed, Y-up, rotations are unit quaternions in gonum
// quat.Number form (Real, Imag, Jmag, Kmag) = (w, x, y, z).
package motion
