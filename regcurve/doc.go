// SPDX-License-Identifier: MIT

// Package regcurve builds the registration curve of two motion clips: a
// continuous reparameterisation of their timewarp path together with the
// alignment transform of every path step.
//
// For a curve of length L and u ∈ [0, L−1]:
//
//	S(u): fractional (frame A, frame B), linear between steps ⌊u⌋ and ⌈u⌉
//	A(u): (transform A, transform B), linear between the same steps
//
// Clip A is the reference, so its transform is always the identity. Clip B
// carries the transform stored in the distance map at each path cell.
//
// Discontinuity correction: the per-cell estimates are independent, so the
// angle can flip by half a turn (or wrap by a full turn) between two
// consecutive steps. When the angle moves by more than the threshold
// (40° by default) the step's angle is shifted by the multiple of 180° that
// lands closest to the previous angle, and its translation is recomputed so
// that clip B's root at that step maps to exactly the same point as before.
package regcurve
