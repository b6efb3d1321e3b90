// SPDX-License-Identifier: MIT

// Package rigid implements planar rigid transforms and the closed-form
// least-squares aligner that estimates them between two pose windows.
//
// Convention (used by every package in this module):
//
//	right-handed, Y-up
//	T = (θ, x, z) maps p ↦ R_y(θ)·p + (x, 0, z)
//	R_y(θ)·(px, py, pz) = (px·cosθ + pz·sinθ, py, −px·sinθ + pz·cosθ)
//	(T1 ∘ T2)(p) = T1(T2(p))
//
// The height component of a point is never rotated or translated.
//
// The aligner minimises Σ‖a_k − T(b_k)‖² over the horizontal plane:
//
//	S = Σ (a'x·b'z − a'z·b'x)      a', b' centred on their centroids
//	C = Σ (a'x·b'x + a'z·b'z)
//	θ = atan2(S, C)
//	(x, z) = ā − R_y(θ)·b̄
//
// When both S and C vanish (a single point, a stationary window, identical
// collapsed data) the angle is undefined; Align then reports degeneracy and
// returns the identity transform instead of a non-finite value.
package rigid
