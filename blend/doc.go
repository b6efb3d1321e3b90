// SPDX-License-Identifier: MIT

// Package blend synthesises a new clip by walking the registration curve of
// two clips under a per-frame weight schedule.
//
// At each output frame t with curve parameter u:
//
//	(fa, fb) = S(u)                      fractional source frames
//	T_B      = A(u)                      clip B alignment
//	w        = weights.At(fa)            weight of clip A
//	root     = T[t]( w·rootA(fa) + (1−w)·T_B(rootB(fb)) )
//	rot_k    = slerp(rotA_k(fa), rotB_k(fb), 1−w)
//	Δu       = w·(du/dA) + (1−w)·(du/dB), du = 1/L, dA = 1/F_A, dB = 1/F_B
//
// The root bone's orientation follows the same frames as the root
// position: B's root rotation is turned by T_B before the slerp and the
// result by T[t].
//
// The chain T[t] starts at the identity and is advanced by the weighted
// average of each clip's alignment increment A(u_prev)∘A(u_next)⁻¹, which
// keeps the output trajectory continuous when the emphasis moves from one
// clip to the other. The loop stops once u passes L−1, so the output frame
// count follows from the weights rather than from either input length.
//
// Blend is deterministic, never mutates its inputs and checks its context
// once per output frame.
package blend
