// SPDX-License-Identifier: MIT

// Package builder produces deterministic synthetic motion clips for tests,
// examples and the command line tool.
//
// The package offers:
//
//   - Skeletons: Biped (nine-bone walker) and Point (single root bone).
//   - Clips: Walk (cyclic gait along a possibly curved heading) and Track
//     (single-bone clip following given root positions).
//   - Functional options resolved into an immutable config; option
//     constructors panic on nonsensical values, constructors never panic.
//   - Optional seeded Gaussian jitter on root positions (WithNoise +
//     WithSeed), reproducible for equal seeds.
//
// Guarantees:
//
//   - Same options ⇒ identical clips.
//   - Heading 0 walks towards +Z; positive turn rates turn towards +X
//     (rotation about +Y, right-handed).
package builder
