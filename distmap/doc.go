// SPDX-License-Identifier: MIT

// Package distmap builds the dense distance map between two motion clips.
//
// Cell (i, j) holds the total aligned pose distance between frame i of clip
// A and frame j of clip B: the rigid planar transform is estimated from the
// two pose windows centred on i and j (rigid.Align), then the per-bone
// distances between A's pose and the transformed B pose are summed. The
// transform is stored alongside the cost.
//
// Storage follows the row-major flat layout of a dense matrix: rows are A
// frames, columns are B frames, element (i, j) lives at i*cols+j.
//
// Complexity: O(F_A·F_B·W·J) time for window size W and J bones, O(F_A·F_B)
// memory. Rows are independent and are filled by a bounded pool of
// goroutines, each writing only its own row.
package distmap
