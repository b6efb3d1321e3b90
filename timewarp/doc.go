// SPDX-License-Identifier: MIT

// Package timewarp finds a slope-constrained dynamic time warping path over
// a dense cost grid.
//
// The path runs from (0,0) to (rows−1, cols−1) using unit steps:
//
//	diagonal (i−1, j−1) → (i, j)
//	left     (i,   j−1) → (i, j)   row index repeats
//	up       (i−1, j)   → (i, j)   column index repeats
//
// Slope constraint: a cell may not be entered by a left step when its left
// neighbour was itself reached by MaxRun consecutive left steps, and
// symmetrically for up steps. A diagonal step resets both run counters and
// a left (up) step resets the up (left) counter. With the default MaxRun=2
// one frame of either clip never corresponds to more than three frames of
// the other.
//
// Algorithm outline:
//  1. D[0][0] = cost(0,0).
//  2. Every cell keeps one accumulated cost per entry state: entered
//     diagonally, or at the end of a left (up) run of length 1..MaxRun.
//     Each state takes its cheapest admissible predecessor state and adds
//     cost(i,j); ties prefer diagonal, then left, then up.
//  3. Backtrack from the cheapest state of the terminal cell
//     (rows−1, cols−1), never from the last cell written, and reverse the
//     collected coordinates. ErrUnreachable means no state there is finite.
//
// Complexity: O(rows·cols·MaxRun) time and memory.
package timewarp
