// SPDX-License-Identifier: MIT

package motion

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyClip is returned when a clip would have zero frames.
	ErrEmptyClip = errors.New("motion: clip has no frames")

	// ErrBadSkeleton indicates an empty bone list, a duplicate bone name or a
	// parent index that does not precede its child.
	ErrBadSkeleton = errors.New("motion: invalid skeleton")

	// ErrShape indicates channel slices whose lengths disagree with the frame
	// count or the bone count, or a non-positive frame time.
	ErrShape = errors.New("motion: channel shape mismatch")

	// ErrSkeletonMismatch indicates two clips whose ordered bone sets differ.
	ErrSkeletonMismatch = errors.New("motion: skeleton mismatch")
)

// MismatchError describes where two skeletons diverge. It matches
// ErrSkeletonMismatch under errors.Is.
type MismatchError struct {
	CountA, CountB int    // bone counts of both skeletons
	Index          int    // first differing bone index, -1 for a count mismatch
	NameA, NameB   string // canonical names at Index
}

func (e *MismatchError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("motion: skeleton mismatch: %d bones vs %d bones", e.CountA, e.CountB)
	}

	return fmt.Sprintf("motion: skeleton mismatch at bone %d: %q vs %q", e.Index, e.NameA, e.NameB)
}

// Is reports whether target is ErrSkeletonMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrSkeletonMismatch
}
