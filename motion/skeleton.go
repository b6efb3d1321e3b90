// SPDX-License-Identifier: MIT

package motion

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
)

// Bone is one joint of a Skeleton. Parent is the index of the parent bone,
// or -1 for the root. Offset is the rest translation from the parent joint.
type Bone struct {
	Name   string
	Parent int
	Offset r3.Vec
}

// Skeleton is an immutable, topologically ordered bone arena.
type Skeleton struct {
	bones []Bone
	index map[string]int
}

// NewSkeleton validates bones and returns a Skeleton owning a copy of them.
// Bone 0 must be the only root and every parent index must be smaller than
// the index of its child.
func NewSkeleton(bones []Bone) (*Skeleton, error) {
	if len(bones) == 0 {
		return nil, fmt.Errorf("motion.NewSkeleton: no bones: %w", ErrBadSkeleton)
	}
	if bones[0].Parent != -1 {
		return nil, fmt.Errorf("motion.NewSkeleton: bone 0 %q must be the root: %w", bones[0].Name, ErrBadSkeleton)
	}

	s := &Skeleton{
		bones: make([]Bone, len(bones)),
		index: make(map[string]int, len(bones)),
	}
	for i, b := range bones {
		if b.Name == "" {
			return nil, fmt.Errorf("motion.NewSkeleton: bone %d has no name: %w", i, ErrBadSkeleton)
		}
		if _, dup := s.index[b.Name]; dup {
			return nil, fmt.Errorf("motion.NewSkeleton: duplicate bone %q: %w", b.Name, ErrBadSkeleton)
		}
		if i > 0 && (b.Parent < 0 || b.Parent >= i) {
			return nil, fmt.Errorf("motion.NewSkeleton: bone %q has parent %d: %w", b.Name, b.Parent, ErrBadSkeleton)
		}
		s.bones[i] = b
		s.index[b.Name] = i
	}

	return s, nil
}

// Len returns the number of bones.
func (s *Skeleton) Len() int { return len(s.bones) }

// Bone returns the i-th bone.
func (s *Skeleton) Bone(i int) Bone { return s.bones[i] }

// Index returns the arena index of the named bone.
func (s *Skeleton) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Names returns the bone names in arena order.
func (s *Skeleton) Names() []string {
	names := make([]string, len(s.bones))
	for i, b := range s.bones {
		names[i] = b.Name
	}

	return names
}

// BoneMap translates source-specific bone names to canonical identifiers.
// It is built once and never mutated, so one value can be shared freely.
// The zero BoneMap maps every name to itself.
type BoneMap struct {
	m map[string]string
}

// NewBoneMap copies aliases (source name → canonical name) into a BoneMap.
func NewBoneMap(aliases map[string]string) BoneMap {
	m := make(map[string]string, len(aliases))
	for k, v := range aliases {
		m[k] = v
	}

	return BoneMap{m: m}
}

// Canonical returns the canonical identifier for name.
func (bm BoneMap) Canonical(name string) string {
	if c, ok := bm.m[name]; ok {
		return c
	}

	return name
}

// MatchSkeletons checks that a and b have the same bone count and the same
// canonical bone names in the same order. The returned error is a
// *MismatchError wrapping ErrSkeletonMismatch.
func MatchSkeletons(a, b *Skeleton, bm BoneMap) error {
	if a.Len() != b.Len() {
		return &MismatchError{CountA: a.Len(), CountB: b.Len(), Index: -1}
	}
	for i := range a.bones {
		na, nb := bm.Canonical(a.bones[i].Name), bm.Canonical(b.bones[i].Name)
		if na != nb {
			return &MismatchError{CountA: a.Len(), CountB: b.Len(), Index: i, NameA: na, NameB: nb}
		}
	}

	return nil
}
