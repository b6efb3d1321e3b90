// SPDX-License-Identifier: MIT

package timewarp

// DefaultMaxRun is the default bound on consecutive single-axis steps.
const DefaultMaxRun = 2

// Coord is one correspondence: frame I of the first clip matches frame J of
// the second.
type Coord struct {
	I, J int
}

// Path is a chronological sequence of correspondences.
type Path []Coord

// Grid is a dense cost table. distmap.Map satisfies it.
type Grid interface {
	Dims() (rows, cols int)
	Cost(i, j int) float64
}

// Options configures Find.
type Options struct {
	// MaxRun bounds consecutive left (or up) steps. Must be >= 1.
	MaxRun int
}

// DefaultOptions returns MaxRun=DefaultMaxRun.
func DefaultOptions() Options {
	return Options{MaxRun: DefaultMaxRun}
}
