// SPDX-License-Identifier: MIT

package regcurve

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/motionreg/distmap"
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/rigid"
	"github.com/katalvlaran/motionreg/timewarp"
)

// Curve is a registration curve. It is immutable once built.
type Curve struct {
	path      timewarp.Path
	alignB    []rigid.Transform
	cost      float64
	corrected int
}

// Build computes the distance map and the timewarp path of a and b, then
// the registration curve over them. The distance map is dropped once the
// per-step transforms have been copied out.
func Build(ctx context.Context, a, b *motion.Clip, opts Options) (*Curve, error) {
	dm, err := distmap.Build(ctx, a, b, opts.DistMap)
	if err != nil {
		return nil, fmt.Errorf("regcurve.Build: %w", err)
	}
	path, cost, err := timewarp.Find(ctx, dm, opts.Timewarp)
	if err != nil {
		return nil, fmt.Errorf("regcurve.Build: %w", err)
	}
	c, err := New(path, dm, b, opts.Threshold)
	if err != nil {
		return nil, fmt.Errorf("regcurve.Build: %w", err)
	}
	c.cost = cost

	return c, nil
}

// New builds a curve from an existing path, the transforms of its cells and
// clip B's root channel. threshold is in radians.
func New(path timewarp.Path, xf Transforms, rootsB Roots, threshold float64) (*Curve, error) {
	if !(threshold > 0) || threshold > math.Pi {
		return nil, fmt.Errorf("regcurve.New: threshold %v: %w", threshold, ErrBadThreshold)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("regcurve.New: empty path: %w", ErrPathMismatch)
	}

	c := &Curve{
		path:   append(timewarp.Path(nil), path...),
		alignB: make([]rigid.Transform, len(path)),
	}
	rows, cols := xf.Dims()
	for s, p := range path {
		if p.I < 0 || p.J < 0 || p.I >= rows || p.J >= cols || p.J >= rootsB.Frames() {
			return nil, fmt.Errorf("regcurve.New: step %d at %v: %w", s, p, ErrPathMismatch)
		}
		c.alignB[s] = xf.Transform(p.I, p.J)
	}
	c.correct(rootsB, threshold)

	return c, nil
}

// correct removes half-turn flips and full-turn wraps between consecutive
// steps while keeping clip B's root fixed at every corrected step. A jump
// above the threshold that rounds to zero half turns (anything under 90°)
// is kept as a real turn.
func (c *Curve) correct(rootsB Roots, threshold float64) {
	for s := 1; s < len(c.alignB); s++ {
		prev, cur := c.alignB[s-1], c.alignB[s]
		delta := cur.Theta - prev.Theta
		if math.Abs(delta) <= threshold {
			continue
		}
		turns := math.Round(-delta / math.Pi)
		if turns == 0 {
			continue
		}

		root := rootsB.Root(c.path[s].J)
		want := cur.Apply(root)
		fixed := rigid.Transform{Theta: cur.Theta + turns*math.Pi}
		got := fixed.Apply(root)
		fixed.X, fixed.Z = want.X-got.X, want.Z-got.Z

		c.alignB[s] = fixed
		c.corrected++
	}
}

// Len returns the number of path steps.
func (c *Curve) Len() int { return len(c.path) }

// Path returns a copy of the underlying timewarp path.
func (c *Curve) Path() timewarp.Path { return append(timewarp.Path(nil), c.path...) }

// Cost returns the accumulated path cost (zero for curves built with New).
func (c *Curve) Cost() float64 { return c.cost }

// Corrected returns how many steps the discontinuity correction changed.
func (c *Curve) Corrected() int { return c.corrected }

// Ends returns the last frame indices of both clips covered by the curve.
func (c *Curve) Ends() (lastA, lastB int) {
	end := c.path[len(c.path)-1]

	return end.I, end.J
}

// Step returns the path coordinate and clip B's transform at step s.
func (c *Curve) Step(s int) (timewarp.Coord, rigid.Transform) {
	return c.path[s], c.alignB[s]
}

// bracket clamps u to [0, Len−1] and splits it into the surrounding steps.
func (c *Curve) bracket(u float64) (lo, hi int, alpha float64) {
	last := len(c.path) - 1
	if u <= 0 || math.IsNaN(u) {
		return 0, 0, 0
	}
	if u >= float64(last) {
		return last, last, 0
	}
	lo = int(math.Floor(u))
	hi = int(math.Ceil(u))

	return lo, hi, u - float64(lo)
}

// S returns the fractional frame pair at parameter u.
func (c *Curve) S(u float64) (frameA, frameB float64) {
	lo, hi, alpha := c.bracket(u)
	p, q := c.path[lo], c.path[hi]

	return float64(p.I) + alpha*float64(q.I-p.I), float64(p.J) + alpha*float64(q.J-p.J)
}

// A returns the alignment transforms of both clips at parameter u. The
// first is always the identity.
func (c *Curve) A(u float64) (alignA, alignB rigid.Transform) {
	lo, hi, alpha := c.bracket(u)

	return rigid.Identity(), rigid.Lerp(c.alignB[lo], c.alignB[hi], alpha)
}
