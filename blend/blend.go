// SPDX-License-Identifier: MIT

package blend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/regcurve"
	"github.com/katalvlaran/motionreg/rigid"
)

// Step records the state of one output frame.
type Step struct {
	U              float64         // curve parameter
	FrameA, FrameB float64         // fractional source frames, S(u)
	Weight         float64         // weight of clip A
	AlignB         rigid.Transform // clip B alignment, A(u)
	Chain          rigid.Transform // accumulated output transform T[t]
	RootA, RootB   r3.Vec          // source roots in clip A's frame, before the chain
	Root           r3.Vec          // output root position
}

// Result is the outcome of a blend.
type Result struct {
	ID       uuid.UUID
	Clip     *motion.Clip
	Steps    []Step
	CurveLen int
}

// Blend builds the registration curve of a and b and walks it under w.
// Skeleton and weight validation happen before any table is allocated.
func Blend(ctx context.Context, a, b *motion.Clip, w WeightCurve, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	id := uuid.New()
	log := o.Logger.With(slog.String("blend_id", id.String()))

	if err := validate(a, b, w, o); err != nil {
		return nil, err
	}
	log.Debug("building registration curve",
		slog.Int("frames_a", a.Frames()), slog.Int("frames_b", b.Frames()),
		slog.Int("bones", a.Bones()), slog.Int("window", o.Curve.DistMap.Window))

	curve, err := regcurve.Build(ctx, a, b, o.Curve)
	if err != nil {
		return nil, fmt.Errorf("blend: %w", err)
	}
	log.Debug("registration curve ready",
		slog.Int("steps", curve.Len()), slog.Float64("cost", curve.Cost()),
		slog.Int("corrected", curve.Corrected()))

	return walk(ctx, id, log, curve, a, b, w)
}

// Along walks an already built registration curve of a and b under w.
func Along(ctx context.Context, curve *regcurve.Curve, a, b *motion.Clip, w WeightCurve, opts ...Option) (*Result, error) {
	o := newOptions(opts...)
	id := uuid.New()
	log := o.Logger.With(slog.String("blend_id", id.String()))

	if err := validate(a, b, w, o); err != nil {
		return nil, err
	}
	if lastA, lastB := curve.Ends(); lastA != a.Frames()-1 || lastB != b.Frames()-1 {
		return nil, fmt.Errorf("blend: curve ends at (%d,%d) for clips of %d and %d frames: %w",
			lastA, lastB, a.Frames(), b.Frames(), regcurve.ErrPathMismatch)
	}

	return walk(ctx, id, log, curve, a, b, w)
}

func validate(a, b *motion.Clip, w WeightCurve, o Options) error {
	if err := motion.MatchSkeletons(a.Skeleton(), b.Skeleton(), o.Curve.DistMap.BoneMap); err != nil {
		return fmt.Errorf("blend: %w", err)
	}
	if err := w.Validate(a.Frames()); err != nil {
		return err
	}

	return nil
}

// walk runs the integration loop.
func walk(ctx context.Context, id uuid.UUID, log *slog.Logger, curve *regcurve.Curve, a, b *motion.Clip, w WeightCurve) (*Result, error) {
	n := curve.Len()
	du := 1 / float64(n)
	dA := 1 / float64(a.Frames())
	dB := 1 / float64(b.Frames())
	last := float64(n - 1)

	var (
		steps []Step
		roots []r3.Vec
		rots  [][]quat.Number
		u     float64
		chain = rigid.Identity()
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("blend: frame %d: %w", len(steps), err)
		}

		fa, fb := curve.S(u)
		_, alignB := curve.A(u)
		wa := w.At(fa)

		rootA := a.RootAt(fa)
		rootB := alignB.Apply(b.RootAt(fb))
		mixed := r3.Add(r3.Scale(wa, rootA), r3.Scale(1-wa, rootB))
		root := chain.Apply(mixed)

		pose := make([]quat.Number, a.Bones())
		for k := range pose {
			qa, qb := a.RotationAt(fa, k), b.RotationAt(fb, k)
			if k == 0 {
				qb = quat.Mul(heading(alignB.Theta), qb)
			}
			pose[k] = motion.Slerp(qa, qb, 1-wa)
			if k == 0 {
				pose[k] = quat.Mul(heading(chain.Theta), pose[k])
			}
		}

		steps = append(steps, Step{
			U: u, FrameA: fa, FrameB: fb, Weight: wa,
			AlignB: alignB, Chain: chain,
			RootA: rootA, RootB: rootB, Root: root,
		})
		roots = append(roots, root)
		rots = append(rots, pose)

		next := u + wa*(du/dA) + (1-wa)*(du/dB)
		if next > last {
			break
		}

		// clip A is the reference, so its increment is the identity and
		// the weighted average reduces to scaling clip B's increment
		_, nextB := curve.A(next)
		incB := alignB.Compose(nextB.Inverse())
		var acc mat.Dense
		acc.Mul(chain.Matrix(), rigid.Lerp(rigid.Identity(), incB, 1-wa).Matrix())
		chain = rigid.FromMatrix(&acc)
		u = next
	}

	out, err := motion.NewClip(a.Skeleton(), a.FrameTime(), roots, rots)
	if err != nil {
		return nil, fmt.Errorf("blend: %w", err)
	}
	log.Debug("blend finished", slog.Int("frames", out.Frames()), slog.Float64("u_end", u))

	return &Result{ID: id, Clip: out, Steps: steps, CurveLen: n}, nil
}

// heading is the quaternion of a rotation by theta about +Y.
func heading(theta float64) quat.Number {
	return motion.AxisAngle(r3.Vec{Y: 1}, theta)
}
