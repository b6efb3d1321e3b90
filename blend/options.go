// SPDX-License-Identifier: MIT

package blend

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/regcurve"
)

// Option customises Blend. Constructors panic on nonsensical values
// (programmer error); Blend itself never panics.
type Option func(*Options)

// Options is the resolved configuration of one Blend call.
type Options struct {
	Curve  regcurve.Options
	Logger *slog.Logger
}

func newOptions(opts ...Option) Options {
	o := Options{
		Curve:  regcurve.DefaultOptions(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithWindow sets the alignment window size in frames. Panics if n <= 0.
func WithWindow(n int) Option {
	if n <= 0 {
		panic("blend: WithWindow(n<=0)")
	}
	return func(o *Options) { o.Curve.DistMap.Window = n }
}

// WithWorkers bounds the goroutines filling the distance map; 0 means
// GOMAXPROCS. Panics if n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic("blend: WithWorkers(n<0)")
	}
	return func(o *Options) { o.Curve.DistMap.Workers = n }
}

// WithEpsilon sets the aligner's degeneracy threshold. Panics unless eps is
// finite and non-negative.
func WithEpsilon(eps float64) Option {
	if !(eps >= 0) || math.IsInf(eps, 1) {
		panic("blend: WithEpsilon: eps must be finite, non-negative")
	}
	return func(o *Options) { o.Curve.DistMap.Epsilon = eps }
}

// WithMaxRun sets the timewarp slope bound. Panics if n < 1.
func WithMaxRun(n int) Option {
	if n < 1 {
		panic("blend: WithMaxRun(n<1)")
	}
	return func(o *Options) { o.Curve.Timewarp.MaxRun = n }
}

// WithDiscontinuityThreshold sets the registration curve's angle jump
// threshold in degrees. Panics unless 0 < deg <= 180.
func WithDiscontinuityThreshold(deg float64) Option {
	if !(deg > 0) || deg > 180 {
		panic("blend: WithDiscontinuityThreshold: deg must be in (0, 180]")
	}
	return func(o *Options) { o.Curve.Threshold = deg * math.Pi / 180 }
}

// WithBoneMap sets the canonical bone naming used to match skeletons.
func WithBoneMap(bm motion.BoneMap) Option {
	return func(o *Options) { o.Curve.DistMap.BoneMap = bm }
}

// WithLogger routes debug records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("blend: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}
