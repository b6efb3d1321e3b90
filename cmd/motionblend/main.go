// SPDX-License-Identifier: MIT

// Command motionblend aligns two clips with a registration curve and writes
// the blended clip as a YAML document.
//
// Clips are read from YAML clip documents (-a, -b). A missing clip is
// replaced by a synthetic walk: clip A walks straight, clip B walks a wider
// arc at a different pace and heading, which gives the registration
// something to do.
//
//	motionblend -config engine.yaml -weight 1:0 -out blend.yaml -plot dist.png
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/motionreg/blend"
	"github.com/katalvlaran/motionreg/builder"
	"github.com/katalvlaran/motionreg/config"
	"github.com/katalvlaran/motionreg/distmap"
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/regcurve"
	"github.com/katalvlaran/motionreg/regplot"
	"github.com/katalvlaran/motionreg/timewarp"
)

type flags struct {
	config     string
	clipA      string
	clipB      string
	weight     string
	out        string
	plot       string
	trajectory string
	verbose    bool
}

func main() {
	var f flags
	flag.StringVar(&f.config, "config", "", "engine configuration YAML (defaults when empty)")
	flag.StringVar(&f.clipA, "a", "", "clip A document (synthetic walk when empty)")
	flag.StringVar(&f.clipB, "b", "", "clip B document (synthetic walk when empty)")
	flag.StringVar(&f.weight, "weight", "0.5", "weight of clip A: constant `w` or ramp `from:to`")
	flag.StringVar(&f.out, "out", "", "write the blended clip document here (stdout when empty)")
	flag.StringVar(&f.plot, "plot", "", "write a distance map PNG here")
	flag.StringVar(&f.trajectory, "trajectory", "", "write a root trajectory PNG here")
	flag.BoolVar(&f.verbose, "v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, f, logger); err != nil {
		logger.Error("motionblend failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, f flags, logger *slog.Logger) error {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return err
		}
	}

	a, err := loadClip(f.clipA, builder.WithFrames(90))
	if err != nil {
		return fmt.Errorf("clip A: %w", err)
	}
	b, err := loadClip(f.clipB, builder.WithFrames(70), builder.WithSpeed(0.07), builder.WithCycle(22),
		builder.WithHeading(30), builder.WithTurnRate(0.8), builder.WithOrigin(a.Root(0)))
	if err != nil {
		return fmt.Errorf("clip B: %w", err)
	}
	logger.Info("clips ready", slog.Int("frames_a", a.Frames()), slog.Int("frames_b", b.Frames()), slog.Int("bones", a.Bones()))

	w, err := parseWeight(f.weight, a.Frames())
	if err != nil {
		return err
	}

	// the curve is assembled by hand so the distance map stays available
	// for the diagnostic plot
	opts := cfg.CurveOptions()
	dm, err := distmap.Build(ctx, a, b, opts.DistMap)
	if err != nil {
		return err
	}
	path, cost, err := timewarp.Find(ctx, dm, opts.Timewarp)
	if err != nil {
		return err
	}
	curve, err := regcurve.New(path, dm, b, opts.Threshold)
	if err != nil {
		return err
	}
	logger.Info("registration curve", slog.Int("steps", curve.Len()), slog.Float64("cost", cost),
		slog.Int("degenerate_cells", dm.Degenerate()), slog.Int("corrected_steps", curve.Corrected()))

	res, err := blend.Along(ctx, curve, a, b, w, append(cfg.Options(), blend.WithLogger(logger))...)
	if err != nil {
		return err
	}
	logger.Info("blend done", slog.String("blend_id", res.ID.String()), slog.Int("frames", res.Clip.Frames()))

	if f.plot != "" {
		p, err := regplot.DistanceMap(dm, path)
		if err != nil {
			return err
		}
		if err := writeFile(f.plot, func(file *os.File) error { return regplot.WritePNG(file, p, 6*vg.Inch, 6*vg.Inch) }); err != nil {
			return err
		}
	}
	if f.trajectory != "" {
		p, err := regplot.Trajectories(
			regplot.Series{Name: "A", Clip: a},
			regplot.Series{Name: "B", Clip: b},
			regplot.Series{Name: "blend", Clip: res.Clip},
		)
		if err != nil {
			return err
		}
		if err := writeFile(f.trajectory, func(file *os.File) error { return regplot.WritePNG(file, p, 6*vg.Inch, 6*vg.Inch) }); err != nil {
			return err
		}
	}

	if f.out == "" {
		return motion.Encode(os.Stdout, res.Clip)
	}
	return writeFile(f.out, func(file *os.File) error { return motion.Encode(file, res.Clip) })
}

func loadClip(path string, synth ...builder.Option) (*motion.Clip, error) {
	if path == "" {
		return builder.Walk(synth...)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return motion.Decode(file)
}

// parseWeight accepts "w" or "from:to".
func parseWeight(s string, frames int) (blend.WeightCurve, error) {
	from, to, ramp := strings.Cut(s, ":")
	a, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
	if err != nil {
		return nil, fmt.Errorf("weight %q: %w", s, err)
	}
	if !ramp {
		return blend.Constant(a, frames), nil
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(to), 64)
	if err != nil {
		return nil, fmt.Errorf("weight %q: %w", s, err)
	}

	return blend.Ramp(a, b, frames), nil
}

// writeFile creates path and hands it to write, closing it afterwards.
func writeFile(path string, write func(*os.File) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return write(file)
}
