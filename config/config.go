// SPDX-License-Identifier: MIT

// Package config loads blend engine settings from YAML.
//
//	window: 5              # frames per alignment window
//	max_run: 2             # consecutive single-axis timewarp steps
//	discontinuity_deg: 40  # registration curve flip threshold
//	epsilon: 1.0e-9        # aligner degeneracy threshold
//	workers: 0             # distance map goroutines, 0 = GOMAXPROCS
//	bone_aliases:          # optional source name → canonical name
//	  Hips: hips
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/motionreg/blend"
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/regcurve"
	"github.com/katalvlaran/motionreg/rigid"
	"github.com/katalvlaran/motionreg/timewarp"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config mirrors the engine options.
type Config struct {
	Window           int               `yaml:"window"`
	MaxRun           int               `yaml:"max_run"`
	DiscontinuityDeg float64           `yaml:"discontinuity_deg"`
	Epsilon          float64           `yaml:"epsilon"`
	Workers          int               `yaml:"workers"`
	BoneAliases      map[string]string `yaml:"bone_aliases,omitempty"`
}

// Default returns the engine defaults.
func Default() Config {
	return Config{
		Window:           rigid.DefaultWindow,
		MaxRun:           timewarp.DefaultMaxRun,
		DiscontinuityDeg: regcurve.DefaultThresholdDegrees,
		Epsilon:          rigid.DefaultEpsilon,
		Workers:          0,
	}
}

// Load reads and validates the YAML file at path. Fields missing from the
// file keep their defaults.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads and validates one YAML document from r. Unknown keys are
// rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against the ranges the engine accepts.
func (c Config) Validate() error {
	switch {
	case c.Window <= 0:
		return fmt.Errorf("config: window=%d: %w", c.Window, ErrInvalid)
	case c.MaxRun < 1:
		return fmt.Errorf("config: max_run=%d: %w", c.MaxRun, ErrInvalid)
	case !(c.DiscontinuityDeg > 0) || c.DiscontinuityDeg > 180:
		return fmt.Errorf("config: discontinuity_deg=%v: %w", c.DiscontinuityDeg, ErrInvalid)
	case !(c.Epsilon >= 0) || math.IsInf(c.Epsilon, 1):
		return fmt.Errorf("config: epsilon=%v: %w", c.Epsilon, ErrInvalid)
	case c.Workers < 0:
		return fmt.Errorf("config: workers=%d: %w", c.Workers, ErrInvalid)
	}

	return nil
}

// Options converts a validated Config into blend options.
func (c Config) Options() []blend.Option {
	return []blend.Option{
		blend.WithWindow(c.Window),
		blend.WithMaxRun(c.MaxRun),
		blend.WithDiscontinuityThreshold(c.DiscontinuityDeg),
		blend.WithEpsilon(c.Epsilon),
		blend.WithWorkers(c.Workers),
		blend.WithBoneMap(motion.NewBoneMap(c.BoneAliases)),
	}
}

// CurveOptions converts a validated Config into registration curve options,
// for callers that drive distmap, timewarp and regcurve themselves.
func (c Config) CurveOptions() regcurve.Options {
	o := regcurve.DefaultOptions()
	o.DistMap.Window = c.Window
	o.DistMap.Workers = c.Workers
	o.DistMap.Epsilon = c.Epsilon
	o.DistMap.BoneMap = motion.NewBoneMap(c.BoneAliases)
	o.Timewarp.MaxRun = c.MaxRun
	o.Threshold = c.DiscontinuityDeg * math.Pi / 180

	return o
}

// Write encodes c as YAML.
func (c Config) Write(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}

	return enc.Close()
}
