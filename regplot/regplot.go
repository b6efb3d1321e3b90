// SPDX-License-Identifier: MIT

// Package regplot renders registration diagnostics with gonum/plot: the
// distance map as a heat map with the timewarp path on top, and the
// top-down root trajectories of any number of clips.
package regplot

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/motionreg/distmap"
	"github.com/katalvlaran/motionreg/motion"
	"github.com/katalvlaran/motionreg/timewarp"
)

// ErrNoData indicates a plot request with nothing to draw.
var ErrNoData = errors.New("regplot: nothing to plot")

// heatLevels is the number of palette steps in the distance heat map.
const heatLevels = 16

var pathColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// costGrid adapts a distance map to plotter.GridXYZ: columns are clip B
// frames (x axis), rows are clip A frames (y axis).
type costGrid struct{ m *distmap.Map }

func (g costGrid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}
func (g costGrid) Z(c, r int) float64 { return g.m.Cost(r, c) }
func (g costGrid) X(c int) float64    { return float64(c) }
func (g costGrid) Y(r int) float64    { return float64(r) }

// DistanceMap plots m as a heat map and overlays path when it is non-empty.
func DistanceMap(m *distmap.Map, path timewarp.Path) (*plot.Plot, error) {
	if m == nil {
		return nil, ErrNoData
	}

	p := plot.New()
	lo, hi := m.Range()
	p.Title.Text = fmt.Sprintf("Aligned pose distance [%.3g, %.3g]", lo, hi)
	p.X.Label.Text = "Clip B frame"
	p.Y.Label.Text = "Clip A frame"
	hm := plotter.NewHeatMap(costGrid{m: m}, palette.Heat(heatLevels, 1))
	if hi <= lo {
		// flat map: widen the range so every cell maps to the lowest colour
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	if len(path) > 0 {
		pts := make(plotter.XYs, len(path))
		for k, c := range path {
			pts[k] = plotter.XY{X: float64(c.J), Y: float64(c.I)}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("regplot: path line: %w", err)
		}
		line.Color = pathColor
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("timewarp path", line)
	}

	return p, nil
}

// Series is one named clip in a trajectory plot.
type Series struct {
	Name string
	Clip *motion.Clip
}

// Trajectories plots the root path of every series on the ground plane
// (x to the right, z up the page).
func Trajectories(series ...Series) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoData
	}

	p := plot.New()
	p.Title.Text = "Root trajectories"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "z"
	p.Add(plotter.NewGrid())

	for i, s := range series {
		if s.Clip == nil {
			continue
		}
		pts := make(plotter.XYs, s.Clip.Frames())
		for f := range pts {
			r := s.Clip.Root(f)
			pts[f] = plotter.XY{X: r.X, Y: r.Z}
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("regplot: series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p, nil
}

// WritePNG renders p as a PNG of the given size into w.
func WritePNG(w io.Writer, p *plot.Plot, width, height vg.Length) error {
	wt, err := p.WriterTo(width, height, "png")
	if err != nil {
		return fmt.Errorf("regplot: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("regplot: %w", err)
	}

	return nil
}
