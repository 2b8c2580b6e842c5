// SPDX-License-Identifier: MIT

// Package chromaplot renders response curves of the color-transform
// builders: how each output channel of a probe color moves as the
// saturation factor or hue angle sweeps its range. The curves make preset
// differences visible at a glance — NTSC and HDTV weights bend the green
// channel very differently.
package chromaplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/chromatrix/chroma"
)

// ErrBadSweep indicates a sweep with fewer than two sample points.
var ErrBadSweep = errors.New("chromaplot: sweep needs at least two steps")

// DefaultSteps is the sample count used when a caller passes steps <= 0.
const DefaultSteps = 64

// Canvas dimensions of every saved plot.
const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Per-channel line colors: red, green, blue at full opacity.
var channelColors = [3]color.RGBA{
	{R: 0xcc, A: 0xff},
	{G: 0x99, A: 0xff},
	{B: 0xcc, A: 0xff},
}

var channelNames = [3]string{"R", "G", "B"}

// evalFunc maps one sweep position to the transformed probe color.
type evalFunc func(t float64) (colorful.Color, error)

// channelCurves samples eval at steps points across [from, to] and collects
// one XY series per output channel.
func channelCurves(eval evalFunc, from, to float64, steps int) ([3]plotter.XYs, error) {
	var curves [3]plotter.XYs
	if steps <= 0 {
		steps = DefaultSteps
	}
	if steps < 2 {
		return curves, ErrBadSweep
	}

	for i := range curves {
		curves[i] = make(plotter.XYs, steps)
	}

	var k int
	var t float64
	var out colorful.Color
	var err error
	for k = 0; k < steps; k++ {
		t = from + (to-from)*float64(k)/float64(steps-1)
		if out, err = eval(t); err != nil {
			return curves, err
		}

		curves[0][k] = plotter.XY{X: t, Y: out.R}
		curves[1][k] = plotter.XY{X: t, Y: out.G}
		curves[2][k] = plotter.XY{X: t, Y: out.B}
	}

	return curves, nil
}

// render assembles the three channel lines into one titled plot and saves
// it to path; the encoder follows the file extension (.png, .svg, .pdf).
func render(curves [3]plotter.XYs, title, xLabel, path string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "channel value"
	p.Add(plotter.NewGrid())

	var i int
	var line *plotter.Line
	var err error
	for i = 0; i < 3; i++ {
		if line, err = plotter.NewLine(curves[i]); err != nil {
			return fmt.Errorf("chromaplot: %w", err)
		}
		line.Color = channelColors[i]
		p.Add(line)
		p.Legend.Add(channelNames[i], line)
	}

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("chromaplot: %w", err)
	}

	return nil
}

// SaturationPlot sweeps the saturation factor over [0, 2] — full grayscale
// through identity to oversaturated — and plots the response of each
// channel of probe under b's luma weights.
//
// Errors: ErrBadSweep, or any render/IO failure.
func SaturationPlot(b *chroma.Builder, probe colorful.Color, steps int, path string) error {
	curves, err := channelCurves(func(s float64) (colorful.Color, error) {
		return chroma.TransformColor(b.Saturation(s), probe)
	}, 0, 2, steps)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Saturation response (%s luma)", b.Preset())

	return render(curves, title, "saturation factor", path)
}

// HuePlot sweeps the hue angle over a full turn [0, 2π] and plots the
// response of each channel of probe under b's luma weights.
//
// Errors: ErrBadSweep, chroma.ErrDegenerateLuma, or any render/IO failure.
func HuePlot(b *chroma.Builder, probe colorful.Color, steps int, path string) error {
	curves, err := channelCurves(func(a float64) (colorful.Color, error) {
		m, herr := b.Hue(a)
		if herr != nil {
			return colorful.Color{}, herr
		}

		return chroma.TransformColor(m, probe)
	}, 0, 2*math.Pi, steps)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Hue response (%s luma)", b.Preset())

	return render(curves, title, "hue angle, radians", path)
}
