// Package render draws cost curves as log-scale charts.
package render

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/jdenbrok/ALMA2040-Calculations/pkg/cost"
)

// Chart size.
const (
	Width  = 7 * vg.Inch
	Height = 4.5 * vg.Inch
)

// minCost keeps zero-valued terms drawable on a log axis.
const minCost = 1.0 // $

var (
	totalColor      = color.RGBA{R: 0, G: 0, B: 128, A: 255}
	antennaColor    = color.RGBA{R: 255, G: 165, B: 0, A: 128}
	receiverColor   = color.RGBA{R: 0, G: 128, B: 0, A: 128}
	correlatorColor = color.RGBA{R: 255, G: 0, B: 0, A: 128}
	optimumColor    = color.RGBA{A: 255}
)

// Chart builds a plot of total cost and its three diameter-dependent terms
// against antenna diameter, with the optimum marked.
func Chart(c *cost.Curve) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = c.Headline()
	p.X.Label.Text = "Antenna Diameter D [m]"
	p.Y.Label.Text = "Cost [$] (log scale)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Legend.Top = true
	p.Legend.Left = false

	series := []struct {
		name   string
		values []float64
		color  color.Color
		width  vg.Length
	}{
		{"Total Cost", c.TotalCost, totalColor, vg.Points(3)},
		{"Antenna Term", c.AntennaCost, antennaColor, vg.Points(2)},
		{"Receiver Term", c.ReceiverCost, receiverColor, vg.Points(2)},
		{"Correlator Term", c.CorrelatorCost, correlatorColor, vg.Points(2)},
	}
	for _, s := range series {
		line, err := plotter.NewLine(points(c.Diameters, s.values))
		if err != nil {
			return nil, fmt.Errorf("building %s line: %w", s.name, err)
		}
		line.LineStyle.Color = s.color
		line.LineStyle.Width = s.width
		p.Add(line)
		p.Legend.Add(s.name, line)
	}

	opt := c.Optimum
	marker, err := plotter.NewScatter(plotter.XYs{{X: opt.DiameterM, Y: math.Max(opt.Cost, minCost)}})
	if err != nil {
		return nil, fmt.Errorf("building optimum marker: %w", err)
	}
	marker.GlyphStyle.Shape = draw.CircleGlyph{}
	marker.GlyphStyle.Radius = vg.Points(5)
	marker.GlyphStyle.Color = optimumColor
	p.Add(marker)
	p.Legend.Add("Optimum D", marker)

	return p, nil
}

// Write renders the chart for c to w in the given format (svg, png, pdf, eps, jpg, tiff).
func Write(w io.Writer, c *cost.Curve, format string) error {
	p, err := Chart(c)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(Width, Height, strings.ToLower(format))
	if err != nil {
		return fmt.Errorf("creating %s canvas: %w", format, err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

// Save renders the chart for c to path; the format follows the file extension.
func Save(path string, c *cost.Curve) error {
	if FormatOf(path) == "" {
		return fmt.Errorf("cannot infer chart format from %q", path)
	}
	p, err := Chart(c)
	if err != nil {
		return err
	}
	if err := p.Save(Width, Height, path); err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

// FormatOf returns the chart format implied by a file name, or "" if none.
func FormatOf(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

func points(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = math.Max(ys[i], minCost)
	}
	return pts
}
