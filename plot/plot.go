// Package plot draws the training data with the fitted line and the cost
// history of a gradient descent run. The output format follows the file
// extension (.png, .svg, .pdf, ...).
package plot

import (
	"image/color"
	"math"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/gradlin/core/linalg"
	"github.com/YuminosukeSato/gradlin/pkg/errors"
)

const (
	width  = 8 * vg.Inch
	height = 6 * vg.Inch
)

// Labels are the chart title and axis captions.
type Labels struct {
	Title, X, Y string
}

// FitChart builds a scatter of (xs, ys) with the line theta[0] + theta[1]·x
// drawn across the range of xs.
func FitChart(xs, ys []float64, theta *linalg.Vector, labels Labels) (*plot.Plot, error) {
	if len(xs) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	if len(xs) != len(ys) {
		return nil, errors.NewDimensionError("plot.FitChart", len(xs), len(ys), 0)
	}
	if theta == nil || theta.Len() != 2 {
		got := 0
		if theta != nil {
			got = theta.Len()
		}
		return nil, errors.NewDimensionError("plot.FitChart", 2, got, 0)
	}

	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, errors.Wrap(err, "scatter")
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 220, A: 255}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)
	p.Legend.Add("Training data", scatter)

	minX, maxX := floats.Min(xs), floats.Max(xs)
	ends := plotter.XYs{
		{X: minX, Y: theta.AtVec(0) + theta.AtVec(1)*minX},
		{X: maxX, Y: theta.AtVec(0) + theta.AtVec(1)*maxX},
	}
	line, err := plotter.NewLine(ends)
	if err != nil {
		return nil, errors.Wrap(err, "regression line")
	}
	line.Color = color.RGBA{B: 200, A: 255}
	line.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Linear regression", line)
	p.Legend.Top = true

	return p, nil
}

// CostChart plots J(θ) against the iteration number, starting at 1.
func CostChart(history []float64, labels Labels) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, errors.WithStack(errors.ErrEmptyData)
	}
	for i, c := range history {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, errors.NewValueError("plot.CostChart", "non-finite cost at iteration "+strconv.Itoa(i+1))
		}
	}

	p := plot.New()
	p.Title.Text = labels.Title
	p.X.Label.Text = labels.X
	p.Y.Label.Text = labels.Y

	pts := make(plotter.XYs, len(history))
	for i, c := range history {
		pts[i].X = float64(i + 1)
		pts[i].Y = c
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, errors.Wrap(err, "cost line")
	}
	line.Width = vg.Points(1.5)
	p.Add(line)
	p.Add(plotter.NewGrid())

	return p, nil
}

// Save writes p to path; the extension selects the format.
func Save(p *plot.Plot, path string) error {
	if err := p.Save(width, height, path); err != nil {
		return errors.NewIOError("plot.Save", path, err)
	}
	return nil
}
