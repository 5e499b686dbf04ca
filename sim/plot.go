package sim

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	// TrueColor is the color of the true position path
	TrueColor = color.RGBA{R: 255, A: 255}
	// MeasuredColor is the color of measurement markers
	MeasuredColor = color.RGBA{B: 255, A: 255}
	// EstimatedColor is the color of the filtered position path
	EstimatedColor = color.RGBA{G: 128, A: 255}
)

// New2DPlot creates new plot of the simulation result with three data series:
// true:      ground truth positions
// measured:  measurement values
// estimated: filter values
// It returns error if the plot fails to be created. This can be due to either of the following conditions:
// * res is nil or has no ticks
// * gonum plot fails to be created
func New2DPlot(res *Result) (*plot.Plot, error) {
	if res == nil || res.Len() == 0 {
		return nil, fmt.Errorf("invalid simulation result")
	}

	truth, measured, estimated := res.Series()

	p := plot.New()

	p.Title.Text = "Simulation"
	p.X.Label.Text = "time"
	p.Y.Label.Text = "position"

	p.Legend.Top = true
	p.Legend.Left = true

	trueLine, err := plotter.NewLine(truth)
	if err != nil {
		return nil, fmt.Errorf("failed to create true line: %w", err)
	}
	trueLine.LineStyle.Color = TrueColor
	trueLine.LineStyle.Width = vg.Points(2)

	p.Add(trueLine)
	p.Legend.Add("true", trueLine)

	measScatter, err := plotter.NewScatter(measured)
	if err != nil {
		return nil, fmt.Errorf("failed to create measurement scatter: %w", err)
	}
	measScatter.GlyphStyle.Color = MeasuredColor
	measScatter.Shape = draw.CircleGlyph{}
	measScatter.GlyphStyle.Radius = vg.Points(2)

	p.Add(measScatter)
	p.Legend.Add("measurement", measScatter)

	estLine, err := plotter.NewLine(estimated)
	if err != nil {
		return nil, fmt.Errorf("failed to create estimate line: %w", err)
	}
	estLine.LineStyle.Color = EstimatedColor
	estLine.LineStyle.Width = vg.Points(2)

	p.Add(estLine)
	p.Legend.Add("filtered", estLine)

	return p, nil
}
