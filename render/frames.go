package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/milosgajdos/go-kalmansim/sim"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// dpi makes one vg point map to one image pixel.
const dpi = 72

// Options configure frame rendering
type Options struct {
	// Size is the width and height of the square frame in pixels
	Size int
	// Scale maps both time and position to pixels
	Scale float64
	// LineWidth is the width of the true and estimated paths in pixels
	LineWidth float64
	// MarkerRadius is the radius of measurement markers in pixels
	MarkerRadius float64
}

// DefaultOptions returns options which fit totalTime seconds of simulation into a 500 pixel frame.
func DefaultOptions(totalTime float64) Options {
	size := 500
	return Options{
		Size:         size,
		Scale:        float64(size) / totalTime,
		LineWidth:    2,
		MarkerRadius: 2,
	}
}

// Validate returns error if o can not be used for rendering.
func (o Options) Validate() error {
	if o.Size <= 0 {
		return fmt.Errorf("invalid frame size: %d", o.Size)
	}

	if !(o.Scale > 0) || math.IsInf(o.Scale, 0) {
		return fmt.Errorf("invalid scale: %v", o.Scale)
	}

	if o.LineWidth < 0 || o.MarkerRadius < 0 {
		return fmt.Errorf("invalid line width %v or marker radius %v", o.LineWidth, o.MarkerRadius)
	}

	return nil
}

// Frames lazily renders one frame per tick.
// Frame i draws ticks[0] through ticks[i].
type Frames struct {
	ticks []sim.Tick
	opts  Options
	next  int
}

// NewFrames creates new frame generator over ticks and returns it.
// It returns error if o is invalid.
func NewFrames(ticks []sim.Tick, o Options) (*Frames, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	return &Frames{
		ticks: ticks,
		opts:  o,
	}, nil
}

// Len returns total number of frames
func (f *Frames) Len() int {
	return len(f.ticks)
}

// Next renders the next frame and returns it.
// It returns io.EOF when all frames have been rendered.
func (f *Frames) Next() (*image.RGBA, error) {
	if f.next >= len(f.ticks) {
		return nil, io.EOF
	}
	f.next++

	return Render(f.ticks[:f.next], f.opts), nil
}

// Reset restarts the generator from the first frame.
func (f *Frames) Reset() {
	f.next = 0
}

// Render draws ticks into a single frame and returns it:
// true path in red, estimated path in green and measurements as blue dots.
func Render(ticks []sim.Tick, o Options) *image.RGBA {
	size := vg.Length(o.Size)
	c := vgimg.NewWith(
		vgimg.UseWH(size, size),
		vgimg.UseDPI(dpi),
		vgimg.UseBackgroundColor(Background),
	)
	dc := draw.New(c)

	truth := make([]vg.Point, len(ticks))
	estimated := make([]vg.Point, len(ticks))
	for i, tick := range ticks {
		truth[i] = o.point(tick.Time, tick.True)
		estimated[i] = o.point(tick.Time, tick.Estimated)
	}

	width := vg.Length(o.LineWidth)
	if len(ticks) > 1 {
		dc.StrokeLines(draw.LineStyle{Color: sim.TrueColor, Width: width}, truth)
		dc.StrokeLines(draw.LineStyle{Color: sim.EstimatedColor, Width: width}, estimated)
	}

	dc.SetColor(sim.MeasuredColor)
	r := vg.Length(o.MarkerRadius)
	for _, tick := range ticks {
		fillCircle(dc, o.point(tick.Time, tick.Measured), r)
	}

	return toRGBA(c.Image())
}

// point maps simulation coordinates to canvas coordinates.
// vg canvas origin is the bottom left corner.
func (o Options) point(t, y float64) vg.Point {
	return vg.Point{
		X: vg.Length(t * o.Scale),
		Y: vg.Length(y * o.Scale),
	}
}

func fillCircle(c vg.Canvas, pt vg.Point, r vg.Length) {
	if r == 0 {
		return
	}

	var p vg.Path
	p.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	p.Arc(pt, r, 0, 2*math.Pi)
	p.Close()
	c.Fill(p)
}
