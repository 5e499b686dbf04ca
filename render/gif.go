package render

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"

	"github.com/milosgajdos/go-kalmansim/sim"
)

// DefaultDelay is the default delay between GIF frames in 100ths of a second.
const DefaultDelay = 10

// ErrNoFrames is returned when there are no frames to encode.
var ErrNoFrames = errors.New("no frames to encode")

// Background is the frame background color
var Background color.Color = color.White

// Palette is the GIF palette: plot colors first, web safe colors for antialiased edges.
var Palette = append(color.Palette{
	Background,
	sim.TrueColor,
	sim.EstimatedColor,
	sim.MeasuredColor,
}, palette.WebSafe...)

// ProgressFunc is called after frame i of n has been encoded.
type ProgressFunc func(i, n int)

// EncodeGIF renders all remaining frames of f and writes them to w as an animated GIF.
// delay is the delay between frames in 100ths of a second.
// It returns ErrNoFrames if f yields no frames.
func EncodeGIF(w io.Writer, f *Frames, delay int, progress ProgressFunc) error {
	anim := &gif.GIF{}

	for {
		img, err := f.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		p := image.NewPaletted(img.Bounds(), Palette)
		draw.Draw(p, p.Rect, img, img.Bounds().Min, draw.Src)

		anim.Image = append(anim.Image, p)
		anim.Delay = append(anim.Delay, delay)

		if progress != nil {
			progress(len(anim.Image), f.Len())
		}
	}

	if len(anim.Image) == 0 {
		return ErrNoFrames
	}

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("failed to encode gif: %w", err)
	}

	return nil
}

// WriteGIF encodes frames of f into a GIF file at path.
// It returns error if the file can not be written.
func WriteGIF(path string, f *Frames, delay int, progress ProgressFunc) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(file)
	if err := EncodeGIF(bw, f, delay, progress); err != nil {
		return err
	}

	return bw.Flush()
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Rect, img, img.Bounds().Min, draw.Src)

	return rgba
}
