package render

import (
	"image/color"
	"io"
	"math"
	"os"
	"testing"

	"github.com/milosgajdos/go-kalmansim/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ticks []sim.Tick
	opts  Options
)

func setup() {
	// flat paths at known heights so pixel colors can be checked
	ticks = make([]sim.Tick, 5)
	for i := range ticks {
		ticks[i] = sim.Tick{
			Time:      float64(i) * 100,
			True:      100,
			Measured:  200,
			Estimated: 300,
		}
	}

	opts = Options{
		Size:         500,
		Scale:        1.0,
		LineWidth:    2,
		MarkerRadius: 2,
	}
}

func TestMain(m *testing.M) {
	// set up tests
	setup()
	// run the tests
	retCode := m.Run()
	// call with result of m.Run()
	os.Exit(retCode)
}

func TestOptionsValidate(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(opts.Validate())
	assert.NoError(DefaultOptions(10).Validate())
	assert.Equal(50.0, DefaultOptions(10).Scale)

	for _, o := range []Options{
		{Size: 0, Scale: 1},
		{Size: -10, Scale: 1},
		{Size: 500, Scale: 0},
		{Size: 500, Scale: math.NaN()},
		{Size: 500, Scale: math.Inf(1)},
		{Size: 500, Scale: 1, LineWidth: -1},
	} {
		assert.Error(o.Validate(), "%+v", o)
	}
}

func TestNewFrames(t *testing.T) {
	assert := assert.New(t)

	f, err := NewFrames(ticks, opts)
	assert.NotNil(f)
	assert.NoError(err)
	assert.Equal(len(ticks), f.Len())

	f, err = NewFrames(ticks, Options{})
	assert.Nil(f)
	assert.Error(err)
}

func TestFramesNext(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	f, err := NewFrames(ticks, opts)
	require.NoError(err)

	for i := 0; i < len(ticks); i++ {
		img, err := f.Next()
		require.NoError(err)
		require.NotNil(img)
		assert.Equal(opts.Size, img.Bounds().Dx())
		assert.Equal(opts.Size, img.Bounds().Dy())
	}

	img, err := f.Next()
	assert.Nil(img)
	assert.Equal(io.EOF, err)

	f.Reset()
	img, err = f.Next()
	assert.NotNil(img)
	assert.NoError(err)
}

func TestRenderColors(t *testing.T) {
	img := Render(ticks, opts)

	// background
	assertColor(t, img.RGBAAt(499, 0), 255, 255, 255)
	// true path: y=100 maps to pixel row 400
	assertDominant(t, img.RGBAAt(150, 399), "r")
	// estimated path: y=300 maps to pixel row 200
	assertDominant(t, img.RGBAAt(150, 199), "g")
	// measurement marker at (100, 200) maps to pixel (100, 300)
	assertDominant(t, img.RGBAAt(99, 299), "b")
	// paths stop at the last tick
	assertColor(t, img.RGBAAt(450, 399), 255, 255, 255)

	// a single tick has no path segments, only its marker
	img = Render(ticks[:1], opts)
	assertColor(t, img.RGBAAt(50, 399), 255, 255, 255)
	assertDominant(t, img.RGBAAt(0, 299), "b")
}

func TestRenderPrefix(t *testing.T) {
	assert := assert.New(t)

	f, err := NewFrames(ticks, opts)
	assert.NoError(err)

	// first two frames cover time 0..100 only
	_, err = f.Next()
	assert.NoError(err)
	img, err := f.Next()
	assert.NoError(err)

	assertDominant(t, img.RGBAAt(50, 399), "r")
	assertColor(t, img.RGBAAt(150, 399), 255, 255, 255)
}

func assertColor(t *testing.T, c color.RGBA, r, g, b uint8) {
	t.Helper()
	assert.Equal(t, color.RGBA{R: r, G: g, B: b, A: 255}, c)
}

func assertDominant(t *testing.T, c color.RGBA, channel string) {
	t.Helper()
	ch := map[string]uint8{"r": c.R, "g": c.G, "b": c.B}
	for name, v := range ch {
		if name == channel {
			assert.Greater(t, v, uint8(100), "%s in %v", name, c)
			continue
		}
		assert.Less(t, v, uint8(60), "%s in %v", name, c)
	}
}
