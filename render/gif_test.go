package render

import (
	"bytes"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGIF(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	f, err := NewFrames(ticks, opts)
	require.NoError(err)

	var calls []int
	buf := new(bytes.Buffer)
	err = EncodeGIF(buf, f, DefaultDelay, func(i, n int) {
		assert.Equal(len(ticks), n)
		calls = append(calls, i)
	})
	require.NoError(err)
	assert.Equal([]int{1, 2, 3, 4, 5}, calls)

	anim, err := gif.DecodeAll(buf)
	require.NoError(err)
	assert.Len(anim.Image, len(ticks))
	for _, d := range anim.Delay {
		assert.Equal(DefaultDelay, d)
	}

	r, g, b, _ := anim.Image[len(anim.Image)-1].At(150, 399).RGBA()
	assert.Equal(uint32(0xffff), r)
	assert.Equal(uint32(0), g)
	assert.Equal(uint32(0), b)
}

func TestEncodeGIFNoFrames(t *testing.T) {
	assert := assert.New(t)

	f, err := NewFrames(nil, opts)
	assert.NoError(err)

	err = EncodeGIF(new(bytes.Buffer), f, DefaultDelay, nil)
	assert.ErrorIs(err, ErrNoFrames)
}

func TestWriteGIF(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	f, err := NewFrames(ticks, opts)
	require.NoError(err)

	path := filepath.Join(t.TempDir(), "output.gif")
	require.NoError(WriteGIF(path, f, DefaultDelay, nil))

	file, err := os.Open(path)
	require.NoError(err)
	defer file.Close()

	anim, err := gif.DecodeAll(file)
	require.NoError(err)
	assert.Len(anim.Image, len(ticks))

	f.Reset()
	err = WriteGIF(filepath.Join(t.TempDir(), "missing", "output.gif"), f, DefaultDelay, nil)
	assert.Error(err)
}
