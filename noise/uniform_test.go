package noise

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUniform(t *testing.T) {
	assert := assert.New(t)

	for _, test := range []struct {
		halfWidth float64
		ok        bool
	}{
		{halfWidth: 2.0, ok: true},
		{halfWidth: 0, ok: true},
		{halfWidth: -1.0, ok: false},
		{halfWidth: math.NaN(), ok: false},
		{halfWidth: math.Inf(1), ok: false},
	} {
		u, err := NewUniform(test.halfWidth, 1)
		if test.ok {
			assert.NotNil(u)
			assert.NoError(err)
			continue
		}
		assert.Nil(u)
		assert.Error(err)
	}
}

func TestUniformSample(t *testing.T) {
	assert := assert.New(t)

	halfWidth := 2.0
	u, err := NewUniform(halfWidth, 42)
	assert.NoError(err)
	assert.Equal(halfWidth, u.HalfWidth())

	for i := 0; i < 10000; i++ {
		s := u.Sample()
		assert.GreaterOrEqual(s, -halfWidth)
		assert.Less(s, halfWidth)
	}
}

func TestUniformZeroWidth(t *testing.T) {
	assert := assert.New(t)

	u, err := NewUniform(0, 42)
	assert.NoError(err)

	for i := 0; i < 100; i++ {
		assert.Equal(0.0, u.Sample())
	}
}

func TestUniformReset(t *testing.T) {
	assert := assert.New(t)

	u, err := NewUniform(1.0, 7)
	assert.NoError(err)

	first := make([]float64, 20)
	for i := range first {
		first[i] = u.Sample()
	}

	u.Reset()
	for i := range first {
		assert.Equal(first[i], u.Sample())
	}
}

func TestUniformString(t *testing.T) {
	assert := assert.New(t)

	str := `Uniform{
Min=-2
Max=2
}`
	u, err := NewUniform(2, 1)
	assert.NoError(err)
	assert.Equal(str, u.String())
}
