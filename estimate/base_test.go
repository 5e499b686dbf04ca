package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBase(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBase(1.0, 2.0)
	assert.NotNil(b)
	assert.NoError(err)
	assert.Equal(0.0, b.Cov().At(0, 0))

	b, err = NewBaseWithCov(1.0, 2.0, 0.5)
	assert.NotNil(b)
	assert.NoError(err)

	b, err = NewBaseWithCov(1.0, 2.0, -0.5)
	assert.Nil(b)
	assert.Error(err)
}

func TestValCov(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBaseWithCov(3.0, 1.5, 0.25)
	assert.NoError(err)

	v := b.Val()
	assert.Equal(2, v.Len())
	assert.Equal(3.0, v.AtVec(0))
	assert.Equal(1.5, v.AtVec(1))
	assert.Equal(3.0, b.Position())
	assert.Equal(1.5, b.Velocity())

	c := b.Cov()
	assert.Equal(1, c.SymmetricDim())
	assert.Equal(0.25, c.At(0, 0))

	// returned values are copies
	v.(interface{ SetVec(int, float64) }).SetVec(0, 100)
	assert.Equal(3.0, b.Position())
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	b, err := NewBaseWithCov(3.0, 1.5, 0.25)
	assert.NoError(err)

	str := b.String()
	assert.Contains(str, "Base{")
	assert.Contains(str, "Val=")
	assert.Contains(str, "Cov=")
}
