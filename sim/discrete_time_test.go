package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiscrete(t *testing.T) {
	assert := assert.New(t)

	d := NewDiscrete(2.0)
	assert.Equal(2.0, d.Velocity)

	assert.Equal(1.0, d.Propagate(0.0, 0.5))
	assert.Equal(-1.0, d.Propagate(0.0, -0.5))
	assert.Equal(3.25, d.Observe(3.0, 0.25))
	assert.Equal(3.0, d.Observe(3.0, 0))
}
