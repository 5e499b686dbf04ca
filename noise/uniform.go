package noise

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Uniform is noise drawn uniformly from the interval [-HalfWidth, HalfWidth).
type Uniform struct {
	// dist is uniform distribution
	dist distuv.Uniform
	// halfWidth is the half width of the sampling interval
	halfWidth float64
	// seed seeds the random source
	seed uint64
}

// NewUniform creates new Uniform noise sampling [-halfWidth, halfWidth) with the source seeded by seed.
// It returns error if halfWidth is negative or not finite.
func NewUniform(halfWidth float64, seed uint64) (*Uniform, error) {
	if halfWidth < 0 || math.IsNaN(halfWidth) || math.IsInf(halfWidth, 0) {
		return nil, fmt.Errorf("invalid uniform noise half width: %v", halfWidth)
	}

	return &Uniform{
		dist:      newUniformDist(halfWidth, seed),
		halfWidth: halfWidth,
		seed:      seed,
	}, nil
}

// Sample generates a sample from Uniform noise and returns it.
// Zero width noise always returns 0 without advancing the source.
func (u *Uniform) Sample() float64 {
	if u.halfWidth == 0 {
		return 0
	}

	return u.dist.Rand()
}

// HalfWidth returns half width of the sampling interval.
func (u *Uniform) HalfWidth() float64 {
	return u.halfWidth
}

// Reset reseeds the source so the noise replays from its first sample.
func (u *Uniform) Reset() {
	u.dist = newUniformDist(u.halfWidth, u.seed)
}

func newUniformDist(halfWidth float64, seed uint64) distuv.Uniform {
	return distuv.Uniform{
		Min: -halfWidth,
		Max: halfWidth,
		Src: rand.NewSource(seed),
	}
}

// String implements the Stringer interface.
func (u *Uniform) String() string {
	return fmt.Sprintf("Uniform{\nMin=%v\nMax=%v\n}", -u.halfWidth, u.halfWidth)
}
