package noise

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gaussian is zero mean gaussian noise
type Gaussian struct {
	// dist is a univariate normal distribution
	dist distuv.Normal
	// stddev is Gaussian standard deviation
	stddev float64
	// seed seeds the random source
	seed uint64
}

// NewGaussian creates new zero mean Gaussian noise with given standard deviation.
// It returns error if stddev is negative or not finite.
func NewGaussian(stddev float64, seed uint64) (*Gaussian, error) {
	if stddev < 0 || math.IsNaN(stddev) || math.IsInf(stddev, 0) {
		return nil, fmt.Errorf("invalid gaussian noise standard deviation: %v", stddev)
	}

	return &Gaussian{
		dist:   newGaussianDist(stddev, seed),
		stddev: stddev,
		seed:   seed,
	}, nil
}

// Sample generates a sample from Gaussian noise and returns it.
func (g *Gaussian) Sample() float64 {
	return g.dist.Rand()
}

// StdDev returns Gaussian standard deviation.
func (g *Gaussian) StdDev() float64 {
	return g.stddev
}

// Cov returns variance of Gaussian noise.
func (g *Gaussian) Cov() float64 {
	return g.stddev * g.stddev
}

// Reset reseeds the source so the noise replays from its first sample.
func (g *Gaussian) Reset() {
	g.dist = newGaussianDist(g.stddev, g.seed)
}

func newGaussianDist(stddev float64, seed uint64) distuv.Normal {
	return distuv.Normal{
		Mu:    0,
		Sigma: stddev,
		Src:   rand.NewSource(seed),
	}
}

// String implements the Stringer interface.
func (g *Gaussian) String() string {
	return fmt.Sprintf("Gaussian{\nMean=%v\nCov=%v\n}", 0.0, g.Cov())
}
