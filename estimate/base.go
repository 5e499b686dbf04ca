package estimate

import (
	"fmt"

	"github.com/milosgajdos/matrix"
	"gonum.org/v1/gonum/mat"
)

// Base is base estimate.
// Its value holds position and velocity; its covariance is the position variance only.
type Base struct {
	// val is estimated value
	val *mat.VecDense
	// cov is estimated position covariance
	cov *mat.SymDense
}

// NewBase returns base estimate of position x and velocity v with zero covariance
func NewBase(x, v float64) (*Base, error) {
	return NewBaseWithCov(x, v, 0)
}

// NewBaseWithCov returns base estimate of position x and velocity v with position covariance p.
// It returns error if p is negative.
func NewBaseWithCov(x, v, p float64) (*Base, error) {
	if p < 0 {
		return nil, fmt.Errorf("invalid covariance: %v", p)
	}

	return &Base{
		val: mat.NewVecDense(2, []float64{x, v}),
		cov: mat.NewSymDense(1, []float64{p}),
	}, nil
}

// Val returns estimated value
func (b *Base) Val() mat.Vector {
	v := &mat.VecDense{}
	v.CloneFromVec(b.val)

	return v
}

// Cov returns covariance estimate
func (b *Base) Cov() mat.Symmetric {
	cov := mat.NewSymDense(b.cov.SymmetricDim(), nil)
	cov.CopySym(b.cov)

	return cov
}

// Position returns estimated position
func (b *Base) Position() float64 {
	return b.val.AtVec(0)
}

// Velocity returns velocity carried by the estimate
func (b *Base) Velocity() float64 {
	return b.val.AtVec(1)
}

// String implements the Stringer interface.
func (b *Base) String() string {
	return fmt.Sprintf("Base{\nVal=%v\nCov=%v\n}", matrix.Format(b.val), matrix.Format(b.cov))
}
