package filter

import "gonum.org/v1/gonum/mat"

// Filter is a recursive state estimator of a one dimensional position.
type Filter interface {
	// Predict advances the filter state by timestep dt
	Predict(dt float64)
	// Update corrects the filter state using measurement z
	Update(z float64)
}

// Estimate is dynamical system filter estimate
type Estimate interface {
	// Val returns estimate value
	Val() mat.Vector
	// Cov returns estimate covariance
	Cov() mat.Symmetric
}

// Noise is a source of scalar measurement noise.
type Noise interface {
	// Sample returns the next noise sample
	Sample() float64
	// Reset rewinds the noise to its initial state
	Reset()
}
