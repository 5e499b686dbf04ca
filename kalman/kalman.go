package kalman

import filter "github.com/milosgajdos/go-kalmansim"

// Kalman is Kalman Filter
type Kalman interface {
	// filter.Filter is dynamical system filter
	filter.Filter
	// Run predicts over dt, updates with z and returns the new estimate
	Run(dt, z float64) (filter.Estimate, error)
	// Cov returns Kalman filter state covariance
	Cov() float64
	// Gain returns Kalman filter gain
	Gain() float64
}
