package kf

import (
	"fmt"
	"math"

	filter "github.com/milosgajdos/go-kalmansim"
	"github.com/milosgajdos/go-kalmansim/estimate"
)

// InitCov is the initial position covariance of every new KF.
const InitCov = 1.0

// State is KF state
type State struct {
	// Position is estimated position
	Position float64
	// Velocity is the assumed constant velocity; the filter never corrects it
	Velocity float64
}

// KF is a scalar Kalman Filter which tracks position of an object moving at known constant velocity.
type KF struct {
	// x is filter state
	x State
	// p is position covariance
	p float64
	// r is measurement noise variance
	r float64
	// q is process noise variance
	q float64
	// k is Kalman gain of the last update
	k float64
}

// New creates new KF and returns it.
// It accepts the following parameters:
//   - x: initial position
//   - v: velocity
//   - r: measurement noise variance
//   - q: process noise variance
//
// New does not validate its parameters: r must be positive, otherwise
// Update produces NaN or Inf which propagate to every later estimate.
func New(x, v, r, q float64) *KF {
	return &KF{
		x: State{Position: x, Velocity: v},
		p: InitCov,
		r: r,
		q: q,
	}
}

// Predict advances the filter state by timestep dt assuming constant velocity.
// Position covariance grows by process noise variance.
func (k *KF) Predict(dt float64) {
	k.x.Position += k.x.Velocity * dt
	k.p += k.q
}

// Update corrects the filter position using measurement z.
// Position covariance contracts by (1-K).
func (k *KF) Update(z float64) {
	k.k = k.p / (k.p + k.r)
	k.x.Position += k.k * (z - k.x.Position)
	k.p *= 1 - k.k
}

// Run runs one step of KF for timestep dt and measurement z and returns new estimate.
func (k *KF) Run(dt, z float64) (filter.Estimate, error) {
	k.Predict(dt)
	k.Update(z)

	return k.Estimate()
}

// State returns KF state
func (k *KF) State() State {
	return k.x
}

// Estimate returns current KF estimate.
// It returns error if the covariance has become invalid.
func (k *KF) Estimate() (filter.Estimate, error) {
	est, err := estimate.NewBaseWithCov(k.x.Position, k.x.Velocity, k.p)
	if err != nil {
		return nil, fmt.Errorf("invalid estimate: %w", err)
	}

	return est, nil
}

// Cov returns KF position covariance
func (k *KF) Cov() float64 {
	return k.p
}

// SetCov sets KF position covariance to p.
// It returns error if p is negative, NaN or infinite.
func (k *KF) SetCov(p float64) error {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		return fmt.Errorf("invalid covariance: %v", p)
	}

	k.p = p

	return nil
}

// Gain returns Kalman gain used by the last Update
func (k *KF) Gain() float64 {
	return k.k
}

// MeasurementNoise returns measurement noise variance
func (k *KF) MeasurementNoise() float64 {
	return k.r
}

// ProcessNoise returns process noise variance
func (k *KF) ProcessNoise() float64 {
	return k.q
}
