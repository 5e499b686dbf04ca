package sim

// Discrete is a discrete-time model of an object moving along a line at constant velocity.
//
//	x[n+1] = x[n] + v*dt
//	y[n] = x[n] + wn[n]
type Discrete struct {
	// Velocity is the constant velocity of the object
	Velocity float64
}

// NewDiscrete creates new constant velocity model and returns it.
func NewDiscrete(v float64) *Discrete {
	return &Discrete{Velocity: v}
}

// Propagate returns position x advanced by timestep dt.
func (d *Discrete) Propagate(x, dt float64) float64 {
	return x + d.Velocity*dt
}

// Observe returns measurement of position x perturbed by noise sample wn.
func (d *Discrete) Observe(x, wn float64) float64 {
	return x + wn
}
