package sim

import (
	"errors"
	"fmt"
	"math"

	filter "github.com/milosgajdos/go-kalmansim"
	"github.com/milosgajdos/go-kalmansim/kalman"
	"github.com/milosgajdos/go-kalmansim/kalman/kf"
	"github.com/milosgajdos/go-kalmansim/noise"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/plotter"
)

// MaxSteps is the maximum number of simulation steps.
// Every step is recorded, so the bound keeps the trace allocatable.
const MaxSteps = 1 << 22

var (
	// ErrInvalidTimeStep is returned when simulation time or timestep do not yield between 1 and MaxSteps steps.
	ErrInvalidTimeStep = errors.New("invalid time step")
	// ErrInvalidNoiseModel is returned when measurement noise variance is not positive
	// or process noise variance is negative.
	ErrInvalidNoiseModel = errors.New("invalid noise model")
)

// Config is simulation configuration
type Config struct {
	// TotalTime is simulation duration
	TotalTime float64
	// Dt is simulation timestep
	Dt float64
	// Velocity is the true constant velocity of the object
	Velocity float64
	// R is measurement noise variance assumed by the filter
	R float64
	// Q is process noise variance assumed by the filter
	Q float64
}

// Validate checks c and returns error if simulation can not run with it.
func (c Config) Validate() error {
	if !(c.Dt > 0) || !(c.TotalTime > 0) {
		return fmt.Errorf("%w: total time %v, dt %v", ErrInvalidTimeStep, c.TotalTime, c.Dt)
	}

	steps := c.TotalTime / c.Dt
	if steps < 1 {
		return fmt.Errorf("%w: total time %v shorter than dt %v", ErrInvalidTimeStep, c.TotalTime, c.Dt)
	}

	if steps > MaxSteps {
		return fmt.Errorf("%w: %v steps exceed %d", ErrInvalidTimeStep, steps, MaxSteps)
	}

	if !(c.R > 0) {
		return fmt.Errorf("%w: measurement noise variance %v", ErrInvalidNoiseModel, c.R)
	}

	if !(c.Q >= 0) {
		return fmt.Errorf("%w: process noise variance %v", ErrInvalidNoiseModel, c.Q)
	}

	return nil
}

// Steps returns the number of simulation steps.
// Any final partial timestep is dropped.
func (c Config) Steps() int {
	return int(math.Floor(c.TotalTime / c.Dt))
}

// Tick is a single simulation step record
type Tick struct {
	// Time is the tick time
	Time float64
	// True is the true position
	True float64
	// Measured is the noisy measured position
	Measured float64
	// Estimated is the filtered position
	Estimated float64
	// Gain is the Kalman gain applied in this tick
	Gain float64
	// Cov is the filter position covariance after this tick
	Cov float64
}

// Result is simulation result
type Result struct {
	// Ticks stores simulation ticks in time order
	Ticks []Tick
	// Estimate is the filter estimate after the last tick
	Estimate filter.Estimate
}

// Simulate runs the filter over a simulated object moving at constant velocity
// and returns the simulation trace.
// wn is measurement noise; if it's nil no noise is added to measurements.
// It returns error if c is invalid or the filter estimate becomes invalid.
func Simulate(c Config, wn filter.Noise) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if wn == nil {
		wn = noise.NewZero()
	}

	steps := c.Steps()
	model := NewDiscrete(c.Velocity)

	var f kalman.Kalman = kf.New(0.0, c.Velocity, c.R, c.Q)

	res := &Result{
		Ticks: make([]Tick, 0, steps),
	}

	x := 0.0
	for i := 0; i < steps; i++ {
		t := float64(i) * c.Dt

		// ground truth propagation
		x = model.Propagate(x, c.Dt)

		// measurement: z = x+noise
		z := model.Observe(x, wn.Sample())

		est, err := f.Run(c.Dt, z)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		res.Ticks = append(res.Ticks, Tick{
			Time:      t,
			True:      x,
			Measured:  z,
			Estimated: est.Val().AtVec(0),
			Gain:      f.Gain(),
			Cov:       est.Cov().At(0, 0),
		})
		res.Estimate = est
	}

	return res, nil
}

// Len returns number of ticks
func (r *Result) Len() int {
	return len(r.Ticks)
}

// Series returns true, measured and estimated positions as time series.
func (r *Result) Series() (truth, measured, estimated plotter.XYs) {
	truth = make(plotter.XYs, len(r.Ticks))
	measured = make(plotter.XYs, len(r.Ticks))
	estimated = make(plotter.XYs, len(r.Ticks))

	for i, tick := range r.Ticks {
		truth[i].X, truth[i].Y = tick.Time, tick.True
		measured[i].X, measured[i].Y = tick.Time, tick.Measured
		estimated[i].X, estimated[i].Y = tick.Time, tick.Estimated
	}

	return truth, measured, estimated
}

// Summary summarizes simulation result
type Summary struct {
	// Steps is the number of simulation steps
	Steps int
	// MeasurementRMSE is root mean square error of measurements
	MeasurementRMSE float64
	// EstimateRMSE is root mean square error of filter estimates
	EstimateRMSE float64
	// FinalCov is the filter covariance after the last step
	FinalCov float64
	// FinalGain is the Kalman gain of the last step
	FinalGain float64
}

// Summary computes summary of the simulation result.
// Errors are zero for an empty result.
func (r *Result) Summary() Summary {
	n := len(r.Ticks)
	if n == 0 {
		return Summary{}
	}

	truth := make([]float64, n)
	meas := make([]float64, n)
	est := make([]float64, n)
	for i, tick := range r.Ticks {
		truth[i], meas[i], est[i] = tick.True, tick.Measured, tick.Estimated
	}

	last := r.Ticks[n-1]
	return Summary{
		Steps:           n,
		MeasurementRMSE: rmse(meas, truth),
		EstimateRMSE:    rmse(est, truth),
		FinalCov:        last.Cov,
		FinalGain:       last.Gain,
	}
}

func rmse(s, t []float64) float64 {
	return floats.Distance(s, t, 2) / math.Sqrt(float64(len(s)))
}
