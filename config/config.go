package config

import (
	"fmt"
	"strings"
	"time"

	filter "github.com/milosgajdos/go-kalmansim"
	"github.com/milosgajdos/go-kalmansim/noise"
	"github.com/milosgajdos/go-kalmansim/render"
	"github.com/milosgajdos/go-kalmansim/sim"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment variables overriding configuration.
const EnvPrefix = "KALMANSIM"

// Configuration keys. They double as flag names.
const (
	KeyTotalTime   = "total-time"
	KeyDt          = "dt"
	KeyVelocity    = "velocity"
	KeyNoise       = "noise"
	KeyNoiseStdDev = "noise-stddev"
	KeyR           = "r"
	KeyQ           = "q"
	KeySeed        = "seed"
	KeySize        = "size"
	KeyScale       = "scale"
	KeyLogLevel    = "log-level"
)

// Noise kinds
const (
	UniformNoise  = "uniform"
	GaussianNoise = "gaussian"
)

// Config is simulation run configuration
type Config struct {
	// TotalTime is simulation duration
	TotalTime float64
	// Dt is simulation timestep
	Dt float64
	// Velocity is the true constant velocity
	Velocity float64
	// Noise is measurement noise kind: uniform or gaussian
	Noise string
	// NoiseStdDev is the half width of uniform noise or the standard deviation of gaussian noise
	NoiseStdDev float64
	// R is measurement noise variance assumed by the filter
	R float64
	// Q is process noise variance assumed by the filter
	Q float64
	// Seed seeds measurement noise; 0 picks a time based seed
	Seed uint64
	// Size is rendered frame size in pixels
	Size int
	// Scale maps simulation units to pixels
	Scale float64
	// LogLevel is logrus log level
	LogLevel string
}

// Default returns default configuration
func Default() Config {
	c := Config{
		TotalTime:   10.0,
		Dt:          0.1,
		Velocity:    1.0,
		Noise:       UniformNoise,
		NoiseStdDev: 2.0,
		Q:           0.01,
		Size:        500,
		LogLevel:    logrus.InfoLevel.String(),
	}
	c.R = c.NoiseStdDev * c.NoiseStdDev
	c.Scale = float64(c.Size) / c.TotalTime

	return c
}

// Flags adds configuration flags with default values to fs.
func Flags(fs *pflag.FlagSet) {
	d := Default()

	fs.Float64(KeyTotalTime, d.TotalTime, "simulation duration")
	fs.Float64(KeyDt, d.Dt, "simulation time step")
	fs.Float64(KeyVelocity, d.Velocity, "true constant velocity")
	fs.String(KeyNoise, d.Noise, "measurement noise kind: uniform or gaussian")
	fs.Float64(KeyNoiseStdDev, d.NoiseStdDev, "measurement noise half width (uniform) or standard deviation (gaussian)")
	fs.Float64(KeyR, d.R, "measurement noise variance assumed by the filter (default noise-stddev^2)")
	fs.Float64(KeyQ, d.Q, "process noise variance assumed by the filter")
	fs.Uint64(KeySeed, d.Seed, "measurement noise seed; 0 picks a time based seed")
	fs.Int(KeySize, d.Size, "frame size in pixels")
	fs.Float64(KeyScale, d.Scale, "pixels per simulation unit (default size/total-time)")
	fs.String(KeyLogLevel, d.LogLevel, "log level")
}

// NewViper returns viper which reads configuration from environment variables prefixed with EnvPrefix.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	d := Default()
	v.SetDefault(KeyTotalTime, d.TotalTime)
	v.SetDefault(KeyDt, d.Dt)
	v.SetDefault(KeyVelocity, d.Velocity)
	v.SetDefault(KeyNoise, d.Noise)
	v.SetDefault(KeyNoiseStdDev, d.NoiseStdDev)
	v.SetDefault(KeyQ, d.Q)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeySize, d.Size)
	v.SetDefault(KeyLogLevel, d.LogLevel)

	return v
}

// Load reads configuration from v and returns it.
// R defaults to the square of noise-stddev and scale to size/total-time unless set explicitly.
// It returns error if the configuration is invalid.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		TotalTime:   v.GetFloat64(KeyTotalTime),
		Dt:          v.GetFloat64(KeyDt),
		Velocity:    v.GetFloat64(KeyVelocity),
		Noise:       strings.ToLower(v.GetString(KeyNoise)),
		NoiseStdDev: v.GetFloat64(KeyNoiseStdDev),
		Q:           v.GetFloat64(KeyQ),
		Seed:        v.GetUint64(KeySeed),
		Size:        v.GetInt(KeySize),
		LogLevel:    v.GetString(KeyLogLevel),
	}

	c.R = c.NoiseStdDev * c.NoiseStdDev
	if v.IsSet(KeyR) {
		c.R = v.GetFloat64(KeyR)
	}

	c.Scale = float64(c.Size) / c.TotalTime
	if v.IsSet(KeyScale) {
		c.Scale = v.GetFloat64(KeyScale)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate returns error if c is invalid.
func (c Config) Validate() error {
	if err := c.Sim().Validate(); err != nil {
		return err
	}

	switch c.Noise {
	case UniformNoise, GaussianNoise:
	default:
		return fmt.Errorf("unknown noise kind: %q", c.Noise)
	}

	if c.NoiseStdDev < 0 {
		return fmt.Errorf("invalid noise standard deviation: %v", c.NoiseStdDev)
	}

	if err := c.Render().Validate(); err != nil {
		return err
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	return nil
}

// Sim returns simulation configuration
func (c Config) Sim() sim.Config {
	return sim.Config{
		TotalTime: c.TotalTime,
		Dt:        c.Dt,
		Velocity:  c.Velocity,
		R:         c.R,
		Q:         c.Q,
	}
}

// Render returns frame rendering options
func (c Config) Render() render.Options {
	o := render.DefaultOptions(c.TotalTime)
	o.Size = c.Size
	o.Scale = c.Scale

	return o
}

// NewNoise creates measurement noise configured by c.
// It returns error if the noise can not be created.
func (c Config) NewNoise() (filter.Noise, error) {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var (
		wn  filter.Noise
		err error
	)

	switch c.Noise {
	case UniformNoise:
		wn, err = noise.NewUniform(c.NoiseStdDev, seed)
	case GaussianNoise:
		wn, err = noise.NewGaussian(c.NoiseStdDev, seed)
	default:
		err = fmt.Errorf("unknown noise kind: %q", c.Noise)
	}

	if err != nil {
		return nil, err
	}

	return wn, nil
}
