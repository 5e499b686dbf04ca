package main

import (
	"fmt"

	"github.com/milosgajdos/go-kalmansim/config"
	"github.com/milosgajdos/go-kalmansim/sim"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newRootCmd creates the kalmansim command with all its subcommands.
// Every command tree gets its own viper so flag values never leak between runs.
func newRootCmd() *cobra.Command {
	// cfgFile is an optional configuration file
	var cfgFile string
	// v holds flag, env and file configuration
	v := config.NewViper()

	rootCmd := &cobra.Command{
		Use:   "kalmansim",
		Short: "Simulate a 1-D Kalman filter tracking a constant velocity object",
		Long: `Simulate an object moving along a line at constant velocity, measure its
position with a noisy sensor and filter the measurements with a Kalman filter.

Measurement noise is uniform in [-noise-stddev, noise-stddev) unless --noise=gaussian.
Every flag can also be set in a config file or with a KALMANSIM_ prefixed
environment variable, e.g. KALMANSIM_NOISE_STDDEV=0.5.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgFile == "" {
				return nil
			}
			v.SetConfigFile(cfgFile)
			if err := v.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
			}
			return nil
		},
	}

	pFlags := rootCmd.PersistentFlags()
	pFlags.StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	config.Flags(pFlags)

	if err := v.BindPFlags(pFlags); err != nil {
		log.Fatalf("Failed to bind flags: %v", err)
	}

	rootCmd.AddCommand(
		newAnimateCmd(v),
		newPlotCmd(v),
		newSimulateCmd(v),
	)

	return rootCmd
}

// simulate loads configuration from v and runs the simulation.
func simulate(v *viper.Viper) (config.Config, *sim.Result, error) {
	c, err := config.Load(v)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	log.SetLevel(level)

	wn, err := c.NewNoise()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to create measurement noise: %w", err)
	}

	log.WithFields(log.Fields{
		"total_time": c.TotalTime,
		"dt":         c.Dt,
		"velocity":   c.Velocity,
		"noise":      c.Noise,
		"stddev":     c.NoiseStdDev,
		"r":          c.R,
		"q":          c.Q,
	}).Info("Simulating...")

	res, err := sim.Simulate(c.Sim(), wn)
	if err != nil {
		return config.Config{}, nil, err
	}

	s := res.Summary()
	log.WithFields(log.Fields{
		"steps":            s.Steps,
		"measurement_rmse": s.MeasurementRMSE,
		"estimate_rmse":    s.EstimateRMSE,
		"cov":              s.FinalCov,
		"gain":             s.FinalGain,
	}).Info("Simulation done")
	log.Debugf("Final estimate:\n%v", res.Estimate)

	return c, res, nil
}
