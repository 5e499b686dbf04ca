package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newSimulateCmd creates command which runs the simulation without rendering
func newSimulateCmd(v *viper.Viper) *cobra.Command {
	var ticks bool

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation and print its summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, res, err := simulate(v)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if ticks {
				fmt.Fprintln(out, "time\ttrue\tmeasured\testimated\tgain\tcov")
				for _, t := range res.Ticks {
					fmt.Fprintf(out, "%g\t%g\t%g\t%g\t%g\t%g\n", t.Time, t.True, t.Measured, t.Estimated, t.Gain, t.Cov)
				}
			}

			s := res.Summary()
			fmt.Fprintf(out, "steps: %d\nmeasurement rmse: %g\nestimate rmse: %g\n", s.Steps, s.MeasurementRMSE, s.EstimateRMSE)

			return nil
		},
	}

	cmd.Flags().BoolVar(&ticks, "ticks", false, "print every simulation tick")

	return cmd
}
