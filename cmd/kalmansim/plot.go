package main

import (
	"fmt"

	"github.com/milosgajdos/go-kalmansim/sim"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

// newPlotCmd creates command which saves a static plot of the whole simulation
func newPlotCmd(v *viper.Viper) *cobra.Command {
	var (
		out   string
		width float64
	)

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Save a static plot of the simulation",
		Long: `Save a plot of the true, measured and filtered positions over time.
The image format is picked from the output file extension (png, svg, pdf, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !(width > 0) {
				return fmt.Errorf("invalid plot width: %v", width)
			}

			_, res, err := simulate(v)
			if err != nil {
				return err
			}

			plt, err := sim.New2DPlot(res)
			if err != nil {
				return fmt.Errorf("failed to make plot: %w", err)
			}

			size := vg.Length(width) * vg.Inch
			if err := plt.Save(size, size, out); err != nil {
				return fmt.Errorf("failed to save plot to %s: %w", out, err)
			}

			log.WithField("out", out).Info("Plot saved")

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "system.png", "output image file")
	cmd.Flags().Float64Var(&width, "width", 10, "plot width and height in inches")

	return cmd
}
