package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/milosgajdos/go-kalmansim/render"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// newAnimateCmd creates command which renders the simulation into an animated GIF
func newAnimateCmd(v *viper.Viper) *cobra.Command {
	var (
		out   string
		delay int
	)

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Render the simulation as an animated GIF",
		Long: `Render one frame per simulation step: the true path in red, the filtered
path in green and every measurement as a blue dot.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if delay < 0 {
				return fmt.Errorf("invalid frame delay: %d", delay)
			}

			c, res, err := simulate(v)
			if err != nil {
				return err
			}

			frames, err := render.NewFrames(res.Ticks, c.Render())
			if err != nil {
				return err
			}

			log.WithFields(log.Fields{
				"frames": frames.Len(),
				"size":   c.Size,
				"scale":  c.Scale,
			}).Info("Rendering frames...")

			progress := func(i, n int) {
				if i%10 == 0 {
					log.Infof("%d/%d frames", i, n)
				}
			}

			if err := render.WriteGIF(out, frames, delay, progress); err != nil {
				log.WithFields(log.Fields{
					"error": err,
					"out":   out,
				}).Error("Failed to write animation")
				return err
			}

			if fi, err := os.Stat(out); err == nil {
				log.WithField("size", humanize.Bytes(uint64(fi.Size()))).Debug("Animation written")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Output saved to %s\n", out)

			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "output.gif", "output GIF file")
	cmd.Flags().IntVar(&delay, "delay", render.DefaultDelay, "delay between frames in 100ths of a second")

	return cmd
}
