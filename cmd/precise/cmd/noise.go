package cmd

import (
	"github.com/solarlune/precise/math64"
	"github.com/spf13/cobra"
)

func (a *app) noiseCommand() *cobra.Command {

	seed := 0

	cmd := &cobra.Command{
		Use:   "noise X [Y [Z]]",
		Short: "Sample Perlin noise in one, two, or three dimensions",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {

			values, err := parseFloats(args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("seed") {
				a.cfg.Noise.Seed = seed
			}

			var n float64

			switch len(values) {
			case 1:
				n = math64.PerlinNoise(values[0])
			case 2:
				a.log.Printf("2D noise with seed %d", a.cfg.Noise.Seed)
				n = math64.PerlinNoise2D(values[0], values[1], a.cfg.Noise.Seed)
			default:
				n = math64.PerlinNoise3D(values[0], values[1], values[2])
			}

			return a.printer(cmd).print(number("noise", n))

		},
	}

	cmd.Flags().IntVar(&seed, "seed", 0, "seed for 2D noise (default from config)")

	return cmd

}
