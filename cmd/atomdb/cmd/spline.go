package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/spline"
)

// splineCmd represents the spline command
var splineCmd = &cobra.Command{
	Use:   "spline <elem> <charge> <mult> <point>...",
	Short: "Evaluate a reconstructed radial function",
	Long: `Fit a cubic spline through one stored radial channel of a species
record and evaluate it at the given radii (in bohr).

Example:
  atomdb spline H 0 2 0.5 1.0 2.5 --channel dens --spin ab
  atomdb spline O 0 3 0.1 --channel ked`,
	Args: cobra.MinimumNArgs(4),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyFromArgs(args[:3])
		if err != nil {
			fmt.Printf("Error parsing key: %v\n", err)
			return
		}
		points := make([]float64, len(args)-3)
		for i, arg := range args[3:] {
			if points[i], err = strconv.ParseFloat(arg, 64); err != nil {
				fmt.Printf("Error parsing point %q: %v\n", arg, err)
				return
			}
		}

		channelName, _ := cmd.Flags().GetString("channel")
		family, err := species.ParseChannelFamily(channelName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		spinName, _ := cmd.Flags().GetString("spin")
		spin, err := species.ParseSpin(spinName)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		var opts []spline.Option
		if cmd.Flags().Changed("log") {
			logMode, _ := cmd.Flags().GetBool("log")
			opts = append(opts, spline.WithLog(logMode))
		}

		rec, err := db.Load(key)
		if err != nil {
			fmt.Printf("Error loading species: %v\n", err)
			return
		}
		values, err := spline.Evaluate(rec, family, spin, points, opts...)
		if err != nil {
			fmt.Printf("Error evaluating spline: %v\n", err)
			return
		}

		for i, x := range points {
			fmt.Printf("%g\t%g\n", x, values[i])
		}
	},
}

func init() {
	rootCmd.AddCommand(splineCmd)
	splineCmd.Flags().String("channel", "dens", "Channel family: dens, d_dens, lapl, or ked")
	splineCmd.Flags().String("spin", "ab", "Spin variant: a, b, ab, or m")
	splineCmd.Flags().Bool("log", false, "Interpolate the logarithm of the channel")
}
