package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"circuitboard/internal/stats"
)

var statsFlags struct {
	width, height int
	paths         int
	wraps         int
	seed          uint64
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Simulate path generation and print distribution statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := stats.Options{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Paths:  statsFlags.paths,
			Wraps:  statsFlags.wraps,
			Seed:   cfg.ResolveSeed(time.Now()),
		}
		f := cmd.Flags()
		if f.Changed("width") {
			opts.Width = statsFlags.width
		}
		if f.Changed("height") {
			opts.Height = statsFlags.height
		}
		if f.Changed("seed") {
			opts.Seed = statsFlags.seed
		}
		return stats.Simulate(opts).Write(cmd.OutOrStdout())
	},
}

func init() {
	f := statsCmd.Flags()
	f.IntVar(&statsFlags.width, "width", 0, "surface width (default window.width)")
	f.IntVar(&statsFlags.height, "height", 0, "surface height (default window.height)")
	f.IntVar(&statsFlags.paths, "paths", 0, "number of paths (default derived from area)")
	f.IntVar(&statsFlags.wraps, "wraps", 100000, "number of forced wraps")
	f.Uint64Var(&statsFlags.seed, "seed", 0, "random seed (overrides config)")
	rootCmd.AddCommand(statsCmd)
}
