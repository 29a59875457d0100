package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"circuitboard/internal/config"
	"circuitboard/internal/export"
)

var renderFlags struct {
	width, height int
	frames        int
	warmup        int
	format        string
	output        string
	delay         int
	seed          uint64
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the animation to a GIF or PNG frames",
	Long: `Runs the animation headlessly and captures frames. The gif format writes
one animated file; png writes frame_0000.png, frame_0001.png, ... into the
output directory. Flags override the export section of the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		exp := cfg.Export
		f := cmd.Flags()
		if f.Changed("width") {
			exp.Width = renderFlags.width
		}
		if f.Changed("height") {
			exp.Height = renderFlags.height
		}
		if f.Changed("frames") {
			exp.Frames = renderFlags.frames
		}
		if f.Changed("warmup") {
			exp.Warmup = renderFlags.warmup
		}
		if f.Changed("format") {
			exp.Format = config.ExportFormat(renderFlags.format)
		}
		if f.Changed("output") {
			exp.Output = renderFlags.output
		}
		if f.Changed("delay") {
			exp.DelayMS = renderFlags.delay
		}
		if err := exp.Validate(); err != nil {
			return err
		}

		seed := cfg.ResolveSeed(time.Now())
		if f.Changed("seed") {
			seed = renderFlags.seed
		}

		opts := export.OptionsFromConfig(exp, seed)
		opts.Reporter = export.NewReporter(cmd.ErrOrStderr())
		res, err := export.Render(cmd.Context(), opts, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d frames (%d paths, seed %d) to %s\n", res.Frames, res.Paths, seed, exp.Output)
		return nil
	},
}

func init() {
	f := renderCmd.Flags()
	f.IntVar(&renderFlags.width, "width", 0, "frame width in pixels")
	f.IntVar(&renderFlags.height, "height", 0, "frame height in pixels")
	f.IntVar(&renderFlags.frames, "frames", 0, "number of captured frames")
	f.IntVar(&renderFlags.warmup, "warmup", 0, "ticks to run before capturing")
	f.StringVar(&renderFlags.format, "format", "", "output format: gif or png")
	f.StringVarP(&renderFlags.output, "output", "o", "", "output file (gif) or directory (png)")
	f.IntVar(&renderFlags.delay, "delay", 0, "gif frame delay in milliseconds")
	f.Uint64Var(&renderFlags.seed, "seed", 0, "random seed (overrides config)")
	rootCmd.AddCommand(renderCmd)
}
