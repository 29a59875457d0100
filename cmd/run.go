package cmd

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"circuitboard/internal/config"
)

// Host shows the animation until ctx is done or the user quits.
type Host func(ctx context.Context, cfg *config.Config, log *zap.Logger) error

var host Host

// SetHost installs the interactive host used by `run`.
func SetHost(h Host) { host = h }

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the animation window",
	Long: `Opens a window showing the animation. Press R to reroute every trace
and Escape to quit. Window size, seed, tick rate and audio come from the
config file.`,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, args []string) error {
	if host == nil {
		return errors.New("no display host available")
	}
	return host(cmd.Context(), cfg, logger)
}

func init() {
	rootCmd.AddCommand(runCmd)
}
