package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"circuitboard/internal/config"
	"circuitboard/internal/logging"
)

// skipConfig marks commands that must work without a valid config file.
const skipConfig = "skip-config"

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "circuitboard",
	Short: "Animated circuit-board background",
	Long: `circuitboard draws orthogonal traces with glowing electrons running
along them. Traces are regenerated at random as the electrons loop, and the
whole board is rebuilt whenever the window is resized.

Run without arguments to open the window.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Annotations[skipConfig] != "" {
			return nil
		}
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runWindow,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "circuitboard.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// setup loads and validates the config, then builds the logger.
func setup() error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if verbose {
		c.Log.Level = "debug"
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	l, err := logging.New(c.Log.Level, c.Log.Development)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("config loaded", zap.String("path", cfgFile))
	return nil
}
