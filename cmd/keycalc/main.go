package main

import (
	"fmt"
	"os"

	"keycalc/internal/config"
	"keycalc/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Root flags
	watch bool

	// Logger for non-interactive commands
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "keycalc",
	Short: "keycalc - a minimal keypad calculator for the terminal",
	Long: `keycalc shows an expression display above a grid of buttons.
Click the buttons (or move with the arrow keys and press enter) to build an
expression, then press = to evaluate it.

Run without arguments to open the keypad.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The keypad logs through its own file logger
		if cmd == cmd.Root() {
			return nil
		}

		zapConfig := zap.NewProductionConfig()
		if verbose {
			zapConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapConfig.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if verbose {
			logging.SetBase(logger, nil)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInteractive,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath(), "Config file")

	rootCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the config file when it changes")

	evalCmd.Flags().BoolVarP(&exact, "exact", "e", false, "Evaluate with exact fractions")
	layoutCmd.Flags().BoolVar(&plain, "plain", false, "Print raw Markdown")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(layoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
