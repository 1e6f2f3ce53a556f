// Package main provides the goldbach CLI entry point: subcommands for
// scripted analysis and an interactive TUI when run without arguments.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"goldbach/cmd/goldbach/config"
	"goldbach/internal/logging"
	"goldbach/internal/stats"
)

var (
	// Global flags
	verbose   bool
	configDir string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "goldbach",
	Short: "Goldbach conjecture explorer",
	Long: `goldbach explores the Goldbach conjecture: every even integer greater
than 2 is the sum of two primes.

It enumerates the prime pair decompositions of single even numbers or whole
ranges, and renders them as tables, scatter plots, and bar charts.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if configDir != "" {
			config.SetDir(configDir)
		}

		// Skip logger init for interactive mode (it has its own UI)
		if cmd.Use == "goldbach" && cmd.CalledAs() == "goldbach" {
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
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
		logging.CloseAll()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the interactive explorer
		return runInteractive()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "Directory for config, stats, and logs (default: ./.goldbach or ~/.goldbach)")

	pairsCmd.Flags().BoolVar(&showChart, "chart", false, "Render a scatter plot of the pairs")
	rangeCmd.Flags().BoolVar(&showChart, "chart", false, "Render a bar chart of the pair counts")
	rangeCmd.Flags().IntVar(&workers, "workers", 0, "Parallel workers for the range analysis (default: config value)")
	rangeCmd.Flags().BoolVar(&showPairs, "pairs", false, "List every decomposition, not just counts")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(primesCmd)
	rootCmd.AddCommand(pairsCmd)
	rootCmd.AddCommand(rangeCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openTracker loads the session stats tracker from the config dir.
// Stats are best effort; a failure only disables tracking.
func openTracker() *stats.Tracker {
	dir, err := config.Dir()
	if err != nil {
		return nil
	}
	tracker, err := stats.NewTracker(dir)
	if err != nil {
		return nil
	}
	return tracker
}
