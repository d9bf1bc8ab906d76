package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"mindguard/internal/config"
)

var (
	// Global flags
	verbose bool
	noDelay bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mindguard",
	Short: "MindGuard - track the emotional tone of what you read and write",
	Long: `MindGuard scores text with a sentiment lexicon, buckets the score into a
mood, keeps a per-day average of your scores and a private journal.

Everything lives in memory for the length of the session.

Run without arguments to start the interactive interface.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.New()

		// The interactive UI owns the terminal, so it logs to a file.
		outputs := []string{"stderr"}
		if cmd == cmd.Root() {
			outputs = []string{cfg.LogFile}
		}

		var err error
		logger, err = newLogger(outputs, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
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

func newLogger(outputs []string, debug bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.OutputPaths = outputs
	config.ErrorOutputPaths = outputs
	if debug {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noDelay, "no-delay", false, "Skip the simulated scoring delay")

	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the session snapshot as JSON")
	analyzeCmd.Flags().BoolVar(&analyzeExport, "export", false, "Export the session after analyzing")
	rootCmd.AddCommand(analyzeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
