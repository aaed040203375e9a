package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app carries the state shared by all commands once the configuration has
// been loaded.
type app struct {
	configPath string
	config     *Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "ngramist",
		Short:         "Generate text from an n-gram model of a corpus",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := LoadConfig(a.configPath, cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			a.config = config
			a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "./ngramist.json", "path to the JSON configuration file")

	root.AddCommand(
		newGenerateCmd(a),
		newStatsCmd(a),
		newCorpusCmd(a),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintf(root.ErrOrStderr(), "ngramist: %v\n", err)
		os.Exit(1)
	}
}
