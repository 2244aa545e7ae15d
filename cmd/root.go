package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/moviegraph/moviegraph/internal/config"
	"github.com/moviegraph/moviegraph/internal/logging"
	"github.com/moviegraph/moviegraph/internal/record"
	"github.com/moviegraph/moviegraph/internal/recordcore"
)

var (
	core       *recordcore.Core
	cfg        *config.Config
	logger     *zap.Logger
	configPath string
	seedPath   string
)

var rootCmd = &cobra.Command{
	Use:   "moviegraph",
	Short: "A GraphQL API over an in-memory catalogue of movies and actors",
	Long: `Moviegraph serves a small catalogue of movies and the actors starring in
them over GraphQL. Records live in memory and are seeded at startup, either
from the built-in seed or from a YAML file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init writes the config file, so it must not need one
		if cmd.Name() == "init" {
			return nil
		}

		var err error

		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if seedPath != "" {
			cfg.Seed = seedPath
		}

		logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}

		seed, err := record.LoadSeed(cfg.Seed)
		if err != nil {
			return fmt.Errorf("loading seed: %w", err)
		}
		core = recordcore.New(seed)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default "+config.ConfigFile+")")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "Path to a YAML seed file (overrides config)")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
