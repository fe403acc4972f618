package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Dosada05/swiss-tournament/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	envFile string
	output  string

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{output: "text"}

	rootCmd := &cobra.Command{
		Use:   "swiss",
		Short: "Swiss-system tournament service",
		Long: `swiss manages a Swiss-system tournament: the player roster, match results,
standings and the pairings for the next round.

It runs the HTTP API with "serve" and exposes every operation directly against
the configured database. Configuration comes from the environment (DATABASE_URL,
DATABASE_DRIVER, ...) and an optional .env file.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.output != "text" && opts.output != "json" {
				return fmt.Errorf("unknown output format %q (want text or json)", opts.output)
			}

			var (
				cfg *config.Config
				err error
			)
			if opts.envFile != "" {
				cfg, err = config.LoadFile(opts.envFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			opts.cfg = cfg

			opts.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel}))
			slog.SetDefault(opts.logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "Load environment from this file instead of ./.env")
	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "Output format: text, json")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newSchemaCmd(opts))
	rootCmd.AddCommand(newPlayersCmd(opts))
	rootCmd.AddCommand(newMatchesCmd(opts))
	rootCmd.AddCommand(newStandingsCmd(opts))
	rootCmd.AddCommand(newPairingsCmd(opts))
	rootCmd.AddCommand(newSnapshotCmd(opts))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
