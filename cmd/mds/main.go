// SPDX-License-Identifier: MIT

// Package main is the entry point for the mds CLI.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mds/internal/config"
	"github.com/katalvlaran/mds/internal/log"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app carries what every sub-command needs after configuration is loaded.
type app struct {
	cfg    config.Config
	logger zerolog.Logger
}

func rootCmd() *cobra.Command {
	var (
		a        = &app{cfg: config.Default(), logger: zerolog.Nop()}
		envFile  string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "mds",
		Short: "Classic multidimensional scaling",
		Long: `mds embeds items in a low-dimensional space from their pairwise distances
using classic (Torgerson) multidimensional scaling, and plots the result.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file (--env-file, or .env in the current directory)
  3. Environment variables
  4. CLI flags

Environment variables:
  MDS_LOG_LEVEL            Log level: DEBUG, INFO, WARN, ERROR (default: INFO)
  MDS_LOG_FORMAT           Log format: pretty, json (default: pretty)
  MDS_DIMENSIONS           Output dimensions for embed (default: 2)
  MDS_SYMMETRY_TOLERANCE   Relative symmetry tolerance (default: 1e-9)
  MDS_CHECK_SYMMETRY       Reject asymmetric input (default: true)
  MDS_OUTPUT_FORMAT        Embedding output: json, csv (default: json)`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(envFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			a.logger = log.NewWithWriter(cmd.ErrOrStderr(), cfg.LogFormat, cfg.LogLevel)

			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", "", "path to .env file (default: .env if present)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (DEBUG, INFO, WARN, ERROR)")

	cmd.AddCommand(embedCmd(a))
	cmd.AddCommand(plotCmd(a))
	cmd.AddCommand(versionCmd())

	return cmd
}
