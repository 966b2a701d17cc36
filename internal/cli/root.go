// Package cli defines Cobra command definitions for the replog CLI.
// This file contains the root command, version flag, and help output.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/replog-dev/replog/internal/api"
	"github.com/replog-dev/replog/internal/auth"
	"github.com/replog-dev/replog/internal/config"
	"github.com/replog-dev/replog/internal/log"
	"github.com/replog-dev/replog/internal/tui"
	"github.com/replog-dev/replog/internal/tui/app"
)

var (
	serverURL string
	version   = "dev" // set via ldflags at build time
)

var rootCmd = &cobra.Command{
	Use:   "replog",
	Short: "Terminal workout logger",
	Long: `Replog is a terminal client for logging workouts.
It tracks sessions and the sets within them against a replog server,
with exercise-name autocomplete while you type.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When stdout is not a terminal there is nothing to draw; the
		// subcommands cover scripted use.
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, client, credStore, events, err := buildEnv()
		if err != nil {
			return err
		}
		if events != nil {
			_ = events.Append(log.LogEvent{Event: log.EventClientStarted})
		}

		return tui.Run(app.New(cfg, client, credStore))
	},
}

// buildEnv assembles the shared collaborators every command needs.
// A broken config falls back to defaults; a broken event log is skipped.
func buildEnv() (*config.Config, *api.Client, *auth.Store, *log.Logger, error) {
	dir, err := config.DefaultDir()
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("resolving config directory: %w", err)
	}

	cfg, err := config.ReadConfig(dir)
	if err != nil {
		cfg = config.DefaultConfig()
	}
	if serverURL != "" {
		cfg.Server.URL = serverURL
	}

	events, err := log.NewLogger(dir)
	if err != nil {
		events = nil
	}

	return cfg, api.NewClient(cfg.Server.URL, events), auth.NewStore(dir), events, nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Override the server URL from config")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(sessionsCmd)
}
