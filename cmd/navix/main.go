// Command navix runs gridworld episode tooling: a websocket server backed
// by Redis sessions, and a local rollout driver.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/navix-rl/navix/internal/core/envs"
)

var rootCmd = &cobra.Command{
	Use:   "navix",
	Short: "Gridworld episode engine",
	Long:  `Deterministic gridworld simulation engine for reinforcement-learning agents.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		envs.RegisterAll()
	},
}

func main() {
	// optional .env for local development; real deployments set the
	// environment directly
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rolloutCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
