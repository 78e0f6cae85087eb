// breakbricks is a terminal Breakout-style brick breaker.
//
// Usage:
//
//	breakbricks play            - Play in the terminal
//	breakbricks scores          - Show the leaderboard
//	breakbricks serve           - Start the score HTTP API
//	breakbricks ssh             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.breakbricks/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "breakbricks",
	Short: "Break Bricks - a Breakout clone for your terminal",
	Long: `Break Bricks is a terminal brick breaker. Clear all five levels,
rack up a score, and get your name on the leaderboard.

Available commands:
  play     - Play in the terminal
  scores   - View the leaderboard
  serve    - Start the score HTTP API
  ssh      - Start SSH server for remote play

Examples:
  breakbricks play
  breakbricks play --difficulty hard
  breakbricks scores --interactive
  breakbricks serve --addr :8080
  breakbricks ssh --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.breakbricks/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sshCmd)
}
