package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/breakbricks/breakbricks/internal/platform/tui"
	"github.com/breakbricks/breakbricks/internal/scores"
	"github.com/breakbricks/breakbricks/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresAPI         string
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the leaderboard",
	Long: `Display the top scores.

Reads the local database by default. Use --api to query a remote score
server, or --interactive for a scrollable leaderboard screen.

Examples:
  breakbricks scores
  breakbricks scores --limit 3
  breakbricks scores --api http://localhost:8080
  breakbricks scores --interactive`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", storage.DefaultTopLimit, "Number of entries to show")
	scoresCmd.Flags().StringVar(&flagScoresAPI, "api", "", "Score API base URL (e.g. http://localhost:8080)")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse the leaderboard interactively")
}

func runScores(_ *cobra.Command, _ []string) {
	var source scores.Submitter
	var store *storage.Store

	if flagScoresAPI != "" {
		source = scores.NewHTTPClient(flagScoresAPI, 0)
	} else {
		var err error
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		source = scores.NewLocal(store)
	}

	if flagScoresInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(source, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), scores.DefaultTimeout)
	defer cancel()

	entries, err := source.TopScores(ctx, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Break Bricks")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'breakbricks play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Player", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "------", "-----")

	for i, entry := range entries {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, entry.Username, entry.Score)
	}
}
