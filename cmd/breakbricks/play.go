package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/breakbricks/breakbricks/internal/breakout"
	"github.com/breakbricks/breakbricks/internal/config"
	"github.com/breakbricks/breakbricks/internal/core"
	"github.com/breakbricks/breakbricks/internal/platform/tui"
	"github.com/breakbricks/breakbricks/internal/scores"
	"github.com/breakbricks/breakbricks/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagOffline    bool
	flagAPI        string
	flagCheats     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the current terminal.

Controls:
  A/D, Arrows  - Move paddle
  Space        - Launch ball
  P            - Pause
  M/Esc        - Back to menu
  Q/Ctrl+C     - Quit

Scores go to the local database by default. Use --api to submit to a
remote score server instead, or --offline to skip scoring entirely.

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - The default balance
  hard   - Fewer lives, narrower paddle, faster ball

Examples:
  breakbricks play
  breakbricks play --difficulty easy
  breakbricks play --api http://localhost:8080
  breakbricks play --config ./my-breakbricks.yaml
  breakbricks play --offline --cheats`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagOffline, "offline", false, "Do not record scores anywhere")
	playCmd.Flags().StringVar(&flagAPI, "api", "", "Score API base URL (e.g. http://localhost:8080)")
	playCmd.Flags().BoolVar(&flagCheats, "cheats", false, "Enable cheat keys")
}

func runPlay(_ *cobra.Command, _ []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if flagDifficulty != "" {
		preset, ok := config.ParsePreset(flagDifficulty)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (easy, normal, hard)\n", flagDifficulty)
			os.Exit(1)
		}
		config.ApplyPreset(&gameCfg, preset)
	}

	// Get terminal size for the initial field layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game := breakout.NewWithConfig(gameCfg)
	game.SetCheats(flagCheats || gameCfg.Gameplay.Cheats)

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "breakbricks"})

	submitter, store, err := buildSubmitter(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		// Continue without scoring - game still works
		submitter = nil
	}

	runErr := tui.Run(game, submitter, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// buildSubmitter picks where finished runs send their score, per flags:
// --offline discards, --api posts to a remote server, otherwise the
// local database. The returned store is non-nil only in the local case
// and must be closed by the caller.
func buildSubmitter(logger *log.Logger) (*scores.Async, *storage.Store, error) {
	if flagOffline {
		return scores.NewAsync(scores.Noop{}, logger, 0), nil, nil
	}

	if flagAPI != "" {
		client := scores.NewHTTPClient(flagAPI, 0)
		return scores.NewAsync(client, logger, 0), nil, nil
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open scores database: %w", err)
	}
	return scores.NewAsync(scores.NewLocal(store), logger, 0), store, nil
}
