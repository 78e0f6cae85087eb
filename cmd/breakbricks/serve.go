package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/breakbricks/breakbricks/internal/server"
	"github.com/breakbricks/breakbricks/internal/storage"
)

var flagServeAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the score HTTP API",
	Long: `Start the HTTP server that accepts score submissions and serves
the leaderboard.

Endpoints:
  GET  /scores        - Top scores (optional ?limit=N, capped at 5)
  POST /scores        - Submit a score {"username": ..., "score": ...}

Examples:
  breakbricks serve                      # Listen on :8080
  breakbricks serve --addr :9000         # Listen on port 9000
  breakbricks serve --db ./scores.db     # Use specific database`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "breakbricks-api",
	})

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(flagServeAddr, store, logger)

	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
