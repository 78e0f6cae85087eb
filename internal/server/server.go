// Package server exposes the score API over HTTP: submit a score,
// fetch the top of the leaderboard. Backed by the SQLite store.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/rs/cors"

	"github.com/breakbricks/breakbricks/internal/storage"
)

const (
	// MaxTopLimit caps how many leaderboard rows a single request returns.
	MaxTopLimit = 5

	// MaxUsernameLen bounds stored names. The game caps entry at 12 runes;
	// the API is more lenient for other clients.
	MaxUsernameLen = 32

	shutdownTimeout = 5 * time.Second
)

// Server is the HTTP score API.
type Server struct {
	store  *storage.Store
	logger *log.Logger
	http   *http.Server
}

// New creates a score API server listening on addr.
func New(addr string, store *storage.Store, logger *log.Logger) *Server {
	s := &Server{
		store:  store,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler builds the full middleware stack: CORS for browser clients,
// then request logging, then the routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /scores", s.handleGetScores)
	mux.HandleFunc("POST /scores", s.handlePostScores)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.logRequests(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("score API listening", "addr", s.http.Addr)
		errCh <- s.http.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down score API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}

// scoreJSON is a leaderboard row on the wire.
type scoreJSON struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// submitRequest is the POST /scores body.
type submitRequest struct {
	Username string `json:"username"`
	Score    *int   `json:"score"`
}

// submitResponse acknowledges a stored score.
type submitResponse struct {
	ID int64 `json:"id"`
}

// handleGetScores returns the top of the leaderboard.
// The limit query parameter defaults to MaxTopLimit and is capped at it.
func (s *Server) handleGetScores(w http.ResponseWriter, r *http.Request) {
	limit := MaxTopLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxTopLimit)
	}

	entries, err := s.store.TopScores(limit)
	if err != nil {
		s.logger.Error("top scores query failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "cannot load scores")
		return
	}

	// Empty leaderboard serializes as [], not null
	out := make([]scoreJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, scoreJSON{Username: e.Username, Score: e.Score})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handlePostScores validates and stores a submitted score.
func (s *Server) handlePostScores(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}

	username := strings.TrimSpace(req.Username)
	switch {
	case username == "":
		s.writeError(w, http.StatusBadRequest, "username is required")
		return
	case len([]rune(username)) > MaxUsernameLen:
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("username exceeds %d characters", MaxUsernameLen))
		return
	case req.Score == nil:
		s.writeError(w, http.StatusBadRequest, "score is required")
		return
	case *req.Score < 0:
		s.writeError(w, http.StatusBadRequest, "score must not be negative")
		return
	}

	id, err := s.store.SaveScore(username, *req.Score)
	if err != nil {
		s.logger.Error("score insert failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "cannot save score")
		return
	}

	s.logger.Info("score submitted", "username", username, "score", *req.Score, "id", id)
	s.writeJSON(w, http.StatusCreated, submitResponse{ID: id})
}

// errorJSON is the error body shape.
type errorJSON struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorJSON{Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

// statusRecorder captures the response code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// logRequests logs one line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
