// Package scores abstracts where finished runs send their score: a
// remote score API, the local SQLite store, or nowhere. The game itself
// only emits a submit event; a Submitter does the I/O.
package scores

import (
	"context"

	"github.com/breakbricks/breakbricks/internal/storage"
)

// Entry is one leaderboard row.
type Entry struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// Submitter stores scores and serves the leaderboard.
type Submitter interface {
	Submit(ctx context.Context, username string, score int) error
	TopScores(ctx context.Context, limit int) ([]Entry, error)
}

// Local writes scores straight into the SQLite store.
type Local struct {
	store *storage.Store
}

// NewLocal creates a store-backed submitter.
func NewLocal(store *storage.Store) *Local {
	return &Local{store: store}
}

// Submit records the score locally.
func (l *Local) Submit(_ context.Context, username string, score int) error {
	_, err := l.store.SaveScore(username, score)
	return err
}

// TopScores reads the local leaderboard.
func (l *Local) TopScores(_ context.Context, limit int) ([]Entry, error) {
	rows, err := l.store.TopScores(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, Entry{Username: r.Username, Score: r.Score})
	}
	return entries, nil
}

// Noop discards scores. Used for offline play.
type Noop struct{}

// Submit does nothing.
func (Noop) Submit(context.Context, string, int) error {
	return nil
}

// TopScores returns an empty leaderboard.
func (Noop) TopScores(context.Context, int) ([]Entry, error) {
	return nil, nil
}
