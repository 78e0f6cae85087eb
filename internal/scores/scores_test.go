package scores

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakbricks/breakbricks/internal/storage"
)

func TestLocalSubmitterRoundTrip(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	local := NewLocal(store)
	ctx := context.Background()

	require.NoError(t, local.Submit(ctx, "alice", 300))
	require.NoError(t, local.Submit(ctx, "bob", 100))

	entries, err := local.TopScores(ctx, 5)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{Username: "alice", Score: 300}, entries[0])
}

func TestNoopDiscards(t *testing.T) {
	var n Noop
	ctx := context.Background()

	require.NoError(t, n.Submit(ctx, "alice", 100))
	entries, err := n.TopScores(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestHTTPClientSubmit(t *testing.T) {
	var gotPath, gotBody string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":1}`))
	}))
	defer ts.Close()

	c := NewHTTPClient(ts.URL, 0)
	err := c.Submit(context.Background(), "alice", 420)
	require.NoError(t, err)
	assert.Equal(t, "/scores", gotPath)
	assert.JSONEq(t, `{"username":"alice","score":420}`, gotBody)
}

func TestHTTPClientSubmitRejected(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"username is required"}`))
	}))
	defer ts.Close()

	err := NewHTTPClient(ts.URL, 0).Submit(context.Background(), "", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username is required")
}

func TestHTTPClientTopScores(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "3", r.URL.Query().Get("limit"))
		w.Write([]byte(`[{"username":"alice","score":200},{"username":"bob","score":100}]`))
	}))
	defer ts.Close()

	entries, err := NewHTTPClient(ts.URL, 0).TopScores(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
}

func TestHTTPClientUnreachable(t *testing.T) {
	c := NewHTTPClient("http://127.0.0.1:1", 200*time.Millisecond)

	err := c.Submit(context.Background(), "alice", 1)
	assert.Error(t, err)

	_, err = c.TopScores(context.Background(), 5)
	assert.Error(t, err)
}

// slowSubmitter blocks Submit until released, recording calls.
type slowSubmitter struct {
	release chan struct{}
	err     error
}

func (s *slowSubmitter) Submit(ctx context.Context, username string, score int) error {
	select {
	case <-s.release:
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.err
}

func (s *slowSubmitter) TopScores(context.Context, int) ([]Entry, error) {
	return nil, nil
}

func TestAsyncSubmitDoesNotBlock(t *testing.T) {
	slow := &slowSubmitter{release: make(chan struct{})}
	a := NewAsync(slow, log.New(io.Discard), time.Second)

	done := make(chan struct{})
	go func() {
		a.Submit("alice", 100)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked on a slow backend")
	}

	close(slow.release)
	select {
	case res := <-a.Results():
		assert.NoError(t, res.Err)
		assert.Equal(t, "alice", res.Username)
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
}

func TestAsyncReportsFailure(t *testing.T) {
	failing := &slowSubmitter{release: make(chan struct{}), err: errors.New("boom")}
	close(failing.release)
	a := NewAsync(failing, log.New(io.Discard), time.Second)

	a.Submit("alice", 100)
	select {
	case res := <-a.Results():
		require.Error(t, res.Err)
		assert.Equal(t, 100, res.Score)
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
}

func TestAsyncTimesOut(t *testing.T) {
	stuck := &slowSubmitter{release: make(chan struct{})} // Never released
	a := NewAsync(stuck, log.New(io.Discard), 50*time.Millisecond)

	a.Submit("alice", 100)
	select {
	case res := <-a.Results():
		require.Error(t, res.Err)
		assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("no result delivered")
	}
}
