package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultTimeout bounds a single API call.
const DefaultTimeout = 5 * time.Second

// HTTPClient talks to the remote score API.
type HTTPClient struct {
	baseURL string
	client  *http.Client
}

// NewHTTPClient creates a client for the score API at baseURL
// (e.g. http://localhost:8080). A zero timeout uses DefaultTimeout.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

// Submit posts a score. Any non-201 response is an error; the game
// treats it as a notice, never as fatal.
func (c *HTTPClient) Submit(ctx context.Context, username string, score int) error {
	body, err := json.Marshal(Entry{Username: username, Score: score})
	if err != nil {
		return fmt.Errorf("scores: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/scores", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("scores: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("scores: submit: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("scores: submit rejected: %s", apiError(resp))
	}
	return nil
}

// TopScores fetches the leaderboard.
func (c *HTTPClient) TopScores(ctx context.Context, limit int) ([]Entry, error) {
	url := fmt.Sprintf("%s/scores?limit=%d", c.baseURL, limit)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("scores: build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("scores: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("scores: fetch rejected: %s", apiError(resp))
	}

	var entries []Entry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("scores: decode response: %w", err)
	}
	return entries, nil
}

// apiError extracts the error message from an API response, falling
// back to the HTTP status.
func apiError(resp *http.Response) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&e); err == nil && e.Error != "" {
		return e.Error
	}
	return resp.Status
}
