package scores

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// Result is the outcome of one asynchronous submission.
type Result struct {
	Username string
	Score    int
	Err      error
}

// Async wraps a Submitter with fire-and-forget semantics. Submit returns
// immediately; the outcome arrives later on Results. The game loop polls
// the channel between ticks and shows the outcome as a notice, so a slow
// or dead score API never stalls gameplay.
type Async struct {
	inner   Submitter
	logger  *log.Logger
	timeout time.Duration
	results chan Result
}

// NewAsync creates an asynchronous wrapper around inner. A zero timeout
// uses DefaultTimeout.
func NewAsync(inner Submitter, logger *log.Logger, timeout time.Duration) *Async {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Async{
		inner:   inner,
		logger:  logger,
		timeout: timeout,
		// Buffered so a submission completing between polls never blocks
		results: make(chan Result, 8),
	}
}

// Submit starts the submission in the background and returns immediately.
func (a *Async) Submit(username string, score int) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
		defer cancel()

		err := a.inner.Submit(ctx, username, score)
		if err != nil {
			a.logger.Warn("score submission failed", "username", username, "score", score, "err", err)
		} else {
			a.logger.Debug("score submitted", "username", username, "score", score)
		}

		select {
		case a.results <- Result{Username: username, Score: score, Err: err}:
		default:
			// Nobody is draining; drop rather than leak the goroutine
		}
	}()
}

// Results delivers submission outcomes.
func (a *Async) Results() <-chan Result {
	return a.results
}
