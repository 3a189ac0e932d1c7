package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"
)

// Policy bounds retries of transient generation failures.
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// DefaultPolicy matches the retry budget of the batch pipeline: five total
// attempts, exponential backoff capped at 30s.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		MaxDelay:    30 * time.Second,
	}
}

// Backoff returns the wait before retry n (0-indexed) with jitter.
func (p Policy) Backoff(attempt int) time.Duration {
	base := p.BaseDelay << uint(attempt)
	if base > p.MaxDelay || base <= 0 {
		base = p.MaxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(base)/2 + 1))
	return base + jitter
}

// Retrier wraps a Client with the retry policy. Backoff state is scoped to
// the call; the Retrier itself is stateless and safe for concurrent use.
type Retrier struct {
	Client Client
	Policy Policy
	Log    *slog.Logger
}

// Generate calls the wrapped client, retrying transient failures. It returns
// the completion text and the number of retries that were needed.
func (r *Retrier) Generate(ctx context.Context, req Request) (string, int, error) {
	var lastErr error
	for attempt := 0; attempt < r.Policy.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", attempt - 1, ctx.Err()
			case <-time.After(r.Policy.Backoff(attempt - 1)):
			}
		}

		out, err := r.Client.Generate(ctx, req)
		if err == nil {
			return out, attempt, nil
		}
		if !IsTransient(err) {
			return "", attempt, err
		}
		lastErr = err
		if r.Log != nil {
			r.Log.Warn("transient generation failure", "attempt", attempt+1, "max_attempts", r.Policy.MaxAttempts, "error", err)
		}
	}
	return "", r.Policy.MaxAttempts - 1, fmt.Errorf("generation failed after %d attempts: %w", r.Policy.MaxAttempts, lastErr)
}
