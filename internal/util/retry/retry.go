package retry

import (
	"context"
	"fmt"
	"time"
)

// Policy holds retry configuration.
type Policy struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64

	// RetryIf reports whether err is worth another attempt. Nil retries every error.
	RetryIf func(err error) bool

	// OnRetry is called before sleeping with the attempt number (1-based) and the error.
	OnRetry func(attempt int, err error)
}

// Option is a functional option for a retry Policy.
type Option func(*Policy)

// DefaultPolicy returns the policy used when no options are given.
func DefaultPolicy() Policy {
	return Policy{
		MaxRetries:   3,
		InitialDelay: 200 * time.Millisecond,
		MaxDelay:     5 * time.Second,
		Multiplier:   2.0,
	}
}

// Do executes operation, retrying with exponential backoff while the policy
// allows it. The first error the policy rejects is returned unwrapped so
// callers can still match it with errors.As.
func Do(ctx context.Context, operation func(ctx context.Context) error, opts ...Option) error {
	policy := DefaultPolicy()
	for _, opt := range opts {
		opt(&policy)
	}

	delay := policy.InitialDelay
	var lastErr error

	for attempt := 0; attempt <= policy.MaxRetries; attempt++ {
		err := operation(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if policy.RetryIf != nil && !policy.RetryIf(err) {
			return err
		}
		if attempt == policy.MaxRetries {
			break
		}

		if policy.OnRetry != nil {
			policy.OnRetry(attempt+1, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("context cancelled after %d attempts: %w", attempt+1, ctx.Err())
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * policy.Multiplier)
			if policy.MaxDelay > 0 && delay > policy.MaxDelay {
				delay = policy.MaxDelay
			}
		}
	}

	if policy.MaxRetries == 0 {
		return lastErr
	}
	return fmt.Errorf("operation failed after %d attempts: %w", policy.MaxRetries+1, lastErr)
}

// WithMaxRetries sets the maximum number of retries after the first attempt.
func WithMaxRetries(n int) Option {
	return func(p *Policy) {
		if n >= 0 {
			p.MaxRetries = n
		}
	}
}

// WithInitialDelay sets the initial delay between retries.
func WithInitialDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.InitialDelay = d
	}
}

// WithMaxDelay sets the maximum delay between retries.
func WithMaxDelay(d time.Duration) Option {
	return func(p *Policy) {
		p.MaxDelay = d
	}
}

// WithRetryIf restricts retries to errors accepted by fn.
func WithRetryIf(fn func(err error) bool) Option {
	return func(p *Policy) {
		p.RetryIf = fn
	}
}

// WithOnRetry registers a hook called before every retry.
func WithOnRetry(fn func(attempt int, err error)) Option {
	return func(p *Policy) {
		p.OnRetry = fn
	}
}
