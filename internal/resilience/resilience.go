// Package resilience wraps remote calls with retry, circuit breaking, bulkheading, rate limiting
// and fallback. Every wrapper takes a Call and returns a Call, so policies compose by nesting.
package resilience

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"github.com/ulule/limiter/v3"
	"golang.org/x/sync/semaphore"
)

// Call is a unit of remote work.
type Call[T any] func(ctx context.Context) (T, error)

// Policy decorates a Call.
type Policy[T any] func(Call[T]) Call[T]

var (
	// ErrBulkheadFull is returned when every bulkhead permit is taken.
	ErrBulkheadFull = errors.New("bulkhead is full")
	// ErrRateLimited is returned when the limiter rejects the call.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// Wrap applies policies to call; the first policy is the outermost.
func Wrap[T any](call Call[T], policies ...Policy[T]) Call[T] {
	for i := len(policies) - 1; i >= 0; i-- {
		call = policies[i](call)
	}
	return call
}

// RetryPolicy configures WithRetry.
type RetryPolicy struct {
	MaxAttempts     uint64 // Total attempts including the first; 0 retries until ctx is done
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64
	// Retryable decides whether an error is worth another attempt. Nil retries every error.
	Retryable func(error) bool
}

// DefaultRetryPolicy makes five attempts with exponential backoff starting at 500ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     5,
		InitialInterval: 500 * time.Millisecond,
		MaxInterval:     5 * time.Second,
		Multiplier:      2,
	}
}

func (p RetryPolicy) newBackOff(ctx context.Context) backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	if p.InitialInterval > 0 {
		b.InitialInterval = p.InitialInterval
	}
	if p.MaxInterval > 0 {
		b.MaxInterval = p.MaxInterval
	}
	if p.Multiplier > 0 {
		b.Multiplier = p.Multiplier
	}
	b.MaxElapsedTime = 0

	var bo backoff.BackOff = b
	if p.MaxAttempts > 0 {
		bo = backoff.WithMaxRetries(b, p.MaxAttempts-1)
	}
	return backoff.WithContext(bo, ctx)
}

// WithRetry re-invokes call with exponential backoff until it succeeds, the attempts are used up,
// the error is not retryable, or ctx is done. The last error is returned.
func WithRetry[T any](call Call[T], policy RetryPolicy) Call[T] {
	return func(ctx context.Context) (T, error) {
		return backoff.RetryWithData(func() (T, error) {
			v, err := call(ctx)
			if err != nil && policy.Retryable != nil && !policy.Retryable(err) {
				return v, backoff.Permanent(err)
			}
			return v, err
		}, policy.newBackOff(ctx))
	}
}

// NewCircuitBreaker opens after failureThreshold consecutive failures and probes again after openTimeout.
func NewCircuitBreaker(name string, failureThreshold uint32, openTimeout time.Duration) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failureThreshold
		},
	})
}

// WithCircuitBreaker routes call through cb. While open, calls fail fast with gobreaker.ErrOpenState.
func WithCircuitBreaker[T any](call Call[T], cb *gobreaker.CircuitBreaker) Call[T] {
	return func(ctx context.Context) (T, error) {
		out, err := cb.Execute(func() (interface{}, error) {
			v, err := call(ctx)
			return v, err
		})
		if err != nil {
			var zero T
			return zero, err
		}
		v, _ := out.(T)
		return v, nil
	}
}

// WithBulkhead limits concurrent executions to the permits of sem. Calls beyond that are rejected, not queued.
func WithBulkhead[T any](call Call[T], sem *semaphore.Weighted) Call[T] {
	return func(ctx context.Context) (T, error) {
		if !sem.TryAcquire(1) {
			var zero T
			return zero, ErrBulkheadFull
		}
		defer sem.Release(1)
		return call(ctx)
	}
}

// WithRateLimit rejects calls once l reports the limit for key as reached.
func WithRateLimit[T any](call Call[T], l *limiter.Limiter, key string) Call[T] {
	return func(ctx context.Context) (T, error) {
		lctx, err := l.Get(ctx, key)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("rate limiter: %w", err)
		}
		if lctx.Reached {
			var zero T
			return zero, ErrRateLimited
		}
		return call(ctx)
	}
}

// WithFallback turns call into one that cannot fail: any error is replaced by fallback's value.
func WithFallback[T any](call Call[T], fallback func(ctx context.Context, err error) T) func(ctx context.Context) T {
	return func(ctx context.Context) T {
		v, err := call(ctx)
		if err != nil {
			return fallback(ctx, err)
		}
		return v
	}
}
