package resilience

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/semaphore"
)

var errBoom = errors.New("boom")

func fastRetry(attempts uint64) RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     attempts,
		InitialInterval: time.Millisecond,
		MaxInterval:     2 * time.Millisecond,
		Multiplier:      1.5,
	}
}

func countingCall(failures int32, calls *int32) Call[string] {
	return func(ctx context.Context) (string, error) {
		n := atomic.AddInt32(calls, 1)
		if n <= failures {
			return "", errBoom
		}
		return "ok", nil
	}
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	var calls int32
	call := WithRetry(countingCall(2, &calls), fastRetry(5))

	out, err := call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestWithRetry_StopsAtMaxAttempts(t *testing.T) {
	var calls int32
	call := WithRetry(countingCall(100, &calls), fastRetry(5))

	_, err := call(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(5), atomic.LoadInt32(&calls))
}

func TestWithRetry_NonRetryableErrorStopsImmediately(t *testing.T) {
	var calls int32
	policy := fastRetry(5)
	policy.Retryable = func(err error) bool { return !errors.Is(err, errBoom) }
	call := WithRetry(countingCall(100, &calls), policy)

	_, err := call(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestWithRetry_HonoursContextCancellation(t *testing.T) {
	var calls int32
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	call := WithRetry(countingCall(100, &calls), fastRetry(0))
	_, err := call(ctx)
	assert.Error(t, err)
	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(1))
}

func TestWithCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	var calls int32
	cb := NewCircuitBreaker("sample-api", 3, time.Minute)
	call := WithCircuitBreaker(countingCall(100, &calls), cb)

	for i := 0; i < 3; i++ {
		_, err := call(context.Background())
		assert.ErrorIs(t, err, errBoom)
	}
	assert.Equal(t, gobreaker.StateOpen, cb.State())

	_, err := call(context.Background())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls), "open breaker must not reach the remote")
}

func TestWithCircuitBreaker_PassesValueThrough(t *testing.T) {
	var calls int32
	call := WithCircuitBreaker(countingCall(0, &calls), NewCircuitBreaker("ok", 3, time.Minute))

	out, err := call(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestWithBulkhead_RejectsWhenFull(t *testing.T) {
	sem := semaphore.NewWeighted(1)
	release := make(chan struct{})
	entered := make(chan struct{})

	blocking := WithBulkhead(Call[string](func(ctx context.Context) (string, error) {
		close(entered)
		<-release
		return "slow", nil
	}), sem)

	done := make(chan string)
	go func() {
		out, _ := blocking(context.Background())
		done <- out
	}()
	<-entered

	var calls int32
	_, err := WithBulkhead(countingCall(0, &calls), sem)(context.Background())
	assert.ErrorIs(t, err, ErrBulkheadFull)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))

	close(release)
	assert.Equal(t, "slow", <-done)

	out, err := WithBulkhead(countingCall(0, &calls), sem)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
}

func TestWithRateLimit_RejectsOverLimit(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)
	l := limiter.New(memory.NewStore(), rate)

	var calls int32
	call := WithRateLimit(countingCall(0, &calls), l, "sample-api")

	for i := 0; i < 2; i++ {
		_, err := call(context.Background())
		require.NoError(t, err)
	}
	_, err = call(context.Background())
	assert.ErrorIs(t, err, ErrRateLimited)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestWithFallback(t *testing.T) {
	fallback := func(ctx context.Context, err error) string { return "fallback-response" }

	var calls int32
	assert.Equal(t, "fallback-response", WithFallback(countingCall(100, &calls), fallback)(context.Background()))
	assert.Equal(t, "ok", WithFallback(countingCall(0, &calls), fallback)(context.Background()))
}

func TestWrap_OrdersPoliciesOutermostFirst(t *testing.T) {
	var trace []string
	tag := func(name string) Policy[string] {
		return func(next Call[string]) Call[string] {
			return func(ctx context.Context) (string, error) {
				trace = append(trace, name)
				return next(ctx)
			}
		}
	}
	var calls int32
	_, err := Wrap(countingCall(0, &calls), tag("outer"), tag("inner"))(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"outer", "inner"}, trace)
}
