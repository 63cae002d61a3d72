package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDummyDown = errors.New("dial tcp: connection refused")

func failingFetch(calls *int32) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		atomic.AddInt32(calls, 1)
		return "", errDummyDown
	}
}

func TestSampleAPIService_ReturnsBodyOnSuccess(t *testing.T) {
	svc, err := services.NewSampleAPIService(func(ctx context.Context) (string, error) {
		return "dummy body", nil
	}, services.SampleAPIPolicy{Mode: config.ResilienceRetry}, nil)
	require.NoError(t, err)

	assert.Equal(t, "dummy body", svc.CallWithResilience(context.Background()))
}

func TestSampleAPIService_RetryThenFallback(t *testing.T) {
	var calls int32
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "sample_api_fallbacks_total"})
	registry := prometheus.NewRegistry()
	registry.MustRegister(counter)
	svc, err := services.NewSampleAPIService(failingFetch(&calls), services.SampleAPIPolicy{
		Mode:                 config.ResilienceRetry,
		RetryMaxAttempts:     3,
		RetryInitialInterval: time.Millisecond,
	}, counter)
	require.NoError(t, err)

	assert.Equal(t, services.FallbackResponse, svc.CallWithResilience(context.Background()))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
	families, err := registry.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, float64(1), families[0].GetMetric()[0].GetCounter().GetValue())
}

func TestSampleAPIService_CircuitBreakerStopsCallingDownstream(t *testing.T) {
	var calls int32
	svc, err := services.NewSampleAPIService(failingFetch(&calls), services.SampleAPIPolicy{
		Mode:                    config.ResilienceCircuitBreaker,
		BreakerFailureThreshold: 2,
		BreakerOpenTimeout:      time.Minute,
	}, nil)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		assert.Equal(t, services.FallbackResponse, svc.CallWithResilience(context.Background()))
	}
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestSampleAPIService_RateLimiterFallsBackOverLimit(t *testing.T) {
	var calls int32
	svc, err := services.NewSampleAPIService(func(ctx context.Context) (string, error) {
		atomic.AddInt32(&calls, 1)
		return "ok", nil
	}, services.SampleAPIPolicy{Mode: config.ResilienceRateLimiter, RateLimit: "1-M"}, nil)
	require.NoError(t, err)

	assert.Equal(t, "ok", svc.CallWithResilience(context.Background()))
	assert.Equal(t, services.FallbackResponse, svc.CallWithResilience(context.Background()))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSampleAPIService_BulkheadFallsBackWhenSaturated(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	svc, err := services.NewSampleAPIService(func(ctx context.Context) (string, error) {
		entered <- struct{}{}
		<-release
		return "slow", nil
	}, services.SampleAPIPolicy{Mode: config.ResilienceBulkhead, BulkheadMaxConcurrent: 1}, nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(1)
	var first string
	go func() {
		defer wg.Done()
		first = svc.CallWithResilience(context.Background())
	}()
	<-entered

	assert.Equal(t, services.FallbackResponse, svc.CallWithResilience(context.Background()))

	close(release)
	wg.Wait()
	assert.Equal(t, "slow", first)
}

func TestSampleAPIService_RejectsUnknownMode(t *testing.T) {
	_, err := services.NewSampleAPIService(failingFetch(new(int32)), services.SampleAPIPolicy{Mode: "hedging"}, nil)
	assert.Error(t, err)
}

func TestSampleAPIService_RejectsBadRate(t *testing.T) {
	_, err := services.NewSampleAPIService(failingFetch(new(int32)),
		services.SampleAPIPolicy{Mode: config.ResilienceRateLimiter, RateLimit: "fast"}, nil)
	assert.Error(t, err)
}
