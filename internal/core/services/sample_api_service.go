package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/resilience"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	"golang.org/x/sync/semaphore"
)

// FallbackResponse is returned by the sample API whenever the protected call fails.
const FallbackResponse = "fallback-response"

// SampleAPIPolicy selects and tunes the single policy guarding the sample API call.
type SampleAPIPolicy struct {
	Mode string // One of the config.Resilience* modes

	RetryMaxAttempts     uint64
	RetryInitialInterval time.Duration

	BreakerFailureThreshold uint32
	BreakerOpenTimeout      time.Duration

	BulkheadMaxConcurrent int64

	RateLimit string // ulule/limiter formatted rate
}

func (p SampleAPIPolicy) withDefaults() SampleAPIPolicy {
	if p.Mode == "" {
		p.Mode = config.ResilienceRetry
	}
	if p.RetryMaxAttempts == 0 {
		p.RetryMaxAttempts = 5
	}
	if p.RetryInitialInterval <= 0 {
		p.RetryInitialInterval = time.Second
	}
	if p.BreakerFailureThreshold == 0 {
		p.BreakerFailureThreshold = 5
	}
	if p.BreakerOpenTimeout <= 0 {
		p.BreakerOpenTimeout = 10 * time.Second
	}
	if p.BulkheadMaxConcurrent <= 0 {
		p.BulkheadMaxConcurrent = 10
	}
	if p.RateLimit == "" {
		p.RateLimit = "10-S"
	}
	return p
}

// SampleAPIService calls a dummy downstream endpoint through one resilience policy and a fallback.
type SampleAPIService struct {
	BaseService
	call      func(ctx context.Context) string
	fallbacks prometheus.Counter
}

var _ portssvc.SampleAPISvc = (*SampleAPIService)(nil)

// NewSampleAPIService wraps fetch with the policy named by policy.Mode and then with the fallback.
// fallbacks may be nil.
func NewSampleAPIService(fetch resilience.Call[string], policy SampleAPIPolicy, fallbacks prometheus.Counter) (*SampleAPIService, error) {
	guarded, err := applyPolicy(fetch, policy.withDefaults())
	if err != nil {
		return nil, err
	}
	s := &SampleAPIService{fallbacks: fallbacks}
	s.call = resilience.WithFallback(guarded, s.fallback)
	return s, nil
}

func applyPolicy(fetch resilience.Call[string], p SampleAPIPolicy) (resilience.Call[string], error) {
	switch p.Mode {
	case config.ResilienceRetry:
		retry := resilience.DefaultRetryPolicy()
		retry.MaxAttempts = p.RetryMaxAttempts
		retry.InitialInterval = p.RetryInitialInterval
		return resilience.WithRetry(fetch, retry), nil
	case config.ResilienceCircuitBreaker:
		cb := resilience.NewCircuitBreaker("sample-api", p.BreakerFailureThreshold, p.BreakerOpenTimeout)
		return resilience.WithCircuitBreaker(fetch, cb), nil
	case config.ResilienceRateLimiter:
		rate, err := limiter.NewRateFromFormatted(p.RateLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid sample API rate limit %q: %w", p.RateLimit, err)
		}
		return resilience.WithRateLimit(fetch, limiter.New(memory.NewStore(), rate), "sample-api"), nil
	case config.ResilienceBulkhead:
		return resilience.WithBulkhead(fetch, semaphore.NewWeighted(p.BulkheadMaxConcurrent)), nil
	default:
		return nil, fmt.Errorf("unknown resilience mode %q", p.Mode)
	}
}

func (s *SampleAPIService) fallback(ctx context.Context, err error) string {
	s.LogWarn(ctx, "Sample API call failed, serving fallback", slog.String("error", err.Error()))
	if s.fallbacks != nil {
		s.fallbacks.Inc()
	}
	return FallbackResponse
}

// CallWithResilience returns the downstream body, or FallbackResponse when the call fails.
func (s *SampleAPIService) CallWithResilience(ctx context.Context) string {
	s.LogDebug(ctx, "Sample API call received")
	return s.call(ctx)
}
