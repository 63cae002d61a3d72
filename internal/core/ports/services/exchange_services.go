package services

import (
	"context"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the exchange rate for a currency pair, stamped with the serving instance.
	GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ExchangeRateListerSvc lists the rates known to this instance.
type ExchangeRateListerSvc interface {
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateListerSvc
}

// SampleAPISvc is the resilience demo: an outbound call that degrades to a fixed value.
type SampleAPISvc interface {
	CallWithResilience(ctx context.Context) string
}
