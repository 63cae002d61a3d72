package services

import (
	"context"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateClient fetches an exchange rate from the remote exchange service.
// Implementations differ only in transport.
type ExchangeRateClient interface {
	Lookup(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error)
}

// ConversionSvc converts a quantity between two currencies.
type ConversionSvc interface {
	Convert(ctx context.Context, fromCode, toCode string, quantity decimal.Decimal) (*domain.ConversionResult, error)
}
