package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// Transport tags appended to ServedBy so callers can tell the strategies apart.
const (
	RestClientTag  = "rest-client"
	TypedClientTag = "typed-client"
)

// ConversionService converts quantities using rates fetched through an ExchangeRateClient.
type ConversionService struct {
	BaseService
	client      portssvc.ExchangeRateClient
	strategyTag string
}

var _ portssvc.ConversionSvc = (*ConversionService)(nil)

// NewConversionService creates a ConversionService bound to one transport strategy.
func NewConversionService(client portssvc.ExchangeRateClient, strategyTag string) *ConversionService {
	return &ConversionService{client: client, strategyTag: strategyTag}
}

// Convert fetches the rate for the pair and multiplies quantity by it. A failed lookup is
// returned as is; no partial result is produced.
func (s *ConversionService) Convert(ctx context.Context, fromCode, toCode string, quantity decimal.Decimal) (*domain.ConversionResult, error) {
	fromCode, toCode, err := normalizeCodes(fromCode, toCode)
	if err != nil {
		return nil, err
	}
	if quantity.IsNegative() {
		return nil, apperrors.NewValidationError("quantity must not be negative")
	}

	rate, err := s.client.Lookup(ctx, fromCode, toCode)
	if err != nil {
		s.LogWarn(ctx, "Exchange rate lookup failed",
			slog.String("from", fromCode),
			slog.String("to", toCode),
			slog.String("strategy", s.strategyTag),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch exchange rate via %s: %w", s.strategyTag, err)
	}

	result := domain.NewConversionResult(*rate, fromCode, toCode, quantity, s.strategyTag)
	return &result, nil
}
