package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_microservices/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
)

// ExchangeRateService provides business logic for exchange rates.
type ExchangeRateService struct {
	BaseService
	rateRepo   portsrepo.ExchangeRateRepositoryFacade
	instanceID string
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// NewExchangeRateService creates a new ExchangeRateService. instanceID is written into the
// ServedBy field of every rate this instance returns.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, instanceID string) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:   rateRepo,
		instanceID: instanceID,
	}
}

// normalizeCodes upper-cases both codes and rejects empty ones.
func normalizeCodes(fromCode, toCode string) (string, string, error) {
	fromCode = strings.ToUpper(strings.TrimSpace(fromCode))
	toCode = strings.ToUpper(strings.TrimSpace(toCode))
	if fromCode == "" || toCode == "" {
		return "", "", apperrors.NewValidationError("currency codes must not be empty")
	}
	return fromCode, toCode, nil
}

// GetExchangeRate retrieves the rate for a currency pair, stamped with this instance's identity.
// The stored rate is never modified; a copy is returned.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	fromCode, toCode, err := normalizeCodes(fromCode, toCode)
	if err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, fromCode, toCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Exchange rate not found", slog.String("from", fromCode), slog.String("to", toCode))
		} else {
			s.LogError(ctx, err, "Failed to look up exchange rate", slog.String("from", fromCode), slog.String("to", toCode))
		}
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	served := *rate
	served.ServedBy = s.instanceID
	return &served, nil
}

// ListExchangeRates returns every known rate, stamped with this instance's identity.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	served := make([]domain.ExchangeRate, len(rates))
	for i, r := range rates {
		r.ServedBy = s.instanceID
		served[i] = r
	}
	return served, nil
}
