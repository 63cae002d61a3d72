package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateTable is a read-only exchange rate table keyed by currency pair.
// It is built once and safe for concurrent readers.
type ExchangeRateTable struct {
	rates map[domain.PairKey]domain.ExchangeRate
}

// DefaultExchangeRates returns the seed rows used when no rates are configured.
func DefaultExchangeRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{ID: 10001, From: "USD", To: "INR", ConversionMultiple: decimal.NewFromInt(65)},
		{ID: 10002, From: "EUR", To: "INR", ConversionMultiple: decimal.NewFromInt(75)},
		{ID: 10003, From: "AUD", To: "INR", ConversionMultiple: decimal.NewFromInt(25)},
	}
}

// NewExchangeRateTable validates rates and builds the table.
// Every rate needs both codes and a positive multiple; pairs must be unique.
func NewExchangeRateTable(rates []domain.ExchangeRate) (*ExchangeRateTable, error) {
	table := &ExchangeRateTable{rates: make(map[domain.PairKey]domain.ExchangeRate, len(rates))}
	for _, rate := range rates {
		rate.From = strings.ToUpper(rate.From)
		rate.To = strings.ToUpper(rate.To)
		rate.ServedBy = ""
		if !rate.IsValid() {
			return nil, fmt.Errorf("%w: invalid exchange rate %d (%s to %s, multiple %s)",
				apperrors.ErrValidation, rate.ID, rate.From, rate.To, rate.ConversionMultiple)
		}
		if _, exists := table.rates[rate.Key()]; exists {
			return nil, fmt.Errorf("%w: exchange rate for %s to %s", apperrors.ErrDuplicate, rate.From, rate.To)
		}
		table.rates[rate.Key()] = rate
	}
	return table, nil
}

// FindExchangeRate returns a copy of the stored rate for the pair.
func (t *ExchangeRateTable) FindExchangeRate(_ context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.ExchangeRate, error) {
	key := domain.PairKey{From: strings.ToUpper(fromCurrencyCode), To: strings.ToUpper(toCurrencyCode)}
	rate, ok := t.rates[key]
	if !ok {
		return nil, apperrors.NewNotFoundError("unable to find data for " + key.From + " to " + key.To)
	}
	return &rate, nil
}

// ListExchangeRates returns all rates ordered by ID.
func (t *ExchangeRateTable) ListExchangeRates(_ context.Context) ([]domain.ExchangeRate, error) {
	rates := make([]domain.ExchangeRate, 0, len(t.rates))
	for _, rate := range t.rates {
		rates = append(rates, rate)
	}
	sort.Slice(rates, func(i, j int) bool { return rates[i].ID < rates[j].ID })
	return rates, nil
}
