package dto

import (
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
// The conversion service decodes the same structure from the exchange service.
type ExchangeRateResponse struct {
	ID                 int64           `json:"id"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	ConversionMultiple decimal.Decimal `json:"conversionMultiple"`
	ServedBy           string          `json:"servedBy"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:                 rate.ID,
		From:               rate.From,
		To:                 rate.To,
		ConversionMultiple: rate.ConversionMultiple,
		ServedBy:           rate.ServedBy,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}

// ToDomain converts the wire representation back into a domain.ExchangeRate.
func (r ExchangeRateResponse) ToDomain() *domain.ExchangeRate {
	return &domain.ExchangeRate{
		ID:                 r.ID,
		From:               r.From,
		To:                 r.To,
		ConversionMultiple: r.ConversionMultiple,
		ServedBy:           r.ServedBy,
	}
}
