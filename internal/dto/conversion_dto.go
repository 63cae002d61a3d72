package dto

import (
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionResponse defines the structure returned by the conversion endpoints.
type ConversionResponse struct {
	ID                    int64           `json:"id"`
	From                  string          `json:"from"`
	To                    string          `json:"to"`
	Quantity              decimal.Decimal `json:"quantity"`
	ConversionMultiple    decimal.Decimal `json:"conversionMultiple"`
	TotalCalculatedAmount decimal.Decimal `json:"totalCalculatedAmount"`
	ServedBy              string          `json:"servedBy"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(result *domain.ConversionResult) ConversionResponse {
	return ConversionResponse{
		ID:                    result.ID,
		From:                  result.From,
		To:                    result.To,
		Quantity:              result.Quantity,
		ConversionMultiple:    result.ConversionMultiple,
		TotalCalculatedAmount: result.TotalCalculatedAmount,
		ServedBy:              result.ServedBy,
	}
}
