package domain

import "github.com/shopspring/decimal"

// ConversionResult is the per-request outcome of converting a quantity between two currencies.
// It is built once by NewConversionResult and never modified afterwards.
type ConversionResult struct {
	ID                    int64           `json:"id"` // Copied from the exchange rate
	From                  string          `json:"from"`
	To                    string          `json:"to"`
	Quantity              decimal.Decimal `json:"quantity"`
	ConversionMultiple    decimal.Decimal `json:"conversionMultiple"`
	TotalCalculatedAmount decimal.Decimal `json:"totalCalculatedAmount"`
	ServedBy              string          `json:"servedBy"`
}

// NewConversionResult multiplies quantity by the rate's multiple and tags the result with the
// transport that fetched the rate.
func NewConversionResult(rate ExchangeRate, from, to string, quantity decimal.Decimal, transportTag string) ConversionResult {
	servedBy := rate.ServedBy
	if transportTag != "" {
		if servedBy == "" {
			servedBy = transportTag
		} else {
			servedBy = servedBy + " " + transportTag
		}
	}
	return ConversionResult{
		ID:                    rate.ID,
		From:                  from,
		To:                    to,
		Quantity:              quantity,
		ConversionMultiple:    rate.ConversionMultiple,
		TotalCalculatedAmount: quantity.Mul(rate.ConversionMultiple),
		ServedBy:              servedBy,
	}
}
