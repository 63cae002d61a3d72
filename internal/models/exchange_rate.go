package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the currency_exchange table.
type ExchangeRate struct {
	ID                 int64           `json:"id"`                 // Primary Key
	CurrencyFrom       string          `json:"currencyFrom"`       // Upper-case ISO code
	CurrencyTo         string          `json:"currencyTo"`         // Upper-case ISO code
	ConversionMultiple decimal.Decimal `json:"conversionMultiple"` // NUMERIC(19,2), always > 0
}
