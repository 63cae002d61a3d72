package domain

import "github.com/shopspring/decimal"

// ExchangeRate is the conversion multiple for a currency pair, as served by one exchange instance.
type ExchangeRate struct {
	ID                 int64           `json:"id"`
	From               string          `json:"from"`
	To                 string          `json:"to"`
	ConversionMultiple decimal.Decimal `json:"conversionMultiple"`
	ServedBy           string          `json:"servedBy"` // Identity of the instance that answered
}

// PairKey identifies an exchange rate by its currency pair.
type PairKey struct {
	From string
	To   string
}

// Key returns the pair key of the rate.
func (r ExchangeRate) Key() PairKey {
	return PairKey{From: r.From, To: r.To}
}

// IsValid reports whether the rate has both codes and a strictly positive multiple.
func (r ExchangeRate) IsValid() bool {
	return r.From != "" && r.To != "" && r.ConversionMultiple.GreaterThan(decimal.Zero)
}
