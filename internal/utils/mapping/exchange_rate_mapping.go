package mapping

import (
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:                 d.ID,
		CurrencyFrom:       d.From,
		CurrencyTo:         d.To,
		ConversionMultiple: d.ConversionMultiple,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate.
// ServedBy is left empty; the service stamps it per request.
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:                 m.ID,
		From:               m.CurrencyFrom,
		To:                 m.CurrencyTo,
		ConversionMultiple: m.ConversionMultiple,
	}
}
