package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/go-resty/resty/v2"
)

// exchangeRoute is the exchange lookup declared once with named path parameters.
const exchangeRoute = "/exchange/from/{from}/to/{to}"

// TypedClient looks up rates through a declarative resty endpoint that decodes straight into
// the response type.
type TypedClient struct {
	client *resty.Client
}

var _ portssvc.ExchangeRateClient = (*TypedClient)(nil)

// NewTypedClient creates a TypedClient for the exchange service at baseURL.
func NewTypedClient(baseURL string, timeout time.Duration) *TypedClient {
	return &TypedClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

func (t *TypedClient) Lookup(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	resp, err := t.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{"from": fromCode, "to": toCode}).
		SetResult(&dto.ExchangeRateResponse{}).
		Get(exchangeRoute)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to reach exchange service", err)
	}

	if err := checkStatus(resp.StatusCode(), fromCode, toCode); err != nil {
		return nil, err
	}
	if len(resp.Body()) == 0 {
		return nil, apperrors.NewTransportError("exchange service returned an empty body", nil)
	}

	payload, ok := resp.Result().(*dto.ExchangeRateResponse)
	if !ok || payload == nil {
		return nil, apperrors.NewTransportError(fmt.Sprintf("unexpected exchange service payload (content type %q)", resp.Header().Get("Content-Type")), nil)
	}
	return validateRate(payload.ToDomain())
}
