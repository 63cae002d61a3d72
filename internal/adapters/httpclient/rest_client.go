// Package httpclient holds the outbound HTTP transports: two interchangeable exchange rate
// clients and the fetcher behind the sample API.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
)

// exchangePathTemplate is the exchange service's lookup route.
const exchangePathTemplate = "/exchange/from/%s/to/%s"

// RestClient looks up rates with a hand-built URL over net/http.
type RestClient struct {
	baseURL string
	client  *http.Client
}

var _ portssvc.ExchangeRateClient = (*RestClient)(nil)

// NewRestClient creates a RestClient for the exchange service at baseURL.
func NewRestClient(baseURL string, timeout time.Duration) *RestClient {
	return &RestClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (r *RestClient) Lookup(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	endpoint := r.baseURL + fmt.Sprintf(exchangePathTemplate, url.PathEscape(fromCode), url.PathEscape(toCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to reach exchange service", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError("failed to read exchange service response", err)
	}

	if err := checkStatus(resp.StatusCode, fromCode, toCode); err != nil {
		return nil, err
	}
	return decodeRate(body)
}

// checkStatus maps the exchange service's status code onto the error taxonomy.
func checkStatus(status int, fromCode, toCode string) error {
	switch {
	case status == http.StatusNotFound:
		return apperrors.NewNotFoundError(fmt.Sprintf("unable to find data for %s to %s", fromCode, toCode))
	case status < 200 || status > 299:
		return apperrors.NewTransportError(fmt.Sprintf("exchange service returned status: %d", status), nil)
	}
	return nil
}

func decodeRate(body []byte) (*domain.ExchangeRate, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, apperrors.NewTransportError("exchange service returned an empty body", nil)
	}
	var payload dto.ExchangeRateResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apperrors.NewTransportError("failed to parse exchange service response", err)
	}
	return validateRate(payload.ToDomain())
}

func validateRate(rate *domain.ExchangeRate) (*domain.ExchangeRate, error) {
	if !rate.ConversionMultiple.IsPositive() {
		return nil, apperrors.NewTransportError("exchange service returned a non-positive conversion multiple", nil)
	}
	return rate, nil
}
