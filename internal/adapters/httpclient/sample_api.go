package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/resilience"
	"github.com/go-resty/resty/v2"
)

// NewSampleAPIFetcher returns a Call that GETs url and yields the body as text.
// Any transport failure or non-2xx status is an error, leaving recovery to the caller's policies.
func NewSampleAPIFetcher(url string, timeout time.Duration) resilience.Call[string] {
	client := resty.New().SetTimeout(timeout)
	return func(ctx context.Context) (string, error) {
		resp, err := client.R().SetContext(ctx).Get(url)
		if err != nil {
			return "", apperrors.NewTransportError("sample API unreachable", err)
		}
		if !resp.IsSuccess() {
			return "", apperrors.NewTransportError(fmt.Sprintf("sample API returned status: %d", resp.StatusCode()), nil)
		}
		return resp.String(), nil
	}
}
