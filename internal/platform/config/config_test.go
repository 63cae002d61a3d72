package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "8000")
	t.Setenv("INSTANCE_ID", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "8000", cfg.InstanceID, "instance id falls back to the port")
	assert.Equal(t, ResilienceRetry, cfg.ResilienceMode)
	assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, []string{"http://localhost:8000", "http://localhost:8001"}, cfg.ServiceInstances["currency-exchange"])
	assert.Equal(t, 3, cfg.LimitsMinimum)
	assert.Equal(t, 997, cfg.LimitsMaximum)
	assert.Equal(t, "10-S", cfg.RateLimit)
	assert.Equal(t, "100-S", cfg.GatewayRateLimit)
}

func TestLoadConfig_GatewayRateLimitIsIndependent(t *testing.T) {
	t.Setenv("RATE_LIMIT", "2-S")
	t.Setenv("GATEWAY_RATE_LIMIT", "500-M")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "2-S", cfg.RateLimit)
	assert.Equal(t, "500-M", cfg.GatewayRateLimit)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("INSTANCE_ID", "exchange-a")
	t.Setenv("RESILIENCE_MODE", "Circuit-Breaker")
	t.Setenv("EXCHANGE_SERVICE_URL", "http://exchange:8000/")
	t.Setenv("HTTP_CLIENT_TIMEOUT", "not-a-duration")
	t.Setenv("CURRENCY_CONVERSION_INSTANCES", " http://a:8100 , ,http://b:8100")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "exchange-a", cfg.InstanceID)
	assert.Equal(t, ResilienceCircuitBreaker, cfg.ResilienceMode)
	assert.Equal(t, "http://exchange:8000", cfg.ExchangeServiceURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPClientTimeout)
	assert.Equal(t, []string{"http://a:8100", "http://b:8100"}, cfg.ServiceInstances["currency-conversion"])
}

func TestLoadConfig_RejectsUnknownResilienceMode(t *testing.T) {
	t.Setenv("RESILIENCE_MODE", "hope")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "RESILIENCE_MODE")
}

func TestLoadGatewayFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	content := `
routes:
  - id: echo
    path: /get
    uri: http://httpbin.org:80
    headers: ["MyHeader: MyURI"]
    params: ["Param=MyValue"]
  - id: exchange
    path: /exchange/**
    uri: lb://currency-exchange
services:
  currency-exchange:
    - http://localhost:8000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	routes, services, err := LoadGatewayFile(path)
	require.NoError(t, err)
	require.Len(t, routes, 2)

	assert.Equal(t, "/get", routes[0].PathPattern)
	assert.Equal(t, map[string]string{"MyHeader": "MyURI"}, routes[0].StaticHeaders)
	assert.Equal(t, map[string]string{"Param": "MyValue"}, routes[0].StaticParams)
	assert.Equal(t, "lb://currency-exchange", routes[1].TargetURI)
	assert.Nil(t, routes[1].StaticHeaders)
	assert.Equal(t, []string{"http://localhost:8000"}, services["currency-exchange"])
}

func TestLoadGatewayFile_MalformedHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateway.yaml")
	content := `
routes:
  - path: /get
    uri: http://httpbin.org:80
    headers: ["no separator"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, _, err := LoadGatewayFile(path)
	assert.ErrorContains(t, err, "malformed entry")
}

func TestLoadExchangeRatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	content := `
rates:
  - id: 20001
    from: GBP
    to: INR
    conversion_multiple: "98.15"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rates, err := LoadExchangeRatesFile(path)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, int64(20001), rates[0].ID)
	assert.Equal(t, "GBP", rates[0].From)
	assert.True(t, rates[0].ConversionMultiple.Equal(decimal.RequireFromString("98.15")))
}
