package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Resilience modes accepted by RESILIENCE_MODE.
const (
	ResilienceRetry          = "retry"
	ResilienceCircuitBreaker = "circuit-breaker"
	ResilienceRateLimiter    = "rate-limiter"
	ResilienceBulkhead       = "bulkhead"
)

// Config holds application configuration shared by every service binary.
type Config struct {
	Port         string
	IsProduction bool
	InstanceID   string // Identity stamped into servedBy; defaults to Port

	DatabaseURL    string
	EnableDBCheck  bool
	MigrationsPath string

	ExchangeRatesFile string

	ExchangeServiceURL string
	HTTPClientTimeout  time.Duration

	SampleAPIURL          string
	ResilienceMode        string
	RetryMaxAttempts      uint64
	BulkheadMaxConcurrent int64
	RateLimit             string // ulule/limiter formatted rate, e.g. "10-S"

	LimitsMinimum int
	LimitsMaximum int

	GatewayRoutesFile  string
	GatewayRateLimit   string // Per client IP, ulule/limiter formatted
	CORSAllowedOrigins []string
	ServiceInstances   map[string][]string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("INSTANCE_ID", "")
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("EXCHANGE_RATES_FILE", "")
	v.SetDefault("EXCHANGE_SERVICE_URL", "http://localhost:8000")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "5s")
	v.SetDefault("SAMPLE_API_URL", "http://localhost:8080/some-dummy-url")
	v.SetDefault("RESILIENCE_MODE", ResilienceRetry)
	v.SetDefault("RETRY_MAX_ATTEMPTS", 5)
	v.SetDefault("BULKHEAD_MAX_CONCURRENT", 10)
	v.SetDefault("RATE_LIMIT", "10-S")
	v.SetDefault("LIMITS_SERVICE_MINIMUM", 3)
	v.SetDefault("LIMITS_SERVICE_MAXIMUM", 997)
	v.SetDefault("GATEWAY_ROUTES_FILE", "")
	v.SetDefault("GATEWAY_RATE_LIMIT", "100-S")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("CURRENCY_EXCHANGE_INSTANCES", "http://localhost:8000,http://localhost:8001")
	v.SetDefault("CURRENCY_CONVERSION_INSTANCES", "http://localhost:8100")

	v.AutomaticEnv()

	cfg := &Config{}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.InstanceID = v.GetString("INSTANCE_ID")
	if cfg.InstanceID == "" {
		cfg.InstanceID = cfg.Port
	}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	cfg.ExchangeRatesFile = v.GetString("EXCHANGE_RATES_FILE")

	cfg.ExchangeServiceURL = strings.TrimRight(v.GetString("EXCHANGE_SERVICE_URL"), "/")
	timeoutStr := v.GetString("HTTP_CLIENT_TIMEOUT")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		timeout = 5 * time.Second
		log.Printf("Warning: Invalid value for HTTP_CLIENT_TIMEOUT ('%s'). Defaulting to %s.\n", timeoutStr, timeout)
	}
	cfg.HTTPClientTimeout = timeout

	cfg.SampleAPIURL = v.GetString("SAMPLE_API_URL")
	cfg.ResilienceMode = strings.ToLower(v.GetString("RESILIENCE_MODE"))
	switch cfg.ResilienceMode {
	case ResilienceRetry, ResilienceCircuitBreaker, ResilienceRateLimiter, ResilienceBulkhead:
	default:
		return nil, fmt.Errorf("invalid RESILIENCE_MODE %q", cfg.ResilienceMode)
	}
	cfg.RetryMaxAttempts = v.GetUint64("RETRY_MAX_ATTEMPTS")
	cfg.BulkheadMaxConcurrent = v.GetInt64("BULKHEAD_MAX_CONCURRENT")
	if cfg.BulkheadMaxConcurrent <= 0 {
		return nil, fmt.Errorf("BULKHEAD_MAX_CONCURRENT must be positive, got %d", cfg.BulkheadMaxConcurrent)
	}
	cfg.RateLimit = v.GetString("RATE_LIMIT")

	cfg.LimitsMinimum = v.GetInt("LIMITS_SERVICE_MINIMUM")
	cfg.LimitsMaximum = v.GetInt("LIMITS_SERVICE_MAXIMUM")

	cfg.GatewayRoutesFile = v.GetString("GATEWAY_ROUTES_FILE")
	cfg.GatewayRateLimit = v.GetString("GATEWAY_RATE_LIMIT")
	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.ServiceInstances = map[string][]string{
		"currency-exchange":   splitList(v.GetString("CURRENCY_EXCHANGE_INSTANCES")),
		"currency-conversion": splitList(v.GetString("CURRENCY_CONVERSION_INSTANCES")),
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// routeRow is one entry of the routes list in GATEWAY_ROUTES_FILE.
// Headers and params are "Name: value" / "name=value" strings because viper lower-cases map keys.
type routeRow struct {
	ID      string   `mapstructure:"id"`
	Path    string   `mapstructure:"path"`
	URI     string   `mapstructure:"uri"`
	Headers []string `mapstructure:"headers"`
	Params  []string `mapstructure:"params"`
}

type gatewayFile struct {
	Routes   []routeRow          `mapstructure:"routes"`
	Services map[string][]string `mapstructure:"services"`
}

// LoadGatewayFile reads routes and service instances from a YAML file.
// Route order in the file is the match order.
func LoadGatewayFile(path string) ([]domain.Route, map[string][]string, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, nil, fmt.Errorf("failed to read gateway file %s: %w", path, err)
	}
	var f gatewayFile
	if err := v.Unmarshal(&f); err != nil {
		return nil, nil, fmt.Errorf("failed to decode gateway file %s: %w", path, err)
	}

	routes := make([]domain.Route, 0, len(f.Routes))
	for i, row := range f.Routes {
		if row.Path == "" || row.URI == "" {
			return nil, nil, fmt.Errorf("route %d in %s needs both path and uri", i, path)
		}
		headers, err := parsePairs(row.Headers, ":")
		if err != nil {
			return nil, nil, fmt.Errorf("route %d headers: %w", i, err)
		}
		params, err := parsePairs(row.Params, "=")
		if err != nil {
			return nil, nil, fmt.Errorf("route %d params: %w", i, err)
		}
		routes = append(routes, domain.Route{
			ID:            row.ID,
			PathPattern:   row.Path,
			TargetURI:     row.URI,
			StaticHeaders: headers,
			StaticParams:  params,
		})
	}
	return routes, f.Services, nil
}

func parsePairs(items []string, sep string) (map[string]string, error) {
	if len(items) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(items))
	for _, item := range items {
		name, value, ok := strings.Cut(item, sep)
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("malformed entry %q, want name%svalue", item, sep)
		}
		out[name] = strings.TrimSpace(value)
	}
	return out, nil
}

type rateRow struct {
	ID                 int64  `mapstructure:"id"`
	From               string `mapstructure:"from"`
	To                 string `mapstructure:"to"`
	ConversionMultiple string `mapstructure:"conversion_multiple"`
}

// LoadExchangeRatesFile reads the seed rows of the in-memory exchange table from a YAML file.
func LoadExchangeRatesFile(path string) ([]domain.ExchangeRate, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read exchange rates file %s: %w", path, err)
	}
	var rows []rateRow
	if err := v.UnmarshalKey("rates", &rows); err != nil {
		return nil, fmt.Errorf("failed to decode exchange rates file %s: %w", path, err)
	}
	rates := make([]domain.ExchangeRate, 0, len(rows))
	for _, row := range rows {
		multiple, err := decimal.NewFromString(row.ConversionMultiple)
		if err != nil {
			return nil, fmt.Errorf("rate %d: invalid conversion_multiple %q: %w", row.ID, row.ConversionMultiple, err)
		}
		rates = append(rates, domain.ExchangeRate{ID: row.ID, From: row.From, To: row.To, ConversionMultiple: multiple})
	}
	return rates, nil
}
