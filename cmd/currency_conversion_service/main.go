package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/currency_microservices/internal/adapters/httpclient"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/platform/server"
)

// @title Currency Conversion Service
// @version 1.0
// @description Converts quantities using rates fetched from the exchange service.

// @host localhost:8100
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	container := &portssvc.ServiceContainer{
		Conversion: services.NewConversionService(
			httpclient.NewRestClient(cfg.ExchangeServiceURL, cfg.HTTPClientTimeout), services.RestClientTag),
		ConversionAlt: services.NewConversionService(
			httpclient.NewTypedClient(cfg.ExchangeServiceURL, cfg.HTTPClientTimeout), services.TypedClientTag),
	}
	logger.Info("Exchange service endpoint configured", slog.String("url", cfg.ExchangeServiceURL))

	metrics := middleware.NewMetrics("currency-conversion")
	r, err := server.NewEngine(cfg, logger, metrics)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, metrics)
	handlers.RegisterConversionServiceRoutes(r, container)

	if err := server.Run(cfg, logger, r); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
