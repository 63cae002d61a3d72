package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_microservices/internal/adapters/httpclient"
	portsrepo "github.com/SscSPs/currency_microservices/internal/core/ports/repositories"
	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/platform/server"
	"github.com/SscSPs/currency_microservices/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_microservices/internal/repositories/memory"
	"github.com/SscSPs/currency_microservices/pkg/database"
	"github.com/prometheus/client_golang/prometheus"
)

// @title Currency Exchange Service
// @version 1.0
// @description Serves conversion multiples for currency pairs.

// @host localhost:8000
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize exchange rate storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	metrics := middleware.NewMetrics("currency-exchange")
	fallbacks := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "currency_sample_api_fallbacks_total",
		Help: "Number of sample API calls answered with the fallback response.",
	})
	metrics.Registerer().MustRegister(fallbacks)

	container := services.NewServiceContainer(repos, cfg.InstanceID)
	container.SampleAPI, err = services.NewSampleAPIService(
		httpclient.NewSampleAPIFetcher(cfg.SampleAPIURL, cfg.HTTPClientTimeout),
		services.SampleAPIPolicy{
			Mode:                  cfg.ResilienceMode,
			RetryMaxAttempts:      cfg.RetryMaxAttempts,
			BulkheadMaxConcurrent: cfg.BulkheadMaxConcurrent,
			RateLimit:             cfg.RateLimit,
		},
		fallbacks,
	)
	if err != nil {
		logger.Error("Failed to initialize sample API service", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Sample API resilience policy selected", slog.String("mode", cfg.ResilienceMode))

	r, err := server.NewEngine(cfg, logger, metrics)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, metrics)
	handlers.RegisterExchangeServiceRoutes(r, container)

	if err := server.Run(cfg, logger, r); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories picks Postgres when PGSQL_URL is set and the in-memory table otherwise.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL != "" {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Serving exchange rates from Postgres")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}

	rates := memory.DefaultExchangeRates()
	if cfg.ExchangeRatesFile != "" {
		loaded, err := config.LoadExchangeRatesFile(cfg.ExchangeRatesFile)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		rates = loaded
	}
	table, err := memory.NewExchangeRateTable(rates)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Serving exchange rates from memory", slog.Int("rates", len(rates)))
	return portsrepo.RepositoryProvider{ExchangeRateRepo: table}, func() {}, nil
}
