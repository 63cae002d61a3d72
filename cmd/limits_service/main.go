package main

import (
	"log/slog"
	"os"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/platform/server"
)

// @title Limits Service
// @version 1.0
// @description Serves the configured minimum and maximum limits.

// @host localhost:8080
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics := middleware.NewMetrics("limits-service")
	r, err := server.NewEngine(cfg, logger, metrics)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, metrics)
	handlers.RegisterLimitsServiceRoutes(r, domain.Limits{Minimum: cfg.LimitsMinimum, Maximum: cfg.LimitsMaximum})

	if err := server.Run(cfg, logger, r); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
