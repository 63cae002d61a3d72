package main

import (
	"log/slog"
	"os"
	"time"

	portsrepo "github.com/SscSPs/currency_microservices/internal/core/ports/repositories"
	"github.com/SscSPs/currency_microservices/internal/core/services"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/platform/server"
	"github.com/SscSPs/currency_microservices/internal/repositories/memory"
)

// @title RESTful Web Services
// @version 1.0
// @description Users, posts, API versioning and field filtering.

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

	repos := portsrepo.RepositoryProvider{
		UserRepo: memory.NewUserStore(memory.DefaultUsers(time.Now())...),
	}
	container := services.NewServiceContainer(repos, cfg.InstanceID)

	metrics := middleware.NewMetrics("restful-web-services")
	r, err := server.NewEngine(cfg, logger, metrics)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	handlers.RegisterRoutes(r, cfg, metrics)
	handlers.RegisterRestfulServiceRoutes(r, container)

	if err := server.Run(cfg, logger, r); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
