package main

import (
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/SscSPs/currency_microservices/internal/core/domain"
	"github.com/SscSPs/currency_microservices/internal/gateway"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/SscSPs/currency_microservices/internal/platform/server"
	"github.com/gin-contrib/cors"
)

// @title API Gateway
// @version 1.0
// @description Routes requests to the currency services by path.

// @host localhost:8765
// @BasePath /
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	routes := gateway.DefaultRoutes()
	instances := cfg.ServiceInstances
	if cfg.GatewayRoutesFile != "" {
		var fileInstances map[string][]string
		routes, fileInstances, err = config.LoadGatewayFile(cfg.GatewayRoutesFile)
		if err != nil {
			logger.Error("Failed to load gateway routes", slog.String("error", err.Error()))
			os.Exit(1)
		}
		instances = mergeInstances(instances, fileInstances)
	}

	table, err := gateway.NewRouteTable(routes)
	if err != nil {
		logger.Error("Invalid gateway routes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	registry, err := gateway.NewRegistry(instances)
	if err != nil {
		logger.Error("Invalid service instances", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logRoutes(logger, table.Routes())

	rateLimiter, err := middleware.NewMemoryLimiter(cfg.GatewayRateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	metrics := middleware.NewMetrics("api-gateway")
	r, err := server.NewEngine(cfg, logger, metrics)
	if err != nil {
		logger.Error("Failed to build router", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	r.Use(middleware.RateLimit(rateLimiter))

	handlers.RegisterRoutes(r, cfg, metrics)
	r.NoRoute(gateway.NewProxy(table, registry, nil).Handle)

	if err := server.Run(cfg, logger, r); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// mergeInstances lets the routes file override the instance lists from the environment.
func mergeInstances(base, override map[string][]string) map[string][]string {
	merged := make(map[string][]string, len(base)+len(override))
	for name, urls := range base {
		merged[name] = urls
	}
	for name, urls := range override {
		merged[name] = urls
	}
	return merged
}

func logRoutes(logger *slog.Logger, routes []domain.Route) {
	for _, route := range routes {
		logger.Info("Gateway route",
			slog.String("id", route.ID),
			slog.String("path", route.PathPattern),
			slog.String("uri", route.TargetURI))
	}
}
