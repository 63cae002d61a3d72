package handlers

import (
	"net/http"

	"github.com/SscSPs/currency_microservices/cmd/docs"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/SscSPs/currency_microservices/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up the routes every service binary shares: health, metrics and swagger.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, metrics *middleware.Metrics) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", metrics.Handler())

	setupSwaggerRoutes(r, cfg)
}

// RegisterExchangeServiceRoutes mounts the exchange lookup and the resilience demo.
func RegisterExchangeServiceRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerExchangeRateRoutes(r, services.ExchangeRate)
	if services.SampleAPI != nil {
		registerSampleAPIRoutes(r, services.SampleAPI)
	}
}

// RegisterConversionServiceRoutes mounts one conversion route per transport strategy.
func RegisterConversionServiceRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerConversionRoutes(r, "/convert", services.Conversion)
	registerConversionRoutes(r, "/convert-alt", services.ConversionAlt)
}

// RegisterRestfulServiceRoutes mounts versioning, users, greetings and filtering.
func RegisterRestfulServiceRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	registerHelloWorldRoutes(r)
	registerFilteringRoutes(r)
	registerVersioningRoutes(r, services.Versioning)
	registerUserRoutes(r, services.User)
}

// RegisterLimitsServiceRoutes mounts the limits endpoint.
func RegisterLimitsServiceRoutes(r *gin.Engine, limits domain.Limits) {
	registerLimitsRoutes(r, limits)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
