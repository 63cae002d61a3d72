package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

func registerSampleAPIRoutes(rg gin.IRoutes, sampleAPIService portssvc.SampleAPISvc) {
	rg.GET("/sample-api", func(c *gin.Context) {
		c.String(http.StatusOK, sampleAPIService.CallWithResilience(c.Request.Context()))
	})
}
