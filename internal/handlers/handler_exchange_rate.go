package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg gin.IRoutes, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	rg.GET("/exchange", h.listExchangeRates)
	rg.GET("/exchange/from/:from/to/:to", h.getExchangeRate)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the conversion multiple for a currency pair, tagged with the serving instance
// @Tags exchange
// @Produce  json
// @Param   from path string true "From currency code"
// @Param   to   path string true "To currency code"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorDetails "Empty currency code"
// @Failure 404 {object} dto.ErrorDetails "Exchange rate not found"
// @Failure 500 {object} dto.ErrorDetails "Failed to retrieve exchange rate"
// @Router /exchange/from/{from}/to/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode))
	logger.Info("Received request to get exchange rate")

	rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve exchange rate")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists every rate this instance serves
// @Tags exchange
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} dto.ErrorDetails "Failed to list exchange rates"
// @Router /exchange [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}
