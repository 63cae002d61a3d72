package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Bounds on the quantity path segment. Without them an input like 1e200000000 parses fine
// and the response body has to print hundreds of millions of digits.
const (
	maxQuantityLength   = 64
	maxQuantityExponent = 32
)

// parseQuantity parses a decimal quantity, rejecting values whose printed form would be unbounded.
func parseQuantity(raw string) (decimal.Decimal, error) {
	if len(raw) > maxQuantityLength {
		return decimal.Decimal{}, apperrors.NewValidationError(fmt.Sprintf("quantity must be at most %d characters", maxQuantityLength))
	}
	quantity, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, apperrors.NewValidationError("quantity must be a decimal number")
	}
	if exp := quantity.Exponent(); exp > maxQuantityExponent || exp < -maxQuantityExponent {
		return decimal.Decimal{}, apperrors.NewValidationError("quantity is out of range")
	}
	return quantity, nil
}

// conversionHandler serves one conversion route backed by one transport strategy.
type conversionHandler struct {
	conversionService portssvc.ConversionSvc
}

// registerConversionRoutes mounts the conversion route under prefix, e.g. "/convert".
func registerConversionRoutes(rg gin.IRoutes, prefix string, conversionService portssvc.ConversionSvc) {
	h := &conversionHandler{conversionService: conversionService}
	rg.GET(prefix+"/from/:from/to/:to/quantity/:quantity", h.convert)
}

// convert godoc
// @Summary Convert a quantity between currencies
// @Description Fetches the rate from the exchange service and multiplies. /convert uses the direct HTTP client, /convert-alt the typed client.
// @Tags conversion
// @Produce  json
// @Param   from     path string true "From currency code"
// @Param   to       path string true "To currency code"
// @Param   quantity path string true "Quantity to convert (decimal)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorDetails "Invalid quantity or currency code"
// @Failure 404 {object} dto.ErrorDetails "Exchange rate not found"
// @Failure 502 {object} dto.ErrorDetails "Exchange service unavailable"
// @Router /convert/from/{from}/to/{to}/quantity/{quantity} [get]
// @Router /convert-alt/from/{from}/to/{to}/quantity/{quantity} [get]
func (h *conversionHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := c.Param("from")
	toCode := c.Param("to")
	rawQuantity := c.Param("quantity")

	logger = logger.With(slog.String("from_code", fromCode), slog.String("to_code", toCode), slog.String("quantity", rawQuantity))

	quantity, err := parseQuantity(rawQuantity)
	if err != nil {
		respondError(c, logger, err, "Invalid quantity")
		return
	}

	result, err := h.conversionService.Convert(c.Request.Context(), fromCode, toCode, quantity)
	if err != nil {
		respondError(c, logger, err, "Failed to convert currency")
		return
	}

	logger.Info("Conversion calculated", slog.String("served_by", result.ServedBy))
	c.JSON(http.StatusOK, dto.ToConversionResponse(result))
}
