package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// requestDescription identifies the failing request in ErrorDetails.Details.
func requestDescription(c *gin.Context) string {
	return "uri=" + c.Request.URL.Path
}

// statusFor maps an error onto an HTTP status using the sentinel errors.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the ErrorDetails body for err. Internal errors are logged and their
// cause is not exposed.
func respondError(c *gin.Context, logger *slog.Logger, err error, internalMsg string) {
	status := statusFor(err)
	message := err.Error()
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case status == http.StatusInternalServerError:
		logger.Error(internalMsg, slog.String("error", err.Error()))
		message = internalMsg
	case status >= http.StatusInternalServerError:
		logger.Error(internalMsg, slog.Int("status", status), slog.String("error", err.Error()))
	default:
		logger.Warn(internalMsg, slog.Int("status", status), slog.String("error", err.Error()))
	}
	c.JSON(status, dto.NewErrorDetails(message, requestDescription(c)))
}

// respondBindError reports request body validation failures.
func respondBindError(c *gin.Context, logger *slog.Logger, err error) {
	message := "Invalid request format: " + err.Error()
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		message = fmt.Sprintf("Total Errors:%d First Error:%s", len(verrs), fieldErrorMessage(verrs[0]))
	}
	logger.Warn("Failed to bind request body", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.NewErrorDetails(message, requestDescription(c)))
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s should have at least %s characters", fe.Field(), fe.Param())
	case "past":
		return fmt.Sprintf("%s should be in the past", fe.Field())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag())
	}
}
