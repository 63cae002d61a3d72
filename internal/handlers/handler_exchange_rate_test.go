package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/SscSPs/currency_microservices/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCode, toCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

type stubSampleAPI string

func (s stubSampleAPI) CallWithResilience(context.Context) string { return string(s) }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(io.Discard, nil))))
	return router
}

// --- Test Suite ---
type ExchangeRateHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockExchangeRateService
}

func (suite *ExchangeRateHandlerTestSuite) SetupTest() {
	suite.router = newTestRouter()
	suite.mockService = new(MockExchangeRateService)
	handlers.RegisterExchangeServiceRoutes(suite.router, &portssvc.ServiceContainer{
		ExchangeRate: suite.mockService,
		SampleAPI:    stubSampleAPI("fallback-response"),
	})
}

func (suite *ExchangeRateHandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_Success() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "USD", "INR").Return(&domain.ExchangeRate{
		ID: 10001, From: "USD", To: "INR", ConversionMultiple: decimal.NewFromInt(65), ServedBy: "8000",
	}, nil).Once()

	w := suite.serve("/exchange/from/USD/to/INR")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(10001), resp.ID)
	suite.Equal("USD", resp.From)
	suite.Equal("INR", resp.To)
	suite.True(decimal.NewFromInt(65).Equal(resp.ConversionMultiple))
	suite.Equal("8000", resp.ServedBy)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_NotFound() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "USD", "XXX").
		Return(nil, apperrors.NewNotFoundError("unable to find data for USD to XXX")).Once()

	w := suite.serve("/exchange/from/USD/to/XXX")

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.ErrorDetails
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("unable to find data for USD to XXX", resp.Message)
	suite.Equal("uri=/exchange/from/USD/to/XXX", resp.Details)
	suite.False(resp.Timestamp.IsZero())
}

func (suite *ExchangeRateHandlerTestSuite) TestGetExchangeRate_InternalErrorHidesCause() {
	suite.mockService.On("GetExchangeRate", mock.Anything, "EUR", "INR").
		Return(nil, errors.New("pq: password authentication failed")).Once()

	w := suite.serve("/exchange/from/EUR/to/INR")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *ExchangeRateHandlerTestSuite) TestListExchangeRates() {
	suite.mockService.On("ListExchangeRates", mock.Anything).Return([]domain.ExchangeRate{
		{ID: 10001, From: "USD", To: "INR", ConversionMultiple: decimal.NewFromInt(65)},
	}, nil).Once()

	w := suite.serve("/exchange")

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.ExchangeRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 1)
}

func (suite *ExchangeRateHandlerTestSuite) TestSampleAPI() {
	w := suite.serve("/sample-api")

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("fallback-response", w.Body.String())
}

func TestExchangeRateHandler(t *testing.T) {
	suite.Run(t, new(ExchangeRateHandlerTestSuite))
}
