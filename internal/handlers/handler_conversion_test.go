package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SscSPs/currency_microservices/internal/apperrors"
	"github.com/SscSPs/currency_microservices/internal/core/domain"
	portssvc "github.com/SscSPs/currency_microservices/internal/core/ports/services"
	"github.com/SscSPs/currency_microservices/internal/dto"
	"github.com/SscSPs/currency_microservices/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, fromCode, toCode string, quantity decimal.Decimal) (*domain.ConversionResult, error) {
	args := m.Called(ctx, fromCode, toCode, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConversionResult), args.Error(1)
}

var _ portssvc.ConversionSvc = (*MockConversionService)(nil)

type ConversionHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	restSvc  *MockConversionService
	typedSvc *MockConversionService
}

func (suite *ConversionHandlerTestSuite) SetupTest() {
	suite.router = newTestRouter()
	suite.restSvc = new(MockConversionService)
	suite.typedSvc = new(MockConversionService)
	handlers.RegisterConversionServiceRoutes(suite.router, &portssvc.ServiceContainer{
		Conversion:    suite.restSvc,
		ConversionAlt: suite.typedSvc,
	})
}

func (suite *ConversionHandlerTestSuite) serve(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func quantityEquals(want string) any {
	return mock.MatchedBy(func(q decimal.Decimal) bool { return q.Equal(decimal.RequireFromString(want)) })
}

func (suite *ConversionHandlerTestSuite) TestConvert_UsesRestStrategy() {
	result := domain.NewConversionResult(domain.ExchangeRate{
		ID: 10001, ConversionMultiple: decimal.NewFromInt(65), ServedBy: "8000",
	}, "USD", "INR", decimal.NewFromInt(10), "rest-client")
	suite.restSvc.On("Convert", mock.Anything, "USD", "INR", quantityEquals("10")).Return(&result, nil).Once()

	w := suite.serve("/convert/from/USD/to/INR/quantity/10")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConversionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("650", resp.TotalCalculatedAmount.String())
	suite.Equal("8000 rest-client", resp.ServedBy)
	suite.typedSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *ConversionHandlerTestSuite) TestConvertAlt_UsesTypedStrategy() {
	result := domain.NewConversionResult(domain.ExchangeRate{
		ID: 10002, ConversionMultiple: decimal.NewFromInt(75), ServedBy: "8001",
	}, "EUR", "INR", decimal.RequireFromString("1.5"), "typed-client")
	suite.typedSvc.On("Convert", mock.Anything, "EUR", "INR", quantityEquals("1.5")).Return(&result, nil).Once()

	w := suite.serve("/convert-alt/from/EUR/to/INR/quantity/1.5")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"servedBy":"8001 typed-client"`)
	suite.restSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *ConversionHandlerTestSuite) TestConvert_InvalidQuantity() {
	w := suite.serve("/convert/from/USD/to/INR/quantity/ten")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.restSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *ConversionHandlerTestSuite) TestConvert_RejectsUnboundedQuantity() {
	for _, quantity := range []string{"1e200000000", "1e-200000000", "1e33", strings.Repeat("9", 65)} {
		w := suite.serve("/convert/from/USD/to/INR/quantity/" + quantity)
		suite.Equal(http.StatusBadRequest, w.Code, quantity)
		w = suite.serve("/convert-alt/from/USD/to/INR/quantity/" + quantity)
		suite.Equal(http.StatusBadRequest, w.Code, quantity)
	}
	suite.restSvc.AssertNotCalled(suite.T(), "Convert")
	suite.typedSvc.AssertNotCalled(suite.T(), "Convert")
}

func (suite *ConversionHandlerTestSuite) TestConvert_AcceptsScientificWithinRange() {
	result := domain.NewConversionResult(domain.ExchangeRate{
		ID: 10001, ConversionMultiple: decimal.NewFromInt(65), ServedBy: "8000",
	}, "USD", "INR", decimal.NewFromInt(1000), "rest-client")
	suite.restSvc.On("Convert", mock.Anything, "USD", "INR", quantityEquals("1000")).Return(&result, nil).Once()

	w := suite.serve("/convert/from/USD/to/INR/quantity/1e3")

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"totalCalculatedAmount":"65000"`)
}

func (suite *ConversionHandlerTestSuite) TestConvert_ErrorMapping() {
	suite.restSvc.On("Convert", mock.Anything, "USD", "XXX", mock.Anything).
		Return(nil, apperrors.NewNotFoundError("unable to find data for USD to XXX")).Once()
	suite.restSvc.On("Convert", mock.Anything, "USD", "INR", mock.Anything).
		Return(nil, apperrors.NewTransportError("failed to reach exchange service", nil)).Once()
	suite.restSvc.On("Convert", mock.Anything, "AUD", "INR", mock.Anything).
		Return(nil, apperrors.NewValidationError("quantity must not be negative")).Once()

	suite.Equal(http.StatusNotFound, suite.serve("/convert/from/USD/to/XXX/quantity/1").Code)
	suite.Equal(http.StatusBadGateway, suite.serve("/convert/from/USD/to/INR/quantity/1").Code)
	suite.Equal(http.StatusBadRequest, suite.serve("/convert/from/AUD/to/INR/quantity/-1").Code)
}

func TestConversionHandler(t *testing.T) {
	suite.Run(t, new(ConversionHandlerTestSuite))
}
