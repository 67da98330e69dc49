package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/dto"
)

// --- Test Suite Setup ---
type CurrencyHandlerTestSuite struct {
	suite.Suite
	mockCurrency *MockCurrencySvc
	router       *gin.Engine
}

func (suite *CurrencyHandlerTestSuite) SetupTest() {
	suite.mockCurrency = new(MockCurrencySvc)
	suite.router = newTestRouter(suite.T(), &portssvc.ServiceContainer{
		Rates:      new(MockRateSvc),
		History:    new(MockHistorySvc),
		Conversion: new(MockConversionSvc),
		Ledger:     new(MockLedgerSvc),
		Currency:   suite.mockCurrency,
	})
}

func (suite *CurrencyHandlerTestSuite) TestListCurrencies() {
	suite.mockCurrency.On("ListCurrencies", mock.Anything).Return([]domain.Currency{
		{CurrencyCode: "EUR", Symbol: "€", Name: "Euro"},
		{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar"},
	}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var body []dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Require().Len(body, 2)
	suite.Equal("EUR", body[0].CurrencyCode)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_Found() {
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "NGN").
		Return(&domain.Currency{CurrencyCode: "NGN", Symbol: "₦", Name: "Nigerian Naira"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/NGN", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.CurrencyResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("₦", body.Symbol)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_NotSupported() {
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "XAU").
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/XAU", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusNotFound, rec.Code)
}

func (suite *CurrencyHandlerTestSuite) TestGetCurrency_InvalidCode() {
	suite.mockCurrency.On("GetCurrencyByCode", mock.Anything, "notacode").
		Return(nil, apperrors.ErrInvalidCurrency).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/currencies/notacode", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func TestCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
