package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	portssvc "github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/ports/services"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/dto"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/handlers"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/platform/config"
)

// --- Mock RateSvcFacade ---
type MockRateSvc struct {
	mock.Mock
}

var _ portssvc.RateSvcFacade = (*MockRateSvc)(nil)

func (m *MockRateSvc) GetLatestRates(ctx context.Context, baseCurrency string) (*domain.RateSnapshot, error) {
	args := m.Called(ctx, baseCurrency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RateSnapshot), args.Error(1)
}

// --- Mock HistorySvcFacade ---
type MockHistorySvc struct {
	mock.Mock
}

var _ portssvc.HistorySvcFacade = (*MockHistorySvc)(nil)

func (m *MockHistorySvc) GetHistoricalSeries(ctx context.Context, baseCurrency, targetCurrency string, days int) (*domain.HistoricalSeries, error) {
	args := m.Called(ctx, baseCurrency, targetCurrency, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HistoricalSeries), args.Error(1)
}

// --- Mock ConversionSvcFacade ---
type MockConversionSvc struct {
	mock.Mock
}

var _ portssvc.ConversionSvcFacade = (*MockConversionSvc)(nil)

func (m *MockConversionSvc) Convert(amount decimal.Decimal, sourceCurrency, targetCurrency string, snapshot *domain.RateSnapshot) (decimal.Decimal, error) {
	args := m.Called(amount, sourceCurrency, targetCurrency, snapshot)
	if args.Get(0) == nil {
		return decimal.Zero, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock LedgerSvcFacade ---
type MockLedgerSvc struct {
	mock.Mock
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerSvc)(nil)

func (m *MockLedgerSvc) Balances(ctx context.Context) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockLedgerSvc) ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedgerSvc) Credit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedgerSvc) Debit(ctx context.Context, currencyCode string, amount decimal.Decimal) (*domain.Transaction, error) {
	args := m.Called(ctx, currencyCode, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

// --- Mock CurrencySvcFacade ---
type MockCurrencySvc struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencySvc)(nil)

func (m *MockCurrencySvc) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencySvc) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// newTestRouter wires the mocked services into a full engine, the same way
// main does. Production mode keeps the swagger routes out of the way; the
// rate limit is high enough to never trip in tests.
func newTestRouter(t *testing.T, container *portssvc.ServiceContainer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	cfg := &config.Config{
		RateLimit:    "1000-S",
		IsProduction: true,
	}
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		t.Fatalf("failed to register routes: %v", err)
	}
	return r
}

// --- Test Suite Setup ---
type RateHandlerTestSuite struct {
	suite.Suite
	mockRates   *MockRateSvc
	mockHistory *MockHistorySvc
	router      *gin.Engine
}

func (suite *RateHandlerTestSuite) SetupTest() {
	suite.mockRates = new(MockRateSvc)
	suite.mockHistory = new(MockHistorySvc)
	suite.router = newTestRouter(suite.T(), &portssvc.ServiceContainer{
		Rates:      suite.mockRates,
		History:    suite.mockHistory,
		Conversion: new(MockConversionSvc),
		Ledger:     new(MockLedgerSvc),
		Currency:   new(MockCurrencySvc),
	})
}

func (suite *RateHandlerTestSuite) TestGetLatestRates_Success() {
	snapshot := &domain.RateSnapshot{
		BaseCurrency: "USD",
		Rates:        map[string]float64{"USD": 1.0, "EUR": 0.92},
		FetchedAt:    time.Now(),
	}
	suite.mockRates.On("GetLatestRates", mock.Anything, "USD").Return(snapshot, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("USD", body.BaseCurrency)
	suite.Equal(1.0, body.Rates["USD"])
	suite.mockRates.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestGetLatestRates_InvalidCurrency() {
	suite.mockRates.On("GetLatestRates", mock.Anything, "XX").
		Return(nil, apperrors.ErrInvalidCurrency).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/XX", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *RateHandlerTestSuite) TestGetLatestRates_UpstreamUnavailable() {
	suite.mockRates.On("GetLatestRates", mock.Anything, "USD").
		Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
}

func (suite *RateHandlerTestSuite) TestGetHistory_DefaultDays() {
	series := &domain.HistoricalSeries{
		BaseCurrency:   "USD",
		TargetCurrency: "EUR",
		Points: []domain.HistoricalPoint{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Rate: 0.91},
			{Date: time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), Rate: 0.92},
		},
	}
	suite.mockHistory.On("GetHistoricalSeries", mock.Anything, "USD", "EUR", 30).
		Return(series, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD/history/EUR", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal("EUR", body.TargetCurrency)
	suite.Require().Len(body.Points, 2)
	suite.Equal("2026-08-27", body.Points[0].Date)
	suite.Equal(0, body.SkippedDays)
	suite.mockHistory.AssertExpectations(suite.T())
}

func (suite *RateHandlerTestSuite) TestGetHistory_PartialSeriesIsOK() {
	failed := time.Date(2026, 8, 26, 0, 0, 0, 0, time.UTC)
	series := &domain.HistoricalSeries{
		BaseCurrency:   "USD",
		TargetCurrency: "EUR",
		Points: []domain.HistoricalPoint{
			{Date: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC), Rate: 0.92},
		},
	}
	suite.mockHistory.On("GetHistoricalSeries", mock.Anything, "USD", "EUR", 7).
		Return(series, &apperrors.PartialHistoryError{FailedDates: []time.Time{failed}}).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD/history/EUR?days=7", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusOK, rec.Code)
	var body dto.HistoryResponse
	suite.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	suite.Equal(1, body.SkippedDays)
	suite.Require().Len(body.SkippedDates, 1)
	suite.Equal("2026-08-26", body.SkippedDates[0])
}

func (suite *RateHandlerTestSuite) TestGetHistory_NonIntegerDays() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD/history/EUR?days=soon", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
	suite.mockHistory.AssertNotCalled(suite.T(), "GetHistoricalSeries")
}

func (suite *RateHandlerTestSuite) TestGetHistory_DaysOutOfRange() {
	suite.mockHistory.On("GetHistoricalSeries", mock.Anything, "USD", "EUR", 9999).
		Return(nil, apperrors.ErrValidation).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD/history/EUR?days=9999", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusBadRequest, rec.Code)
}

func (suite *RateHandlerTestSuite) TestGetHistory_AllDaysFailed() {
	suite.mockHistory.On("GetHistoricalSeries", mock.Anything, "USD", "EUR", 30).
		Return(nil, apperrors.ErrUpstreamUnavailable).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rates/USD/history/EUR", nil)
	rec := httptest.NewRecorder()
	suite.router.ServeHTTP(rec, req)

	suite.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestRateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RateHandlerTestSuite))
}
