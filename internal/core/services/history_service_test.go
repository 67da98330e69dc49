package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/apperrors"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/domain"
	"github.com/khaleelibraheem/abujabureaudechange-backend/internal/core/services"
)

const (
	testHistoryMaxDays     = 365
	testHistoryConcurrency = 5
)

// --- Test Suite Setup ---
type HistoryServiceTestSuite struct {
	suite.Suite
	mockProvider *MockRateProvider
	service      *services.HistoryService
	ctx          context.Context
	today        time.Time
}

func (suite *HistoryServiceTestSuite) SetupTest() {
	suite.mockProvider = new(MockRateProvider)
	suite.service = services.NewHistoryService(suite.mockProvider, testHistoryMaxDays, testHistoryConcurrency, nil)
	suite.ctx = context.Background()
	suite.today = time.Now().UTC().Truncate(24 * time.Hour)
}

func dateMatches(want time.Time) interface{} {
	return mock.MatchedBy(func(got time.Time) bool { return got.Equal(want) })
}

func (suite *HistoryServiceTestSuite) historicalSnapshot(rates map[string]float64) *domain.RateSnapshot {
	return &domain.RateSnapshot{
		BaseCurrency: "USD",
		Rates:        rates,
		FetchedAt:    time.Now(),
	}
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_ThirtyDaysAscending() {
	snapshot := suite.historicalSnapshot(map[string]float64{"USD": 1.0, "EUR": 0.92})
	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", mock.AnythingOfType("time.Time")).
		Return(snapshot, nil)

	series, err := suite.service.GetHistoricalSeries(suite.ctx, "USD", "EUR", 30)
	suite.Require().NoError(err)
	suite.Require().NotNil(series)

	// Inclusive range [today-30, today] is 31 points.
	suite.Len(series.Points, 31)
	suite.Equal("USD", series.BaseCurrency)
	suite.Equal("EUR", series.TargetCurrency)

	suite.True(series.Points[0].Date.Equal(suite.today.AddDate(0, 0, -30)))
	suite.True(series.Points[len(series.Points)-1].Date.Equal(suite.today))
	for i := 1; i < len(series.Points); i++ {
		suite.True(series.Points[i].Date.After(series.Points[i-1].Date),
			"points must be strictly ascending by date")
	}
	suite.mockProvider.AssertNumberOfCalls(suite.T(), "FetchHistorical", 31)
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_PartialFailureSkipsDays() {
	failedDate := suite.today.AddDate(0, 0, -3)
	snapshot := suite.historicalSnapshot(map[string]float64{"EUR": 0.92})

	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", dateMatches(failedDate)).
		Return(nil, apperrors.ErrUpstreamUnavailable)
	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", mock.AnythingOfType("time.Time")).
		Return(snapshot, nil)

	series, err := suite.service.GetHistoricalSeries(suite.ctx, "USD", "EUR", 7)

	var partialErr *apperrors.PartialHistoryError
	suite.Require().ErrorAs(err, &partialErr)
	suite.Require().Len(partialErr.FailedDates, 1)
	suite.True(partialErr.FailedDates[0].Equal(failedDate))

	suite.Require().NotNil(series)
	suite.Len(series.Points, 7)
	for _, point := range series.Points {
		suite.False(point.Date.Equal(failedDate), "failed day must be omitted")
	}
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_MissingTargetSkipsDay() {
	gapDate := suite.today.AddDate(0, 0, -1)
	withTarget := suite.historicalSnapshot(map[string]float64{"EUR": 0.92})
	withoutTarget := suite.historicalSnapshot(map[string]float64{"NGN": 1534.50})

	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", dateMatches(gapDate)).
		Return(withoutTarget, nil)
	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", mock.AnythingOfType("time.Time")).
		Return(withTarget, nil)

	series, err := suite.service.GetHistoricalSeries(suite.ctx, "USD", "EUR", 3)

	var partialErr *apperrors.PartialHistoryError
	suite.Require().ErrorAs(err, &partialErr)
	suite.Require().Len(partialErr.FailedDates, 1)
	suite.True(partialErr.FailedDates[0].Equal(gapDate))
	suite.Len(series.Points, 3)
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_AllDaysFailed() {
	suite.mockProvider.On("FetchHistorical", mock.Anything, "USD", mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrUpstreamUnavailable)

	series, err := suite.service.GetHistoricalSeries(suite.ctx, "USD", "EUR", 5)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrUpstreamUnavailable)
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_DaysOutOfRange() {
	for _, days := range []int{0, -1, testHistoryMaxDays + 1} {
		series, err := suite.service.GetHistoricalSeries(suite.ctx, "USD", "EUR", days)
		suite.Nil(series)
		suite.ErrorIs(err, apperrors.ErrValidation, "days %d", days)
	}
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchHistorical")
}

func (suite *HistoryServiceTestSuite) TestGetHistoricalSeries_InvalidCurrencies() {
	series, err := suite.service.GetHistoricalSeries(suite.ctx, "usdollar", "EUR", 7)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)

	series, err = suite.service.GetHistoricalSeries(suite.ctx, "USD", "e", 7)
	suite.Nil(series)
	suite.ErrorIs(err, apperrors.ErrInvalidCurrency)
	suite.mockProvider.AssertNotCalled(suite.T(), "FetchHistorical")
}

func TestHistoryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HistoryServiceTestSuite))
}
