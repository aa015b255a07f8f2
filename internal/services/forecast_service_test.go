package services_test

import (
	"errors"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ForecastServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	forecastService services.ForecastServiceInterface
	userID          uuid.UUID
}

func TestForecastServiceSuite(t *testing.T) {
	suite.Run(t, new(ForecastServiceTestSuite))
}

func (s *ForecastServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.forecastService = services.NewForecastService(s.transactionRepo)
	s.userID = uuid.New()
}

func (s *ForecastServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func expenseHistory(amounts []float64) []models.Transaction {
	base := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	txns := make([]models.Transaction, len(amounts))
	for i, a := range amounts {
		txns[i] = models.Transaction{
			ID:       uuid.New(),
			Amount:   decimal.NewFromFloat(a),
			Type:     models.TransactionTypeExpense,
			Category: models.CategoryFood,
			Date:     base.AddDate(0, 0, i),
		}
	}
	return txns
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_EmptyHistory() {
	forecast := s.forecastService.ForecastFromHistory(nil)

	s.True(forecast.DailyAverage.IsZero())
	s.True(forecast.NextMonthEstimate.IsZero())
	s.Equal(models.TrendInsufficientData, forecast.Trend)
	s.Equal("Not enough transaction history to estimate next month's spending.", forecast.Message)
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_FixedWindowAveraging() {
	// 10 records of 300: the total spreads over the 30-record window, so
	// the daily average is 100, not 300
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{
		300, 300, 300, 300, 300, 300, 300, 300, 300, 300,
	}))

	s.Equal("100", forecast.DailyAverage.String())
	s.Equal("700", forecast.WeeklyAverage.String())
	s.Equal("3000", forecast.NextMonthEstimate.String())
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_StableTrend() {
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{
		100, 100, 100, 100, 100, 100,
	}))

	s.Equal(models.TrendStable, forecast.Trend)
	s.InDelta(0, forecast.TrendPercentage, 0.001)
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_IncreasingTrend() {
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{
		100, 100, 100, 200, 200, 200,
	}))

	s.Equal(models.TrendIncreasing, forecast.Trend)
	s.InDelta(100, forecast.TrendPercentage, 0.001)
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_DecreasingTrend() {
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{
		200, 200, 200, 100, 100, 100,
	}))

	s.Equal(models.TrendDecreasing, forecast.Trend)
	s.InDelta(-50, forecast.TrendPercentage, 0.001)
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_TooFewRecordsForTrend() {
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{100, 200, 300}))

	s.Equal(models.TrendInsufficientData, forecast.Trend)
	s.False(forecast.NextMonthEstimate.IsZero())
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_CategoryBreakdown() {
	history := expenseHistory([]float64{300, 300, 300})
	history[2].Category = models.CategoryTransport

	forecast := s.forecastService.ForecastFromHistory(history)

	s.Equal("600", forecast.CategoryForecasts[models.CategoryFood].String())
	s.Equal("300", forecast.CategoryForecasts[models.CategoryTransport].String())
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_WindowCapsOlderRecords() {
	// 40 records: only the most recent 30 participate
	amounts := make([]float64, 40)
	for i := range amounts {
		amounts[i] = 100
	}
	forecast := s.forecastService.ForecastFromHistory(expenseHistory(amounts))

	s.Equal("100", forecast.DailyAverage.String())
	s.Equal("3000", forecast.NextMonthEstimate.String())
}

func (s *ForecastServiceTestSuite) TestForecastFromHistory_Message() {
	forecast := s.forecastService.ForecastFromHistory(expenseHistory([]float64{
		300, 300, 300, 300, 300, 300, 300, 300, 300, 300,
	}))

	s.Contains(forecast.Message, "₹3000")
	s.Contains(forecast.Message, "next month")
}

func (s *ForecastServiceTestSuite) TestForecastSpending_LoadsAndReversesHistory() {
	// Repository returns newest first; increasing history arrives reversed
	newestFirst := expenseHistory([]float64{200, 200, 200, 100, 100, 100})
	s.transactionRepo.EXPECT().GetRecentExpenses(s.userID, 30).Return(newestFirst, nil)

	forecast, err := s.forecastService.ForecastSpending(s.userID)

	s.Require().NoError(err)
	s.Equal(models.TrendIncreasing, forecast.Trend)
}

func (s *ForecastServiceTestSuite) TestForecastSpending_RepositoryError() {
	s.transactionRepo.EXPECT().GetRecentExpenses(s.userID, 30).Return(nil, errors.New("db down"))

	forecast, err := s.forecastService.ForecastSpending(s.userID)

	s.Error(err)
	s.Nil(forecast)
}
