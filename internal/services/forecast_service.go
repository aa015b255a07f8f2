package services

import (
	"fmt"
	"log/slog"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// forecastWindow is the trailing history used for projection: the
	// most recent N expense records by position, not by calendar day.
	forecastWindow = 30

	// forecastPeriodDays is the length of the projected period
	forecastPeriodDays = 30

	// trendMinimumRecords below which no slope is computed
	trendMinimumRecords = 4

	// trendThresholdPercent is the half-window delta beyond which the
	// trend is classified as increasing or decreasing
	trendThresholdPercent = 10.0
)

type forecastService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewForecastService creates the local spending projection engine
func NewForecastService(transactionRepo repositories.TransactionRepositoryInterface) ForecastServiceInterface {
	return &forecastService{transactionRepo: transactionRepo}
}

func (s *forecastService) ForecastSpending(userID uuid.UUID) (*models.Forecast, error) {
	expenses, err := s.transactionRepo.GetRecentExpenses(userID, forecastWindow)
	if err != nil {
		slog.Error("failed to load expense history for forecast", "user_id", userID, "error", err)
		return nil, err
	}

	// Repository returns newest first; the trend calculation wants
	// chronological order.
	reversed := make([]models.Transaction, len(expenses))
	for i := range expenses {
		reversed[len(expenses)-1-i] = expenses[i]
	}

	return s.ForecastFromHistory(reversed), nil
}

// ForecastFromHistory projects next-month spending from a chronologically
// ordered expense history. Empty input yields a zero-state forecast.
func (s *forecastService) ForecastFromHistory(expenses []models.Transaction) *models.Forecast {
	if len(expenses) == 0 {
		return &models.Forecast{
			DailyAverage:      decimal.Zero,
			WeeklyAverage:     decimal.Zero,
			NextMonthEstimate: decimal.Zero,
			Trend:             models.TrendInsufficientData,
			Message:           "Not enough transaction history to estimate next month's spending.",
		}
	}

	window := expenses
	if len(window) > forecastWindow {
		window = window[len(window)-forecastWindow:]
	}

	total := decimal.Zero
	categoryTotals := make(map[string]decimal.Decimal)
	for _, t := range window {
		total = total.Add(t.Amount)
		categoryTotals[t.Category] = categoryTotals[t.Category].Add(t.Amount)
	}

	// The window total is spread over the window size even when fewer
	// records exist, matching the fixed-window simplification.
	days := decimal.NewFromInt(forecastWindow)
	dailyAverage := total.Div(days)
	estimate := dailyAverage.Mul(decimal.NewFromInt(forecastPeriodDays))

	categoryForecasts := make(map[string]decimal.Decimal, len(categoryTotals))
	for category, sum := range categoryTotals {
		categoryForecasts[category] = sum.Div(days).
			Mul(decimal.NewFromInt(forecastPeriodDays)).Round(2)
	}

	trend, trendPct := classifyTrend(window)

	return &models.Forecast{
		DailyAverage:      dailyAverage.Round(2),
		WeeklyAverage:     dailyAverage.Mul(decimal.NewFromInt(7)).Round(2),
		NextMonthEstimate: estimate.Round(2),
		Trend:             trend,
		TrendPercentage:   trendPct,
		Message: fmt.Sprintf("Based on your recent spending, you may spend approximately ₹%s next month.",
			estimate.Round(0).String()),
		CategoryForecasts: categoryForecasts,
	}
}

// classifyTrend compares the earlier half of the window against the later
// half and reports the percentage delta of their averages.
func classifyTrend(window []models.Transaction) (string, float64) {
	if len(window) < trendMinimumRecords {
		return models.TrendInsufficientData, 0
	}

	mid := len(window) / 2
	earlier := averageAmount(window[:mid])
	later := averageAmount(window[mid:])

	if earlier.IsZero() {
		return models.TrendStable, 0
	}

	delta, _ := later.Sub(earlier).Div(earlier).Mul(decimal.NewFromInt(100)).Float64()

	switch {
	case delta > trendThresholdPercent:
		return models.TrendIncreasing, delta
	case delta < -trendThresholdPercent:
		return models.TrendDecreasing, delta
	default:
		return models.TrendStable, delta
	}
}

func averageAmount(txns []models.Transaction) decimal.Decimal {
	if len(txns) == 0 {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total.Div(decimal.NewFromInt(int64(len(txns))))
}
