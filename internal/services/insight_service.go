package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type insightService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewInsightService creates the current-month insight generator
func NewInsightService(transactionRepo repositories.TransactionRepositoryInterface) InsightServiceInterface {
	return &insightService{transactionRepo: transactionRepo}
}

// GenerateInsights derives the observation set for the current calendar
// month. Read-only and recomputed per request.
func (s *insightService) GenerateInsights(userID uuid.UUID) (*dto.InsightsResponse, error) {
	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	totals, err := s.transactionRepo.GetPeriodTotals(userID, startOfMonth, now)
	if err != nil {
		slog.Error("failed to load period totals for insights", "user_id", userID, "error", err)
		return nil, err
	}

	summaries, err := s.transactionRepo.GetCategorySummary(userID, startOfMonth, now)
	if err != nil {
		slog.Error("failed to load category summary for insights", "user_id", userID, "error", err)
		return nil, err
	}

	savingsRate := savingsRatePercent(totals.Income, totals.Expense)

	insights := []models.Insight{
		{
			Kind:    models.InsightKindInfo,
			Title:   "Savings Rate",
			Message: fmt.Sprintf("You saved %.1f%% of your income this month.", savingsRate),
		},
	}

	if len(summaries) > 0 {
		top := summaries[0]
		insights = append(insights, models.Insight{
			Kind:  models.InsightKindWarning,
			Title: "Top Spending",
			Message: fmt.Sprintf("Your highest expense category is %s at ₹%s.",
				top.Category, top.TotalAmount.Round(0).String()),
		})
	}

	if totals.Expense.GreaterThan(totals.Income) {
		insights = append(insights, models.Insight{
			Kind:    models.InsightKindDanger,
			Title:   "Overspending Alert",
			Message: "Your expenses exceeded your income this month!",
		})
	} else {
		insights = append(insights, models.Insight{
			Kind:    models.InsightKindSuccess,
			Title:   "On Track",
			Message: "You are spending within your income this month.",
		})
	}

	return &dto.InsightsResponse{
		Insights:     insights,
		SavingsRate:  savingsRate,
		TotalIncome:  totals.Income.StringFixed(2),
		TotalExpense: totals.Expense.StringFixed(2),
	}, nil
}

// savingsRatePercent is (income - expense) / income * 100 rounded to one
// decimal, or zero when there is no income.
func savingsRatePercent(income, expense decimal.Decimal) float64 {
	if !income.IsPositive() {
		return 0
	}

	rate, _ := income.Sub(expense).
		Div(income).
		Mul(decimal.NewFromInt(100)).
		Round(1).
		Float64()
	return rate
}
