package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// CategorizeRequest carries free-text descriptions to categorize, in order
type CategorizeRequest struct {
	Descriptions []string `json:"descriptions" validate:"required,min=1,max=500,dive,max=500"`
	Type         string   `json:"type" validate:"omitempty,transaction_type"`
}

// CategorizeResponse returns one category per input description, in input
// order. Fallback is true when the local heuristic engine served the
// request because the remote service was unavailable.
type CategorizeResponse struct {
	Categories []string                      `json:"categories"`
	Results    []*models.CategorizationResult `json:"results,omitempty"`
	Fallback   bool                          `json:"fallback"`
	Note       string                        `json:"note,omitempty"`
}

// ExpensePoint is one historical expense record sent to the remote
// forecast service
type ExpensePoint struct {
	Date     string  `json:"date"`
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
}

// AnomalyInput is one expense record sent to the remote anomaly service
type AnomalyInput struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
}

// ForecastResponse wraps a spending projection
type ForecastResponse struct {
	Forecast *models.Forecast `json:"forecast"`
	Fallback bool             `json:"fallback"`
	Note     string           `json:"note,omitempty"`
}

// AnomaliesResponse wraps detected anomalies with scan accounting
type AnomaliesResponse struct {
	Anomalies    []models.AnomalyFlag `json:"anomalies"`
	TotalChecked int                  `json:"total_checked"`
	AnomalyCount int                  `json:"anomaly_count"`
	Fallback     bool                 `json:"fallback"`
	Note         string               `json:"note,omitempty"`
}

// InsightsResponse is the derived current-month observation set
type InsightsResponse struct {
	Insights     []models.Insight `json:"insights"`
	SavingsRate  float64          `json:"savingsRate"`
	TotalIncome  string           `json:"totalIncome"`
	TotalExpense string           `json:"totalExpense"`
}

// PeriodStats holds income/expense/savings for one period
type PeriodStats struct {
	Income  string `json:"income"`
	Expense string `json:"expense"`
	Savings string `json:"savings"`
}

// CategoryBreakdownItem is one slice of the current-month expense pie
type CategoryBreakdownItem struct {
	Category string `json:"category"`
	Total    string `json:"total"`
	Count    int64  `json:"count"`
}

// MonthlyTrendPoint is one month of the income/expense trend series
type MonthlyTrendPoint struct {
	Year  int    `json:"year"`
	Month int    `json:"month"`
	Type  string `json:"type"`
	Total string `json:"total"`
}

// DashboardStats aggregates everything the dashboard view needs
type DashboardStats struct {
	ThisMonth          PeriodStats             `json:"thisMonth"`
	LastMonth          PeriodStats             `json:"lastMonth"`
	CategoryBreakdown  []CategoryBreakdownItem `json:"categoryBreakdown"`
	MonthlyTrend       []MonthlyTrendPoint     `json:"monthlyTrend"`
	RecentTransactions []TransactionResponse   `json:"recentTransactions"`
	TotalTransactions  int64                   `json:"totalTransactions"`
}

// SeedRequest controls development data generation
type SeedRequest struct {
	Count  int  `json:"count" validate:"omitempty,min=1,max=5000"`
	Months int  `json:"months" validate:"omitempty,min=1,max=24"`
	Clear  bool `json:"clear"`
}

// SeedResponse reports what the generator produced
type SeedResponse struct {
	Generated int   `json:"generated"`
	Cleared   int64 `json:"cleared,omitempty"`
}
