package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Forecast trend labels
const (
	TrendIncreasing       = "increasing"
	TrendDecreasing       = "decreasing"
	TrendStable           = "stable"
	TrendInsufficientData = "insufficient_data"
)

// Insight kinds, used by UIs to pick severity styling
const (
	InsightKindInfo    = "info"
	InsightKindWarning = "warning"
	InsightKindDanger  = "danger"
	InsightKindSuccess = "success"
)

// Forecast is the projected next-period spending derived from recent
// expense history.
type Forecast struct {
	DailyAverage      decimal.Decimal            `json:"daily_average"`
	WeeklyAverage     decimal.Decimal            `json:"weekly_average"`
	NextMonthEstimate decimal.Decimal            `json:"next_month_estimate"`
	Trend             string                     `json:"trend"`
	TrendPercentage   float64                    `json:"trend_percentage"`
	Message           string                     `json:"message"`
	CategoryForecasts map[string]decimal.Decimal `json:"category_forecasts,omitempty"`
}

// AnomalyFlag marks one transaction as statistically unusual within its
// comparison set. Advisory: persisting the flag is a separate step.
type AnomalyFlag struct {
	TransactionID uuid.UUID       `json:"transaction_id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Category      string          `json:"category"`
	Date          time.Time       `json:"date"`
	Score         float64         `json:"score"`
	Reason        string          `json:"reason"`
}

// Insight is one human-readable observation about the current period
type Insight struct {
	Kind    string `json:"kind"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

// CircuitBreakerState represents the state of a circuit breaker
type CircuitBreakerState int
