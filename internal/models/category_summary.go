package models

import "github.com/shopspring/decimal"

// CategorySummary contains aggregated expense data by category
type CategorySummary struct {
	Category         string          `json:"category"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	AverageAmount    decimal.Decimal `json:"average_amount"`
}

// PeriodTotals holds income/expense totals for a date range
type PeriodTotals struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// NewPeriodTotals builds PeriodTotals from raw decimal strings as returned
// by aggregate queries, deriving savings as income minus expense
func NewPeriodTotals(income, expense string) (*PeriodTotals, error) {
	incomeDec, err := decimal.NewFromString(income)
	if err != nil {
		return nil, err
	}
	expenseDec, err := decimal.NewFromString(expense)
	if err != nil {
		return nil, err
	}
	return &PeriodTotals{
		Income:  incomeDec,
		Expense: expenseDec,
		Savings: incomeDec.Sub(expenseDec),
	}, nil
}

// MonthlyTotal is one point of the monthly income/expense trend
type MonthlyTotal struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Type  string          `json:"type"`
	Total decimal.Decimal `json:"total"`
}
