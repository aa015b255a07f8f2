package repositories

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
	DeleteByUserID(userID uuid.UUID) (int64, error)

	// Analytics methods
	GetRecentExpenses(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetExpensesSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error)
	GetPeriodTotals(userID uuid.UUID, startDate, endDate time.Time) (*models.PeriodTotals, error)
	GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error)
	GetMonthlyTrend(userID uuid.UUID, months int) ([]models.MonthlyTotal, error)
	CountByUser(userID uuid.UUID) (int64, error)
	SetAnomalyFlags(ids []uuid.UUID, anomalous bool) error
}
