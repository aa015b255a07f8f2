package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch creates multiple transactions in a single database transaction
func (r *transactionRepository) CreateBatch(transactions []models.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&transactions).Error; err != nil {
			return fmt.Errorf("failed to create batch transactions: %w", err)
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{ID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetByUserID retrieves transactions for a user with pagination
func (r *transactionRepository) GetByUserID(userID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	if err := r.db.Where("user_id = ?", userID).
		Offset(offset).Limit(limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w", err)
	}

	return transactions, total, nil
}

// GetWithFilters retrieves transactions with multiple filters
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	query := r.db.Model(&models.Transaction{})

	if filters.UserID != uuid.Nil {
		query = query.Where("user_id = ?", filters.UserID)
	}
	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}
	if filters.Type != "" {
		query = query.Where("type = ?", filters.Type)
	}
	if filters.Category != "" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(description) LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count filtered transactions: %w", err)
	}

	if err := query.Offset(filters.Offset).Limit(filters.Limit).
		Order("date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get filtered transactions: %w", err)
	}

	return transactions, total, nil
}

// Update persists changes to an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	if err := transaction.Validate(); err != nil {
		return fmt.Errorf("invalid transaction update: %w", err)
	}

	result := r.db.Model(&models.Transaction{ID: transaction.ID}).
		Select("description", "amount", "type", "category", "date", "is_anomalous", "updated_at").
		Updates(transaction)

	if result.Error != nil {
		return fmt.Errorf("failed to update transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// DeleteByUserID removes all transactions of a user, returning the count removed
func (r *transactionRepository) DeleteByUserID(userID uuid.UUID) (int64, error) {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions for user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// GetRecentExpenses retrieves the most recent expense transactions for a user,
// ordered newest first
func (r *transactionRepository) GetRecentExpenses(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND type = ?", userID, models.TransactionTypeExpense).
		Order("date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent expenses: %w", err)
	}
	return transactions, nil
}

// GetExpensesSince retrieves expense transactions on or after the given time
func (r *transactionRepository) GetExpensesSince(userID uuid.UUID, since time.Time) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Where("user_id = ? AND type = ? AND date >= ?",
		userID, models.TransactionTypeExpense, since).
		Order("date DESC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get expenses since %s: %w", since.Format(time.RFC3339), err)
	}
	return transactions, nil
}

// GetPeriodTotals calculates income, expense and savings totals for a period
func (r *transactionRepository) GetPeriodTotals(userID uuid.UUID, startDate, endDate time.Time) (*models.PeriodTotals, error) {
	var result struct {
		Income  string
		Expense string
	}

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END), 0) as income,
			COALESCE(SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END), 0) as expense
		FROM transactions
		WHERE user_id = ?
			AND date BETWEEN ? AND ?
	`

	if err := r.db.Raw(query, userID, startDate, endDate).Scan(&result).Error; err != nil {
		return nil, fmt.Errorf("failed to get period totals: %w", err)
	}

	totals, err := models.NewPeriodTotals(result.Income, result.Expense)
	if err != nil {
		return nil, fmt.Errorf("failed to parse period totals: %w", err)
	}
	return totals, nil
}

// GetCategorySummary retrieves expense totals grouped by category for a period
func (r *transactionRepository) GetCategorySummary(userID uuid.UUID, startDate, endDate time.Time) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	query := `
		SELECT
			category,
			COUNT(*) as transaction_count,
			SUM(amount) as total_amount,
			AVG(amount) as average_amount
		FROM transactions
		WHERE user_id = ?
			AND type = 'expense'
			AND date BETWEEN ? AND ?
		GROUP BY category
		ORDER BY total_amount DESC
	`

	if err := r.db.Raw(query, userID, startDate, endDate).
		Scan(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to get category summary: %w", err)
	}

	return summaries, nil
}

// GetMonthlyTrend retrieves per-month income and expense totals for the last N months
func (r *transactionRepository) GetMonthlyTrend(userID uuid.UUID, months int) ([]models.MonthlyTotal, error) {
	var totals []models.MonthlyTotal

	since := time.Now().UTC().AddDate(0, -months, 0)

	query := `
		SELECT
			CAST(strftime('%Y', date) AS INTEGER) as year,
			CAST(strftime('%m', date) AS INTEGER) as month,
			type,
			SUM(amount) as total
		FROM transactions
		WHERE user_id = ?
			AND date >= ?
		GROUP BY year, month, type
		ORDER BY year ASC, month ASC
	`

	// strftime is sqlite-only; postgres uses EXTRACT
	if r.db.Dialector.Name() == "postgres" {
		query = `
			SELECT
				CAST(EXTRACT(YEAR FROM date) AS INTEGER) as year,
				CAST(EXTRACT(MONTH FROM date) AS INTEGER) as month,
				type,
				SUM(amount) as total
			FROM transactions
			WHERE user_id = ?
				AND date >= ?
			GROUP BY year, month, type
			ORDER BY year ASC, month ASC
		`
	}

	if err := r.db.Raw(query, userID, since).Scan(&totals).Error; err != nil {
		return nil, fmt.Errorf("failed to get monthly trend: %w", err)
	}

	return totals, nil
}

// CountByUser returns the number of transactions for a user
func (r *transactionRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Transaction{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// SetAnomalyFlags updates the anomaly marker on the given transactions
func (r *transactionRepository) SetAnomalyFlags(ids []uuid.UUID, anomalous bool) error {
	if len(ids) == 0 {
		return nil
	}

	if err := r.db.Model(&models.Transaction{}).
		Where("id IN ?", ids).
		Update("is_anomalous", anomalous).Error; err != nil {
		return fmt.Errorf("failed to update anomaly flags: %w", err)
	}
	return nil
}
