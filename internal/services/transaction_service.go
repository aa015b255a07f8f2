package services

import (
	"errors"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100

	dashboardTrendMonths = 6
	dashboardRecentLimit = 5
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidDate         = errors.New("invalid date format")
)

var requestDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categorizer     CategorizerServiceInterface
}

// NewTransactionService creates the transaction CRUD and dashboard service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categorizer CategorizerServiceInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categorizer:     categorizer,
	}
}

// CreateTransaction records a manually entered transaction. When no
// category is supplied the heuristic engine assigns one.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	date := time.Now().UTC()
	if req.Date != "" {
		parsed, err := parseRequestDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	description := models.TruncateDescription(req.Description)

	category := req.Category
	if category == "" {
		category = s.categorizer.Categorize(description, req.Type).Category
	}

	transaction := &models.Transaction{
		UserID:      userID,
		Description: description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Type:        req.Type,
		Category:    category,
		Date:        date,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction", "user_id", userID, "error", err)
		return nil, err
	}

	return transaction, nil
}

// GetTransaction fetches one transaction, scoped to its owner. A foreign
// transaction reads as not found rather than forbidden.
func (s *transactionService) GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	if transaction.UserID != userID {
		return nil, ErrTransactionNotFound
	}

	return transaction, nil
}

func (s *transactionService) ListTransactions(userID uuid.UUID, filters dto.TransactionFilters, page dto.PaginationParams) ([]models.Transaction, int64, error) {
	limit := page.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	offset := 0
	if page.Page > 1 {
		offset = (page.Page - 1) * limit
	}

	return s.transactionRepo.GetWithFilters(models.TransactionFilters{
		UserID:    userID,
		StartDate: filters.StartDate,
		EndDate:   filters.EndDate,
		Type:      filters.Type,
		Category:  filters.Category,
		Search:    filters.Search,
		Offset:    offset,
		Limit:     limit,
	})
}

func (s *transactionService) UpdateTransaction(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.GetTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		transaction.Description = models.TruncateDescription(*req.Description)
	}
	if req.Amount != nil {
		transaction.Amount = decimal.NewFromFloat(*req.Amount)
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Category != nil {
		transaction.Category = *req.Category
	}
	if req.Date != nil {
		parsed, err := parseRequestDate(*req.Date)
		if err != nil {
			return nil, err
		}
		transaction.Date = parsed
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		slog.Error("failed to update transaction",
			"user_id", userID,
			"transaction_id", transactionID,
			"error", err,
		)
		return nil, err
	}

	return transaction, nil
}

func (s *transactionService) DeleteTransaction(userID, transactionID uuid.UUID) error {
	if _, err := s.GetTransaction(userID, transactionID); err != nil {
		return err
	}
	return s.transactionRepo.Delete(transactionID)
}

// GetDashboardStats aggregates the current and previous month, the
// category breakdown, the six-month trend and the latest activity.
func (s *transactionService) GetDashboardStats(userID uuid.UUID) (*dto.DashboardStats, error) {
	now := time.Now().UTC()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	startOfLastMonth := startOfMonth.AddDate(0, -1, 0)
	endOfLastMonth := startOfMonth.Add(-time.Second)

	thisMonth, err := s.transactionRepo.GetPeriodTotals(userID, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	lastMonth, err := s.transactionRepo.GetPeriodTotals(userID, startOfLastMonth, endOfLastMonth)
	if err != nil {
		return nil, err
	}

	summaries, err := s.transactionRepo.GetCategorySummary(userID, startOfMonth, now)
	if err != nil {
		return nil, err
	}

	trend, err := s.transactionRepo.GetMonthlyTrend(userID, dashboardTrendMonths)
	if err != nil {
		return nil, err
	}

	recent, _, err := s.transactionRepo.GetByUserID(userID, 0, dashboardRecentLimit)
	if err != nil {
		return nil, err
	}

	total, err := s.transactionRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	breakdown := make([]dto.CategoryBreakdownItem, 0, len(summaries))
	for _, summary := range summaries {
		breakdown = append(breakdown, dto.CategoryBreakdownItem{
			Category: summary.Category,
			Total:    summary.TotalAmount.StringFixed(2),
			Count:    summary.TransactionCount,
		})
	}

	trendPoints := make([]dto.MonthlyTrendPoint, 0, len(trend))
	for _, point := range trend {
		trendPoints = append(trendPoints, dto.MonthlyTrendPoint{
			Year:  point.Year,
			Month: point.Month,
			Type:  point.Type,
			Total: point.Total.StringFixed(2),
		})
	}

	return &dto.DashboardStats{
		ThisMonth:          periodStats(thisMonth),
		LastMonth:          periodStats(lastMonth),
		CategoryBreakdown:  breakdown,
		MonthlyTrend:       trendPoints,
		RecentTransactions: dto.NewTransactionResponseList(recent),
		TotalTransactions:  total,
	}, nil
}

func periodStats(totals *models.PeriodTotals) dto.PeriodStats {
	return dto.PeriodStats{
		Income:  totals.Income.StringFixed(2),
		Expense: totals.Expense.StringFixed(2),
		Savings: totals.Savings.StringFixed(2),
	}
}

func parseRequestDate(value string) (time.Time, error) {
	for _, layout := range requestDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}
