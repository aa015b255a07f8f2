package services_test

import (
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	transactionRepo    *repository_mocks.MockTransactionRepositoryInterface
	transactionService services.TransactionServiceInterface
	userID             uuid.UUID
}

func TestTransactionServiceSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.transactionService = services.NewTransactionService(s.transactionRepo, services.NewCategorizerService())
	s.userID = uuid.New()
}

func (s *TransactionServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_WithExplicitCategory() {
	req := &dto.CreateTransactionRequest{
		Description: "Dinner out",
		Amount:      850.50,
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryFood,
		Date:        "2024-02-10",
	}

	s.transactionRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(transaction *models.Transaction) error {
			transaction.ID = uuid.New()
			return nil
		})

	transaction, err := s.transactionService.CreateTransaction(s.userID, req)

	s.Require().NoError(err)
	s.Equal(s.userID, transaction.UserID)
	s.Equal(models.CategoryFood, transaction.Category)
	s.Equal("850.5", transaction.Amount.String())
	s.Equal(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), transaction.Date)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_AutoCategorizesWhenMissing() {
	req := &dto.CreateTransactionRequest{
		Description: "UPI/DR/123/zomato/UTIB/zomato.payu",
		Amount:      450,
		Type:        models.TransactionTypeExpense,
	}

	s.transactionRepo.EXPECT().Create(gomock.Any()).Return(nil)

	transaction, err := s.transactionService.CreateTransaction(s.userID, req)

	s.Require().NoError(err)
	s.Equal(models.CategoryFood, transaction.Category)
}

func (s *TransactionServiceTestSuite) TestCreateTransaction_InvalidDate() {
	req := &dto.CreateTransactionRequest{
		Description: "Dinner",
		Amount:      100,
		Type:        models.TransactionTypeExpense,
		Date:        "10-02-2024",
	}

	transaction, err := s.transactionService.CreateTransaction(s.userID, req)

	s.ErrorIs(err, services.ErrInvalidDate)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_OwnerScope() {
	transactionID := uuid.New()
	s.transactionRepo.EXPECT().GetByID(transactionID).Return(&models.Transaction{
		ID:     transactionID,
		UserID: uuid.New(), // someone else's transaction
	}, nil)

	transaction, err := s.transactionService.GetTransaction(s.userID, transactionID)

	s.ErrorIs(err, services.ErrTransactionNotFound)
	s.Nil(transaction)
}

func (s *TransactionServiceTestSuite) TestGetTransaction_NotFound() {
	transactionID := uuid.New()
	s.transactionRepo.EXPECT().GetByID(transactionID).Return(nil, repositories.ErrTransactionNotFound)

	_, err := s.transactionService.GetTransaction(s.userID, transactionID)

	s.ErrorIs(err, services.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestListTransactions_PaginationDefaults() {
	s.transactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(0, filters.Offset)
			s.Equal(20, filters.Limit)
			s.Equal(s.userID, filters.UserID)
			return []models.Transaction{}, 0, nil
		})

	_, _, err := s.transactionService.ListTransactions(s.userID, dto.TransactionFilters{}, dto.PaginationParams{})

	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestListTransactions_PageOffsetAndCap() {
	s.transactionRepo.EXPECT().
		GetWithFilters(gomock.Any()).
		DoAndReturn(func(filters models.TransactionFilters) ([]models.Transaction, int64, error) {
			s.Equal(200, filters.Offset)
			s.Equal(100, filters.Limit)
			return []models.Transaction{}, 0, nil
		})

	_, _, err := s.transactionService.ListTransactions(
		s.userID,
		dto.TransactionFilters{},
		dto.PaginationParams{Page: 3, Limit: 500},
	)

	s.NoError(err)
}

func (s *TransactionServiceTestSuite) TestUpdateTransaction_PartialPatch() {
	transactionID := uuid.New()
	existing := &models.Transaction{
		ID:          transactionID,
		UserID:      s.userID,
		Description: "Old description",
		Amount:      decimal.NewFromInt(100),
		Type:        models.TransactionTypeExpense,
		Category:    models.CategoryFood,
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}

	s.transactionRepo.EXPECT().GetByID(transactionID).Return(existing, nil)
	s.transactionRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newAmount := 250.0
	newCategory := models.CategoryShopping
	updated, err := s.transactionService.UpdateTransaction(s.userID, transactionID, &dto.UpdateTransactionRequest{
		Amount:   &newAmount,
		Category: &newCategory,
	})

	s.Require().NoError(err)
	s.Equal("250", updated.Amount.String())
	s.Equal(models.CategoryShopping, updated.Category)
	s.Equal("Old description", updated.Description)
	s.Equal(models.TransactionTypeExpense, updated.Type)
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction() {
	transactionID := uuid.New()
	s.transactionRepo.EXPECT().GetByID(transactionID).Return(&models.Transaction{
		ID:     transactionID,
		UserID: s.userID,
	}, nil)
	s.transactionRepo.EXPECT().Delete(transactionID).Return(nil)

	s.NoError(s.transactionService.DeleteTransaction(s.userID, transactionID))
}

func (s *TransactionServiceTestSuite) TestDeleteTransaction_ForeignOwner() {
	transactionID := uuid.New()
	s.transactionRepo.EXPECT().GetByID(transactionID).Return(&models.Transaction{
		ID:     transactionID,
		UserID: uuid.New(),
	}, nil)

	err := s.transactionService.DeleteTransaction(s.userID, transactionID)

	s.ErrorIs(err, services.ErrTransactionNotFound)
}

func (s *TransactionServiceTestSuite) TestGetDashboardStats() {
	thisMonth := &models.PeriodTotals{
		Income:  decimal.NewFromInt(80000),
		Expense: decimal.NewFromInt(30000),
		Savings: decimal.NewFromInt(50000),
	}
	lastMonth := &models.PeriodTotals{
		Income:  decimal.NewFromInt(75000),
		Expense: decimal.NewFromInt(40000),
		Savings: decimal.NewFromInt(35000),
	}

	gomock.InOrder(
		s.transactionRepo.EXPECT().GetPeriodTotals(s.userID, gomock.Any(), gomock.Any()).Return(thisMonth, nil),
		s.transactionRepo.EXPECT().GetPeriodTotals(s.userID, gomock.Any(), gomock.Any()).Return(lastMonth, nil),
	)
	s.transactionRepo.EXPECT().GetCategorySummary(s.userID, gomock.Any(), gomock.Any()).Return([]models.CategorySummary{
		{Category: models.CategoryFood, TransactionCount: 10, TotalAmount: decimal.NewFromInt(18000)},
	}, nil)
	s.transactionRepo.EXPECT().GetMonthlyTrend(s.userID, 6).Return([]models.MonthlyTotal{
		{Year: 2024, Month: 2, Type: models.TransactionTypeExpense, Total: decimal.NewFromInt(30000)},
	}, nil)
	s.transactionRepo.EXPECT().GetByUserID(s.userID, 0, 5).Return([]models.Transaction{
		{ID: uuid.New(), UserID: s.userID, Amount: decimal.NewFromInt(450)},
	}, int64(1), nil)
	s.transactionRepo.EXPECT().CountByUser(s.userID).Return(int64(42), nil)

	stats, err := s.transactionService.GetDashboardStats(s.userID)

	s.Require().NoError(err)
	s.Equal("80000.00", stats.ThisMonth.Income)
	s.Equal("40000.00", stats.LastMonth.Expense)
	s.Require().Len(stats.CategoryBreakdown, 1)
	s.Equal("18000.00", stats.CategoryBreakdown[0].Total)
	s.Require().Len(stats.MonthlyTrend, 1)
	s.Equal(2, stats.MonthlyTrend[0].Month)
	s.Len(stats.RecentTransactions, 1)
	s.Equal(int64(42), stats.TotalTransactions)
}
