package services_test

import (
	"errors"
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/repositories/repository_mocks"
	"fintrack/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type InsightServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	insightService  services.InsightServiceInterface
	userID          uuid.UUID
}

func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceTestSuite))
}

func (s *InsightServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.insightService = services.NewInsightService(s.transactionRepo)
	s.userID = uuid.New()
}

func (s *InsightServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *InsightServiceTestSuite) expectMonthData(totals *models.PeriodTotals, summaries []models.CategorySummary) {
	s.transactionRepo.EXPECT().
		GetPeriodTotals(s.userID, gomock.Any(), gomock.Any()).
		Return(totals, nil)
	s.transactionRepo.EXPECT().
		GetCategorySummary(s.userID, gomock.Any(), gomock.Any()).
		Return(summaries, nil)
}

func findInsight(insights []models.Insight, title string) *models.Insight {
	for i := range insights {
		if insights[i].Title == title {
			return &insights[i]
		}
	}
	return nil
}

func (s *InsightServiceTestSuite) TestGenerateInsights_HealthyMonth() {
	s.expectMonthData(
		&models.PeriodTotals{
			Income:  decimal.NewFromInt(80000),
			Expense: decimal.NewFromInt(30000),
			Savings: decimal.NewFromInt(50000),
		},
		[]models.CategorySummary{
			{Category: models.CategoryFood, TransactionCount: 12, TotalAmount: decimal.NewFromInt(18000)},
			{Category: models.CategoryTransport, TransactionCount: 8, TotalAmount: decimal.NewFromInt(12000)},
		},
	)

	resp, err := s.insightService.GenerateInsights(s.userID)

	s.Require().NoError(err)
	s.InDelta(62.5, resp.SavingsRate, 0.001)
	s.Equal("80000.00", resp.TotalIncome)
	s.Equal("30000.00", resp.TotalExpense)

	savings := findInsight(resp.Insights, "Savings Rate")
	s.Require().NotNil(savings)
	s.Equal(models.InsightKindInfo, savings.Kind)
	s.Contains(savings.Message, "62.5%")

	top := findInsight(resp.Insights, "Top Spending")
	s.Require().NotNil(top)
	s.Equal(models.InsightKindWarning, top.Kind)
	s.Contains(top.Message, models.CategoryFood)
	s.Contains(top.Message, "₹18000")

	onTrack := findInsight(resp.Insights, "On Track")
	s.Require().NotNil(onTrack)
	s.Equal(models.InsightKindSuccess, onTrack.Kind)
	s.Nil(findInsight(resp.Insights, "Overspending Alert"))
}

func (s *InsightServiceTestSuite) TestGenerateInsights_OverspendingMonth() {
	s.expectMonthData(
		&models.PeriodTotals{
			Income:  decimal.NewFromInt(40000),
			Expense: decimal.NewFromInt(55000),
			Savings: decimal.NewFromInt(-15000),
		},
		[]models.CategorySummary{
			{Category: models.CategoryShopping, TransactionCount: 5, TotalAmount: decimal.NewFromInt(40000)},
		},
	)

	resp, err := s.insightService.GenerateInsights(s.userID)

	s.Require().NoError(err)
	s.InDelta(-37.5, resp.SavingsRate, 0.001)

	alert := findInsight(resp.Insights, "Overspending Alert")
	s.Require().NotNil(alert)
	s.Equal(models.InsightKindDanger, alert.Kind)
	s.Nil(findInsight(resp.Insights, "On Track"))
}

func (s *InsightServiceTestSuite) TestGenerateInsights_NoIncome() {
	s.expectMonthData(
		&models.PeriodTotals{
			Income:  decimal.Zero,
			Expense: decimal.NewFromInt(5000),
			Savings: decimal.NewFromInt(-5000),
		},
		[]models.CategorySummary{},
	)

	resp, err := s.insightService.GenerateInsights(s.userID)

	s.Require().NoError(err)
	s.Zero(resp.SavingsRate)
	s.Nil(findInsight(resp.Insights, "Top Spending"))
	s.NotNil(findInsight(resp.Insights, "Overspending Alert"))
}

func (s *InsightServiceTestSuite) TestGenerateInsights_RepositoryError() {
	s.transactionRepo.EXPECT().
		GetPeriodTotals(s.userID, gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	resp, err := s.insightService.GenerateInsights(s.userID)

	s.Error(err)
	s.Nil(resp)
}
