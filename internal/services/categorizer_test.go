package services

import (
	"testing"

	"fintrack/internal/models"

	"github.com/stretchr/testify/suite"
)

type CategorizerTestSuite struct {
	suite.Suite
	categorizer CategorizerServiceInterface
}

func TestCategorizerSuite(t *testing.T) {
	suite.Run(t, new(CategorizerTestSuite))
}

func (s *CategorizerTestSuite) SetupTest() {
	s.categorizer = NewCategorizerService()
}

func (s *CategorizerTestSuite) TestCategorize_UPIHandleTier() {
	testCases := []struct {
		description      string
		expectedCategory string
		name             string
	}{
		{"UPI/DR/123456789/zomato/UTIB/zomato.payu", models.CategoryFood, "Zomato food order"},
		{"UPI/DR/987654321/merchant/HDFC/swiggyupi", models.CategoryFood, "Swiggy handle"},
		{"UPI/DR/555555555/shop/ICIC/amazonpay", models.CategoryShopping, "Amazon Pay handle"},
		{"UPI/DR/444444444/rider/SBIN/uber.rzp", models.CategoryTransport, "Uber handle"},
		{"UPI/DR/333333333/sub/AXIS/netflixupi", models.CategoryEntertainment, "Netflix handle"},
		{"UPI/DR/222222222/med/KKBK/pharmeasy.pay", models.CategoryHealth, "PharmEasy handle"},
		{"UPI/DR/111111111/inv/YESB/groww.rzp", models.CategoryInvestment, "Groww handle"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.categorizer.Categorize(tc.description, models.TransactionTypeExpense)
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(models.CategorizationSourceUPIHandle, result.Source)
			s.NotEmpty(result.MatchedPattern)
		})
	}
}

func (s *CategorizerTestSuite) TestCategorize_MerchantTierWhenHandleUnknown() {
	// Handle segment is unrecognized, merchant segment names the service
	result := s.categorizer.Categorize("UPI/DR/123456789/zomato/UTIB/unknownhandle", models.TransactionTypeExpense)

	s.Equal(models.CategoryFood, result.Category)
	s.Equal(models.CategorizationSourceMerchant, result.Source)
	s.Equal("zomato", result.MatchedPattern)
}

func (s *CategorizerTestSuite) TestCategorize_FullTextTier() {
	testCases := []struct {
		description      string
		expectedCategory string
		name             string
	}{
		{"POS PURCHASE LOCAL RESTAURANT BLR", models.CategoryFood, "restaurant keyword"},
		{"NEFT TO CITY HOSPITAL", models.CategoryHealth, "hospital keyword"},
		{"ELECTRICITY BILL PAYMENT", models.CategoryUtilities, "electricity keyword"},
		{"MONTHLY HOUSE RENT TRANSFER", models.CategoryRent, "rent keyword"},
		{"PETROL PUMP HP", models.CategoryTransport, "fuel keyword"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.categorizer.Categorize(tc.description, models.TransactionTypeExpense)
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(models.CategorizationSourceDescription, result.Source)
		})
	}
}

func (s *CategorizerTestSuite) TestCategorize_ATMWithdrawal() {
	result := s.categorizer.Categorize("ATM-WDR 00412 MG ROAD", models.TransactionTypeExpense)

	s.Equal(models.CategoryOther, result.Category)
	s.Equal(models.CategorizationSourceDescription, result.Source)
}

func (s *CategorizerTestSuite) TestCategorize_UnmatchedFallsBackToOther() {
	result := s.categorizer.Categorize("CHQ 001234 CLEARING", models.TransactionTypeExpense)

	s.Equal(models.CategoryOther, result.Category)
	s.Equal(models.CategorizationSourceFallback, result.Source)
	s.Empty(result.MatchedPattern)
}

func (s *CategorizerTestSuite) TestCategorize_EmptyDescription() {
	result := s.categorizer.Categorize("", models.TransactionTypeExpense)

	s.Equal(models.CategoryOther, result.Category)
	s.Equal(models.CategorizationSourceFallback, result.Source)
}

func (s *CategorizerTestSuite) TestCategorize_IncomeRules() {
	testCases := []struct {
		description      string
		expectedCategory string
		name             string
	}{
		{"SALARY CREDIT ACME CORP", models.CategorySalary, "salary keyword"},
		{"MONTHLY STIPEND TRANSFER", models.CategorySalary, "stipend keyword"},
		{"ZERODHA PAYOUT", models.CategoryInvestment, "broker payout"},
		{"AMAZON REFUND ORDER 403", models.CategoryOther, "refund stays Other"},
		{"CASHBACK OFFER", models.CategoryOther, "cashback stays Other"},
		{"IMPS-IN FROM RAMESH", models.CategorySalary, "unmatched income defaults to Salary"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result := s.categorizer.Categorize(tc.description, models.TransactionTypeIncome)
			s.Equal(tc.expectedCategory, result.Category)
			s.Equal(models.CategorizationSourceIncome, result.Source)
		})
	}
}

func (s *CategorizerTestSuite) TestCategorize_Deterministic() {
	description := "UPI/DR/123456789/zomato/UTIB/zomato.payu"

	first := s.categorizer.Categorize(description, models.TransactionTypeExpense)
	for i := 0; i < 10; i++ {
		again := s.categorizer.Categorize(description, models.TransactionTypeExpense)
		s.Equal(first.Category, again.Category)
		s.Equal(first.Source, again.Source)
		s.Equal(first.MatchedPattern, again.MatchedPattern)
	}
}

func (s *CategorizerTestSuite) TestBatchCategorize_PreservesOrder() {
	descriptions := []string{
		"UPI/DR/123456789/zomato/UTIB/zomato.payu",
		"ATM-WDR 00412 MG ROAD",
		"UPI/DR/555555555/shop/ICIC/amazonpay",
	}

	results := s.categorizer.BatchCategorize(descriptions, models.TransactionTypeExpense)

	s.Require().Len(results, 3)
	s.Equal(models.CategoryFood, results[0].Category)
	s.Equal(models.CategoryOther, results[1].Category)
	s.Equal(models.CategoryShopping, results[2].Category)
}

func (s *CategorizerTestSuite) TestParsePaymentReference_UPI() {
	ref := parsePaymentReference("UPI/DR/123456789/Zomato Ltd/UTIB/zomato.payu")

	s.True(ref.IsUPI)
	s.Equal("DR", ref.Direction)
	s.Equal("zomato ltd", ref.Merchant)
	s.Equal("zomato.payu", ref.Handle)
}

func (s *CategorizerTestSuite) TestParsePaymentReference_IncomingTransfer() {
	for _, desc := range []string{"IMPS-IN FROM RAMESH", "NEFT-IN ACME CORP", "NEFT_IN BONUS"} {
		ref := parsePaymentReference(desc)
		s.True(ref.IsIncoming, desc)
		s.False(ref.IsUPI, desc)
	}
}
