package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsHandlerTestSuite struct {
	suite.Suite
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockML      *service_mocks.MockMLServiceInterface
	mockInsight *service_mocks.MockInsightServiceInterface
	mockAnomaly *service_mocks.MockAnomalyServiceInterface
	handler     *AnalyticsHandler
	userID      uuid.UUID
}

func TestAnalyticsHandlerSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsHandlerTestSuite))
}

func (s *AnalyticsHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.echo.Validator = NewValidator()
	s.ctrl = gomock.NewController(s.T())
	s.mockML = service_mocks.NewMockMLServiceInterface(s.ctrl)
	s.mockInsight = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.mockAnomaly = service_mocks.NewMockAnomalyServiceInterface(s.ctrl)
	s.handler = NewAnalyticsHandler(s.mockML, s.mockInsight, s.mockAnomaly)
	s.userID = uuid.New()
}

func (s *AnalyticsHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AnalyticsHandlerTestSuite) newGetContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)
	return c, rec
}

// Categorize

func (s *AnalyticsHandlerTestSuite) TestCategorize_Success() {
	s.mockML.EXPECT().
		CategorizeDescriptions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *dto.CategorizeRequest) (*dto.CategorizeResponse, error) {
			s.Equal([]string{"UPI/DR/1/zomato@payu", "ATM WDL"}, req.Descriptions)
			return &dto.CategorizeResponse{
				Categories: []string{models.CategoryFood, models.CategoryOther},
				Fallback:   false,
			}, nil
		})

	body := `{"descriptions":["UPI/DR/1/zomato@payu","ATM WDL"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ml/categorize", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.userID)

	s.NoError(s.handler.Categorize(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.CategorizeResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal([]string{models.CategoryFood, models.CategoryOther}, response.Categories)
	s.False(response.Fallback)
}

func (s *AnalyticsHandlerTestSuite) TestCategorize_EmptyDescriptions() {
	testCases := []struct {
		name string
		body string
	}{
		{"empty array", `{"descriptions":[]}`},
		{"missing field", `{}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/ml/categorize", strings.NewReader(tc.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := s.echo.NewContext(req, rec)
			c.Set("user_id", s.userID)

			s.NoError(s.handler.Categorize(c))
			s.Equal(http.StatusBadRequest, rec.Code)

			var response ErrorResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal("ANALYTICS_001", response.Error.Code)
		})
	}
}

func (s *AnalyticsHandlerTestSuite) TestCategorize_Unauthorized() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/ml/categorize", strings.NewReader(`{"descriptions":["x"]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Categorize(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}

// Forecast

func (s *AnalyticsHandlerTestSuite) TestGetForecast_Success() {
	forecast := &dto.ForecastResponse{
		Forecast: &models.Forecast{
			DailyAverage:      decimal.RequireFromString("500.00"),
			NextMonthEstimate: decimal.RequireFromString("15000.00"),
			Trend:             models.TrendStable,
		},
		Fallback: true,
		Note:     "ML service unavailable, using rule-based fallback",
	}

	s.mockML.EXPECT().
		GetForecast(gomock.Any(), s.userID).
		Return(forecast, nil)

	c, rec := s.newGetContext("/api/v1/ml/forecast")

	s.NoError(s.handler.GetForecast(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ForecastResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Fallback)
	s.Equal(models.TrendStable, response.Forecast.Trend)
}

// Anomalies

func (s *AnalyticsHandlerTestSuite) sampleAnomalies() []models.AnomalyFlag {
	return []models.AnomalyFlag{
		{
			TransactionID: uuid.New(),
			Description:   "POS LUXURY STORE",
			Amount:        decimal.RequireFromString("45000.00"),
			Category:      models.CategoryShopping,
			Date:          time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
			Score:         3.2,
			Reason:        "Amount is significantly higher than your average expense",
		},
	}
}

func (s *AnalyticsHandlerTestSuite) TestGetAnomalies_AdvisoryByDefault() {
	anomalies := s.sampleAnomalies()

	s.mockML.EXPECT().
		GetAnomalies(gomock.Any(), s.userID).
		Return(&dto.AnomaliesResponse{Anomalies: anomalies}, nil)

	c, rec := s.newGetContext("/api/v1/ml/anomalies")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.AnomaliesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Anomalies, 1)
	s.Equal(anomalies[0].TransactionID, response.Anomalies[0].TransactionID)
}

func (s *AnalyticsHandlerTestSuite) TestGetAnomalies_CommitPersistsFlags() {
	anomalies := s.sampleAnomalies()

	s.mockML.EXPECT().
		GetAnomalies(gomock.Any(), s.userID).
		Return(&dto.AnomaliesResponse{Anomalies: anomalies}, nil)

	s.mockAnomaly.EXPECT().
		CommitFlags(anomalies).
		Return(nil)

	c, rec := s.newGetContext("/api/v1/ml/anomalies?commit=true")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *AnalyticsHandlerTestSuite) TestGetAnomalies_CommitSkippedWhenEmpty() {
	s.mockML.EXPECT().
		GetAnomalies(gomock.Any(), s.userID).
		Return(&dto.AnomaliesResponse{Anomalies: []models.AnomalyFlag{}}, nil)

	c, rec := s.newGetContext("/api/v1/ml/anomalies?commit=true")

	s.NoError(s.handler.GetAnomalies(c))
	s.Equal(http.StatusOK, rec.Code)
}

// Insights

func (s *AnalyticsHandlerTestSuite) TestGetInsights_Success() {
	insights := &dto.InsightsResponse{
		Insights: []models.Insight{
			{Kind: models.InsightKindInfo, Title: "Savings Rate", Message: "You saved 62.5% of your income this month"},
		},
		SavingsRate:  62.5,
		TotalIncome:  "80000.00",
		TotalExpense: "30000.00",
	}

	s.mockInsight.EXPECT().
		GenerateInsights(s.userID).
		Return(insights, nil)

	c, rec := s.newGetContext("/api/v1/ml/insights")

	s.NoError(s.handler.GetInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.InsightsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(62.5, response.SavingsRate)
	s.Len(response.Insights, 1)
}
