package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles categorization, forecast, anomaly and insight
// endpoints. The ML-backed routes degrade to the local heuristic engine
// when the remote service is unavailable, so they never fail on its
// account.
type AnalyticsHandler struct {
	mlService      services.MLServiceInterface
	insightService services.InsightServiceInterface
	anomalyService services.AnomalyServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(
	mlService services.MLServiceInterface,
	insightService services.InsightServiceInterface,
	anomalyService services.AnomalyServiceInterface,
) *AnalyticsHandler {
	return &AnalyticsHandler{
		mlService:      mlService,
		insightService: insightService,
		anomalyService: anomalyService,
	}
}

// Categorize resolves categories for a batch of descriptions
// @Summary Categorize descriptions
// @Description Resolve a category for each description, in input order. Served remotely when possible, otherwise by the local rule engine with fallback=true.
// @Tags Analytics
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CategorizeRequest true "Descriptions to categorize"
// @Success 200 {object} dto.CategorizeResponse "Categories in input order"
// @Failure 400 {object} errors.ErrorResponse "ANALYTICS_001 - No descriptions supplied"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ml/categorize [post]
func (h *AnalyticsHandler) Categorize(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CategorizeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if len(req.Descriptions) == 0 {
		return SendError(c, errors.AnalyticsNoDescriptions)
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	response, err := h.mlService.CategorizeDescriptions(c.Request().Context(), &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetForecast projects next-month spending
// @Summary Spending forecast
// @Description Project next-month spending from recent expense history. Served remotely when possible, otherwise computed locally with fallback=true.
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ForecastResponse "Spending projection"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ml/forecast [get]
func (h *AnalyticsHandler) GetForecast(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	response, err := h.mlService.GetForecast(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetAnomalies flags statistically unusual expenses
// @Summary Detect anomalies
// @Description Flag expenses far above the user's recent average. Detection is advisory; pass commit=true to persist the anomaly markers on the flagged transactions.
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Param commit query bool false "Persist anomaly flags" default(false)
// @Success 200 {object} dto.AnomaliesResponse "Detected anomalies, highest score first"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ml/anomalies [get]
func (h *AnalyticsHandler) GetAnomalies(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	response, err := h.mlService.GetAnomalies(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	if c.QueryParam("commit") == "true" && len(response.Anomalies) > 0 {
		if err := h.anomalyService.CommitFlags(response.Anomalies); err != nil {
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, response)
}

// GetInsights derives current-month observations
// @Summary Monthly insights
// @Description Savings rate, top spending category and overspending signals for the current month
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.InsightsResponse "Current-month insights"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /ml/insights [get]
func (h *AnalyticsHandler) GetInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	response, err := h.insightService.GenerateInsights(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}
