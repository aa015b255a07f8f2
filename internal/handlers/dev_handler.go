package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints must not be registered in production environments
type DevHandler struct {
	transactionRepo repositories.TransactionRepositoryInterface
	generator       services.SampleDataGeneratorInterface
	metrics         services.MetricsRecorderInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	transactionRepo repositories.TransactionRepositoryInterface,
	generator services.SampleDataGeneratorInterface,
	metrics services.MetricsRecorderInterface,
) *DevHandler {
	return &DevHandler{
		transactionRepo: transactionRepo,
		generator:       generator,
		metrics:         metrics,
	}
}

// SeedData fills the authenticated user's account with generated history
// @Summary Seed sample data
// @Description Generate realistic transaction history for the authenticated user. Development environments only. Set clear=true to wipe existing transactions first.
// @Tags Development
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SeedRequest false "Generation options"
// @Success 200 {object} dto.SeedResponse "Generation summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dev/seed [post]
func (h *DevHandler) SeedData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	req := dto.SeedRequest{}
	if c.Request().ContentLength > 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
		}
		if err := c.Validate(&req); err != nil {
			return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
		}
	}

	response := dto.SeedResponse{}

	if req.Clear {
		cleared, err := h.transactionRepo.DeleteByUserID(userID)
		if err != nil {
			return SendSystemError(c, err)
		}
		response.Cleared = cleared
	}

	generated := h.generator.GenerateTransactions(userID, req.Count, req.Months)

	batch := make([]models.Transaction, 0, len(generated))
	for _, txn := range generated {
		batch = append(batch, *txn)
	}

	if err := h.transactionRepo.CreateBatch(batch); err != nil {
		return SendSystemError(c, err)
	}

	response.Generated = len(batch)
	h.metrics.IncrementCounter("sample_data.generated", nil)

	return c.JSON(http.StatusOK, response)
}
