package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction CRUD and dashboard endpoints
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a manually entered transaction
// @Summary Create transaction
// @Description Record a manual transaction. When category is omitted the heuristic engine assigns one from the description.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction data"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_005 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		if err == services.ErrInvalidDate {
			return SendError(c, errors.ValidationInvalidDate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(transaction))
}

// ListTransactions retrieves paginated transaction history with filtering
// @Summary List transactions
// @Description Retrieve paginated transaction history with optional date, type, category and text filters
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Results per page (max 100)" default(20)
// @Param startDate query string false "Filter by start date (YYYY-MM-DD)"
// @Param endDate query string false "Filter by end date (YYYY-MM-DD)"
// @Param type query string false "Filter by transaction type" Enums(income, expense)
// @Param category query string false "Filter by category"
// @Param search query string false "Case-insensitive description substring"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions with pagination"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid date filter"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	startDate, err := getDateParam(c, "startDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}
	endDate, err := getDateParam(c, "endDate")
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
	}

	filters := dto.TransactionFilters{
		StartDate: startDate,
		EndDate:   endDate,
		Type:      c.QueryParam("type"),
		Category:  c.QueryParam("category"),
		Search:    c.QueryParam("search"),
	}

	page := dto.PaginationParams{
		Page:  getIntParam(c, "page", 1),
		Limit: getIntParam(c, "limit", 20),
	}
	if page.Page < 1 {
		page.Page = 1
	}
	if page.Limit < 1 {
		page.Limit = 20
	}
	if page.Limit > 100 {
		page.Limit = 100
	}

	transactions, total, err := h.transactionService.ListTransactions(userID, filters, page)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalPages := int(total) / page.Limit
	if int(total)%page.Limit != 0 {
		totalPages++
	}

	return c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.NewTransactionResponseList(transactions),
		Pagination: dto.PaginationInfo{
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: totalPages,
			Total:      total,
		},
	})
}

// GetTransaction retrieves a single transaction by ID
// @Summary Get transaction
// @Description Retrieve one transaction owned by the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.TransactionResponse "Transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	transaction, err := h.transactionService.GetTransaction(userID, transactionID)
	if err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction edits fields of an existing transaction
// @Summary Update transaction
// @Description Partially update a transaction. Only supplied fields change.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Success 200 {object} dto.TransactionResponse "Updated transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body or VALIDATION_005 - Invalid date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	transaction, err := h.transactionService.UpdateTransaction(userID, transactionID, &req)
	if err != nil {
		switch err {
		case services.ErrTransactionNotFound:
			return SendError(c, errors.TransactionNotFound)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// DeleteTransaction removes a transaction
// @Summary Delete transaction
// @Description Delete one transaction owned by the authenticated user
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param id path string true "Transaction ID (UUID)"
// @Success 200 {object} SuccessResponse "Deletion confirmation"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid transaction ID"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "TRANSACTION_001 - Transaction not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.DeleteTransaction(userID, transactionID); err != nil {
		if err == services.ErrTransactionNotFound {
			return SendError(c, errors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// GetDashboardStats aggregates the dashboard view
// @Summary Dashboard statistics
// @Description Current and previous month totals, category breakdown, six-month trend and recent activity
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardStats "Dashboard statistics"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *TransactionHandler) GetDashboardStats(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	stats, err := h.transactionService.GetDashboardStats(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
