package dto

import (
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
)

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	StartDate *time.Time `query:"startDate"`
	EndDate   *time.Time `query:"endDate"`
	Type      string     `query:"type"`
	Category  string     `query:"category"`
	Search    string     `query:"search"`
}

// PaginationParams contains pagination parameters
type PaginationParams struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// CreateTransactionRequest contains data for a manually entered transaction
type CreateTransactionRequest struct {
	Description string  `json:"description" validate:"max=200"`
	Amount      float64 `json:"amount" validate:"required,positive_amount"`
	Type        string  `json:"type" validate:"required,transaction_type"`
	Category    string  `json:"category" validate:"omitempty,transaction_category"`
	Date        string  `json:"date" validate:"omitempty"`
}

// UpdateTransactionRequest contains fields a user may edit on a transaction
type UpdateTransactionRequest struct {
	Description *string  `json:"description" validate:"omitempty,max=200"`
	Amount      *float64 `json:"amount" validate:"omitempty,positive_amount"`
	Type        *string  `json:"type" validate:"omitempty,transaction_type"`
	Category    *string  `json:"category" validate:"omitempty,transaction_category"`
	Date        *string  `json:"date" validate:"omitempty"`
}

// TransactionResponse is the API shape of one transaction
type TransactionResponse struct {
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Date        time.Time `json:"date"`
	IsAnomalous bool      `json:"isAnomalous"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Total      int64 `json:"total"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   PaginationInfo        `json:"pagination"`
}

// NewTransactionResponse converts a model to its API shape
func NewTransactionResponse(t *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount.StringFixed(2),
		Type:        t.Type,
		Category:    t.Category,
		Date:        t.Date,
		IsAnomalous: t.IsAnomalous,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTransactionResponseList converts a slice of models
func NewTransactionResponseList(txns []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(txns))
	for i := range txns {
		out = append(out, NewTransactionResponse(&txns[i]))
	}
	return out
}
