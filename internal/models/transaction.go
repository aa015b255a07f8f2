package models

import (
	"errors"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"

	// MaxDescriptionLength is the persisted description limit;
	// longer statement narrations are truncated, never rejected.
	MaxDescriptionLength = 200

	// DefaultDescription is stored when a statement row carries no
	// usable description field.
	DefaultDescription = "Unknown"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidCategory        = errors.New("invalid transaction category")
	ErrInvalidAmount          = errors.New("transaction amount must be positive")
)

// Transaction is the canonical normalized record produced by the
// ingestion pipeline or direct entry. Amount is always positive;
// direction lives in Type.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Type        string          `gorm:"type:varchar(10);not null;index" json:"type"`
	Category    string          `gorm:"type:varchar(20);not null;default:'Other';index" json:"category"`
	Date        time.Time       `gorm:"not null;index" json:"date"`
	IsAnomalous bool            `gorm:"not null;default:false" json:"is_anomalous"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()

	if t.Category == "" {
		t.Category = CategoryOther
	}
	if t.Description == "" {
		t.Description = DefaultDescription
	}
	if t.Date.IsZero() {
		t.Date = now
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction. Updates run against a bare model
// receiver, so validation of the changed record happens in the repository
// where the loaded row is in hand; here we only bump the timestamp.
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	tx.Statement.SetColumn("updated_at", time.Now())
	return nil
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}

	if !IsValidCategory(t.Category) {
		return ErrInvalidCategory
	}

	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Description) > MaxDescriptionLength {
		return errors.New("description too long")
	}

	return nil
}

// IsExpense returns true for outgoing transactions
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true for incoming transactions
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// TruncateDescription clamps the description to the persisted limit
// and substitutes the default when it is empty.
func TruncateDescription(description string) string {
	if description == "" {
		return DefaultDescription
	}
	if len(description) > MaxDescriptionLength {
		// Cut on a rune boundary so multi-byte text is never split mid-rune.
		cut := MaxDescriptionLength
		for cut > 0 && !utf8.RuneStart(description[cut]) {
			cut--
		}
		return description[:cut]
	}
	return description
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}
