package services

import (
	"context"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"

	"github.com/google/uuid"
)

// StatementParserInterface locates and parses the transaction table
// inside a raw statement export
type StatementParserInterface interface {
	// Parse strips BOM and preamble, detects the header row, and returns
	// normalized rows. Fails with ErrHeaderNotFound when no header-like
	// line exists.
	Parse(raw []byte) ([]RawStatementRow, error)
}

// RowExtractorInterface resolves typed fields from one parsed statement row
type RowExtractorInterface interface {
	Extract(row RawStatementRow) RowResult
}

// CategorizerServiceInterface is the local heuristic categorization engine
type CategorizerServiceInterface interface {
	// Categorize maps (description, type) to a category. Total and
	// deterministic; never fails.
	Categorize(description, transactionType string) *models.CategorizationResult

	// BatchCategorize categorizes multiple descriptions, preserving order
	BatchCategorize(descriptions []string, transactionType string) []*models.CategorizationResult
}

// ImportServiceInterface runs the full statement ingestion pipeline
type ImportServiceInterface interface {
	ImportStatement(userID uuid.UUID, raw []byte) (*dto.ImportSummary, error)
}

// TransactionServiceInterface defines transaction CRUD and dashboard operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error)
	ListTransactions(userID uuid.UUID, filters dto.TransactionFilters, page dto.PaginationParams) ([]models.Transaction, int64, error)
	UpdateTransaction(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error)
	DeleteTransaction(userID, transactionID uuid.UUID) error
	GetDashboardStats(userID uuid.UUID) (*dto.DashboardStats, error)
}

// ForecastServiceInterface projects next-period spending
type ForecastServiceInterface interface {
	// ForecastSpending loads the user's recent expense history and
	// projects next-month spending from it
	ForecastSpending(userID uuid.UUID) (*models.Forecast, error)

	// ForecastFromHistory computes the projection from an explicit
	// history. Empty input yields a zero-state forecast, never an error.
	ForecastFromHistory(expenses []models.Transaction) *models.Forecast
}

// AnomalyServiceInterface flags statistically unusual expenses
type AnomalyServiceInterface interface {
	DetectAnomalies(userID uuid.UUID) ([]models.AnomalyFlag, error)

	// DetectFromHistory is the pure detection step: fewer than the
	// minimum sample size yields an empty result
	DetectFromHistory(expenses []models.Transaction) []models.AnomalyFlag

	// CommitFlags persists anomaly markers onto the flagged transactions.
	// Detection alone is advisory; persistence is this explicit step.
	CommitFlags(flags []models.AnomalyFlag) error
}

// InsightServiceInterface derives current-month observations
type InsightServiceInterface interface {
	GenerateInsights(userID uuid.UUID) (*dto.InsightsResponse, error)
}

// MLClientInterface talks to the remote categorization/analytics service
type MLClientInterface interface {
	Categorize(ctx context.Context, descriptions []string) ([]string, error)
	Forecast(ctx context.Context, points []dto.ExpensePoint) (*models.Forecast, error)
	Anomalies(ctx context.Context, inputs []dto.AnomalyInput) ([]models.AnomalyFlag, error)
}

// MLServiceInterface serves analytics with a remote-first, local-fallback
// policy: every call either returns the remote result or degrades to the
// local heuristic engine, tagged accordingly. It never fails because the
// remote side is down.
type MLServiceInterface interface {
	CategorizeDescriptions(ctx context.Context, req *dto.CategorizeRequest) (*dto.CategorizeResponse, error)
	GetForecast(ctx context.Context, userID uuid.UUID) (*dto.ForecastResponse, error)
	GetAnomalies(ctx context.Context, userID uuid.UUID) (*dto.AnomaliesResponse, error)
}

// SampleDataGeneratorInterface generates realistic transaction data for
// development environments
type SampleDataGeneratorInterface interface {
	GenerateTransactions(userID uuid.UUID, count, months int) []*models.Transaction
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
