package services

import (
	"context"
	"errors"
	"log/slog"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const (
	fallbackNote         = "ML service unavailable, using rule-based fallback"
	anomalyFallbackLimit = 100
)

type mlService struct {
	client          MLClientInterface
	categorizer     CategorizerServiceInterface
	forecastService ForecastServiceInterface
	anomalyService  AnomalyServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewMLService builds the remote-first analytics facade. Each operation
// tries the remote service and degrades to the local heuristic engine
// when the call fails or the circuit breaker is open.
func NewMLService(
	client MLClientInterface,
	categorizer CategorizerServiceInterface,
	forecastService ForecastServiceInterface,
	anomalyService AnomalyServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) MLServiceInterface {
	return &mlService{
		client:          client,
		categorizer:     categorizer,
		forecastService: forecastService,
		anomalyService:  anomalyService,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *mlService) CategorizeDescriptions(ctx context.Context, req *dto.CategorizeRequest) (*dto.CategorizeResponse, error) {
	transactionType := req.Type
	if transactionType == "" {
		transactionType = models.TransactionTypeExpense
	}

	categories, err := s.client.Categorize(ctx, req.Descriptions)
	if err == nil {
		s.recordRemote("categorize")
		return &dto.CategorizeResponse{Categories: categories}, nil
	}

	slog.Warn("remote categorization unavailable, using local rules", "error", err)
	s.recordFallback("categorize", err)

	results := s.categorizer.BatchCategorize(req.Descriptions, transactionType)
	fallbackCategories := make([]string, len(results))
	for i, result := range results {
		fallbackCategories[i] = result.Category
	}

	return &dto.CategorizeResponse{
		Categories: fallbackCategories,
		Results:    results,
		Fallback:   true,
		Note:       fallbackNote,
	}, nil
}

func (s *mlService) GetForecast(ctx context.Context, userID uuid.UUID) (*dto.ForecastResponse, error) {
	expenses, err := s.transactionRepo.GetRecentExpenses(userID, forecastWindow)
	if err != nil {
		return nil, err
	}

	points := make([]dto.ExpensePoint, len(expenses))
	for i, txn := range expenses {
		points[i] = dto.ExpensePoint{
			Date:     txn.Date.Format("2006-01-02"),
			Amount:   txn.Amount.InexactFloat64(),
			Category: txn.Category,
		}
	}

	forecast, err := s.client.Forecast(ctx, points)
	if err == nil {
		s.recordRemote("forecast")
		return &dto.ForecastResponse{Forecast: forecast}, nil
	}

	slog.Warn("remote forecast unavailable, using local projection", "error", err)
	s.recordFallback("forecast", err)

	local := s.forecastService.ForecastFromHistory(reverseChronological(expenses))
	return &dto.ForecastResponse{
		Forecast: local,
		Fallback: true,
		Note:     fallbackNote,
	}, nil
}

func (s *mlService) GetAnomalies(ctx context.Context, userID uuid.UUID) (*dto.AnomaliesResponse, error) {
	expenses, err := s.transactionRepo.GetRecentExpenses(userID, anomalyFallbackLimit)
	if err != nil {
		return nil, err
	}

	inputs := make([]dto.AnomalyInput, len(expenses))
	for i, txn := range expenses {
		inputs[i] = dto.AnomalyInput{
			ID:          txn.ID,
			Description: txn.Description,
			Amount:      txn.Amount.InexactFloat64(),
			Category:    txn.Category,
			Date:        txn.Date,
		}
	}

	flags, err := s.client.Anomalies(ctx, inputs)
	if err == nil {
		s.recordRemote("anomalies")
		s.recordFlagged(flags)
		return &dto.AnomaliesResponse{
			Anomalies:    flags,
			TotalChecked: len(expenses),
			AnomalyCount: len(flags),
		}, nil
	}

	slog.Warn("remote anomaly detection unavailable, using local detection", "error", err)
	s.recordFallback("anomalies", err)

	local := s.anomalyService.DetectFromHistory(expenses)
	s.recordFlagged(local)
	return &dto.AnomaliesResponse{
		Anomalies:    local,
		TotalChecked: len(expenses),
		AnomalyCount: len(local),
		Fallback:     true,
		Note:         fallbackNote,
	}, nil
}

func (s *mlService) recordRemote(operation string) {
	s.metrics.IncrementCounter("ml.request", map[string]string{"operation": operation, "outcome": "remote"})
	s.metrics.RecordGauge("circuit_breaker.state", 0, map[string]string{"service": "ml"})
}

func (s *mlService) recordFallback(operation string, err error) {
	s.metrics.IncrementCounter("ml.request", map[string]string{"operation": operation, "outcome": "fallback"})
	if errors.Is(err, ErrCircuitBreakerOpen) {
		s.metrics.IncrementCounter("circuit_breaker.open", map[string]string{"service": "ml"})
		s.metrics.RecordGauge("circuit_breaker.state", 1, map[string]string{"service": "ml"})
	}
}

func (s *mlService) recordFlagged(flags []models.AnomalyFlag) {
	for range flags {
		s.metrics.IncrementCounter("anomaly.flagged", map[string]string{"service": "ml"})
	}
}

// reverseChronological flips repository order (newest first) into the
// oldest-first order the local forecast expects
func reverseChronological(expenses []models.Transaction) []models.Transaction {
	reversed := make([]models.Transaction, len(expenses))
	for i, txn := range expenses {
		reversed[len(expenses)-1-i] = txn
	}
	return reversed
}
