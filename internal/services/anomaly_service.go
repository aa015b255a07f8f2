package services

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

const (
	// anomalyHistoryLimit bounds the comparison set to recent expenses
	anomalyHistoryLimit = 100

	// anomalyMinimumRecords below which the statistic is not meaningful
	anomalyMinimumRecords = 5

	// anomalyStdDevMultiplier: amounts beyond mean + k*sigma are flagged
	anomalyStdDevMultiplier = 2.0

	// anomalyMaxFlags caps the returned set at the most extreme entries
	anomalyMaxFlags = 10
)

type anomalyService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewAnomalyService creates the dispersion-based anomaly detector
func NewAnomalyService(transactionRepo repositories.TransactionRepositoryInterface) AnomalyServiceInterface {
	return &anomalyService{transactionRepo: transactionRepo}
}

func (s *anomalyService) DetectAnomalies(userID uuid.UUID) ([]models.AnomalyFlag, error) {
	expenses, err := s.transactionRepo.GetRecentExpenses(userID, anomalyHistoryLimit)
	if err != nil {
		slog.Error("failed to load expense history for anomaly detection", "user_id", userID, "error", err)
		return nil, err
	}

	return s.DetectFromHistory(expenses), nil
}

// DetectFromHistory flags expenses whose amount exceeds the population
// mean plus two standard deviations. Advisory only: nothing is persisted.
func (s *anomalyService) DetectFromHistory(expenses []models.Transaction) []models.AnomalyFlag {
	if len(expenses) < anomalyMinimumRecords {
		return []models.AnomalyFlag{}
	}

	amounts := make([]float64, len(expenses))
	var sum float64
	for i, t := range expenses {
		amounts[i], _ = t.Amount.Float64()
		sum += amounts[i]
	}
	mean := sum / float64(len(amounts))

	var varianceSum float64
	for _, a := range amounts {
		varianceSum += (a - mean) * (a - mean)
	}
	stdDev := math.Sqrt(varianceSum / float64(len(amounts)))

	threshold := mean + anomalyStdDevMultiplier*stdDev

	flags := make([]models.AnomalyFlag, 0)
	for i, t := range expenses {
		if amounts[i] <= threshold {
			continue
		}

		score := 0.0
		if stdDev > 0 {
			score = (amounts[i] - mean) / stdDev
		}

		flags = append(flags, models.AnomalyFlag{
			TransactionID: t.ID,
			Description:   t.Description,
			Amount:        t.Amount,
			Category:      t.Category,
			Date:          t.Date,
			Score:         score,
			Reason: fmt.Sprintf("Amount (₹%s) is significantly higher than your average (₹%.0f)",
				t.Amount.Round(0).String(), mean),
		})
	}

	sort.Slice(flags, func(i, j int) bool {
		return flags[i].Score > flags[j].Score
	})
	if len(flags) > anomalyMaxFlags {
		flags = flags[:anomalyMaxFlags]
	}

	return flags
}

// CommitFlags marks the flagged transactions as anomalous in storage
func (s *anomalyService) CommitFlags(flags []models.AnomalyFlag) error {
	if len(flags) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(flags))
	for _, f := range flags {
		ids = append(ids, f.TransactionID)
	}

	return s.transactionRepo.SetAnomalyFlags(ids, true)
}
