package services

import (
	"errors"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

// persistBatchSize bounds the payload of one bulk insert
const persistBatchSize = 100

var (
	ErrNoValidRows         = errors.New("no valid transactions found in statement")
	ErrImportPersistFailed = errors.New("failed to persist imported transactions")
)

type importService struct {
	parser          StatementParserInterface
	extractor       RowExtractorInterface
	categorizer     CategorizerServiceInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

// NewImportService wires the ingestion pipeline: parse, extract,
// categorize, persist in chunks.
func NewImportService(
	parser StatementParserInterface,
	extractor RowExtractorInterface,
	categorizer CategorizerServiceInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) ImportServiceInterface {
	return &importService{
		parser:          parser,
		extractor:       extractor,
		categorizer:     categorizer,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

// ImportStatement runs the pipeline over one uploaded statement file.
// Row failures are isolated and counted; the call fails only when the
// file yields no header, no valid rows, or nothing could be persisted.
func (s *importService) ImportStatement(userID uuid.UUID, raw []byte) (*dto.ImportSummary, error) {
	started := time.Now()

	rows, err := s.parser.Parse(raw)
	if err != nil {
		return nil, err
	}

	summary := &dto.ImportSummary{TotalRows: len(rows)}
	pending := make([]models.Transaction, 0, len(rows))
	categorizedFlags := make([]bool, 0, len(rows))

	for i, row := range rows {
		result := s.extractor.Extract(row)
		if result.Skipped() {
			summary.SkippedRows = append(summary.SkippedRows, dto.SkippedRow{
				Line:   i + 1,
				Reason: result.SkipReason,
			})
			continue
		}

		extracted := result.Row
		categorization := s.categorizer.Categorize(extracted.Description, extracted.Type)
		categorizedFlags = append(categorizedFlags, categorization.Category != models.CategoryOther)
		s.metrics.IncrementCounter("categorization.resolved", map[string]string{
			"source": categorization.Source,
		})

		pending = append(pending, models.Transaction{
			UserID:      userID,
			Description: extracted.Description,
			Amount:      extracted.Amount,
			Type:        extracted.Type,
			Category:    categorization.Category,
			Date:        extracted.Date,
		})
	}

	if len(pending) == 0 {
		return nil, ErrNoValidRows
	}

	imported, categorized, failed := s.persistChunked(userID, pending, categorizedFlags)
	summary.ImportedCount = imported
	summary.CategorizedCount = categorized
	summary.FailedCount = failed

	if imported == 0 {
		return nil, ErrImportPersistFailed
	}

	s.metrics.IncrementCounter("import.completed", map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime("import.duration", time.Since(started))

	slog.Info("statement imported",
		"user_id", userID,
		"total_rows", summary.TotalRows,
		"imported", summary.ImportedCount,
		"categorized", summary.CategorizedCount,
		"skipped", len(summary.SkippedRows),
		"failed", summary.FailedCount,
		"duration_ms", time.Since(started).Milliseconds(),
	)

	return summary, nil
}

// persistChunked inserts transactions in bounded batches. A failing chunk
// drops only its own rows; earlier chunks are not rolled back. The import
// is at-least-once and non-atomic. CategorizedFlags runs parallel to
// transactions; the categorized count covers persisted rows only.
func (s *importService) persistChunked(userID uuid.UUID, transactions []models.Transaction, categorizedFlags []bool) (imported, categorized, failed int) {
	for start := 0; start < len(transactions); start += persistBatchSize {
		end := start + persistBatchSize
		if end > len(transactions) {
			end = len(transactions)
		}
		chunk := transactions[start:end]

		if err := s.transactionRepo.CreateBatch(chunk); err != nil {
			failed += len(chunk)
			s.metrics.IncrementCounter("import.batch_failed", map[string]string{})
			slog.Error("failed to persist import batch",
				"user_id", userID,
				"batch_start", start,
				"batch_size", len(chunk),
				"error", err,
			)
			continue
		}

		imported += len(chunk)
		for _, flag := range categorizedFlags[start:end] {
			if flag {
				categorized++
			}
		}
	}
	return imported, categorized, failed
}
