package services

import (
	"sort"
	"strings"
	"time"

	"fintrack/internal/models"

	"github.com/shopspring/decimal"
)

// Skip reasons reported in import accounting
const (
	SkipReasonNoAmount   = "no usable amount"
	SkipReasonZeroAmount = "zero amount"
)

// Candidate column keys, in priority order. Lookups substring-match
// against the normalized row keys so that bank-specific prefixes and
// suffixes still resolve.
var (
	descriptionCandidates = []string{"description", "narration", "particulars", "details", "remarks", "note", "desc"}
	dateCandidates        = []string{"txn_date", "date", "transaction_date", "value_date", "posting_date"}
	debitCandidates       = []string{"dr_amount", "debit", "dr", "withdrawal", "withdrawl", "debit_amount", "chq_dr_amt"}
	creditCandidates      = []string{"cr_amount", "credit", "cr", "deposit", "credit_amount", "chq_cr_amt"}
	amountCandidates      = []string{"amount", "value", "sum", "transaction_amount"}
	typeCandidates        = []string{"type", "direction"}
)

// dayFirstLayouts are tried before general parsing: statement dates are
// day-month-year in Indian banking exports.
var dayFirstLayouts = []string{
	"02/01/2006",
	"02-01-2006",
	"02/01/06",
	"02-01-06",
}

var generalDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2006-01-02 15:04:05",
}

// incomeTypeKeywords in an explicit type/direction column imply income
var incomeTypeKeywords = []string{"cr", "credit", "income", "deposit"}

// ExtractedRow is the normalized output of extracting one statement row,
// prior to categorization and persistence.
type ExtractedRow struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	Date        time.Time
}

// RowResult is either an extracted row or a skip reason, never both.
// Modeling per-row failure as a value keeps the aggregate accounting
// explicit and lets extraction never raise past the engine boundary.
type RowResult struct {
	Row        *ExtractedRow
	SkipReason string
}

// Skipped reports whether the row was dropped
func (r RowResult) Skipped() bool {
	return r.Row == nil
}

type rowExtractor struct {
	now func() time.Time
}

// NewRowExtractor creates a field extractor for parsed statement rows
func NewRowExtractor() RowExtractorInterface {
	return &rowExtractor{now: time.Now}
}

// Extract resolves description, date, amount and direction for one row.
// A row without a usable positive amount is skipped, not an error.
func (e *rowExtractor) Extract(row RawStatementRow) RowResult {
	amount, txnType, ok := e.resolveAmount(row)
	if !ok {
		return RowResult{SkipReason: SkipReasonNoAmount}
	}
	if amount.IsZero() {
		return RowResult{SkipReason: SkipReasonZeroAmount}
	}

	return RowResult{Row: &ExtractedRow{
		Description: models.TruncateDescription(e.resolveDescription(row)),
		Amount:      amount,
		Type:        txnType,
		Date:        e.resolveDate(row),
	}}
}

func (e *rowExtractor) resolveDescription(row RawStatementRow) string {
	for _, candidate := range descriptionCandidates {
		value := lookupField(row, candidate, nil)
		if value != "" && value != "-" {
			return value
		}
	}
	return models.DefaultDescription
}

func (e *rowExtractor) resolveDate(row RawStatementRow) time.Time {
	for _, candidate := range dateCandidates {
		value := lookupField(row, candidate, nil)
		if value == "" {
			continue
		}
		if parsed, ok := parseStatementDate(value); ok {
			return parsed
		}
	}
	// Unparseable dates default to processing time rather than dropping
	// the row
	return e.now()
}

// resolveAmount applies the debit/credit-first strategy: a positive debit
// makes the row an expense, otherwise a positive credit makes it income,
// otherwise a unified amount column decides with sign or an explicit type
// column as the direction signal.
func (e *rowExtractor) resolveAmount(row RawStatementRow) (decimal.Decimal, string, bool) {
	if debit, ok := lookupAmount(row, debitCandidates); ok && debit.IsPositive() {
		return debit, models.TransactionTypeExpense, true
	}

	if credit, ok := lookupAmount(row, creditCandidates); ok && credit.IsPositive() {
		return credit, models.TransactionTypeIncome, true
	}

	raw, ok := lookupAmount(row, amountCandidates)
	if !ok {
		return decimal.Zero, "", false
	}

	txnType := models.TransactionTypeIncome
	if raw.IsNegative() {
		txnType = models.TransactionTypeExpense
	}

	if explicit := lookupField(row, "", typeCandidates); explicit != "" {
		txnType = models.TransactionTypeExpense
		lower := strings.ToLower(explicit)
		for _, keyword := range incomeTypeKeywords {
			if strings.Contains(lower, keyword) {
				txnType = models.TransactionTypeIncome
				break
			}
		}
	}

	return raw.Abs(), txnType, true
}

// lookupField returns the value of the first row key containing the
// candidate substring. Keys are scanned in sorted order so lookups are
// deterministic across map iterations. Either a single candidate or a
// candidate list may be given.
func lookupField(row RawStatementRow, candidate string, candidates []string) string {
	if candidates == nil {
		candidates = []string{candidate}
	}

	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, c := range candidates {
		for _, key := range keys {
			if strings.Contains(key, c) {
				if value := strings.TrimSpace(row[key]); value != "" {
					return value
				}
			}
		}
	}
	return ""
}

// lookupAmount finds the first candidate column whose cleaned value parses
// as a decimal. Description-family columns are excluded so that short
// candidates like "cr" and "dr" cannot latch onto narration text.
func lookupAmount(row RawStatementRow, candidates []string) (decimal.Decimal, bool) {
	keys := make([]string, 0, len(row))
	for k := range row {
		if isDescriptionKey(k) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, candidate := range candidates {
		for _, key := range keys {
			if !strings.Contains(key, candidate) {
				continue
			}
			cleaned := cleanAmountString(row[key])
			if cleaned == "" {
				continue
			}
			if amount, err := decimal.NewFromString(cleaned); err == nil {
				return amount, true
			}
		}
	}
	return decimal.Zero, false
}

func isDescriptionKey(key string) bool {
	for _, candidate := range descriptionCandidates {
		if strings.Contains(key, candidate) {
			return true
		}
	}
	return false
}

// cleanAmountString strips currency symbols, separators and whitespace,
// keeping only digits, the dot, and a leading minus.
func cleanAmountString(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.':
			b.WriteRune(r)
		case r == '-' && b.Len() == 0:
			b.WriteRune(r)
		}
	}
	s := b.String()
	if s == "" || s == "-" || s == "." || s == "-." {
		return ""
	}
	return s
}

func parseStatementDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)

	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	for _, layout := range generalDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
