package dto

// SkippedRow records one statement row that was dropped during import
// and the reason it did not survive extraction.
type SkippedRow struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportSummary is the accounting returned for a statement import.
// CategorizedCount is the subset of imported rows whose category resolved
// to something other than the default, reported as a quality signal.
type ImportSummary struct {
	ImportedCount    int          `json:"importedCount"`
	CategorizedCount int          `json:"categorizedCount"`
	TotalRows        int          `json:"totalRows"`
	SkippedRows      []SkippedRow `json:"skippedRows,omitempty"`
	FailedCount      int          `json:"failedCount,omitempty"`
}

// ImportResponse wraps the summary with a human-readable message
type ImportResponse struct {
	Message string        `json:"message"`
	Summary ImportSummary `json:"summary"`
}
