package services

import (
	"encoding/csv"
	"errors"
	"log/slog"
	"strings"
)

var (
	ErrHeaderNotFound = errors.New("could not locate a header row in the statement")
	ErrEmptyStatement = errors.New("statement file is empty")
)

// headerKeywords is the vocabulary used to locate the real header row
// inside a statement export. A line matching at least headerMatchThreshold
// of these (case-insensitive substring) is treated as the header.
var headerKeywords = []string{
	"date", "description", "amount", "debit", "credit", "narration",
	"txn", "particulars", "dr", "cr", "withdrawal", "deposit",
}

// headerMatchThreshold is a heuristic: it can false-positive on data rows
// and false-negative on unusual header vocabulary. Known limitation.
const headerMatchThreshold = 2

// RawStatementRow maps normalized column keys to raw cell values for one
// statement line. Ephemeral: produced per line and consumed immediately.
type RawStatementRow map[string]string

// statementParser locates the transaction table inside a messy bank
// statement export and yields normalized rows.
type statementParser struct{}

// NewStatementParser creates a statement parser
func NewStatementParser() StatementParserInterface {
	return &statementParser{}
}

// Parse strips the BOM and any preamble lines, finds the header row, and
// returns one RawStatementRow per data line. Pure transform: no storage
// access, no mutation of shared state.
func (p *statementParser) Parse(raw []byte) ([]RawStatementRow, error) {
	text := stripBOM(string(raw))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyStatement
	}

	lines := strings.Split(text, "\n")

	headerIndex := findHeaderLine(lines)
	if headerIndex < 0 {
		return nil, ErrHeaderNotFound
	}

	if headerIndex > 0 {
		slog.Debug("discarded statement preamble", "lines", headerIndex)
	}

	section := make([]string, 0, len(lines)-headerIndex)
	for _, line := range lines[headerIndex:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		section = append(section, line)
	}

	reader := csv.NewReader(strings.NewReader(strings.Join(section, "\n")))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		// Header with no data lines
		return []RawStatementRow{}, nil
	}

	keys := make([]string, len(records[0]))
	for i, h := range records[0] {
		keys[i] = normalizeColumnKey(h)
	}

	rows := make([]RawStatementRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(RawStatementRow, len(keys))
		for i, value := range record {
			if i >= len(keys) || keys[i] == "" {
				continue
			}
			row[keys[i]] = strings.TrimSpace(value)
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}

	return rows, nil
}

// findHeaderLine returns the index of the first line matching enough
// header keywords, or -1. Only the first match wins: header-like lines
// later in the file are not re-detected.
func findHeaderLine(lines []string) int {
	for i, line := range lines {
		lower := strings.ToLower(line)
		matches := 0
		for _, keyword := range headerKeywords {
			if strings.Contains(lower, keyword) {
				matches++
				if matches >= headerMatchThreshold {
					return i
				}
			}
		}
	}
	return -1
}

// normalizeColumnKey rewrites a header cell to the canonical lookup form:
// lowercase, BOM removed, whitespace collapsed to single underscore, and
// every other non-alphanumeric character dropped.
func normalizeColumnKey(header string) string {
	h := strings.ToLower(stripBOM(strings.TrimSpace(header)))

	var b strings.Builder
	b.Grow(len(h))
	lastUnderscore := false
	for _, r := range h {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastUnderscore = false
		case r == ' ' || r == '\t' || r == '_':
			if !lastUnderscore && b.Len() > 0 {
				b.WriteRune('_')
				lastUnderscore = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "_")
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
