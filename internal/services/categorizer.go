package services

import (
	"regexp"
	"strings"

	"fintrack/internal/models"
)

// upiReferencePattern matches the slash-delimited reference format used
// by Indian bank statements: UPI/<DR|CR>/<txnid>/<merchant>/<bankcode>/<handle>
var upiReferencePattern = regexp.MustCompile(`(?i)UPI/(DR|CR)/\d+/([^/]+)/[^/]+/([^\s,/]+)`)

// incomingTransferPattern marks IMPS/NEFT incoming transfers
var incomingTransferPattern = regexp.MustCompile(`(?i)IMPS-IN|NEFT_IN|NEFT-IN`)

// paymentReference is the structured view of a statement description
type paymentReference struct {
	IsUPI      bool
	IsIncoming bool
	Direction  string
	Merchant   string
	Handle     string
}

// parsePaymentReference extracts the merchant and handle segments from a
// UPI-style description, or detects an incoming IMPS/NEFT marker.
func parsePaymentReference(description string) paymentReference {
	desc := strings.TrimSpace(description)
	if desc == "" {
		return paymentReference{}
	}

	if m := upiReferencePattern.FindStringSubmatch(desc); m != nil {
		return paymentReference{
			IsUPI:     true,
			Direction: strings.ToUpper(m[1]),
			Merchant:  strings.ToLower(strings.TrimSpace(m[2])),
			Handle:    strings.ToLower(strings.TrimSpace(m[3])),
		}
	}

	if incomingTransferPattern.MatchString(desc) {
		return paymentReference{
			IsIncoming: true,
			Merchant:   strings.ToLower(desc),
		}
	}

	return paymentReference{Merchant: strings.ToLower(desc)}
}

type categorizerService struct {
	upiHandleRules  []categoryRule
	merchantRules   []categoryRule
	investmentTerms []string
	returnTerms     []string
}

// NewCategorizerService creates the local heuristic categorization engine.
// Rule tables are loaded once and shared read-only across requests.
func NewCategorizerService() CategorizerServiceInterface {
	return &categorizerService{
		upiHandleRules:  initUPIHandleRules(),
		merchantRules:   initMerchantKeywordRules(),
		investmentTerms: []string{"groww", "zerodha", "upstox", "mutual", "nps"},
		returnTerms:     []string{"refund", "cashback", "reversal"},
	}
}

// Categorize maps a description and transaction type to a category from
// the fixed set. Pure and deterministic: the same input always yields the
// same result, and it never fails.
func (s *categorizerService) Categorize(description, transactionType string) *models.CategorizationResult {
	if description == "" {
		return &models.CategorizationResult{
			Category: models.CategoryOther,
			Source:   models.CategorizationSourceFallback,
		}
	}

	desc := strings.ToLower(description)

	if transactionType == models.TransactionTypeIncome {
		return s.categorizeIncome(desc)
	}

	ref := parsePaymentReference(description)

	// UPI handle carries the service identity and is the least ambiguous
	// signal, so it is tested before merchant and full-text tiers.
	if ref.Handle != "" {
		if rule, pattern := matchRules(s.upiHandleRules, ref.Handle); rule != nil {
			return &models.CategorizationResult{
				Category:       rule.category,
				Source:         models.CategorizationSourceUPIHandle,
				MatchedPattern: pattern,
			}
		}
	}

	// The merchant tier inspects the merchant segment of a UPI reference;
	// plain descriptions go straight to the full-text tier below.
	if ref.IsUPI && ref.Merchant != "" {
		if rule, pattern := matchRules(s.merchantRules, ref.Merchant); rule != nil {
			return &models.CategorizationResult{
				Category:       rule.category,
				Source:         models.CategorizationSourceMerchant,
				MatchedPattern: pattern,
			}
		}
	}

	if rule, pattern := matchRules(s.merchantRules, desc); rule != nil {
		return &models.CategorizationResult{
			Category:       rule.category,
			Source:         models.CategorizationSourceDescription,
			MatchedPattern: pattern,
		}
	}

	if strings.Contains(desc, "atm") || strings.Contains(desc, "wdr") || strings.Contains(desc, "cash") {
		return &models.CategorizationResult{
			Category:       models.CategoryOther,
			Source:         models.CategorizationSourceDescription,
			MatchedPattern: "atm",
		}
	}

	return &models.CategorizationResult{
		Category: models.CategoryOther,
		Source:   models.CategorizationSourceFallback,
	}
}

// categorizeIncome resolves categories for incoming transactions.
// Unmatched income defaults to Salary, a documented bias of the engine.
func (s *categorizerService) categorizeIncome(desc string) *models.CategorizationResult {
	if strings.Contains(desc, "salary") || strings.Contains(desc, "stipend") || strings.Contains(desc, "payroll") {
		return &models.CategorizationResult{
			Category:       models.CategorySalary,
			Source:         models.CategorizationSourceIncome,
			MatchedPattern: "salary",
		}
	}

	for _, term := range s.investmentTerms {
		if strings.Contains(desc, term) {
			return &models.CategorizationResult{
				Category:       models.CategoryInvestment,
				Source:         models.CategorizationSourceIncome,
				MatchedPattern: term,
			}
		}
	}

	for _, term := range s.returnTerms {
		if strings.Contains(desc, term) {
			return &models.CategorizationResult{
				Category:       models.CategoryOther,
				Source:         models.CategorizationSourceIncome,
				MatchedPattern: term,
			}
		}
	}

	return &models.CategorizationResult{
		Category: models.CategorySalary,
		Source:   models.CategorizationSourceIncome,
	}
}

// BatchCategorize categorizes multiple descriptions, preserving input order
func (s *categorizerService) BatchCategorize(descriptions []string, transactionType string) []*models.CategorizationResult {
	results := make([]*models.CategorizationResult, 0, len(descriptions))

	for _, desc := range descriptions {
		results = append(results, s.Categorize(desc, transactionType))
	}

	return results
}

// matchRules returns the first rule whose pattern list contains a
// substring of the input, along with the matched pattern.
func matchRules(rules []categoryRule, input string) (*categoryRule, string) {
	for i := range rules {
		for _, pattern := range rules[i].patterns {
			if strings.Contains(input, pattern) {
				return &rules[i], pattern
			}
		}
	}
	return nil, ""
}
