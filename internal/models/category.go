package models

// Transaction categories. The set is closed: every persisted
// transaction carries exactly one of these labels.
const (
	CategoryFood          = "Food"
	CategoryTransport     = "Transport"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategoryHealth        = "Health"
	CategoryRent          = "Rent"
	CategoryUtilities     = "Utilities"
	CategoryEducation     = "Education"
	CategoryTravel        = "Travel"
	CategorySalary        = "Salary"
	CategoryInvestment    = "Investment"
	CategoryOther         = "Other"
)

// Categorization source types, reported alongside results so callers
// can tell which layer of the engine produced a label.
const (
	CategorizationSourceIncome      = "INCOME_RULE"
	CategorizationSourceUPIHandle   = "UPI_HANDLE"
	CategorizationSourceMerchant    = "MERCHANT"
	CategorizationSourceDescription = "DESCRIPTION"
	CategorizationSourceRemote      = "REMOTE"
	CategorizationSourceFallback    = "FALLBACK"
)

// AllCategories returns all valid category constants
func AllCategories() []string {
	return []string{
		CategoryFood,
		CategoryTransport,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealth,
		CategoryRent,
		CategoryUtilities,
		CategoryEducation,
		CategoryTravel,
		CategorySalary,
		CategoryInvestment,
		CategoryOther,
	}
}

// IsValidCategory checks if a category string is valid
func IsValidCategory(category string) bool {
	for _, validCategory := range AllCategories() {
		if category == validCategory {
			return true
		}
	}
	return false
}

// CategorizationResult contains the result of categorizing a single description
type CategorizationResult struct {
	Category       string `json:"category"`
	Source         string `json:"source"`
	MatchedPattern string `json:"matched_pattern,omitempty"`
}
