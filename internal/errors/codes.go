package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound        ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount   ErrorCode = "TRANSACTION_002"
	TransactionInvalidType     ErrorCode = "TRANSACTION_003"
	TransactionInvalidCategory ErrorCode = "TRANSACTION_004"
)

// Statement import error codes (IMPORT_*)
const (
	ImportFileMissing    ErrorCode = "IMPORT_001"
	ImportEmptyFile      ErrorCode = "IMPORT_002"
	ImportHeaderNotFound ErrorCode = "IMPORT_003"
	ImportNoValidRows    ErrorCode = "IMPORT_004"
	ImportPersistFailed  ErrorCode = "IMPORT_005"
)

// Analytics error codes (ANALYTICS_*)
const (
	AnalyticsNoDescriptions ErrorCode = "ANALYTICS_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_005"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	// Transaction errors
	TransactionNotFound:        "Transaction not found",
	TransactionInvalidAmount:   "Transaction amount must be a positive number",
	TransactionInvalidType:     "Transaction type must be 'income' or 'expense'",
	TransactionInvalidCategory: "Unknown transaction category",

	// Import errors
	ImportFileMissing:    "No statement file was uploaded",
	ImportEmptyFile:      "Statement file is empty or could not be parsed",
	ImportHeaderNotFound: "Could not locate a header row in the statement. Make sure the file has date, description and amount columns",
	ImportNoValidRows:    "No valid transactions found in the statement. Make sure the file has date, description and amount columns",
	ImportPersistFailed:  "Transactions were parsed but could not be saved",

	// Analytics errors
	AnalyticsNoDescriptions: "At least one description is required",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
