package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Request error codes (REQUEST_*)
const (
	RequestValidation    ErrorCode = "REQUEST_001"
	RequestInvalidPeriod ErrorCode = "REQUEST_002"
	RequestInvalidRange  ErrorCode = "REQUEST_003"
	RequestInvalidDate   ErrorCode = "REQUEST_004"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInvalidID   ErrorCode = "ACCOUNT_002"
	AccountInvalidType ErrorCode = "ACCOUNT_003"
)

// Balance entry error codes (ENTRY_*)
const (
	EntryNotFound      ErrorCode = "ENTRY_001"
	EntryDuplicateDate ErrorCode = "ENTRY_002"
	EntryInvalidAmount ErrorCode = "ENTRY_003"
)

// Exchange rate error codes (RATE_*)
const (
	RateMissing     ErrorCode = "RATE_001"
	RateInvalid     ErrorCode = "RATE_002"
	RateInvalidPair ErrorCode = "RATE_003"
)

// Store error codes (STORE_*)
const (
	StoreUnavailable ErrorCode = "STORE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Request errors
	RequestValidation:    "Validation failed",
	RequestInvalidPeriod: "Invalid period or sampling parameters",
	RequestInvalidRange:  "Invalid date range for the requested period",
	RequestInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInvalidID:   "Invalid account ID format",
	AccountInvalidType: "Account type must be asset or liability",

	// Balance entry errors
	EntryNotFound:      "Balance entry not found",
	EntryDuplicateDate: "A balance entry already exists for this account and date",
	EntryInvalidAmount: "Balance amount must be a non-negative decimal",

	// Exchange rate errors
	RateMissing:     "No exchange rate available for a required currency pair",
	RateInvalid:     "Exchange rate must be a positive decimal",
	RateInvalidPair: "Base and quote currency must differ",

	// Store errors
	StoreUnavailable: "The data store is temporarily unavailable. Please retry",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemUnexpectedError:    "An unexpected error occurred",
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
