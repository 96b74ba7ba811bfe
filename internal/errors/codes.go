package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral         ErrorCode = "VALIDATION_001"
	ValidationRequiredField   ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat   ErrorCode = "VALIDATION_003"
	ValidationOutOfRange      ErrorCode = "VALIDATION_004"
	ValidationInvalidDate     ErrorCode = "VALIDATION_007"
	ValidationInvalidCategory ErrorCode = "VALIDATION_008"
)

// Card error codes (CARD_*)
const (
	CardNotFound      ErrorCode = "CARD_001"
	CardNoneAvailable ErrorCode = "CARD_002"
	CardInvalidID     ErrorCode = "CARD_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound         ErrorCode = "TRANSACTION_001"
	TransactionInvalidAmount    ErrorCode = "TRANSACTION_002"
	TransactionDuplicate        ErrorCode = "TRANSACTION_004"
	TransactionValidationFailed ErrorCode = "TRANSACTION_005"
)

// Offer error codes (OFFER_*)
const (
	OfferNotFound ErrorCode = "OFFER_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",

	// Validation errors
	ValidationGeneral:         "Validation failed",
	ValidationRequiredField:   "Required field is missing",
	ValidationInvalidFormat:   "Invalid field format",
	ValidationOutOfRange:      "Field value is out of allowed range",
	ValidationInvalidDate:     "Invalid date format or range",
	ValidationInvalidCategory: "Unknown spending category",

	// Card errors
	CardNotFound:      "Card not found",
	CardNoneAvailable: "No cards available. Add a card to get recommendations",
	CardInvalidID:     "Invalid card ID format",

	// Transaction errors
	TransactionNotFound:         "Transaction not found",
	TransactionInvalidAmount:    "Invalid transaction amount",
	TransactionDuplicate:        "Transaction with this idempotency key already exists",
	TransactionValidationFailed: "Transaction validation failed",

	// Offer errors
	OfferNotFound: "Card offer not found",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "The requested resource does not exist",
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
