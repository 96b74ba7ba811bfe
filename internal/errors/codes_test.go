package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	return []ErrorCode{
		AuthMissingToken,
		AuthExpiredToken,
		AuthInvalidTokenFormat,
		ValidationGeneral,
		ValidationRequiredField,
		ValidationInvalidFormat,
		ValidationOutOfRange,
		ValidationInvalidDate,
		ValidationInvalidCategory,
		CardNotFound,
		CardNoneAvailable,
		CardInvalidID,
		TransactionNotFound,
		TransactionInvalidAmount,
		TransactionDuplicate,
		TransactionValidationFailed,
		OfferNotFound,
		SystemInternalError,
		SystemDatabaseError,
		SystemServiceUnavailable,
		SystemConfigurationError,
		SystemUnexpectedError,
		SystemRateLimitExceeded,
		SystemRouteNotFound,
	}
}

// TestGetErrorMessage_ValidCode tests getting message for valid error codes
func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{
			name:     "Auth Missing Token",
			code:     AuthMissingToken,
			expected: "Authorization token is required",
		},
		{
			name:     "Validation General",
			code:     ValidationGeneral,
			expected: "Validation failed",
		},
		{
			name:     "Card Not Found",
			code:     CardNotFound,
			expected: "Card not found",
		},
		{
			name:     "No Cards",
			code:     CardNoneAvailable,
			expected: "No cards available. Add a card to get recommendations",
		},
		{
			name:     "Transaction Duplicate",
			code:     TransactionDuplicate,
			expected: "Transaction with this idempotency key already exists",
		},
		{
			name:     "Service Unavailable",
			code:     SystemServiceUnavailable,
			expected: "Service temporarily unavailable",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			message := GetErrorMessage(tc.code)
			s.Equal(tc.expected, message)
		})
	}
}

// TestGetErrorMessage_InvalidCode tests getting message for invalid error code
func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	message := GetErrorMessage("INVALID_CODE")
	s.Equal("An error occurred", message)
}

func (s *CodesTestSuite) TestIsValidErrorCode_ValidCodes() {
	for _, code := range allCodes() {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}
}

func (s *CodesTestSuite) TestIsValidErrorCode_InvalidCode() {
	invalidCodes := []ErrorCode{
		"INVALID_001",
		"UNKNOWN_CODE",
		"",
		"AUTH_999",
	}

	for _, code := range invalidCodes {
		s.Run(string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes() {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures all error codes follow naming convention
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"AUTH_", "VALIDATION_", "CARD_", "TRANSACTION_", "OFFER_", "SYSTEM_"}

	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "Error code %s does not use a known prefix", code)
	}
}

// TestAllErrorCodesHaveMessages ensures all error codes have messages
func (s *CodesTestSuite) TestAllErrorCodesHaveMessages() {
	for _, code := range allCodes() {
		s.NotEqual("An error occurred", GetErrorMessage(code), "Error code %s has no message", code)
	}
	s.Len(errorMessages, len(allCodes()))
}
