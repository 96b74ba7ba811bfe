package errors

import "net/http"

// ErrorResponse is the envelope every failed request returns
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines of the response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the catalogue message for the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for a catalogue code
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationErrorFromList reports request validation failures, one detail per field
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind the generic SYSTEM_001 message.
// err is returned unchanged so the caller can log it.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

var httpStatuses = map[ErrorCode]int{
	ValidationGeneral:         http.StatusBadRequest,
	ValidationRequiredField:   http.StatusBadRequest,
	ValidationInvalidFormat:   http.StatusBadRequest,
	ValidationOutOfRange:      http.StatusBadRequest,
	ValidationInvalidDate:     http.StatusBadRequest,
	ValidationInvalidCategory: http.StatusBadRequest,
	CardInvalidID:             http.StatusBadRequest,
	TransactionInvalidAmount:  http.StatusBadRequest,

	AuthMissingToken:       http.StatusUnauthorized,
	AuthExpiredToken:       http.StatusUnauthorized,
	AuthInvalidTokenFormat: http.StatusUnauthorized,

	CardNotFound:        http.StatusNotFound,
	CardNoneAvailable:   http.StatusNotFound,
	TransactionNotFound: http.StatusNotFound,
	OfferNotFound:       http.StatusNotFound,
	SystemRouteNotFound: http.StatusNotFound,

	TransactionDuplicate:        http.StatusConflict,
	TransactionValidationFailed: http.StatusUnprocessableEntity,
	SystemRateLimitExceeded:     http.StatusTooManyRequests,
	SystemServiceUnavailable:    http.StatusServiceUnavailable,
}

// GetHTTPStatus maps a code to its status. Unlisted codes are server errors.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatuses[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
