package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator errors into "field: message" details,
// sorted by field. ok is false when err is not a validation error.
func FieldErrors(err error) (details []string, ok bool) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, false
	}

	details = make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		details = append(details, fmt.Sprintf("%s: %s", fe.Field(), FormatFieldError(fe)))
	}
	sort.Strings(details)
	return details, true
}

// HasFieldError reports whether field failed validation
func HasFieldError(err error, field string) bool {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return false
	}
	for _, fe := range validationErrs {
		if fe.Field() == field {
			return true
		}
	}
	return false
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "notblank":
		return "must not be blank"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "numeric":
		return "must contain only digits"
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "category":
		return "must be a supported spending category"
	case "reward_type":
		return "must be one of: cashback, points, miles"
	case "positive_amount":
		return "must be greater than 0"
	case "money":
		return "must be a positive amount with at most 2 decimal places"
	case "last_four":
		return "must be exactly 4 digits"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
