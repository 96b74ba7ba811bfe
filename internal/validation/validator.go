package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"card-rewards-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

var lastFourPattern = regexp.MustCompile(`^\d{4}$`)

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimals are validated through their string form
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("notblank", validators.NotBlank)
	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("reward_type", validateRewardType)
	_ = v.RegisterValidation("positive_amount", validatePositiveAmount)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("last_four", validateLastFour)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using the registered rules
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateCategory accepts category codes and display labels in any case
func validateCategory(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeCategory(fl.Field().String())
	return ok
}

func validateRewardType(fl validator.FieldLevel) bool {
	return models.IsValidRewardType(strings.ToLower(fl.Field().String()))
}

// validatePositiveAmount validates that an amount is greater than 0
func validatePositiveAmount(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return fl.Field().Int() > 0
	case reflect.Float32, reflect.Float64:
		return fl.Field().Float() > 0
	case reflect.String:
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && d.IsPositive()
	default:
		return false
	}
}

// validateMoney validates an amount has at most 2 decimal places
func validateMoney(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Equal(d.Round(2))
}

func validateLastFour(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "" || lastFourPattern.MatchString(value)
}
