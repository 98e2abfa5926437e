package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"networth-tracker/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("iso_date", validateISODate)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("history_period", validateHistoryPeriod)
	_ = v.RegisterValidation("sampling_strategy", validateSamplingStrategy)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCurrencyCode validates that a currency code is a three-letter
// uppercase ISO 4217 style code
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(fl.Field().String())
}

// validateISODate validates that a date string parses as YYYY-MM-DD
func validateISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01-02", fl.Field().String())
	return err == nil
}

// validateDecimalAmount validates that a string holds a parseable finite decimal
func validateDecimalAmount(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := decimal.NewFromString(value)
	return err == nil
}

// validateHistoryPeriod validates that a period is one of the supported presets
func validateHistoryPeriod(fl validator.FieldLevel) bool {
	return models.IsValidPeriod(fl.Field().String())
}

// validateSamplingStrategy validates that a sampling strategy is supported
func validateSamplingStrategy(fl validator.FieldLevel) bool {
	return models.IsValidStrategy(fl.Field().String())
}
