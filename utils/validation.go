package utils

import (
	"fmt"
	"strings"
	"time"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositive checks if a number is positive
func ValidatePositive(value float64, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNotEmpty checks if a slice is not empty
func ValidateNotEmpty[T any](slice []T, fieldName string) error {
	if len(slice) == 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be empty", fieldName))
	}
	return nil
}

// ValidatePercentage checks that a share percentage is within (0, 100]
func ValidatePercentage(value float64, fieldName string) error {
	if value <= 0 || value > 100 {
		return NewValidationError(fmt.Sprintf("%s must be between 0 and 100, got %.2f", fieldName, value))
	}
	return nil
}

// ValidateCurrencyCode checks that a currency code is a 3-letter uppercase code
func ValidateCurrencyCode(code, fieldName string) error {
	if len(code) != 3 || strings.ToUpper(code) != code {
		return NewValidationError(fmt.Sprintf("%s must be a 3-letter ISO currency code, got %q", fieldName, code))
	}
	return nil
}

// ValidateNotFuture checks that a date is not after the reference time
func ValidateNotFuture(date, now time.Time, fieldName string) error {
	if date.After(now) {
		return NewInvalidDateError(fmt.Sprintf("%s %s is in the future", fieldName, date.Format("2006-01-02")))
	}
	return nil
}
