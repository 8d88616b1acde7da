package utils

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError represents a custom application error
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common error constructors
func NewValidationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: message,
	}
}

func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// Domain error constructors. Every rejection names the violated constraint
// and the offending values so each caller can render a precise explanation.

// NewInvalidAllocationError signals a rent/item split constraint violation.
func NewInvalidAllocationError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "invalid allocation: " + message,
	}
}

// NewExcessPaymentError signals an attempt to pay more than the outstanding balance.
func NewExcessPaymentError(amount, balance float64) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("excess payment: amount %.2f exceeds pending balance %.2f", amount, balance),
	}
}

// NewMissingExchangeRateError signals a cross-currency payment without a usable rate.
func NewMissingExchangeRateError(from, to string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: fmt.Sprintf("missing exchange rate: cannot convert %s to %s without a rate", from, to),
	}
}

// NewRegenerationFailedError signals that the atomic schedule regeneration
// could not complete and was rolled back entirely.
func NewRegenerationFailedError(contractID string, cause error) *AppError {
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: fmt.Sprintf("schedule regeneration failed for contract %s", contractID),
		Details: cause.Error(),
	}
}

// NewInvalidDateError signals a paid date in the future.
func NewInvalidDateError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "invalid date: " + message,
	}
}

// NewMissingMethodError signals a payment recorded without a payment method.
func NewMissingMethodError() *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: "payment method is required",
	}
}

// IsExcessPayment reports whether err is an excess payment rejection.
func IsExcessPayment(err error) bool {
	appErr, ok := err.(*AppError)
	return ok && appErr.Code == http.StatusConflict
}

// HandleError sends an appropriate HTTP response for an error
func HandleError(c *gin.Context, err error) {
	if appErr, ok := err.(*AppError); ok {
		c.JSON(appErr.Code, gin.H{"error": appErr.Message})
		return
	}

	// Default to internal server error
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// HandleSuccess sends a success response
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}
