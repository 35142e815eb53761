package dto

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeConflict         ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
	ErrorCodeDatabaseError  ErrorCode = "SRV_002"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity string

// Severity levels
const (
	ErrorSeverityWarning  ErrorSeverity = "WARNING"
	ErrorSeverityError    ErrorSeverity = "ERROR"
	ErrorSeverityCritical ErrorSeverity = "CRITICAL"
)

// ErrorDetail represents detailed error information
type ErrorDetail struct {
	Code     ErrorCode     `json:"code" example:"RES_001"`
	Message  string        `json:"message" example:"Course not found with id: 42"`
	Field    string        `json:"field,omitempty" example:"name"`
	Severity ErrorSeverity `json:"severity" example:"ERROR"`
	Details  interface{}   `json:"details,omitempty"`
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-14T12:01:05.123Z"`
}

// NewErrorDetail creates a new error detail
func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: ErrorSeverityError,
	}
}

// WithDetails adds additional details to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now(),
	}
}

// FieldError is a single field/message pair from request validation
type FieldError struct {
	Field   string `json:"field" example:"age"`
	Message string `json:"message" example:"age must be at least 1"`
}

// HandleValidationError converts a binding/validation error into an
// ErrorDetail carrying one entry per offending field
func HandleValidationError(err error) *ErrorDetail {
	detail := NewErrorDetail(ErrorCodeValidationFailed, "Validation failed")

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return detail.WithDetails(err.Error())
	}

	fieldErrors := make([]FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fe.Field(),
			Message: formatValidationError(fe),
		})
	}

	return detail.WithDetails(fieldErrors)
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
