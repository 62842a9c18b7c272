package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the service layer.
var (
	ErrDuplicateUser        = errors.New("user already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrHouseNotFound        = errors.New("house not found")
	ErrNotOwner             = errors.New("house belongs to a different owner")
	ErrBookingLimitExceeded = errors.New("booking limit exceeded")
)

// ValidationError marks a rejected input. Its message is written for the
// client and is safe to echo back in the response body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AppError represents a structured application error with user-friendly and technical details.
type AppError struct {
	TechnicalMessage string
	UserMessage      string
	Code             string
	HTTPStatus       int
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// NewAppError creates a new AppError instance.
func NewAppError(technicalMessage, userMessage, code string, status int, originalErr error) *AppError {
	return &AppError{
		TechnicalMessage: technicalMessage,
		UserMessage:      userMessage,
		Code:             code,
		HTTPStatus:       status,
		OriginalError:    originalErr,
	}
}

// Common error codes
const (
	ErrCodeDuplicateUser        = "DUPLICATE_USER"
	ErrCodeInvalidCredentials   = "INVALID_CREDENTIALS"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeForbidden            = "FORBIDDEN"
	ErrCodeNotFound             = "NOT_FOUND"
	ErrCodeBookingLimitExceeded = "BOOKING_LIMIT_EXCEEDED"
	ErrCodeInvalidParameters    = "INVALID_PARAMETERS"
	ErrCodeStoreFailure         = "STORE_FAILURE"
)
