// Package errors defines the application-level error taxonomy shared by the
// use case and delivery layers.
package errors

import (
	"net/http"

	"gramsaarthi/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrConflict is returned when registering an identity that already exists.
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"ACCOUNT_ALREADY_EXISTS",
		"an account with this role and email already exists",
		"",
	)

	// ErrUnauthorized covers bad credentials and missing, invalid or expired
	// tokens. The message is deliberately generic so callers cannot tell which
	// check failed.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"invalid credentials or token",
		"",
	)

	// ErrForbidden is returned when an inactive account attempts to log in.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_INACTIVE",
		"account is deactivated",
		"",
	)

	// ErrNotFound is returned when the account vanished between token issuance
	// and use.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	// ErrNothingToUpdate is returned for an empty self-update patch.
	ErrNothingToUpdate = NewBaseError(
		http.StatusBadRequest,
		"NOTHING_TO_UPDATE",
		"nothing to update",
		"",
	)

	// ErrValidationFailed is returned when request input fails validation.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// ErrInternalError covers store-level and other unexpected failures.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)
