// Package errors defines the application error taxonomy. Components below
// the delivery layer classify failures with these values; only the delivery
// layer turns them into response codes.
package errors

import (
	"net/http"

	"walletpass/internal/errors"
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

// WithDetails adds detailed error information
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
	// Subject and registration errors
	ErrSubjectNotFound = NewBaseError(
		http.StatusNotFound,
		"SUBJECT_NOT_FOUND",
		"pass or order not found",
		"",
	)

	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"registration not found",
		"",
	)

	// Authentication errors
	ErrInvalidAuthToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_AUTH_TOKEN",
		"missing or invalid authentication token",
		"",
	)

	ErrInvalidOperatorSecret = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_OPERATOR_SECRET",
		"missing or invalid operator credential",
		"",
	)

	// Request errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrBundleSetSize = NewBaseError(
		http.StatusBadRequest,
		"BUNDLE_SET_SIZE",
		"a bundle set must contain between 2 and 10 items",
		"",
	)

	// Signing and packaging errors
	ErrSigningFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGNING_FAILED",
		"signature generation failed",
		"",
	)

	ErrPackagingFailed = NewBaseError(
		http.StatusInternalServerError,
		"PACKAGING_FAILED",
		"bundle packaging failed",
		"",
	)

	// Push transport errors
	ErrPushFailed = NewBaseError(
		http.StatusBadGateway,
		"PUSH_FAILED",
		"push notification delivery failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
