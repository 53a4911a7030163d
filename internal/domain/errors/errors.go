// Package errors defines the application error taxonomy. Errors carry an
// HTTP status and a business code; they are mapped to transport responses at
// the delivery boundary only.
package errors

import (
	"net/http"

	"relay/internal/errors"
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
	// Validation errors: missing or malformed request parameters.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request parameters",
		"",
	)

	ErrMalformedLocation = NewBaseError(
		http.StatusBadRequest,
		"MALFORMED_LOCATION",
		"location must be given as \"lat;lon\"",
		"",
	)

	ErrUserNameTaken = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_TAKEN",
		"user name is already in use",
		"",
	)

	ErrUserNameReserved = NewBaseError(
		http.StatusBadRequest,
		"USERNAME_RESERVED",
		"user name must not start with a digit",
		"",
	)

	// Authorization errors: bad credentials or an active cooldown.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"user name or password is incorrect",
		"",
	)

	ErrInvalidKey = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_KEY",
		"authorization key is invalid or expired",
		"",
	)

	ErrCooldownActive = NewBaseError(
		http.StatusForbidden,
		"COOLDOWN_ACTIVE",
		"the user cannot shout yet due to cooldown",
		"",
	)

	// Forbidden actions: valid request, but game policy disallows it.
	ErrChainExpired = NewBaseError(
		http.StatusForbidden,
		"CHAIN_EXPIRED",
		"the shout can no longer be shouted forward",
		"",
	)

	ErrTemplateExpired = NewBaseError(
		http.StatusForbidden,
		"TEMPLATE_EXPIRED",
		"the template can no longer be used",
		"",
	)

	ErrTemplateCompleted = NewBaseError(
		http.StatusForbidden,
		"TEMPLATE_COMPLETED",
		"the template has already been completed",
		"",
	)

	ErrAlreadyInChain = NewBaseError(
		http.StatusForbidden,
		"ALREADY_IN_CHAIN",
		"the user has already carried this chain",
		"",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"no such user",
		"",
	)

	ErrShoutNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOUT_NOT_FOUND",
		"no such shout",
		"",
	)

	ErrTemplateNotFound = NewBaseError(
		http.StatusNotFound,
		"TEMPLATE_NOT_FOUND",
		"no such template",
		"",
	)

	ErrVictoryNotFound = NewBaseError(
		http.StatusNotFound,
		"VICTORY_NOT_FOUND",
		"no such victory",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"no such resource",
		"",
	)

	// Method not supported: shouts and victories are immutable after creation.
	ErrMethodNotSupported = NewBaseError(
		http.StatusMethodNotAllowed,
		"METHOD_NOT_SUPPORTED",
		"the entity does not support this method",
		"",
	)

	// Infrastructure errors
	ErrUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"UNAVAILABLE",
		"the storage backend is unreachable",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
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
