// Package errors defines the application error taxonomy. Each sentinel maps a
// business outcome to the HTTP status and message the API surfaces; anything
// that is not an AppError is reported as an opaque internal fault.
package errors

import (
	"net/http"

	"linkup/internal/errors"
)

// AppError is the contract between domain failures and the HTTP boundary.
type AppError interface {
	error
	HTTPCode() int     // HTTP status the delivery layer responds with.
	ErrorCode() string // Stable business error code for diagnostics.
	Message() string   // User-facing message.
}

// BaseError is the standard AppError implementation used by all sentinels.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context and a stack trace.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// Validation and workflow errors. Conflict and invalid credentials both
// surface as 400: the API does not distinguish "unknown email" from "wrong
// password", and reports duplicates with the same status as other
// user-correctable input problems.
var (
	ErrBadRequest = NewBaseError(
		http.StatusBadRequest,
		"BAD_REQUEST",
		"The input object cannot be null or empty",
	)

	ErrUserConflict = NewBaseError(
		http.StatusBadRequest,
		"USER_CONFLICT",
		"A user with the same phone number or email already exist",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"The combination of email and password is incorrect",
	)

	ErrInsufficientCredits = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_CREDITS",
		"Not enough credits to parse a resume",
	)
)

// Credential-handling errors. These indicate programmer or data-integrity
// faults, not user mistakes, and surface as 500.
var (
	ErrInvalidInput = NewBaseError(
		http.StatusInternalServerError,
		"INVALID_INPUT",
		"Password cannot be empty or whitespace",
	)

	ErrMalformedCredential = NewBaseError(
		http.StatusInternalServerError,
		"MALFORMED_CREDENTIAL",
		"Stored credential has an invalid length",
	)
)

// Token validation errors. Protected endpoints reject all three identically;
// the distinct sentinels exist so the reject reason can be logged.
var (
	ErrTokenInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID_SIGNATURE",
		"Invalid token",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Invalid token",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"Invalid token",
	)
)

// Infrastructure errors.
var (
	// ErrConfiguration aborts startup; it must never surface per-request.
	ErrConfiguration = NewBaseError(
		http.StatusInternalServerError,
		"CONFIGURATION_ERROR",
		"Service is misconfigured",
	)

	ErrParsingUnavailable = NewBaseError(
		http.StatusBadGateway,
		"PARSING_UNAVAILABLE",
		"The resume parsing service is unavailable",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)
)

// DatabaseExecuteError wraps an unexpected persistence failure while keeping
// the AppError surface generic.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error.
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface.
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// HTTPCode returns the HTTP status code.
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code.
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing error message.
func (e *DatabaseExecuteError) Message() string {
	return "Internal server error"
}

// Unwrap exposes the underlying database error for errors.Is matching.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}
