package errors

import (
	"net/http"

	"kennel/internal/errors"
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

// Predefined error types.
//
// Conflict and authentication errors are expected, user-facing outcomes and
// are returned as typed values; storage and entropy failures are
// infrastructure faults and must always propagate to the caller.
var (
	// Registration conflicts. The messages keep the wording existing
	// clients already parse.
	ErrHandleTaken = NewBaseError(
		http.StatusBadRequest,
		"HANDLE_TAKEN",
		"UserHandle already in use",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_TAKEN",
		"Email address already in use",
		"",
	)

	ErrHandleAndEmailTaken = NewBaseError(
		http.StatusBadRequest,
		"HANDLE_AND_EMAIL_TAKEN",
		"Email address and UserHandle already in use",
		"",
	)

	// Authentication outcomes. Not-found and wrong-password stay distinct
	// internally; how much the transport reveals is the delivery layer's
	// policy call.
	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		"IDENTITY_NOT_FOUND",
		"Email address not found",
		"",
	)

	ErrIncorrectPassword = NewBaseError(
		http.StatusUnauthorized,
		"INCORRECT_PASSWORD",
		"Incorrect password",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid input data",
		"",
	)

	// ErrIdentityConflictState is returned when an email-or-handle lookup
	// finds records that violate the store's uniqueness constraints. The
	// abnormal state is surfaced, never silently resolved to one record.
	ErrIdentityConflictState = NewBaseError(
		http.StatusInternalServerError,
		"IDENTITY_CONFLICT_STATE",
		"Duplicate identity records detected",
		"",
	)

	// ErrEntropyUnavailable is returned when the secure random source for
	// salt generation cannot be read.
	ErrEntropyUnavailable = NewBaseError(
		http.StatusInternalServerError,
		"ENTROPY_UNAVAILABLE",
		"Secure random source unavailable",
		"",
	)

	// Token-related errors
	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrTokenIssueFailed = NewBaseError(
		http.StatusInternalServerError,
		"TOKEN_ISSUE_FAILED",
		"Failed to issue token",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// StorageError represents a failed call to the identity store, implementing
// the AppError interface. Store failures are never swallowed into a bare
// "success: false"; the underlying cause travels with the error.
type StorageError struct {
	err     error
	details string
}

// NewStorageError creates a storage-related error
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrap(e.err, "identity store call failed").Error()
}

// Unwrap exposes the underlying store error for errors.Is/As chains.
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	return "STORAGE_UNAVAILABLE"
}

// Message returns the user-friendly error message
func (e *StorageError) Message() string {
	return "Identity store unavailable"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
