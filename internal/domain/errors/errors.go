package errors

import (
	"net/http"

	"roomie/internal/errors"
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
	// Household-related errors
	ErrHouseholdNotFound = NewBaseError(
		http.StatusNotFound,
		"HOUSEHOLD_NOT_FOUND",
		"Household not found",
		"",
	)

	ErrHouseholdCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"HOUSEHOLD_CREATION_FAILED",
		"Failed to create household",
		"",
	)

	ErrHouseholdMembersEmpty = NewBaseError(
		http.StatusBadRequest,
		"HOUSEHOLD_MEMBERS_EMPTY",
		"A household needs at least one member",
		"",
	)

	ErrNotHouseholdMember = NewBaseError(
		http.StatusForbidden,
		"NOT_HOUSEHOLD_MEMBER",
		"You are not a member of this household",
		"",
	)

	// Entity lifecycle errors
	ErrEntityNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Record not found",
		"",
	)

	ErrEntityCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTITY_CREATION_FAILED",
		"Failed to create record",
		"",
	)

	ErrEntityUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTITY_UPDATE_FAILED",
		"Failed to update record",
		"",
	)

	ErrEntityDeleteFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENTITY_DELETE_FAILED",
		"Failed to delete record",
		"",
	)

	// Chore-related errors
	ErrChoreAlreadyCompleted = NewBaseError(
		http.StatusConflict,
		"CHORE_ALREADY_COMPLETED",
		"This chore has already been completed",
		"",
	)

	// Bill-related errors
	ErrBillSplitEmpty = NewBaseError(
		http.StatusBadRequest,
		"BILL_SPLIT_EMPTY",
		"A bill must be split between at least one roommate",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
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
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
