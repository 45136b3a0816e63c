// Package errors defines application-level error types with stable,
// machine-readable codes mapped to HTTP semantics.
package errors

import (
	"net/http"

	"steakz/internal/errors"
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
	// Authentication-related errors
	ErrNoCredential = NewBaseError(
		http.StatusUnauthorized,
		"NO_CREDENTIAL",
		"Authentication credential is missing",
		"",
	)

	ErrInvalidCredential = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIAL",
		"Authentication credential is invalid",
		"",
	)

	ErrExpiredCredential = NewBaseError(
		http.StatusUnauthorized,
		"EXPIRED_CREDENTIAL",
		"Authentication credential has expired",
		"",
	)

	ErrMalformedClaims = NewBaseError(
		http.StatusUnauthorized,
		"MALFORMED_CLAIMS",
		"Authentication claims are malformed",
		"",
	)

	ErrInvalidLogin = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_LOGIN",
		"Email or password is incorrect",
		"",
	)

	// Authorization-related errors
	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"The request carries no authenticated identity",
		"",
	)

	ErrRoleNotPermitted = NewBaseError(
		http.StatusForbidden,
		"ROLE_NOT_PERMITTED",
		"Your role is not permitted to perform this action",
		"",
	)

	ErrBranchMismatch = NewBaseError(
		http.StatusForbidden,
		"BRANCH_MISMATCH",
		"The targeted resource belongs to another branch",
		"",
	)

	ErrNoBranchAssigned = NewBaseError(
		http.StatusForbidden,
		"NO_BRANCH_ASSIGNED",
		"Your account has no branch assignment",
		"",
	)

	ErrPaymentUnauthorized = NewBaseError(
		http.StatusForbidden,
		"UNAUTHORIZED",
		"You are not allowed to pay for this order",
		"",
	)

	// Validation-related errors
	ErrMissingBranch = NewBaseError(
		http.StatusBadRequest,
		"MISSING_BRANCH",
		"Neither a branch nor a delivery address was provided",
		"",
	)

	ErrEmptyOrder = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_ORDER",
		"An order must contain at least one item",
		"",
	)

	ErrItemNotFound = NewBaseError(
		http.StatusBadRequest,
		"ITEM_NOT_FOUND",
		"A requested menu item does not exist",
		"",
	)

	ErrItemUnavailable = NewBaseError(
		http.StatusBadRequest,
		"ITEM_UNAVAILABLE",
		"A requested menu item is currently unavailable",
		"",
	)

	ErrAmountMismatch = NewBaseError(
		http.StatusBadRequest,
		"AMOUNT_MISMATCH",
		"The payment amount does not match the order total",
		"",
	)

	ErrDuplicatePayment = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_PAYMENT",
		"The order already has a payment",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// State-related errors
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_TRANSITION",
		"The requested status change is not allowed",
		"",
	)

	ErrCannotDeleteDelivered = NewBaseError(
		http.StatusConflict,
		"CANNOT_DELETE_DELIVERED",
		"A delivered order cannot be deleted",
		"",
	)

	// Resource errors
	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"The order does not exist",
		"",
	)

	ErrBranchNotFound = NewBaseError(
		http.StatusNotFound,
		"BRANCH_NOT_FOUND",
		"The branch does not exist",
		"",
	)

	ErrPaymentNotFound = NewBaseError(
		http.StatusNotFound,
		"PAYMENT_NOT_FOUND",
		"The order has no payment",
		"",
	)

	ErrInventoryItemNotFound = NewBaseError(
		http.StatusNotFound,
		"INVENTORY_ITEM_NOT_FOUND",
		"The inventory item does not exist",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"The account does not exist",
		"",
	)

	ErrUserAlreadyExists = NewBaseError(
		http.StatusConflict,
		"USER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal system error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"The resource does not exist",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface.
// The raw store error is kept server-side only; callers see a generic message.
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

// Unwrap exposes the underlying store error for errors.Is/As chains.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
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
