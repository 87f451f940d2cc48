package errors

import (
	"net/http"

	"bloodlink/internal/errors"
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

// Is matches any BaseError carrying the same business code, so errors.Is keeps
// working after WithDetails.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Authentication and authorization
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Missing or invalid bearer token",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrAccountBlocked = NewBaseError(
		http.StatusForbidden,
		"ACCOUNT_BLOCKED",
		"This account has been blocked",
		"",
	)

	ErrIdentityProofInvalid = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_PROOF_INVALID",
		"Identity token could not be verified",
		"",
	)

	// Input
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidInput = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Malformed request body",
		"",
	)

	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"Malformed resource id",
		"",
	)

	// Resources
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrDonationRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"DONATION_REQUEST_NOT_FOUND",
		"Donation request not found",
		"",
	)

	ErrBlogNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOG_NOT_FOUND",
		"Blog post not found",
		"",
	)

	// Payments
	ErrPaymentNotConfirmed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_CONFIRMED",
		"The payment has not succeeded",
		"",
	)

	ErrPaymentAlreadyRecorded = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_RECORDED",
		"This payment has already been recorded",
		"",
	)

	ErrPaymentProvider = NewBaseError(
		http.StatusBadGateway,
		"PAYMENT_PROVIDER_ERROR",
		"The payment processor rejected the request",
		"",
	)

	ErrPaymentProviderUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"PAYMENT_PROVIDER_UNAVAILABLE",
		"The payment processor is temporarily unavailable",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
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

// Unwrap exposes the driver error.
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
	return "Database operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
