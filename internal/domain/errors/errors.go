// Package errors defines the application error taxonomy shared by usecases
// and the delivery layer.
package errors

import (
	"net/http"

	"bitefeed/internal/errors"
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
	// Catalog-related errors. CatalogUnavailable is recovered internally by
	// the fallback catalog; it reaches clients only when the fallback is
	// disabled.
	ErrCatalogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"CATALOG_UNAVAILABLE",
		"The restaurant catalog is temporarily unavailable",
		"",
	)

	ErrRestaurantNotFound = NewBaseError(
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"Restaurant not found",
		"",
	)

	// Auth-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in to continue",
		"",
	)

	// Booking-related errors
	ErrBookingInvalid = NewBaseError(
		http.StatusBadRequest,
		"BOOKING_INVALID",
		"Booking request is invalid",
		"",
	)

	ErrBookingCreateFailed = NewBaseError(
		http.StatusInternalServerError,
		"BOOKING_CREATE_FAILED",
		"Could not create the booking",
		"",
	)

	// Saved-list errors
	ErrSavedStoreFailed = NewBaseError(
		http.StatusInternalServerError,
		"SAVED_STORE_FAILED",
		"Could not update saved restaurants",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)
