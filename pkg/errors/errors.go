package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the type of error. The values double as the wire
// error codes of the API.
type ErrorType string

const (
	// ErrorTypeBadRequest covers malformed client input; no computation is
	// attempted.
	ErrorTypeBadRequest ErrorType = "bad_request"
	// ErrorTypeCalcFailed covers calendar-library output that could not be
	// parsed into pillars.
	ErrorTypeCalcFailed ErrorType = "calc_failed"
	// ErrorTypeException covers any other unhandled fault.
	ErrorTypeException ErrorType = "exception"
)

// AppError represents an application-specific error
type AppError struct {
	Type       ErrorType
	Message    string
	Cause      error
	HTTPStatus int
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithCause wraps an underlying error
func (e *AppError) WithCause(err error) *AppError {
	e.Cause = err
	return e
}

// NewBadRequest creates a client-input error
func NewBadRequest(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeBadRequest,
		Message:    message,
		HTTPStatus: http.StatusBadRequest,
	}
}

// NewCalcFailed creates a pillar-computation error
func NewCalcFailed(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeCalcFailed,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// NewException creates an error for an unhandled fault
func NewException(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeException,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

// GetAppError extracts an AppError from an error chain, or nil
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// FromError coerces any error into an AppError, wrapping unknown errors as
// exceptions carrying the raw fault description
func FromError(err error) *AppError {
	if appErr := GetAppError(err); appErr != nil {
		return appErr
	}
	return NewException(err.Error()).WithCause(err)
}
