package errors

import (
	"errors"
	"fmt"
)

type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// SetupFailure is fatal: missing or invalid credentials, or a connection
// failure before any generation has started.
func SetupFailure(message string, err error) *AppError {
	return &AppError{
		Code:    "SETUP_FAILURE",
		Message: message,
		Err:     err,
	}
}

// InvariantViolation means a generation stage cannot satisfy a reference
// requirement, e.g. fewer than two users in the pool.
func InvariantViolation(message string) *AppError {
	return &AppError{
		Code:    "INVARIANT_VIOLATION",
		Message: message,
		Err:     nil,
	}
}

// WriteFailure wraps a single record's failed persistence call. Recovered
// locally: logged and skipped, the run continues.
func WriteFailure(message string, err error) *AppError {
	return &AppError{
		Code:    "WRITE_FAILURE",
		Message: message,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
