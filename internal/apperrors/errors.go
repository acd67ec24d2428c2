package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidTransition indicates that a requested order status is not reachable
// from the order's current status.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrConflict indicates that a conditional write lost a race against a
// concurrent update; the caller should re-fetch current state and retry.
var ErrConflict = errors.New("concurrent modification conflict")

// ErrUnauthorized indicates that the caller is not authenticated or not
// allowed to perform the operation.
var ErrUnauthorized = errors.New("unauthorized")

// AppError wraps a lower-level failure (typically from the persistence layer)
// with an HTTP-ish status code and a stable message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
