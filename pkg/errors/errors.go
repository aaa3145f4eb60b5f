package errors

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("invalid input data")

	// ErrDecode marks corrupt persisted or imported data. It is recovered
	// locally (fallback dataset, skipped row), never propagated as a crash.
	ErrDecode = errors.New("could not decode stored data")

	// ErrUnreadablePayload marks a bulk import payload that could not be
	// parsed at all, as opposed to individual rows being skipped.
	ErrUnreadablePayload = errors.New("import payload is unreadable")

	ErrInvalidStatus   = errors.New("invalid shipment status")
	ErrInvalidPriority = errors.New("invalid shipment priority")
)

type AppError struct {
	Code    string
	Message string
	Err     error
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
