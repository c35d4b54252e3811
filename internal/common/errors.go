package common

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrInternal         = errors.New("internal error")
	ErrDatabase         = errors.New("database error")
	ErrInsufficientData = errors.New("insufficient training data")
	ErrNoModel          = errors.New("no trained model available")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// DuplicateBillError rejects an upload that matches an existing bill. The
// conflicting bill's ID is surfaced so the caller can present it.
type DuplicateBillError struct {
	ExistingBillID uuid.UUID
	Reason         string
}

func (e *DuplicateBillError) Error() string {
	return fmt.Sprintf("duplicate bill: %s (existing bill %s)", e.Reason, e.ExistingBillID)
}

// IsDuplicate reports whether err is a duplicate-bill rejection.
func IsDuplicate(err error) (*DuplicateBillError, bool) {
	var d *DuplicateBillError
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
