package service

import (
	"errors"
	"fmt"

	"github.com/phrazzld/ideagen/internal/domain"
)

// IdeaServiceError wraps errors from the idea service with context.
type IdeaServiceError struct {
	// Operation is the operation that failed (e.g., "generate_idea")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for IdeaServiceError.
func (e *IdeaServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("idea service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("idea service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *IdeaServiceError) Unwrap() error {
	return e.Err
}

// NewIdeaServiceError creates a new IdeaServiceError.
// Validation errors from the domain are returned as they are, so callers can
// treat them as warnings rather than failures.
func NewIdeaServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, domain.ErrValidation) {
		return err
	}

	return &IdeaServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
