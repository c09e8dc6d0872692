package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is the parent of every request validation error. Callers
	// that only need to tell warnings from failures match on it.
	ErrValidation = errors.New("validation failed")

	// ErrEmptyInput is returned when the user text is empty or whitespace only.
	// It is a validation warning: no generation is attempted.
	ErrEmptyInput = fmt.Errorf("%w: input text cannot be empty", ErrValidation)

	// ErrInvalidInputMode is returned when an input mode is not recognized.
	ErrInvalidInputMode = fmt.Errorf("%w: invalid input mode", ErrValidation)
)
