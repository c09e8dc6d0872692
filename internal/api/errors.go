package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/ideagen/internal/domain"
	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/redact"
	"github.com/phrazzld/ideagen/internal/service"
)

// EmptyInputWarning is shown when the user submits without any text.
const EmptyInputWarning = "Please enter some text before generating."

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrContentBlocked):
		return http.StatusUnprocessableEntity

	case errors.Is(err, generation.ErrGenerationFailed),
		errors.Is(err, generation.ErrInvalidResponse):
		return http.StatusBadGateway

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrEmptyInput):
		return EmptyInputWarning

	case errors.Is(err, domain.ErrInvalidInputMode):
		return "Unknown input type"

	case errors.Is(err, generation.ErrContentBlocked):
		return "The request was blocked by the model's safety filters"

	case errors.Is(err, generation.ErrInvalidResponse):
		return "The model returned an empty or unreadable response"

	case errors.Is(err, generation.ErrGenerationFailed):
		return "The generation service could not be reached"

	default:
		return "An unexpected error occurred"
	}
}

// GenerationFailureMessage is the text shown on the generator screen when a
// call fails. It carries the redacted cause so the user can act on it.
func GenerationFailureMessage(err error) string {
	var svcErr *service.IdeaServiceError
	if errors.As(err, &svcErr) && svcErr.Err != nil {
		err = svcErr.Err
	}
	return "Generation failed: " + redact.Error(err)
}
