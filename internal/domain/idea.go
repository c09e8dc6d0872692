package domain

import (
	"fmt"
	"strings"
)

// IdeaRequest is a single user submission. It lives only for the duration of
// one request-response cycle.
type IdeaRequest struct {
	Mode  InputMode
	Input string
}

// NewIdeaRequest parses mode and returns a validated request.
func NewIdeaRequest(mode string, input string) (IdeaRequest, error) {
	m, err := ParseInputMode(mode)
	if err != nil {
		return IdeaRequest{}, err
	}

	req := IdeaRequest{Mode: m, Input: input}
	if err := req.Validate(); err != nil {
		return IdeaRequest{}, err
	}

	return req, nil
}

// Validate checks the request before any prompt is built.
// The input itself is never modified.
func (r IdeaRequest) Validate() error {
	if !r.Mode.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidInputMode, string(r.Mode))
	}

	if strings.TrimSpace(r.Input) == "" {
		return ErrEmptyInput
	}

	return nil
}

// GenerationResult is either generated text or a failure message.
type GenerationResult struct {
	// Text is the model output, markdown-formatted, exactly as returned.
	Text string

	// Err is set when generation failed.
	Err error
}

// Succeeded reports whether the result carries text.
func (r GenerationResult) Succeeded() bool {
	return r.Err == nil
}
