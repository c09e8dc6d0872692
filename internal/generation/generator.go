package generation

import "context"

// Generator sends a prompt to a language model and returns its text.
type Generator interface {
	// Generate makes a single attempt and returns the generated text unchanged.
	// Failures are reported as errors wrapping one of the sentinels in errors.go.
	Generate(ctx context.Context, prompt string) (string, error)
}
