package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ideagen/internal/config"
	"github.com/phrazzld/ideagen/internal/generation"
)

// validateConfig checks the settings a generator cannot work without.
// Invalid decoding values are rejected rather than silently replaced.
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.GeminiAPIKey == "" {
		logger.ErrorContext(ctx, "Missing Gemini API key")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return fmt.Errorf("%w: temperature %.2f out of range [0, 2]", generation.ErrInvalidConfig, cfg.Temperature)
	}

	if cfg.MaxOutputTokens <= 0 {
		return fmt.Errorf("%w: max output tokens must be positive", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	return nil
}
