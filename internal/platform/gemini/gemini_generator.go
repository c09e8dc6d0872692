package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/phrazzld/ideagen/internal/config"
	"github.com/phrazzld/ideagen/internal/generation"
	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used by GeminiGenerator.
type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// GeminiGenerator implements the generation.Generator interface using
// Google's Gemini API.
type GeminiGenerator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// models performs the generate-content calls
	models contentGenerator
}

var _ generation.Generator = (*GeminiGenerator)(nil)

// NewGenerator creates a GeminiGenerator backed by a real genai client.
//
// Parameters:
//   - ctx: Context for initialization
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing API key, model name and decoding settings
//
// Returns:
//   - A properly initialized GeminiGenerator or an error wrapping
//     generation.ErrInvalidConfig if initialization fails
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*GeminiGenerator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	logger.InfoContext(ctx, "Initializing Gemini generator", "model", cfg.ModelName)

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v", generation.ErrInvalidConfig, err)
	}

	return newGeminiGenerator(logger, cfg, client.Models), nil
}

func newGeminiGenerator(logger *slog.Logger, cfg config.LLMConfig, models contentGenerator) *GeminiGenerator {
	return &GeminiGenerator{
		logger: logger,
		config: cfg,
		models: models,
	}
}

// Generate sends prompt to Gemini once and returns the generated text.
//
// Errors:
//   - generation.ErrEmptyPrompt when prompt is empty
//   - generation.ErrGenerationFailed for transport, auth and quota failures
//   - generation.ErrContentBlocked when the prompt or answer was blocked
//   - generation.ErrInvalidResponse when the response carries no text
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", generation.ErrEmptyPrompt
	}

	g.logger.InfoContext(ctx, "Making Gemini API call",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.models.GenerateContent(ctx, g.config.ModelName, genai.Text(prompt), g.generateConfig())
	if err != nil {
		attrs := []any{"error", err, "duration_ms", time.Since(start).Milliseconds()}
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			attrs = append(attrs, "status_code", apiErr.Code)
		}
		g.logger.ErrorContext(ctx, "Gemini API call failed", attrs...)
		return "", fmt.Errorf("%w: %w", generation.ErrGenerationFailed, err)
	}

	text, err := extractText(resp)
	if err != nil {
		g.logger.WarnContext(ctx, "Gemini API returned unusable response", "error", err)
		return "", err
	}

	g.logger.InfoContext(ctx, "Gemini API call successful",
		"duration_ms", time.Since(start).Milliseconds(),
		"response_length", len(text))

	return text, nil
}

func (g *GeminiGenerator) generateConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.config.Temperature),
		MaxOutputTokens: g.config.MaxOutputTokens,
	}
}

// extractText concatenates the non-thought text parts of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" &&
		resp.PromptFeedback.BlockReason != genai.BlockedReasonUnspecified {
		return "", fmt.Errorf("%w: prompt blocked (%s)", generation.ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: response blocked", generation.ErrContentBlocked)
	}

	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}

	if sb.Len() == 0 {
		return "", fmt.Errorf("%w: response contains no text", generation.ErrInvalidResponse)
	}

	return sb.String(), nil
}
