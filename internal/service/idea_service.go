package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/ideagen/internal/domain"
	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/prompt"
	"github.com/phrazzld/ideagen/internal/redact"
)

// IdeaService generates startup plans from user input.
type IdeaService interface {
	// GenerateIdea validates req, builds the prompt and returns the model's
	// text unchanged. Empty input yields domain.ErrEmptyInput and no
	// generator call is made.
	GenerateIdea(ctx context.Context, req domain.IdeaRequest) (string, error)
}

// ideaServiceImpl implements the IdeaService interface
type ideaServiceImpl struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewIdeaService creates a new IdeaService.
// It returns an error if the generator is nil.
func NewIdeaService(generator generation.Generator, logger *slog.Logger) (IdeaService, error) {
	if generator == nil {
		return nil, &IdeaServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ideaServiceImpl{
		generator: generator,
		logger:    logger.With("component", "idea_service"),
	}, nil
}

// GenerateIdea implements IdeaService.
func (s *ideaServiceImpl) GenerateIdea(ctx context.Context, req domain.IdeaRequest) (string, error) {
	if err := req.Validate(); err != nil {
		s.logger.DebugContext(ctx, "rejected idea request",
			"mode", req.Mode.String(),
			"reason", err.Error())
		return "", NewIdeaServiceError("generate_idea", "invalid request", err)
	}

	p := prompt.Build(req.Mode, req.Input)

	s.logger.InfoContext(ctx, "generating startup plan",
		"mode", req.Mode.String(),
		"input_length", len(req.Input),
		"prompt_length", len(p))

	text, err := s.generator.Generate(ctx, p)
	if err != nil {
		s.logger.ErrorContext(ctx, "startup plan generation failed",
			"mode", req.Mode.String(),
			"error", redact.Error(err))
		return "", NewIdeaServiceError("generate_idea", "generation failed", err)
	}

	s.logger.InfoContext(ctx, "startup plan generated",
		"mode", req.Mode.String(),
		"response_length", len(text))

	return text, nil
}
