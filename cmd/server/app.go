package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/ideagen/internal/config"
	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/platform/gemini"
	"github.com/phrazzld/ideagen/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	generator   generation.Generator
	ideaService service.IdeaService
}

// newApplication creates a new application instance backed by the Gemini
// generator. Failing to build the client is an initialization failure.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	gen, err := gemini.NewGenerator(
		ctx,
		logger.With("component", "llm_generator"),
		cfg.LLM,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM generator: %w", err)
	}
	logger.Info("LLM generator initialized successfully", "model", cfg.LLM.ModelName)

	return newApplicationWithGenerator(cfg, logger, gen)
}

// newApplicationWithGenerator wires the services around an existing generator.
func newApplicationWithGenerator(
	cfg *config.Config,
	logger *slog.Logger,
	gen generation.Generator,
) (*application, error) {
	app := &application{
		config:    cfg,
		logger:    logger,
		generator: gen,
	}

	if cfg.Cache.Enabled {
		app.generator = generation.NewMemoizingGenerator(
			gen,
			cfg.Cache.MaxEntries,
			logger.With("component", "generation_cache"),
		)
		logger.Info("Generation cache enabled", "max_entries", cfg.Cache.MaxEntries)
	}

	var err error
	app.ideaService, err = service.NewIdeaService(app.generator, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create idea service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	app.logger.Info("Application shutdown completed")
}
