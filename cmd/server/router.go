package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/ideagen/internal/api"
	apiMiddleware "github.com/phrazzld/ideagen/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
// Returns the configured router or an error if a handler cannot be built.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	pageHandler, err := api.NewPageHandler(app.ideaService, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create page handler: %w", err)
	}
	ideaHandler := api.NewIdeaHandler(app.ideaService, app.logger)

	// Screens
	r.Get("/", pageHandler.Landing)
	r.Get("/generator", pageHandler.Generator)
	r.Post("/generator", pageHandler.Generate)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ideas", ideaHandler.GenerateIdea)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, err := w.Write([]byte("OK"))
		if err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r, nil
}
