package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/ideagen/internal/api/shared"
	"github.com/phrazzld/ideagen/internal/domain"
	"github.com/phrazzld/ideagen/internal/prompt"
	"github.com/phrazzld/ideagen/internal/service"
)

// IdeaHandler handles the JSON generation endpoint.
type IdeaHandler struct {
	ideaService service.IdeaService
	logger      *slog.Logger
}

// NewIdeaHandler creates a new IdeaHandler
func NewIdeaHandler(ideaService service.IdeaService, logger *slog.Logger) *IdeaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &IdeaHandler{
		ideaService: ideaService,
		logger:      logger.With("component", "idea_handler"),
	}
}

// GenerateIdea handles POST /api/ideas requests
func (h *IdeaHandler) GenerateIdea(w http.ResponseWriter, r *http.Request) {
	var req GenerateIdeaRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	mode, err := domain.ParseInputMode(req.Mode)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	text, err := h.ideaService.GenerateIdea(r.Context(), domain.IdeaRequest{Mode: mode, Input: req.Input})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, GenerateIdeaResponse{
		Mode:         mode.String(),
		PromptFields: prompt.Fields(),
		Result:       text,
	})
}
