package api

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/phrazzld/ideagen/internal/domain"
	"github.com/phrazzld/ideagen/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

// modeOption is one radio button of the mode selector.
type modeOption struct {
	Value   string
	Label   string
	Checked bool
}

// pageView is the data handed to every page template.
type pageView struct {
	Title string
	Page  string

	Modes       []modeOption
	InputLabel  string
	Placeholder string
	Input       string

	Warning   string
	Error     string
	Result    string
	HasResult bool
}

// PageHandler serves the landing and generator screens.
type PageHandler struct {
	ideaService service.IdeaService
	logger      *slog.Logger
	landing     *template.Template
	generator   *template.Template
}

// NewPageHandler parses the embedded templates and returns a PageHandler.
func NewPageHandler(ideaService service.IdeaService, logger *slog.Logger) (*PageHandler, error) {
	if ideaService == nil {
		return nil, errors.New("idea service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	landing, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/landing.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse landing template: %w", err)
	}

	generator, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/generator.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse generator template: %w", err)
	}

	return &PageHandler{
		ideaService: ideaService,
		logger:      logger.With("component", "page_handler"),
		landing:     landing,
		generator:   generator,
	}, nil
}

// Landing handles GET / requests
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, h.landing, http.StatusOK, pageView{Title: "Welcome", Page: "landing"})
}

// Generator handles GET /generator requests
func (h *PageHandler) Generator(w http.ResponseWriter, r *http.Request) {
	mode, err := domain.ParseInputMode(r.URL.Query().Get("mode"))
	if err != nil {
		mode = domain.KeywordThemes
	}
	h.render(w, r, h.generator, http.StatusOK, newGeneratorView(mode, ""))
}

// Generate handles POST /generator requests. The screen is rendered again in
// every case so the user can make another attempt.
func (h *PageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}

	input := r.PostForm.Get("input")
	mode, err := domain.ParseInputMode(r.PostForm.Get("mode"))
	if err != nil {
		view := newGeneratorView(domain.KeywordThemes, input)
		view.Warning = GetSafeErrorMessage(err)
		h.render(w, r, h.generator, http.StatusOK, view)
		return
	}

	view := newGeneratorView(mode, input)

	text, err := h.ideaService.GenerateIdea(r.Context(), domain.IdeaRequest{Mode: mode, Input: input})
	result := domain.GenerationResult{Text: text, Err: err}

	switch {
	case result.Succeeded():
		view.Result = result.Text
		view.HasResult = true
	case errors.Is(err, domain.ErrValidation):
		view.Warning = GetSafeErrorMessage(err)
	default:
		view.Error = GenerationFailureMessage(err)
	}

	h.render(w, r, h.generator, http.StatusOK, view)
}

func newGeneratorView(selected domain.InputMode, input string) pageView {
	modes := make([]modeOption, 0, len(domain.InputModes()))
	for _, m := range domain.InputModes() {
		modes = append(modes, modeOption{
			Value:   m.String(),
			Label:   m.Label(),
			Checked: m == selected,
		})
	}

	return pageView{
		Title:       "Startup Idea Generator",
		Page:        "generator",
		Modes:       modes,
		InputLabel:  selected.InputLabel(),
		Placeholder: selected.Placeholder(),
		Input:       input,
	}
}

// render executes the layout into a buffer first so a template error never
// produces a half-written page.
func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, view pageView) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", view); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render page", "page", view.Page, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write page", "page", view.Page, "error", err)
	}
}
