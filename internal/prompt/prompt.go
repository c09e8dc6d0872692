package prompt

import (
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/ideagen/internal/domain"
)

//go:embed templates/startup_plan.tmpl
var templateFS embed.FS

// fields are the plan sections requested from the model, in order.
var fields = []string{
	"Startup Name",
	"Tagline",
	"Problem Statement",
	"Solution",
	"Target Market",
	"Business Model",
	"Competitive Advantage",
}

var planTemplate = template.Must(
	template.New("startup_plan.tmpl").
		Funcs(template.FuncMap{"inc": func(i int) int { return i + 1 }}).
		ParseFS(templateFS, "templates/startup_plan.tmpl"),
)

// promptData represents the data passed to the prompt template.
type promptData struct {
	Source string
	Input  string
	Fields []string
}

// Fields returns the requested section labels in order.
func Fields() []string {
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Build returns the prompt for mode and text. It is a pure function: equal
// arguments always yield byte-identical output.
func Build(mode domain.InputMode, text string) string {
	var sb strings.Builder
	data := promptData{
		Source: sourceDescription(mode),
		Input:  text,
		Fields: fields,
	}

	// The template and data shape are fixed, so execution cannot fail at runtime.
	if err := planTemplate.Execute(&sb, data); err != nil {
		panic(fmt.Sprintf("prompt: execute startup plan template: %v", err))
	}

	return sb.String()
}

// sourceDescription is lowercase so that no section label is repeated.
func sourceDescription(mode domain.InputMode) string {
	if mode == domain.ProblemStatement {
		return "a problem statement"
	}
	return "keywords or themes"
}
