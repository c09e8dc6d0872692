package domain

import (
	"fmt"
	"strings"
)

// InputMode selects how the user supplies raw content.
type InputMode string

// Possible input modes. KeywordThemes is the default.
const (
	KeywordThemes    InputMode = "keywords"
	ProblemStatement InputMode = "problem"
)

// InputModes returns every mode in display order.
func InputModes() []InputMode {
	return []InputMode{KeywordThemes, ProblemStatement}
}

// ParseInputMode accepts either the wire value ("keywords", "problem") or the
// display label ("Keywords/Themes", "Problem Statement"), case-insensitively.
// An empty string selects KeywordThemes.
func ParseInputMode(s string) (InputMode, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" {
		return KeywordThemes, nil
	}

	for _, mode := range InputModes() {
		if normalized == string(mode) || normalized == strings.ToLower(mode.Label()) {
			return mode, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidInputMode, s)
}

// IsValid reports whether m is one of the known modes.
func (m InputMode) IsValid() bool {
	return m == KeywordThemes || m == ProblemStatement
}

// Label is the name shown on the mode selector.
func (m InputMode) Label() string {
	switch m {
	case ProblemStatement:
		return "Problem Statement"
	case KeywordThemes:
		return "Keywords/Themes"
	default:
		return string(m)
	}
}

// InputLabel is the caption of the text input for this mode.
func (m InputMode) InputLabel() string {
	if m == ProblemStatement {
		return "Describe your idea:"
	}
	return "Enter keywords:"
}

// Placeholder is the hint shown in an empty text input for this mode.
func (m InputMode) Placeholder() string {
	if m == ProblemStatement {
		return "Describe a problem..."
	}
	return "e.g., AI, healthcare"
}

// String implements fmt.Stringer.
func (m InputMode) String() string {
	return string(m)
}
