package prompt_test

import (
	"strings"
	"testing"

	"github.com/phrazzld/ideagen/internal/domain"
	"github.com/phrazzld/ideagen/internal/prompt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_ContainsUserTextVerbatim(t *testing.T) {
	inputs := []string{
		"healthcare, AI",
		"Small farms can't predict frost.\nThey lose 20% of crops.",
		"  leading and trailing spaces  ",
		"<b>markup</b> & {{.Input}} \"quotes\"",
		"日本語のキーワード, ロボット",
	}

	for _, mode := range domain.InputModes() {
		for _, input := range inputs {
			got := prompt.Build(mode, input)
			require.NotEmpty(t, got)
			assert.Contains(t, got, input, "mode %s should embed the input unchanged", mode)
		}
	}
}

func TestBuild_ContainsEveryFieldExactlyOnce(t *testing.T) {
	for _, mode := range domain.InputModes() {
		t.Run(mode.String(), func(t *testing.T) {
			got := prompt.Build(mode, "drones, logistics")

			for _, field := range prompt.Fields() {
				assert.Equal(t, 1, strings.Count(got, field), "field %q should appear once", field)
			}
		})
	}
}

func TestBuild_IsDeterministic(t *testing.T) {
	first := prompt.Build(domain.ProblemStatement, "Clinics waste hours on paperwork.")
	second := prompt.Build(domain.ProblemStatement, "Clinics waste hours on paperwork.")

	assert.Equal(t, []byte(first), []byte(second))
}

func TestBuild_DistinguishesModes(t *testing.T) {
	keywords := prompt.Build(domain.KeywordThemes, "fintech")
	problem := prompt.Build(domain.ProblemStatement, "fintech")

	assert.NotEqual(t, keywords, problem)
	assert.Contains(t, keywords, "keywords or themes")
	assert.Contains(t, problem, "a problem statement")
}

func TestBuild_ListsFieldsInOrder(t *testing.T) {
	got := prompt.Build(domain.KeywordThemes, "healthcare, AI")

	last := -1
	for i, field := range prompt.Fields() {
		line := strings.Join([]string{itoa(i + 1), ". ", field}, "")
		idx := strings.Index(got, line)
		require.GreaterOrEqual(t, idx, 0, "missing numbered line %q", line)
		assert.Greater(t, idx, last)
		last = idx
	}
}

func TestBuild_KeywordScenario(t *testing.T) {
	got := prompt.Build(domain.KeywordThemes, "healthcare, AI")

	assert.Contains(t, got, "healthcare, AI")
	assert.Contains(t, got, "Startup Name")
}

func TestFields_ReturnsCopy(t *testing.T) {
	f := prompt.Fields()
	require.Len(t, f, 7)
	f[0] = "changed"

	assert.Equal(t, "Startup Name", prompt.Fields()[0])
}

func itoa(i int) string {
	return string(rune('0' + i))
}
