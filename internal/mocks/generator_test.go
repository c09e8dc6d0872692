package mocks_test

import (
	"context"
	"errors"
	"testing"

	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/mocks"
	"github.com/stretchr/testify/assert"
)

func TestMockGenerator_TracksCalls(t *testing.T) {
	m := mocks.NewMockGeneratorWithText("T")

	text, err := m.Generate(context.Background(), "first")
	assert.NoError(t, err)
	assert.Equal(t, "T", text)
	_, _ = m.Generate(context.Background(), "second")

	assert.Equal(t, 2, m.CallCount())
	assert.Equal(t, []string{"first", "second"}, m.Prompts())

	m.Reset()
	assert.Equal(t, 0, m.CallCount())
}

func TestMockGenerator_UsesGenerateFn(t *testing.T) {
	m := &mocks.MockGenerator{
		Text: "ignored",
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			return "echo: " + prompt, nil
		},
	}

	text, err := m.Generate(context.Background(), "hi")
	assert.NoError(t, err)
	assert.Equal(t, "echo: hi", text)
}

func TestMockGenerator_Constructors(t *testing.T) {
	custom := errors.New("quota exceeded")

	_, err := mocks.NewMockGeneratorWithError(custom).Generate(context.Background(), "p")
	assert.ErrorIs(t, err, custom)

	_, err = mocks.MockGeneratorThatFails().Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)

	_, err = mocks.MockGeneratorWithContentBlocked().Generate(context.Background(), "p")
	assert.ErrorIs(t, err, generation.ErrContentBlocked)
}
