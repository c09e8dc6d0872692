package generation_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/phrazzld/ideagen/internal/generation"
	"github.com/phrazzld/ideagen/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoizingGenerator_CachesSuccess(t *testing.T) {
	next := mocks.NewMockGeneratorWithText("## Plan")
	g := generation.NewMemoizingGenerator(next, 10, nil)

	for i := 0; i < 3; i++ {
		text, err := g.Generate(context.Background(), "same prompt")
		require.NoError(t, err)
		assert.Equal(t, "## Plan", text)
	}

	assert.Equal(t, 1, next.CallCount(), "identical prompts should reach the model once")
	assert.Equal(t, 1, g.Len())
}

func TestMemoizingGenerator_DoesNotCacheFailures(t *testing.T) {
	calls := 0
	next := &mocks.MockGenerator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			calls++
			if calls == 1 {
				return "", generation.ErrGenerationFailed
			}
			return "recovered", nil
		},
	}
	g := generation.NewMemoizingGenerator(next, 10, nil)

	_, err := g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, generation.ErrGenerationFailed)
	assert.Equal(t, 0, g.Len())

	text, err := g.Generate(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "recovered", text)
	assert.Equal(t, 2, next.CallCount())
}

func TestMemoizingGenerator_EvictsOldest(t *testing.T) {
	next := &mocks.MockGenerator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			return "text for " + prompt, nil
		},
	}
	g := generation.NewMemoizingGenerator(next, 2, nil)
	ctx := context.Background()

	_, _ = g.Generate(ctx, "a")
	_, _ = g.Generate(ctx, "b")
	_, _ = g.Generate(ctx, "a") // refresh a, b is now oldest
	_, _ = g.Generate(ctx, "c") // evicts b
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 3, next.CallCount())

	_, _ = g.Generate(ctx, "a")
	assert.Equal(t, 3, next.CallCount(), "a should still be cached")

	_, _ = g.Generate(ctx, "b")
	assert.Equal(t, 4, next.CallCount(), "b should have been evicted")
}

func TestMemoizingGenerator_Unbounded(t *testing.T) {
	next := &mocks.MockGenerator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			return prompt, nil
		},
	}
	g := generation.NewMemoizingGenerator(next, 0, nil)

	for _, p := range []string{"1", "2", "3", "4", "5"} {
		_, err := g.Generate(context.Background(), p)
		require.NoError(t, err)
	}

	assert.Equal(t, 5, g.Len())
}

func TestMemoizingGenerator_ConcurrentUse(t *testing.T) {
	next := mocks.NewMockGeneratorWithText("ok")
	g := generation.NewMemoizingGenerator(next, 4, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			prompt := string(rune('a' + i%6))
			text, err := g.Generate(context.Background(), prompt)
			assert.NoError(t, err)
			assert.Equal(t, "ok", text)
		}(i)
	}
	wg.Wait()

	assert.LessOrEqual(t, g.Len(), 4)
}

func TestMemoizingGenerator_PassesErrorsThrough(t *testing.T) {
	cause := errors.New("boom")
	g := generation.NewMemoizingGenerator(mocks.NewMockGeneratorWithError(cause), 1, nil)

	text, err := g.Generate(context.Background(), "p")

	assert.Empty(t, text)
	assert.ErrorIs(t, err, cause)
}
