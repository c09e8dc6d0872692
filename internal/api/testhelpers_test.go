package api

import (
	"testing"

	"github.com/phrazzld/ideagen/internal/mocks"
	"github.com/phrazzld/ideagen/internal/service"
	"github.com/stretchr/testify/require"
)

// newTestIdeaService wires the real service to a mock generator.
func newTestIdeaService(t *testing.T, gen *mocks.MockGenerator) service.IdeaService {
	t.Helper()
	svc, err := service.NewIdeaService(gen, nil)
	require.NoError(t, err)
	return svc
}
