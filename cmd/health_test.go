package cmd

import (
	"errors"
	"testing"

	"github.com/klemjul/researchforge/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealth_Healthy(t *testing.T) {
	mockApp := NewMockApp()
	searcher := &MockSearcher{}
	mockApp.backend.On("NewSearcher", "http://localhost:8080", mock.Anything).Return(searcher, nil)
	searcher.On("Health", mock.Anything).
		Return(&api.HealthResponse{Status: "healthy", Service: "ResearchForge AI", Version: "1.0.0"}, nil)

	output, err := executeRootCommand(mockApp, "health")

	require.NoError(t, err)
	assert.Equal(t, "ResearchForge AI 1.0.0 at http://localhost:8080: healthy\n", output)
}

func TestHealth_Unhealthy(t *testing.T) {
	mockApp := NewMockApp()
	searcher := &MockSearcher{}
	mockApp.backend.On("NewSearcher", mock.Anything, mock.Anything).Return(searcher, nil)
	searcher.On("Health", mock.Anything).
		Return(&api.HealthResponse{Status: "degraded", Service: "ResearchForge AI", Version: "1.0.0"}, errors.New(`service reported status "degraded"`))

	output, err := executeRootCommand(mockApp, "health")

	assert.ErrorContains(t, err, "health check failed")
	assert.Contains(t, output, "degraded")
}

func TestHealth_Unreachable(t *testing.T) {
	mockApp := NewMockApp()
	searcher := &MockSearcher{}
	mockApp.backend.On("NewSearcher", mock.Anything, mock.Anything).Return(searcher, nil)
	searcher.On("Health", mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := executeRootCommand(mockApp, "health")

	assert.ErrorContains(t, err, "health check failed: connection refused")
}
