package app

import (
	"testing"

	"github.com/klemjul/researchforge/internal/api"
	"github.com/klemjul/researchforge/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChatBackend(t *testing.T) {
	svc := &DefaultBackendService{}

	backend, err := svc.NewChatBackend(BackendOptions{Provider: ProviderBackend, Endpoint: "http://localhost:8080"})
	require.NoError(t, err)
	assert.IsType(t, &api.Client{}, backend)

	backend, err = svc.NewChatBackend(BackendOptions{Endpoint: "http://localhost:8080"})
	require.NoError(t, err)
	assert.IsType(t, &api.Client{}, backend)

	backend, err = svc.NewChatBackend(BackendOptions{Provider: "ollama", Models: []string{"llama3", "mistral"}})
	require.NoError(t, err)
	direct, ok := backend.(*llm.DirectBackend)
	require.True(t, ok)
	assert.Equal(t, []string{"llama3", "mistral"}, direct.Models())
}

func TestNewChatBackend_Errors(t *testing.T) {
	svc := &DefaultBackendService{}

	_, err := svc.NewChatBackend(BackendOptions{Provider: "gemini"})
	assert.EqualError(t, err, "gemini: invalid provider")

	_, err = svc.NewChatBackend(BackendOptions{Provider: ProviderBackend, Endpoint: "ftp://example.com"})
	assert.Error(t, err)

	_, err = svc.NewChatBackend(BackendOptions{Provider: "openai"})
	assert.Error(t, err)
}

func TestNewSearcher(t *testing.T) {
	svc := &DefaultBackendService{}

	s, err := svc.NewSearcher("http://localhost:8080", nil)
	require.NoError(t, err)
	assert.NotNil(t, s)

	_, err = svc.NewSearcher("not a url\x7f", nil)
	assert.Error(t, err)
}

func TestNewDefaultApp(t *testing.T) {
	a := NewDefaultApp()

	assert.IsType(t, &DefaultBackendService{}, a.Backend())
	assert.IsType(t, &DefaultTUIService{}, a.TUI())
	assert.IsType(t, &DefaultTextFormatService{}, a.Format())
	assert.Contains(t, a.Format().FormatPapers(nil), "No papers found")
}
