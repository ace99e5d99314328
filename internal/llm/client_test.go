package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name      string
		provider  LLMProvider
		env       map[string]string
		wantErr   string
		wantModel string
	}{
		{
			name:     "openai without key",
			provider: LLMProviderOpenAI,
			env:      map[string]string{"OPENAI_API_KEY": ""},
			wantErr:  "OPENAI_API_KEY environment variable is not set",
		},
		{
			name:      "openai with key",
			provider:  LLMProviderOpenAI,
			env:       map[string]string{"OPENAI_API_KEY": "dummy-key"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:     "ollama without endpoint",
			provider: LLMProviderOllama,
			env:      map[string]string{"OLLAMA_ENDPOINT": ""},
			wantErr:  "OLLAMA_ENDPOINT environment variable is not set",
		},
		{
			name:     "ollama with broken endpoint",
			provider: LLMProviderOllama,
			env:      map[string]string{"OLLAMA_ENDPOINT": "://no-scheme"},
			wantErr:  "OLLAMA_ENDPOINT URL is invalid",
		},
		{
			name:      "ollama with endpoint",
			provider:  LLMProviderOllama,
			env:       map[string]string{"OLLAMA_ENDPOINT": "http://localhost:11434"},
			wantModel: "gpt-4o-mini",
		},
		{
			name:     "unknown provider",
			provider: LLMProvider("gemini"),
			wantErr:  "gemini: invalid provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			client, err := NewClient(tt.provider, LLMClientOptions{Model: "gpt-4o-mini"})
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}

			require.NoError(t, err)
			switch c := client.(type) {
			case *llmClientOpenAi:
				assert.Equal(t, tt.wantModel, c.model)
			case *llmClientOllama:
				assert.Equal(t, tt.wantModel, c.model)
			default:
				t.Fatalf("unexpected client type %T", client)
			}
		})
	}
}

func TestNewClient_OpenAIBaseURL(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "dummy-key")
	t.Setenv("OPENAI_BASE_URL", "http://localhost:1234/v1")

	client, err := NewClient(LLMProviderOpenAI, LLMClientOptions{Model: "local"})

	require.NoError(t, err)
	assert.IsType(t, &llmClientOpenAi{}, client)
}

func TestPrompt(t *testing.T) {
	assert.Equal(t, []Message{
		{Role: System, Content: "be brief"},
		{Role: User, Content: "hi"},
	}, Prompt("be brief", "hi"))

	assert.Equal(t, []Message{{Role: User, Content: "hi"}}, Prompt("", "hi"))
}
