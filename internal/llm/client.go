package llm

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/openai/openai-go/option"
)

const (
	envOpenAIKey      = "OPENAI_API_KEY"
	envOpenAIBaseURL  = "OPENAI_BASE_URL"
	envOllamaEndpoint = "OLLAMA_ENDPOINT"
)

type LLMTokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}

type LLMSendResponse struct {
	Content string
	Usage   LLMTokenUsage
}

// LLMClient sends a whole conversation and waits for the complete reply.
type LLMClient interface {
	Send(ctx context.Context, messages []Message) (*LLMSendResponse, error)
}

type LLMProvider string

const (
	LLMProviderOpenAI LLMProvider = "openai"
	LLMProviderOllama LLMProvider = "ollama"
)

var LLMProviders = []LLMProvider{LLMProviderOpenAI, LLMProviderOllama}

type LLMClientOptions struct {
	Model string
}

// NewClient reads provider credentials from the environment:
// OPENAI_API_KEY (and optionally OPENAI_BASE_URL for compatible servers)
// or OLLAMA_ENDPOINT.
func NewClient(provider LLMProvider, opts LLMClientOptions) (LLMClient, error) {
	switch provider {
	case LLMProviderOpenAI:
		apiKey, err := requireEnv(envOpenAIKey)
		if err != nil {
			return nil, err
		}
		var reqOpts []option.RequestOption
		if baseURL := os.Getenv(envOpenAIBaseURL); baseURL != "" {
			reqOpts = append(reqOpts, option.WithBaseURL(baseURL))
		}
		return newOpenAIClient(apiKey, opts.Model, reqOpts...), nil

	case LLMProviderOllama:
		endpoint, err := requireEnv(envOllamaEndpoint)
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(endpoint)
		if err != nil {
			return nil, fmt.Errorf("%s URL is invalid: %v", envOllamaEndpoint, err)
		}
		return newOllamaClient(*u, opts.Model), nil

	default:
		return nil, fmt.Errorf("%s: invalid provider", provider)
	}
}

func requireEnv(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok || value == "" {
		return "", fmt.Errorf("%s environment variable is not set", name)
	}
	return value, nil
}
