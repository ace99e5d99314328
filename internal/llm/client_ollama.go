package llm

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/ollama/ollama/api"
)

type ollamaChatter interface {
	Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error
}

type llmClientOllama struct {
	client ollamaChatter
	model  string
}

func newOllamaClient(localEndpoint url.URL, model string) *llmClientOllama {
	return &llmClientOllama{
		client: api.NewClient(&localEndpoint, http.DefaultClient),
		model:  model,
	}
}

// Send asks for a non-streamed reply; the callback still may fire more
// than once, so chunks are joined.
func (ai *llmClientOllama) Send(ctx context.Context, messages []Message) (*LLMSendResponse, error) {
	stream := false
	var content strings.Builder
	var usage LLMTokenUsage
	err := ai.client.Chat(ctx, &api.ChatRequest{
		Model:    ai.model,
		Messages: toOllamaMessages(messages),
		Stream:   &stream,
	}, func(resp api.ChatResponse) error {
		content.WriteString(resp.Message.Content)
		if resp.Done {
			usage = LLMTokenUsage{
				InputTokens:  int64(resp.PromptEvalCount),
				OutputTokens: int64(resp.EvalCount),
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &LLMSendResponse{Content: content.String(), Usage: usage}, nil
}

func toOllamaMessages(messages []Message) []api.Message {
	out := make([]api.Message, 0, len(messages))
	for _, msg := range messages {
		out = append(out, api.Message{Role: string(msg.Role), Content: msg.Content})
	}
	return out
}
