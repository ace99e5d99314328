package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openaiCompletions is the slice of the chat completions service we use.
type openaiCompletions interface {
	New(ctx context.Context, body openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
}

type llmClientOpenAi struct {
	client openaiCompletions
	model  string
}

func newOpenAIClient(apiKey string, model string, opts ...option.RequestOption) *llmClientOpenAi {
	client := openai.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...)
	return &llmClientOpenAi{
		client: &client.Chat.Completions,
		model:  model,
	}
}

func toOpenAIMessage(msg Message) openai.ChatCompletionMessageParamUnion {
	switch msg.Role {
	case System:
		return openai.SystemMessage(msg.Content)
	case Assistant:
		return openai.AssistantMessage(msg.Content)
	default:
		return openai.UserMessage(msg.Content)
	}
}

func (ai *llmClientOpenAi) Send(ctx context.Context, messages []Message) (*LLMSendResponse, error) {
	params := openai.ChatCompletionNewParams{
		Model:    ai.model,
		Messages: make([]openai.ChatCompletionMessageParamUnion, len(messages)),
		N:        openai.Int(1),
	}
	for i, msg := range messages {
		params.Messages[i] = toOpenAIMessage(msg)
	}

	completion, err := ai.client.New(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("openai: response has no choices")
	}

	return &LLMSendResponse{
		Content: completion.Choices[0].Message.Content,
		Usage: LLMTokenUsage{
			InputTokens:  completion.Usage.PromptTokens,
			OutputTokens: completion.Usage.CompletionTokens,
		},
	}, nil
}
