package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/ollama/ollama/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ollamaMockClient struct {
	mock.Mock
}

func (m *ollamaMockClient) Chat(ctx context.Context, req *api.ChatRequest, fn api.ChatResponseFunc) error {
	args := m.Called(ctx, req, fn)
	return args.Error(0)
}

func newOllamaMock(replies []api.ChatResponse, err error) (*llmClientOllama, *ollamaMockClient) {
	m := new(ollamaMockClient)
	m.On("Chat", mock.Anything, mock.AnythingOfType("*api.ChatRequest"), mock.AnythingOfType("api.ChatResponseFunc")).
		Run(func(args mock.Arguments) {
			fn := args.Get(2).(api.ChatResponseFunc)
			for _, r := range replies {
				_ = fn(r)
			}
		}).
		Return(err)
	return &llmClientOllama{client: m, model: "llama3"}, m
}

func TestSendOllama_JoinsChunks(t *testing.T) {
	final := api.ChatResponse{Message: api.Message{Content: "world"}, Done: true}
	final.PromptEvalCount = 12
	final.EvalCount = 3
	client, m := newOllamaMock([]api.ChatResponse{
		{Message: api.Message{Content: "hello "}},
		final,
	}, nil)

	res, err := client.Send(t.Context(), []Message{{Role: User, Content: "hi"}})

	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Content)
	assert.Equal(t, LLMTokenUsage{InputTokens: 12, OutputTokens: 3}, res.Usage)

	req := m.Calls[0].Arguments.Get(1).(*api.ChatRequest)
	assert.Equal(t, "llama3", req.Model)
	require.NotNil(t, req.Stream)
	assert.False(t, *req.Stream)
}

func TestSendOllama_Error(t *testing.T) {
	client, _ := newOllamaMock(nil, errors.New("model not found"))

	res, err := client.Send(t.Context(), []Message{{Role: User, Content: "hi"}})

	assert.Nil(t, res)
	assert.EqualError(t, err, "model not found")
}

func TestToOllamaMessages(t *testing.T) {
	msgs := toOllamaMessages([]Message{
		{Role: System, Content: "be brief"},
		{Role: User, Content: "hi"},
	})

	assert.Equal(t, []api.Message{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
	}, msgs)
}
