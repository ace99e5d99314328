package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/klemjul/researchforge/internal/api"
	apperrors "github.com/klemjul/researchforge/internal/errors"
)

// directEndpoint names the backend in errors, in place of an HTTP path.
const directEndpoint = "llm"

const SystemInstruction = `You are ResearchForge AI, a proactive research assistant.

Answer immediately and completely. Do not open with clarifying questions;
pick reasonable defaults when details are missing.

You help researchers to:
1. find arXiv papers (recent work, exact query terms, 5-10 papers with titles, authors and links)
2. write research proposals (title, abstract, methodology, timeline, budget)
3. draft collaboration emails (subject, greeting, body, closing)

Format every answer in markdown: **bold**, *italic*, ## headers and bullet
lists. Be specific and include concrete details and numbers.`

type ClientFactory func(model string) (LLMClient, error)

type DirectBackendOption func(*DirectBackend)

func WithDirectLogger(logger *slog.Logger) DirectBackendOption {
	return func(b *DirectBackend) {
		b.logger = logger
	}
}

func WithClientFactory(factory ClientFactory) DirectBackendOption {
	return func(b *DirectBackend) {
		b.newClient = factory
	}
}

func WithSystemInstruction(instruction string) DirectBackendOption {
	return func(b *DirectBackend) {
		b.instruction = instruction
	}
}

// DirectBackend answers chat requests by calling an LLM provider
// in-process, trying each model in turn until one replies.
type DirectBackend struct {
	models      []string
	instruction string
	newClient   ClientFactory
	newID       func() string
	logger      *slog.Logger
}

func NewDirectBackend(provider LLMProvider, models []string, opts ...DirectBackendOption) (*DirectBackend, error) {
	var clean []string
	for _, m := range models {
		if m = strings.TrimSpace(m); m != "" {
			clean = append(clean, m)
		}
	}
	if len(clean) == 0 {
		return nil, apperrors.NewValidationError("model", fmt.Sprintf("at least one model is required for provider %s", provider))
	}

	b := &DirectBackend{
		models:      clean,
		instruction: SystemInstruction,
		newClient: func(model string) (LLMClient, error) {
			return NewClient(provider, LLMClientOptions{Model: model})
		},
		newID:  uuid.NewString,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func (b *DirectBackend) Models() []string {
	return append([]string(nil), b.models...)
}

func (b *DirectBackend) Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, apperrors.NewAPIError(http.StatusBadRequest, directEndpoint, "Message parameter is required")
	}

	sessionID := b.newID()
	if req.SessionID != nil && *req.SessionID != "" {
		sessionID = *req.SessionID
	}

	messages := Prompt(b.instruction, req.Message)

	var lastErr error
	for _, model := range b.models {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewNetworkError(directEndpoint, err)
		}

		b.logger.Info("trying model", "model", model)
		res, err := b.send(ctx, model, messages)
		if err != nil {
			lastErr = err
			b.logger.Warn("model failed", "model", model, "error", err)
			continue
		}

		b.logger.Info("model succeeded", "model", model,
			"input_tokens", res.Usage.InputTokens,
			"output_tokens", res.Usage.OutputTokens)
		return &api.ChatResponse{Response: res.Content, SessionID: sessionID}, nil
	}

	return nil, apperrors.NewAPIError(
		http.StatusServiceUnavailable,
		directEndpoint,
		fmt.Sprintf("All models failed. Last error: %v. Please try again in a few moments.", lastErr),
	)
}

func (b *DirectBackend) send(ctx context.Context, model string, messages []Message) (*LLMSendResponse, error) {
	client, err := b.newClient(model)
	if err != nil {
		return nil, err
	}
	return client.Send(ctx, messages)
}
