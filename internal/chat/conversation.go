// Package chat drives one conversation with the assistant: it records each
// turn in a message log and threads the session token through requests.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/klemjul/researchforge/internal/api"
	apperrors "github.com/klemjul/researchforge/internal/errors"
	"github.com/klemjul/researchforge/internal/message"
)

const connectFailureText = "Unable to connect to the AI assistant. Please try again."

// Backend answers one chat turn. Implementations give no ordering or
// cancellation guarantee beyond one response or one error per call.
type Backend interface {
	Chat(ctx context.Context, req api.ChatRequest) (*api.ChatResponse, error)
}

// Pending is a submitted turn waiting for the backend.
type Pending struct {
	Message   string
	SessionID string
	typingID  string
}

// Outcome is the backend's answer to a Pending turn.
type Outcome struct {
	Pending   Pending
	Response  string
	SessionID string
	Err       error
}

type Conversation struct {
	backend   Backend
	log       *message.Log
	sessionID string
	logger    *slog.Logger
}

type Option func(*Conversation)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Conversation) {
		c.logger = logger
	}
}

// WithSessionID resumes an existing backend session.
func WithSessionID(sessionID string) Option {
	return func(c *Conversation) {
		c.sessionID = sessionID
	}
}

func New(backend Backend, log *message.Log, opts ...Option) *Conversation {
	if log == nil {
		log = message.NewLog(nil)
	}
	c := &Conversation{
		backend: backend,
		log:     log,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Conversation) Log() *message.Log {
	return c.log
}

func (c *Conversation) SessionID() string {
	return c.sessionID
}

// Begin records the user's turn and shows the typing indicator. Blank
// input is ignored and reported with ok=false.
func (c *Conversation) Begin(text string) (p Pending, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Pending{}, false
	}
	c.log.Append(message.User, text, false)
	typing := c.log.Append(message.Typing, "", false)
	return Pending{
		Message:   text,
		SessionID: c.sessionID,
		typingID:  typing.ID,
	}, true
}

// Exchange performs the backend call for p. It does not touch the
// conversation, so it may run on another goroutine.
func (c *Conversation) Exchange(ctx context.Context, p Pending) Outcome {
	res, err := c.backend.Chat(ctx, api.ChatRequest{
		Message:   p.Message,
		SessionID: api.SessionRef(p.SessionID),
	})
	if err != nil {
		return Outcome{Pending: p, Err: err}
	}
	return Outcome{Pending: p, Response: res.Response, SessionID: res.SessionID}
}

// Complete replaces the typing indicator with the assistant's reply, or with
// the error text when the exchange failed.
func (c *Conversation) Complete(o Outcome) message.Entry {
	c.log.Remove(o.Pending.typingID)
	if o.Err != nil {
		c.logger.Warn("chat request failed", "error", o.Err)
		return c.log.Append(message.Assistant, ErrorMarkdown(o.Err), false)
	}
	if o.SessionID != "" {
		c.sessionID = o.SessionID
	}
	return c.log.Append(message.Assistant, o.Response, false)
}

// Submit runs a whole turn synchronously.
func (c *Conversation) Submit(ctx context.Context, text string) (message.Entry, bool) {
	p, ok := c.Begin(text)
	if !ok {
		return message.Entry{}, false
	}
	return c.Complete(c.Exchange(ctx, p)), true
}

// Reset empties the log and forgets the session.
func (c *Conversation) Reset() {
	c.log.Clear()
	c.sessionID = ""
}

// ErrorMarkdown is the assistant text shown for a failed turn. It is
// rendered as markdown like any other reply.
func ErrorMarkdown(err error) string {
	if apiErr, ok := apperrors.AsAPIError(err); ok {
		return fmt.Sprintf("**Error:** %s", apiErr.Message)
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("**Error:** %s", validationErr.Message)
	}
	return fmt.Sprintf("**Error:** %s\n\n*%s*", connectFailureText, err.Error())
}
