// Package message turns chat turns into HTML fragments and keeps them in an
// ordered log.
package message

import (
	"fmt"

	"github.com/klemjul/researchforge/internal/markdown"
)

// Sanitizer cleans rendered assistant markup before it is embedded.
type Sanitizer interface {
	Sanitize(html string) string
}

type Renderer struct {
	markdown  markdown.Renderer
	sanitizer Sanitizer
}

type RendererOption func(*Renderer)

func WithMarkdown(md markdown.Renderer) RendererOption {
	return func(r *Renderer) {
		r.markdown = md
	}
}

// WithSanitizer filters markdown-rendered assistant output. Without one,
// that output is embedded exactly as the markdown renderer produced it,
// including any raw HTML the assistant sent.
func WithSanitizer(s Sanitizer) RendererOption {
	return func(r *Renderer) {
		r.sanitizer = s
	}
}

func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{markdown: markdown.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

const (
	userFragment = `<div class="message mb-4 max-w-4xl ml-auto">` +
		`<div class="message-user rounded-2xl px-6 py-4 shadow-lg">` +
		`<div class="font-semibold mb-1 text-sm opacity-90">You</div>` +
		`<div class="leading-relaxed">%s</div>` +
		`</div></div>`

	assistantFragment = `<div class="message mb-4 max-w-4xl">` +
		`<div class="message-ai rounded-2xl px-6 py-4 shadow-md bg-white border border-gray-200">` +
		`<div class="font-semibold mb-2 text-sm text-gray-700">ResearchForge AI</div>` +
		`<div class="markdown-content text-gray-700">%s</div>` +
		`</div></div>`

	typingFragment = `<div class="message mb-4 max-w-4xl">` +
		`<div class="message-ai rounded-2xl px-6 py-4 shadow-md bg-white border border-gray-200">` +
		`<div class="font-semibold mb-2 text-sm text-gray-700">ResearchForge AI</div>` +
		`<div class="typing-indicator flex gap-1">` +
		`<div class="w-2 h-2 bg-purple-600 rounded-full animate-bounce" style="animation-delay: 0s"></div>` +
		`<div class="w-2 h-2 bg-purple-600 rounded-full animate-bounce" style="animation-delay: 0.2s"></div>` +
		`<div class="w-2 h-2 bg-purple-600 rounded-full animate-bounce" style="animation-delay: 0.4s"></div>` +
		`</div></div></div>`
)

// Render builds the fragment for one chat turn. User content is always
// escaped; typing ignores content; anything else gets the assistant
// treatment, markdown-rendered unless raw is set.
func (r *Renderer) Render(role Role, content string, raw bool) string {
	switch role {
	case User:
		return fmt.Sprintf(userFragment, Escape(content))
	case Typing:
		return typingFragment
	default:
		if raw {
			return fmt.Sprintf(assistantFragment, Escape(content))
		}
		return fmt.Sprintf(assistantFragment, r.renderMarkdown(content))
	}
}

func (r *Renderer) renderMarkdown(content string) string {
	html := r.markdown.Render(content)
	if r.sanitizer != nil {
		html = r.sanitizer.Sanitize(html)
	}
	return html
}
