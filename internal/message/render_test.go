package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klemjul/researchforge/internal/markdown"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain", input: "hello", expected: "hello"},
		{name: "all five", input: `&<>"'`, expected: "&amp;&lt;&gt;&quot;&#039;"},
		{name: "tag", input: "<b>hi</b>", expected: "&lt;b&gt;hi&lt;/b&gt;"},
		{name: "no double escaping", input: "&lt;", expected: "&amp;lt;"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Escape(tt.input))
		})
	}
}

func TestRender_UserIsEscapedNotMarkdown(t *testing.T) {
	out := NewRenderer().Render(User, "<b>hi</b> **there**", false)

	assert.Contains(t, out, "&lt;b&gt;hi&lt;/b&gt;")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "**there**")
	assert.NotContains(t, out, "<strong")
	assert.Contains(t, out, "ml-auto")
}

func TestRender_UserIgnoresRawFlag(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, r.Render(User, "<i>x</i>", false), r.Render(User, "<i>x</i>", true))
}

func TestRender_TypingIgnoresContent(t *testing.T) {
	r := NewRenderer()

	out := r.Render(Typing, "anything", false)

	assert.NotContains(t, out, "anything")
	assert.Equal(t, out, r.Render(Typing, "", true))
	assert.Equal(t, 3, strings.Count(out, "animate-bounce"))
}

func TestRender_AssistantMarkdown(t *testing.T) {
	out := NewRenderer().Render(Assistant, "**bold**", false)

	assert.Contains(t, out, `<strong class="font-semibold text-gray-900">bold</strong>`)
	assert.Contains(t, out, "markdown-content")
	assert.NotContains(t, out, "&lt;strong")
}

func TestRender_AssistantRaw(t *testing.T) {
	out := NewRenderer().Render(Assistant, "**bold** <i>", true)

	assert.Contains(t, out, "**bold** &lt;i&gt;")
	assert.NotContains(t, out, "<strong")
}

func TestRender_AssistantMarkupIsTrusted(t *testing.T) {
	out := NewRenderer().Render(Assistant, "<script>alert(1)</script>", false)

	assert.Contains(t, out, "<script>alert(1)</script>")
}

func TestRender_UnknownRoleUsesAssistantTreatment(t *testing.T) {
	r := NewRenderer()

	assert.Equal(t, r.Render(Assistant, "*x*", false), r.Render(Role("error"), "*x*", false))
}

func TestRender_WithMarkdown(t *testing.T) {
	r := NewRenderer(WithMarkdown(markdown.NewCommonMark()))

	out := r.Render(Assistant, "**bold**", false)

	assert.Contains(t, out, "<strong>bold</strong>")
}

func TestRender_WithSanitizer(t *testing.T) {
	r := NewRenderer(WithSanitizer(NewSanitizer()))

	out := r.Render(Assistant, "**bold** [x](http://e.com)<script>alert(1)</script>", false)

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, `<strong class="font-semibold text-gray-900">bold</strong>`)
	assert.Contains(t, out, `href="http://e.com"`)
	assert.Contains(t, out, `target="_blank"`)
}

func TestRender_SanitizerSkipsRaw(t *testing.T) {
	r := NewRenderer(WithSanitizer(NewSanitizer()))

	out := r.Render(Assistant, "<script>", true)

	assert.Contains(t, out, "&lt;script&gt;")
}

func TestParseRole(t *testing.T) {
	for _, s := range []string{"user", "assistant", "typing", " User "} {
		role, err := ParseRole(s)
		require.NoError(t, err)
		assert.Contains(t, Roles, role)
	}

	_, err := ParseRole("robot")
	assert.ErrorContains(t, err, `invalid role: "robot"`)
}
