package message

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLog(opts ...LogOption) *Log {
	l := NewLog(NewRenderer(), opts...)
	n := 0
	l.newID = func() string {
		n++
		return fmt.Sprintf("entry-%d", n)
	}
	return l
}

func TestLog_AppendKeepsOrder(t *testing.T) {
	l := newTestLog()

	l.Append(User, "question", false)
	l.Append(Assistant, "answer", false)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, User, entries[0].Role)
	assert.Equal(t, "question", entries[0].Content)
	assert.Equal(t, Assistant, entries[1].Role)
	assert.Equal(t, "entry-2", entries[1].ID)
	assert.Contains(t, entries[1].Fragment, "answer")
}

func TestLog_DefaultIDsAreUnique(t *testing.T) {
	l := NewLog(nil)

	a := l.Append(User, "a", false)
	b := l.Append(User, "b", false)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestLog_ScrollerSeesEveryAppend(t *testing.T) {
	var scrolled []string
	l := newTestLog(WithScroller(func(e Entry) {
		scrolled = append(scrolled, e.ID)
	}))

	l.Append(User, "a", false)
	l.Append(Typing, "", false)

	assert.Equal(t, []string{"entry-1", "entry-2"}, scrolled)
}

func TestLog_RemoveOnlyTyping(t *testing.T) {
	l := newTestLog()
	user := l.Append(User, "hello", false)
	typing := l.Append(Typing, "", false)

	assert.False(t, l.Remove(user.ID))
	assert.False(t, l.Remove("missing"))
	assert.True(t, l.Remove(typing.ID))
	assert.False(t, l.Remove(typing.ID))

	require.Equal(t, 1, l.Len())
	latest, ok := l.Latest()
	require.True(t, ok)
	assert.Equal(t, user.ID, latest.ID)
}

func TestLog_LatestAndClear(t *testing.T) {
	l := newTestLog()
	_, ok := l.Latest()
	assert.False(t, ok)

	l.Append(User, "a", false)
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, l.HTML())
}

func TestLog_EntriesReturnsCopy(t *testing.T) {
	l := newTestLog()
	l.Append(User, "a", false)

	entries := l.Entries()
	entries[0].Content = "changed"

	assert.Equal(t, "a", l.Entries()[0].Content)
}

func TestLog_HTML(t *testing.T) {
	l := newTestLog()
	u := l.Append(User, "a", false)
	a := l.Append(Assistant, "b", false)

	assert.Equal(t, u.Fragment+"\n"+a.Fragment+"\n", l.HTML())
}

func TestLog_WriteDocument(t *testing.T) {
	l := newTestLog()
	l.Append(User, "<q>", false)
	l.Append(Typing, "", false)
	l.Append(Assistant, "**done**", false)

	var buf bytes.Buffer
	err := l.WriteDocument(&buf, "Research <chat>")

	require.NoError(t, err)
	doc := buf.String()
	assert.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>"))
	assert.Contains(t, doc, "<title>Research &lt;chat&gt;</title>")
	assert.Contains(t, doc, "&lt;q&gt;")
	assert.Contains(t, doc, "<strong class=\"font-semibold text-gray-900\">done</strong>")
	assert.NotContains(t, doc, "animate-bounce")
}
