package message

import (
	"html/template"
	"io"
	"strings"

	"github.com/google/uuid"
)

type Entry struct {
	ID       string
	Role     Role
	Content  string
	Raw      bool
	Fragment string
}

// Log is the ordered list of rendered chat turns. Messages are append-only;
// only typing indicators can be taken out again. A Log is not safe for
// concurrent use.
type Log struct {
	renderer *Renderer
	entries  []Entry
	scroll   func(Entry)
	newID    func() string
}

type LogOption func(*Log)

// WithScroller registers the hook that brings the newest entry into view.
// It runs after every Append.
func WithScroller(scroll func(Entry)) LogOption {
	return func(l *Log) {
		l.scroll = scroll
	}
}

func NewLog(renderer *Renderer, opts ...LogOption) *Log {
	if renderer == nil {
		renderer = NewRenderer()
	}
	l := &Log{
		renderer: renderer,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Log) SetScroller(scroll func(Entry)) {
	l.scroll = scroll
}

func (l *Log) Append(role Role, content string, raw bool) Entry {
	e := Entry{
		ID:       l.newID(),
		Role:     role,
		Content:  content,
		Raw:      raw,
		Fragment: l.renderer.Render(role, content, raw),
	}
	l.entries = append(l.entries, e)
	if l.scroll != nil {
		l.scroll(e)
	}
	return e
}

// Remove drops the typing indicator with the given id. It reports false,
// and leaves the log untouched, for unknown ids and for real messages.
func (l *Log) Remove(id string) bool {
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		if e.Role != Typing {
			return false
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		return true
	}
	return false
}

func (l *Log) Entries() []Entry {
	return append([]Entry(nil), l.entries...)
}

func (l *Log) Latest() (Entry, bool) {
	if len(l.entries) == 0 {
		return Entry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

func (l *Log) Len() int {
	return len(l.entries)
}

func (l *Log) Clear() {
	l.entries = nil
}

// HTML concatenates every fragment in order.
func (l *Log) HTML() string {
	var b strings.Builder
	for _, e := range l.entries {
		b.WriteString(e.Fragment)
		b.WriteString("\n")
	}
	return b.String()
}

var documentTemplate = template.Must(template.New("transcript").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
</head>
<body>
<div id="chatMessages">
{{range .Fragments}}{{.}}
{{end}}</div>
</body>
</html>
`))

// WriteDocument writes the log as a standalone HTML page. Fragments are
// already safe markup and are inserted as is; the title is escaped.
func (l *Log) WriteDocument(w io.Writer, title string) error {
	fragments := make([]template.HTML, 0, len(l.entries))
	for _, e := range l.entries {
		if e.Role == Typing {
			continue
		}
		fragments = append(fragments, template.HTML(e.Fragment))
	}
	return documentTemplate.Execute(w, struct {
		Title     string
		Fragments []template.HTML
	}{Title: title, Fragments: fragments})
}
