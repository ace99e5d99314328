package format

import (
	"sync"

	"github.com/charmbracelet/glamour"
)

const (
	markdownStyle = "dark"
	wordWrap      = 100
)

// TermRenderer is not safe for concurrent Render calls, so each caller
// borrows its own from the pool.
var renderers = sync.Pool{
	New: func() any {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle),
			glamour.WithWordWrap(wordWrap),
			glamour.WithEmoji(),
		)
		if err != nil {
			return err
		}
		return r
	},
}

// FormatMarkdown renders markdown for an ANSI terminal.
func FormatMarkdown(text string) (string, error) {
	switch r := renderers.Get().(type) {
	case *glamour.TermRenderer:
		defer renderers.Put(r)
		return r.Render(text)
	case error:
		return "", r
	default:
		return glamour.Render(text, markdownStyle)
	}
}
