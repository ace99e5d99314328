package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

const (
	EngineRegex      = "regex"
	EngineCommonMark = "commonmark"
)

var Engines = []string{EngineRegex, EngineCommonMark}

// CommonMark renders full CommonMark + GFM through goldmark. Raw HTML in
// the source is dropped rather than passed through.
type CommonMark struct {
	md goldmark.Markdown
}

func NewCommonMark() *CommonMark {
	return &CommonMark{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (c *CommonMark) Render(text string) string {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(text), &buf); err != nil {
		// unreachable: goldmark only fails on writer errors
		return text
	}
	return buf.String()
}

func EngineByName(name string) (Renderer, error) {
	switch name {
	case EngineRegex, "":
		return Default(), nil
	case EngineCommonMark:
		return NewCommonMark(), nil
	default:
		return nil, fmt.Errorf("%s: invalid markdown engine", name)
	}
}
