package message

import "strings"

// Single left-to-right pass; replaced text is never rescanned.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape replaces the five HTML-significant characters with entities.
func Escape(text string) string {
	return htmlEscaper.Replace(text)
}
