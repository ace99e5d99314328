package message

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// NewSanitizer returns a user-generated-content policy that keeps the
// markdown renderer's presentation classes and new-tab links.
func NewSanitizer() Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	return p
}
