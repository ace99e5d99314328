package markdown

import "regexp"

const (
	PassHeading1      = "heading1"
	PassHeading2      = "heading2"
	PassHeading3      = "heading3"
	PassBold          = "bold"
	PassItalic        = "italic"
	PassCodeBlock     = "code_block"
	PassInlineCode    = "inline_code"
	PassBulletStar    = "bullet_star"
	PassBulletDash    = "bullet_dash"
	PassNumbered      = "numbered"
	PassLink          = "link"
	PassParagraph     = "paragraph"
	PassLineBreak     = "line_break"
	PassWrapParagraph = "wrap_paragraph"
)

const paragraphOpen = `<p class="mb-3 leading-relaxed text-gray-700">`

// DefaultPasses returns a fresh copy of the assistant markdown passes in
// application order. Callers may reorder or trim the slice freely.
func DefaultPasses() []Pass {
	return []Pass{
		{
			Name:        PassHeading1,
			Pattern:     regexp.MustCompile(`(?m)^# (.*)$`),
			Replacement: `<h1 class="text-3xl font-bold text-gray-900 mt-8 mb-4">${1}</h1>`,
		},
		{
			Name:        PassHeading2,
			Pattern:     regexp.MustCompile(`(?m)^## (.*)$`),
			Replacement: `<h2 class="text-2xl font-bold text-gray-800 mt-6 mb-3">${1}</h2>`,
		},
		{
			Name:        PassHeading3,
			Pattern:     regexp.MustCompile(`(?m)^### (.*)$`),
			Replacement: `<h3 class="text-xl font-semibold text-gray-800 mt-4 mb-2">${1}</h3>`,
		},
		{
			Name:        PassBold,
			Pattern:     regexp.MustCompile(`\*\*(.*?)\*\*`),
			Replacement: `<strong class="font-semibold text-gray-900">${1}</strong>`,
		},
		// must follow bold, otherwise ** reads as two empty italics
		{
			Name:        PassItalic,
			Pattern:     regexp.MustCompile(`\*(.*?)\*`),
			Replacement: `<em class="italic text-gray-700">${1}</em>`,
		},
		{
			Name:        PassCodeBlock,
			Pattern:     regexp.MustCompile("(?s)```(.*?)```"),
			Replacement: `<pre class="bg-gray-800 text-gray-100 p-4 rounded-lg my-3 overflow-x-auto"><code>${1}</code></pre>`,
		},
		{
			Name:        PassInlineCode,
			Pattern:     regexp.MustCompile("`(.*?)`"),
			Replacement: `<code class="bg-gray-100 text-red-600 px-2 py-1 rounded text-sm">${1}</code>`,
		},
		{
			Name:        PassBulletStar,
			Pattern:     regexp.MustCompile(`(?m)^\* (.*)$`),
			Replacement: `<li class="ml-6 mb-2">• ${1}</li>`,
		},
		{
			Name:        PassBulletDash,
			Pattern:     regexp.MustCompile(`(?m)^- (.*)$`),
			Replacement: `<li class="ml-6 mb-2">• ${1}</li>`,
		},
		{
			Name:        PassNumbered,
			Pattern:     regexp.MustCompile(`(?m)^\d+\. (.*)$`),
			Replacement: `<li class="ml-6 mb-2 list-decimal">${1}</li>`,
		},
		{
			Name:        PassLink,
			Pattern:     regexp.MustCompile(`\[(.*?)\]\((.*?)\)`),
			Replacement: `<a href="${2}" target="_blank" class="text-blue-600 hover:text-purple-600 underline">${1}</a>`,
		},
		{
			Name:        PassParagraph,
			Pattern:     regexp.MustCompile(`\n\n`),
			Replacement: `</p>` + paragraphOpen,
		},
		{
			Name:        PassLineBreak,
			Pattern:     regexp.MustCompile(`\n`),
			Replacement: `<br>`,
		},
		{
			Name:        PassWrapParagraph,
			Pattern:     regexp.MustCompile(`(?s)\A(.*)\z`),
			Replacement: paragraphOpen + `${1}</p>`,
		},
	}
}
