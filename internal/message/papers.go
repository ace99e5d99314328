package message

import (
	"fmt"
	"strings"

	"github.com/klemjul/researchforge/internal/api"
)

const (
	maxListedAuthors  = 3
	maxAbstractRunes  = 300
	arxivAbstractBase = "https://arxiv.org/abs/"
)

const noPapersFragment = `<div class="text-center py-12 bg-gray-50 rounded-2xl">` +
	`<h4 class="text-xl font-bold text-gray-700 mb-2">No papers found</h4>` +
	`<p class="text-gray-600">Try a different search query or category</p>` +
	`</div>`

// RenderPapers renders search results as a list of numbered cards. Every
// backend-provided value is escaped, hrefs included.
func RenderPapers(papers []api.Paper) string {
	if len(papers) == 0 {
		return noPapersFragment
	}

	var b strings.Builder
	b.WriteString(`<div class="mb-6">`)
	fmt.Fprintf(&b, `<h4 class="text-xl font-bold text-gray-800 mb-4">Found %d papers</h4>`, len(papers))
	b.WriteString(`<div class="space-y-4">`)
	for i, p := range papers {
		renderPaper(&b, i+1, p)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func renderPaper(b *strings.Builder, n int, p api.Paper) {
	b.WriteString(`<div class="paper-card bg-white border border-gray-200 rounded-xl p-6">`)
	fmt.Fprintf(b, `<div class="paper-index">%d</div>`, n)
	fmt.Fprintf(b, `<h5 class="font-bold text-lg text-gray-800 mb-2 leading-tight">%s</h5>`, Escape(p.Title))

	b.WriteString(`<div class="flex flex-wrap items-center gap-3 mb-3 text-sm text-gray-600">`)
	fmt.Fprintf(b, `<span class="paper-authors">%s</span>`, Escape(AuthorLine(p.Authors)))
	published := p.Published
	if published == "" {
		published = "N/A"
	}
	fmt.Fprintf(b, `<span class="paper-published">%s</span>`, Escape(published))
	fmt.Fprintf(b, `<span class="px-3 py-1 bg-blue-100 text-blue-700 rounded-full font-medium text-xs">%s</span>`, Escape(p.ArxivID))
	b.WriteString(`</div>`)

	if p.Abstract != "" {
		fmt.Fprintf(b, `<p class="text-gray-600 text-sm mb-3 leading-relaxed line-clamp-3">%s</p>`,
			Escape(AbstractPreview(p.Abstract)))
	}

	fmt.Fprintf(b, `<div class="flex gap-2"><a href="%s" target="_blank" class="paper-pdf">View PDF</a>`, Escape(PDFLink(p)))
	fmt.Fprintf(b, `<a href="%s" target="_blank" class="paper-web">arXiv Page</a></div>`, Escape(WebLink(p)))
	b.WriteString(`</div>`)
}

// AuthorLine lists the first three authors and counts the rest.
func AuthorLine(authors []string) string {
	if len(authors) <= maxListedAuthors {
		return strings.Join(authors, ", ")
	}
	return fmt.Sprintf("%s +%d more",
		strings.Join(authors[:maxListedAuthors], ", "),
		len(authors)-maxListedAuthors)
}

func PDFLink(p api.Paper) string {
	if p.PDFURL != "" {
		return p.PDFURL
	}
	return p.WebURL
}

func WebLink(p api.Paper) string {
	if p.WebURL != "" {
		return p.WebURL
	}
	return arxivAbstractBase + p.ArxivID
}

// AbstractPreview cuts the abstract to its first 300 runes and marks the
// cut with "...". The marker is added even when nothing was cut.
func AbstractPreview(abstract string) string {
	return truncateRunes(abstract, maxAbstractRunes) + "..."
}

// RenderSearchError renders a failed search.
func RenderSearchError(err error) string {
	return `<div class="text-center py-12 bg-red-50 rounded-2xl border border-red-200">` +
		`<h4 class="text-xl font-bold text-red-700 mb-2">Search Error</h4>` +
		`<p class="text-red-600">` + Escape(err.Error()) + `</p>` +
		`</div>`
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
