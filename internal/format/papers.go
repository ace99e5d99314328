package format

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/klemjul/researchforge/internal/api"
	"github.com/klemjul/researchforge/internal/message"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	titleStyle    = lipgloss.NewStyle().Bold(true)
	metaStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	abstractStyle = lipgloss.NewStyle().PaddingLeft(4).Width(96)
	linkStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true)
)

// FormatPapers lays out search results for the terminal, mirroring the
// cards of the HTML view.
func FormatPapers(papers []api.Paper) string {
	if len(papers) == 0 {
		return metaStyle.Render("No papers found. Try a different search query.") + "\n"
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Found %d papers", len(papers))))
	b.WriteString("\n\n")

	for i, p := range papers {
		published := p.Published
		if published == "" {
			published = "N/A"
		}

		fmt.Fprintf(&b, "%d. %s\n", i+1, titleStyle.Render(p.Title))
		fmt.Fprintf(&b, "   %s\n", metaStyle.Render(message.AuthorLine(p.Authors)))
		fmt.Fprintf(&b, "   %s\n", metaStyle.Render(fmt.Sprintf("%s · arXiv:%s", published, p.ArxivID)))
		if p.Abstract != "" {
			b.WriteString(abstractStyle.Render(message.AbstractPreview(p.Abstract)))
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "   PDF: %s\n", linkStyle.Render(message.PDFLink(p)))
		fmt.Fprintf(&b, "   arXiv: %s\n\n", linkStyle.Render(message.WebLink(p)))
	}
	return b.String()
}
