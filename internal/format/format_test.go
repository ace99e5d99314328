package format

import (
	"strings"
	"testing"

	"github.com/klemjul/researchforge/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatMarkdown(t *testing.T) {
	res, err := FormatMarkdown("## Recent work\n\n**graph** transformers")

	require.NoError(t, err)
	assert.Contains(t, res, "Recent")
	assert.Contains(t, res, "transformers")
}

func TestFormatPapers_Empty(t *testing.T) {
	assert.Contains(t, FormatPapers(nil), "No papers found")
}

func TestFormatPapers(t *testing.T) {
	out := FormatPapers([]api.Paper{
		{
			Title:     "Attention Is All You Need",
			Authors:   []string{"Vaswani", "Shazeer", "Parmar", "Uszkoreit"},
			Abstract:  "The dominant sequence transduction models",
			Published: "2017-06-12",
			ArxivID:   "1706.03762",
		},
		{Title: "Untitled draft", ArxivID: "2401.00001", PDFURL: "https://arxiv.org/pdf/2401.00001"},
	})

	assert.Contains(t, out, "Found 2 papers")
	assert.Contains(t, out, "Attention Is All You Need")
	assert.Contains(t, out, "Vaswani, Shazeer, Parmar +1 more")
	assert.Contains(t, out, "2017-06-12")
	assert.Contains(t, out, "https://arxiv.org/abs/1706.03762")
	assert.Contains(t, out, "N/A")
	assert.Contains(t, out, "https://arxiv.org/pdf/2401.00001")
	assert.Equal(t, 1, strings.Count(out, "The dominant sequence"))
}
