package blockcontent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberandoak/website/internal/content"
)

func TestRender_ParagraphBlocks(t *testing.T) {
	blocks := []content.Block{
		{Style: "normal", Children: []content.Span{{Text: "In 2018, Maya Chen left her job."}}},
		{Style: "normal", Children: []content.Span{{Text: "Eight months later, we opened."}}},
	}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.Equal(t, "<p>In 2018, Maya Chen left her job.</p>\n<p>Eight months later, we opened.</p>\n", string(out))
}

func TestRender_HeadingsAndBlockquote(t *testing.T) {
	blocks := []content.Block{
		{Style: "h2", Children: []content.Span{{Text: "The Beginning"}}},
		{Style: "h3", Children: []content.Span{{Text: "Year One"}}},
		{Style: "blockquote", Children: []content.Span{{Text: "Regulars are made, not found."}}},
	}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.Contains(t, string(out), "<h2>The Beginning</h2>")
	require.Contains(t, string(out), "<h3>Year One</h3>")
	require.Contains(t, string(out), "<blockquote>Regulars are made, not found.</blockquote>")
}

func TestRender_MarksAndLinks(t *testing.T) {
	blocks := []content.Block{{
		Style: "normal",
		Children: []content.Span{
			{Text: "We source from "},
			{Text: "Pine Street Bakery", Marks: []string{"strong"}},
			{Text: " and "},
			{Text: "Woodblock", Marks: []string{"link1"}},
			{Text: "."},
		},
		MarkDefs: []content.MarkDef{{Key: "link1", Type: "link", Href: "https://woodblockchocolate.com"}},
	}}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.Contains(t, string(out), "<strong>Pine Street Bakery</strong>")
	require.Contains(t, string(out), `<a href="https://woodblockchocolate.com" target="_blank" rel="noopener noreferrer">Woodblock</a>`)
}

func TestRender_EscapesText(t *testing.T) {
	blocks := []content.Block{{
		Style:    "normal",
		Children: []content.Span{{Text: `<script>alert("x")</script> & more`}},
	}}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.NotContains(t, string(out), "<script>")
	require.Contains(t, string(out), "&amp; more")
}

func TestRender_UnknownStyleFallsBackToParagraph(t *testing.T) {
	blocks := []content.Block{{Style: "h7", Children: []content.Span{{Text: "odd"}}}}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.Equal(t, "<p>odd</p>\n", string(out))
}

func TestRender_MarkdownBlock(t *testing.T) {
	blocks := []content.Block{{Markdown: "Coffee is a **craft**, not a commodity.\n"}}

	out, err := Render(blocks)
	require.NoError(t, err)
	require.Contains(t, string(out), "<strong>craft</strong>")
}

func TestRender_Empty(t *testing.T) {
	out, err := Render(nil)
	require.NoError(t, err)
	require.Empty(t, string(out))
}
