// Package blockcontent renders rich-text content to HTML. Remote documents
// carry portable-text block arrays; locally-authored fixtures may instead carry
// markdown source on a block, which is converted with goldmark.
package blockcontent

import (
	"fmt"
	"html"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/emberandoak/website/internal/content"
)

// Render converts a block array into HTML ready for template injection.
// Unknown styles degrade to paragraphs; unknown marks are ignored.
func Render(blocks []content.Block) (template.HTML, error) {
	var sb strings.Builder
	md := goldmark.New()

	for _, block := range blocks {
		if block.Markdown != "" {
			var buf strings.Builder
			if err := md.Convert([]byte(block.Markdown), &buf); err != nil {
				return "", fmt.Errorf("convert markdown block %s: %w", block.Key, err)
			}
			sb.WriteString(buf.String())
			continue
		}
		renderBlock(&sb, block)
	}
	return template.HTML(sb.String()), nil //nolint:gosec // built from escaped spans
}

func renderBlock(sb *strings.Builder, block content.Block) {
	tag := blockTag(block.Style)
	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(">")
	for _, span := range block.Children {
		renderSpan(sb, span, block.MarkDefs)
	}
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">\n")
}

func blockTag(style string) string {
	switch style {
	case "h2", "h3", "blockquote":
		return style
	default:
		return "p"
	}
}

func renderSpan(sb *strings.Builder, span content.Span, defs []content.MarkDef) {
	text := html.EscapeString(span.Text)
	for i := len(span.Marks) - 1; i >= 0; i-- {
		text = applyMark(text, span.Marks[i], defs)
	}
	sb.WriteString(text)
}

func applyMark(inner, mark string, defs []content.MarkDef) string {
	switch mark {
	case "strong":
		return "<strong>" + inner + "</strong>"
	case "em":
		return "<em>" + inner + "</em>"
	default:
		// Annotated marks reference a markDef by key.
		for _, def := range defs {
			if def.Key == mark && def.Type == "link" {
				href := html.EscapeString(def.Href)
				if strings.HasPrefix(def.Href, "http") {
					return `<a href="` + href + `" target="_blank" rel="noopener noreferrer">` + inner + `</a>`
				}
				return `<a href="` + href + `">` + inner + `</a>`
			}
		}
		return inner
	}
}
