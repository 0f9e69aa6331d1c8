package markdown

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// LetterPreview renders the Markdown dialect as the HTML used for letter
// previews and print-ready pages. Links cannot be followed on paper, so
// they render as their destination host in bold with the protocol removed.
func LetterPreview(md string) string {
	doc, source := parse(md)

	var b strings.Builder
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		letterBlock(&b, c, source)
	}
	return b.String()
}

func letterBlock(b *strings.Builder, n ast.Node, source []byte) {
	switch t := n.(type) {
	case *ast.Heading:
		if t.Level == 1 {
			b.WriteString("<h2>")
			letterInlines(b, t, source)
			b.WriteString("</h2>\n")
			return
		}
		b.WriteString("<p>")
		letterInlines(b, t, source)
		b.WriteString("</p>\n")

	case *ast.Paragraph, *ast.TextBlock:
		b.WriteString("<p>")
		letterInlines(b, n, source)
		b.WriteString("</p>\n")

	case *ast.ThematicBreak:
		// three asterisks or hyphens force the print renderer onto a new
		// page
		b.WriteString(`<div class="page-break">&nbsp;</div>` + "\n")

	case *ast.List:
		letterList(b, t, source)

	case *ast.Blockquote:
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			letterBlock(b, c, source)
		}

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		b.WriteString("<p>")
		b.WriteString(strings.ReplaceAll(html.EscapeString(codeText(n, source)), "\n", "<br/>"))
		b.WriteString("</p>\n")
	}
}

func letterList(b *strings.Builder, list *ast.List, source []byte) {
	tag := "ul"
	if list.IsOrdered() {
		tag = "ol"
	}

	b.WriteString("<" + tag + ">\n")
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		b.WriteString("<li>")
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				letterList(b, nested, source)
				continue
			}
			letterInlines(b, c, source)
		}
		b.WriteString("</li>\n")
	}
	b.WriteString("</" + tag + ">\n")
}

func letterInlines(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.WriteString(html.EscapeString(string(t.Segment.Value(source))))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteString("<br/>")
			}

		case *ast.String:
			b.WriteString(html.EscapeString(string(t.Value)))

		case *ast.Link:
			letterInlines(b, t, source)
			b.WriteString(": <strong>" + html.EscapeString(stripScheme(string(t.Destination))) + "</strong>")

		case *ast.AutoLink:
			url := string(t.URL(source))
			if t.AutoLinkType == ast.AutoLinkEmail {
				b.WriteString(html.EscapeString(url))
				continue
			}
			b.WriteString("<strong>" + html.EscapeString(stripScheme(url)) + "</strong>")

		case *ast.Image:
			// dropped

		default:
			letterInlines(b, c, source)
		}
	}
}
