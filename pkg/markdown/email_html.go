package markdown

import (
	"html"
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Inline styles rather than classes: email clients strip <style> blocks, so
// every element carries its own presentation.
const (
	paragraphStyle = `Margin: 0 0 20px 0; font-size: 19px; line-height: 25px; color: #0B0C0C;`
	headingStyle   = `Margin: 0 0 20px 0; padding: 0; font-size: 27px; line-height: 35px; font-weight: bold; color: #0B0C0C;`
	linkStyle      = `word-wrap: break-word; color: #1D70B8;`
	hrStyle        = `border: 0; height: 1px; background: #B1B4B6; Margin: 30px 0 30px 0;`
	quoteStyle     = `Margin: 0 0 20px 0; border-left: 10px solid #B1B4B6; padding: 15px 0 0.1px 15px; font-size: 19px; line-height: 25px;`
	listWrapStyle  = `padding: 0 0 20px 0;`
	listCellStyle  = `font-family: Helvetica, Arial, sans-serif;`
	listStyle      = `Margin: 0 0 0 20px; padding: 0; list-style-type: `
	listItemStyle  = `Margin: 5px 0 5px; padding: 0 0 0 5px; font-size: 19px; line-height: 25px; color: #0B0C0C;`
)

// EmailHTML renders the template Markdown dialect as email-client-safe HTML.
func EmailHTML(md string) string {
	doc, source := parse(md)

	var b strings.Builder
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		emailHTMLBlock(&b, c, source)
	}
	return b.String()
}

func emailHTMLBlock(b *strings.Builder, n ast.Node, source []byte) {
	switch t := n.(type) {
	case *ast.Heading:
		if t.Level == 1 {
			b.WriteString(`<h2 style="` + headingStyle + `">`)
			emailHTMLInlines(b, t, source)
			b.WriteString("</h2>\n")
			return
		}
		// Sub-headings are not part of the dialect; they read as emphasis
		// the author should not have, so they downgrade to paragraphs.
		b.WriteString(`<p style="` + paragraphStyle + `">`)
		emailHTMLInlines(b, t, source)
		b.WriteString("</p>\n")

	case *ast.Paragraph, *ast.TextBlock:
		b.WriteString(`<p style="` + paragraphStyle + `">`)
		emailHTMLInlines(b, n, source)
		b.WriteString("</p>\n")

	case *ast.ThematicBreak:
		b.WriteString(`<hr style="` + hrStyle + `">` + "\n")

	case *ast.List:
		emailHTMLList(b, t, source)

	case *ast.Blockquote:
		b.WriteString(`<blockquote style="` + quoteStyle + `">` + "\n")
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			emailHTMLBlock(b, c, source)
		}
		b.WriteString("</blockquote>\n")

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		b.WriteString(`<p style="` + paragraphStyle + `">`)
		b.WriteString(strings.ReplaceAll(html.EscapeString(codeText(n, source)), "\n", "<br/>"))
		b.WriteString("</p>\n")
	}
}

// emailHTMLList wraps lists in a single-cell table; Outlook loses list
// indentation otherwise.
func emailHTMLList(b *strings.Builder, list *ast.List, source []byte) {
	tag, style := "ul", listStyle+"disc;"
	if list.IsOrdered() {
		tag, style = "ol", listStyle+"decimal;"
	}

	b.WriteString(`<table role="presentation" style="` + listWrapStyle + `">` +
		`<tr><td style="` + listCellStyle + `">` +
		`<` + tag + ` style="` + style + `">` + "\n")

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		b.WriteString(`<li style="` + listItemStyle + `">`)
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				emailHTMLList(b, nested, source)
				continue
			}
			emailHTMLInlines(b, c, source)
		}
		b.WriteString("</li>\n")
	}

	b.WriteString(`</` + tag + `></td></tr></table>` + "\n")
}

func emailHTMLInlines(b *strings.Builder, n ast.Node, source []byte) {
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
			b.WriteString(`<a style="` + linkStyle + `" href="`)
			b.WriteString(html.EscapeString(quoteURL(string(t.Destination))))
			b.WriteString(`"`)
			if len(t.Title) > 0 {
				b.WriteString(` title="` + html.EscapeString(string(t.Title)) + `"`)
			}
			b.WriteString(`>`)
			emailHTMLInlines(b, t, source)
			b.WriteString(`</a>`)

		case *ast.AutoLink:
			url := string(t.URL(source))
			if t.AutoLinkType == ast.AutoLinkEmail {
				b.WriteString(html.EscapeString(url))
				continue
			}
			b.WriteString(`<a style="` + linkStyle + `" href="`)
			b.WriteString(html.EscapeString(quoteURL(url)))
			b.WriteString(`">` + html.EscapeString(url) + `</a>`)

		case *ast.Image:
			// dropped

		default:
			emailHTMLInlines(b, c, source)
		}
	}
}
