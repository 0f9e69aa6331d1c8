package markdown

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark/ast"
)

const ruleWidth = 65

// EmailPlainText renders the Markdown dialect as the plain-text alternative
// body of an email.
func EmailPlainText(md string) string {
	return renderPlain(md, plainOpts{})
}

// EmailPreheader renders like EmailPlainText but drops horizontal rules and
// link titles. The caller truncates the result to the preview length.
func EmailPreheader(md string) string {
	return renderPlain(md, plainOpts{preheader: true})
}

type plainOpts struct {
	preheader bool
}

func renderPlain(md string, opts plainOpts) string {
	doc, source := parse(md)

	var blocks []string
	for c := doc.FirstChild(); c != nil; c = c.NextSibling() {
		if block := plainBlock(c, source, opts); block != "" {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func plainBlock(n ast.Node, source []byte, opts plainOpts) string {
	switch t := n.(type) {
	case *ast.Heading:
		text := plainInlines(t, source, opts)
		return text + "\n" + strings.Repeat("-", ruleWidth)

	case *ast.Paragraph, *ast.TextBlock:
		return plainInlines(n, source, opts)

	case *ast.ThematicBreak:
		if opts.preheader {
			return ""
		}
		return strings.Repeat("=", ruleWidth)

	case *ast.List:
		return plainList(t, source, opts)

	case *ast.Blockquote:
		var parts []string
		for c := t.FirstChild(); c != nil; c = c.NextSibling() {
			if block := plainBlock(c, source, opts); block != "" {
				parts = append(parts, block)
			}
		}
		return strings.Join(parts, "\n\n")

	case *ast.CodeBlock, *ast.FencedCodeBlock:
		return codeText(n, source)
	}
	return ""
}

func plainList(list *ast.List, source []byte, opts plainOpts) string {
	var lines []string
	number := list.Start
	if number == 0 {
		number = 1
	}

	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		var itemParts []string
		for c := item.FirstChild(); c != nil; c = c.NextSibling() {
			if nested, ok := c.(*ast.List); ok {
				itemParts = append(itemParts, plainList(nested, source, opts))
				continue
			}
			itemParts = append(itemParts, plainInlines(c, source, opts))
		}
		text := strings.Join(itemParts, "\n")

		if list.IsOrdered() {
			lines = append(lines, strconv.Itoa(number)+". "+text)
			number++
		} else {
			lines = append(lines, "• "+text)
		}
	}
	return strings.Join(lines, "\n")
}

func plainInlines(n ast.Node, source []byte, opts plainOpts) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}

		case *ast.String:
			b.Write(t.Value)

		case *ast.Link:
			text := textContent(t, source)
			title := string(t.Title)
			switch {
			case opts.preheader || title == "":
				b.WriteString(text + ": " + string(t.Destination))
			default:
				b.WriteString(text + " (" + title + "): " + string(t.Destination))
			}

		case *ast.AutoLink:
			b.WriteString(string(t.URL(source)))

		case *ast.Image:
			// dropped

		default:
			b.WriteString(plainInlines(c, source, opts))
		}
	}
	return b.String()
}
