package markdown

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// urlRe matches bare http(s) URLs for autolinking. A URL ends before
// whitespace and never on trailing punctuation.
var urlRe = regexp.MustCompile(`https?://[^\s<]+[^<.,:;"')\]\s]`)

// newParser builds the deliberately small Markdown dialect shared by every
// renderer. Emphasis, strikethrough, inline code, tables, footnotes and raw
// HTML are not parsed; their syntax comes through as literal text. Images
// are parsed (the link parser owns the syntax) and dropped at render time.
func newParser() parser.Parser {
	return parser.NewParser(
		parser.WithBlockParsers(
			util.Prioritized(parser.NewThematicBreakParser(), 200),
			util.Prioritized(parser.NewListParser(), 300),
			util.Prioritized(parser.NewListItemParser(), 400),
			util.Prioritized(parser.NewCodeBlockParser(), 500),
			util.Prioritized(parser.NewATXHeadingParser(), 600),
			util.Prioritized(parser.NewFencedCodeBlockParser(), 700),
			util.Prioritized(parser.NewBlockquoteParser(), 800),
			util.Prioritized(parser.NewParagraphParser(), 1000),
		),
		parser.WithInlineParsers(
			util.Prioritized(parser.NewLinkParser(), 200),
			util.Prioritized(extension.NewLinkifyParser(
				extension.WithLinkifyURLRegexp(urlRe),
			), 300),
		),
	)
}

func parse(md string) (ast.Node, []byte) {
	source := []byte(md)
	return newParser().Parse(text.NewReader(source)), source
}

// textContent flattens a node's inline text, ignoring markup.
func textContent(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte('\n')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// codeText joins the raw lines of a code block.
func codeText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// stripScheme removes the http(s) protocol prefix, for letter rendering
// where a link cannot be clicked.
func stripScheme(url string) string {
	url = strings.TrimPrefix(url, "https://")
	return strings.TrimPrefix(url, "http://")
}
