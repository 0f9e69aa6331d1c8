package markdown

import (
	"regexp"
	"strings"
)

var (
	spaceBeforePunctuation = regexp.MustCompile(`[ \t]+([,.])`)
	apostrophe             = regexp.MustCompile(`(\w)'(\w)`)
	doubleQuoted           = regexp.MustCompile(`"([^"\n]+)"`)
	spacedHyphen           = regexp.MustCompile(`([ \t])-([ \t])`)
	htmlTag                = regexp.MustCompile(`<[^>]*>`)

	// Renderers escape quotes in text nodes. Restoring them before
	// smartening is safe: a literal ampersand in source text arrives
	// here as &amp;, never as these two entities.
	escapedQuote = strings.NewReplacer("&#34;", `"`, "&#39;", "'")
)

// NiceTypography tidies rendered email output: spaces before punctuation
// are removed, straight quotes become smart quotes, and a hyphen surrounded
// by spaces becomes an en dash. Hyphens inside words and email addresses
// are left alone. Markup is untouched, so the quotes of HTML attributes
// survive and only text between tags is smartened.
func NiceTypography(s string) string {
	if !strings.Contains(s, "<") {
		return smarten(s)
	}
	var b strings.Builder
	b.Grow(len(s))
	last := 0
	for _, tag := range htmlTag.FindAllStringIndex(s, -1) {
		b.WriteString(smarten(escapedQuote.Replace(s[last:tag[0]])))
		b.WriteString(s[tag[0]:tag[1]])
		last = tag[1]
	}
	b.WriteString(smarten(escapedQuote.Replace(s[last:])))
	return b.String()
}

func smarten(s string) string {
	s = spaceBeforePunctuation.ReplaceAllString(s, "$1")
	s = apostrophe.ReplaceAllString(s, "$1’$2")
	s = doubleQuoted.ReplaceAllString(s, "“$1”")
	s = spacedHyphen.ReplaceAllString(s, "$1–$2")
	return s
}
