package markdown

import "strings"

// urlSafe are the characters left unencoded when sanitising link
// destinations, on top of the RFC 3986 unreserved set. Percent stays safe so
// already-encoded URLs are not double-encoded.
const urlSafe = ":/?#[]@!$&'()*+,;=%"

const upperhex = "0123456789ABCDEF"

// quoteURL percent-encodes a link destination while preserving URL
// structure, so templates can carry destinations with spaces or non-ASCII
// characters without producing broken hrefs.
func quoteURL(u string) string {
	var b strings.Builder
	b.Grow(len(u))
	for i := 0; i < len(u); i++ {
		c := u[i]
		if isURLSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isURLSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '_' || c == '~':
		return true
	default:
		return strings.IndexByte(urlSafe, c) >= 0
	}
}
