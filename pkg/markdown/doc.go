// Package markdown renders the deliberately small Markdown dialect allowed
// in message templates.
//
// Four renderers share one goldmark parser: email HTML (inline-styled for
// client compatibility), email plain text, email preheader (plain text with
// rules and link titles dropped, truncated by the caller) and letter preview
// HTML. Emphasis, strikethrough, inline code, tables, footnotes and raw HTML
// are not part of the dialect and come through as literal text; image syntax
// parses but renders to nothing.
//
// NiceTypography post-processes email output with smart quotes and en
// dashes.
package markdown
