package field

import (
	"fmt"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/notifykit/pkg/insensitive"
)

// Mode controls HTML sanitisation of substituted values.
type Mode int

const (
	// StripHTML removes markup from values. The default: rendered previews
	// embed values in HTML output.
	StripHTML Mode = iota
	// EscapeHTML entity-encodes values instead of removing markup.
	EscapeHTML
	// Passthrough substitutes values verbatim, for plain-text channels.
	Passthrough
)

var stripPolicy = bluemonday.StrictPolicy()

// Field pairs template content with personalisation values and renders the
// placeholder grammar.
type Field struct {
	content string
	values  *insensitive.Dict[any]

	mode          Mode
	withBrackets  bool
	markdownLists bool
	redactMissing bool
	plainMarkers  bool
}

// Option configures a Field.
type Option func(*Field)

// WithMode sets the HTML sanitisation mode for substituted values.
func WithMode(mode Mode) Option {
	return func(f *Field) { f.mode = mode }
}

// WithoutBrackets renders missing-value markers as bare names.
func WithoutBrackets() Option {
	return func(f *Field) { f.withBrackets = false }
}

// WithMarkdownLists renders list values as Markdown bullets instead of
// comma-joined prose.
func WithMarkdownLists() Option {
	return func(f *Field) { f.markdownLists = true }
}

// WithRedaction replaces every placeholder marker with a redacted marker.
func WithRedaction() Option {
	return func(f *Field) { f.redactMissing = true }
}

// WithPlainMarkers uses unstyled ((name)) and [hidden] markers, for
// plain-text email and letter previews.
func WithPlainMarkers() Option {
	return func(f *Field) { f.plainMarkers = true }
}

// New builds a Field over content. A nil values map is an empty one.
func New(content string, values map[string]any, opts ...Option) *Field {
	f := &Field{
		content:      content,
		values:       insensitive.New[any](),
		withBrackets: true,
	}
	for k, v := range values {
		f.values.Set(k, v)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Placeholders returns unique placeholder names in order of first
// appearance. Names differing only in case, spacing or separators count as
// one; the first spelling wins.
func (f *Field) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, match := range placeholderRe.FindAllString(f.content, -1) {
		name := ParsePlaceholder(match).Name()
		key := insensitive.Key(name)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, name)
	}
	return names
}

// Formatted renders the content with every placeholder wrapped in a marker
// and no values substituted.
func (f *Field) Formatted() string {
	return placeholderRe.ReplaceAllStringFunc(f.content, func(match string) string {
		return f.marker(ParsePlaceholder(match))
	})
}

// Replaced renders the content with values substituted. Placeholders with
// no value fall back to their Formatted marker so previews visibly
// highlight gaps.
func (f *Field) Replaced() string {
	return placeholderRe.ReplaceAllStringFunc(f.content, func(match string) string {
		p := ParsePlaceholder(match)
		value, ok := f.values.Get(p.Name())

		if p.IsConditional() && ok && value != nil {
			return p.ConditionalBody(value)
		}
		if !ok || value == nil {
			return f.marker(p)
		}
		return f.sanitise(f.formatValue(value))
	})
}

// String renders Replaced when any values are set, Formatted otherwise.
func (f *Field) String() string {
	if f.values.Len() > 0 {
		return f.Replaced()
	}
	return f.Formatted()
}

func (f *Field) marker(p Placeholder) string {
	if f.redactMissing {
		if f.plainMarkers {
			return "[hidden]"
		}
		return "<span class='placeholder-redacted'>hidden</span>"
	}

	if p.IsConditional() {
		if f.plainMarkers {
			return "((" + p.Name() + "??" + p.ConditionalText() + "))"
		}
		return "<span class='placeholder-conditional'>((" + p.Name() + "??</span>" + p.ConditionalText() + "))"
	}

	if f.plainMarkers {
		return "((" + p.Name() + "))"
	}
	if f.withBrackets {
		return "<span class='placeholder'>((" + p.Name() + "))</span>"
	}
	return "<span class='placeholder'>" + p.Name() + "</span>"
}

func (f *Field) formatValue(value any) string {
	items, isList := asList(value)
	if !isList {
		return fmt.Sprint(value)
	}

	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		s := fmt.Sprint(item)
		if strings.TrimSpace(s) == "" {
			continue
		}
		filtered = append(filtered, s)
	}
	return f.formatList(filtered)
}

func asList(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		items := make([]any, len(v))
		for i, s := range v {
			items[i] = s
		}
		return items, true
	default:
		return nil, false
	}
}

// formatList renders items as "'a', 'b' and 'c'", or as Markdown bullets in
// markdown-lists mode.
func (f *Field) formatList(items []string) string {
	if len(items) == 0 {
		return ""
	}

	if f.markdownLists {
		return "\n\n* " + strings.Join(items, "\n* ")
	}

	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "'" + item + "'"
	}
	if len(quoted) == 1 {
		return quoted[0]
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + " and " + quoted[len(quoted)-1]
}

func (f *Field) sanitise(s string) string {
	switch f.mode {
	case StripHTML:
		// bluemonday entity-escapes the surviving text; undo that so strip
		// mode yields plain text rather than half-escaped markup.
		return html.UnescapeString(stripPolicy.Sanitize(s))
	case EscapeHTML:
		return html.EscapeString(s)
	default:
		return s
	}
}
