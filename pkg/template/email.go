package template

import (
	"context"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notifykit/pkg/field"
	"github.com/dmitrymomot/notifykit/pkg/markdown"
)

// DefaultEmailSizeLimit caps the substituted content at a size that stays
// under the provider's MIME limit after base64 and HTML expansion.
const DefaultEmailSizeLimit = 2_000_000

// PreheaderLength is how much of the plain-text rendering becomes the
// hidden preview line at the top of the HTML document.
const PreheaderLength = 256

// Brand is the customisation block shown at the top of an HTML email.
type Brand struct {
	LogoURL string
	Text    string
	Colour  string
	Banner  bool
}

// Email renders one template record into its HTML document, plain-text
// alternative and on-screen preview.
type Email struct {
	base
	govukBanner bool
	brand       Brand
	from        string
	replyTo     string
	to          string
	sizeLimit   int
}

// EmailOption configures an Email.
type EmailOption func(*Email)

// WithoutGOVUKBanner drops the default banner from the HTML document.
func WithoutGOVUKBanner() EmailOption {
	return func(t *Email) { t.govukBanner = false }
}

// WithBrand adds a brand block under the banner.
func WithBrand(brand Brand) EmailOption {
	return func(t *Email) { t.brand = brand }
}

// WithAddresses sets the metadata shown in previews.
func WithAddresses(from, replyTo, to string) EmailOption {
	return func(t *Email) {
		t.from = from
		t.replyTo = replyTo
		t.to = to
	}
}

// WithSizeLimit overrides the content size cap in bytes.
func WithSizeLimit(limit int) EmailOption {
	return func(t *Email) { t.sizeLimit = limit }
}

// NewEmail wraps an email record.
func NewEmail(r Record, opts ...EmailOption) (*Email, error) {
	b, err := newBase(r, TypeEmail, r.Content, r.Subject)
	if err != nil {
		return nil, err
	}
	t := &Email{
		base:        b,
		govukBanner: true,
		sizeLimit:   DefaultEmailSizeLimit,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Subject renders the subject line with values substituted.
func (t *Email) Subject() string {
	s := field.New(t.record.Subject, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	return strings.TrimSpace(markdown.NiceTypography(s))
}

// BodyHTML renders the message body as email-client-safe HTML. Values are
// substituted verbatim here; the Markdown renderer escapes all text, so
// escaping them first would show entities to the reader.
func (t *Email) BodyHTML() string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
		field.WithMarkdownLists(),
	).String()
	return markdown.NiceTypography(markdown.EmailHTML(body))
}

// PlainText renders the plain-text alternative body.
func (t *Email) PlainText() string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	return markdown.NiceTypography(markdown.EmailPlainText(body)) + "\n"
}

// Preheader is the hidden preview line shown by email clients next to the
// subject.
func (t *Email) Preheader() string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	preheader := markdown.NiceTypography(markdown.EmailPreheader(body))
	preheader = strings.Join(strings.Fields(preheader), " ")
	runes := []rune(preheader)
	if len(runes) > PreheaderLength {
		runes = runes[:PreheaderLength]
	}
	return string(runes)
}

// substituted is the pre-HTML content the size policy measures.
func (t *Email) substituted() string {
	return field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
}

// ContentSizeInBytes is the UTF-8 byte length of the substituted content.
func (t *Email) ContentSizeInBytes() int {
	return len(t.substituted())
}

// IsMessageTooLong reports whether the content exceeds the size cap.
func (t *Email) IsMessageTooLong() bool {
	return t.ContentSizeInBytes() > t.sizeLimit
}

// IsMessageEmpty reports whether the substituted content is blank.
func (t *Email) IsMessageEmpty() bool {
	return strings.TrimSpace(t.substituted()) == ""
}

// Component returns the full HTML document as a templ component.
func (t *Email) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString("<!DOCTYPE html>\n")
		sb.WriteString(`<html lang="en"><head><meta charset="utf-8"><title>`)
		sb.WriteString(html.EscapeString(t.Subject()))
		sb.WriteString("</title></head>\n<body>\n")
		sb.WriteString(`<span style="display: none; font-size: 1px; color: #FFFFFF; max-height: 0;">`)
		sb.WriteString(html.EscapeString(t.Preheader()))
		sb.WriteString("</span>\n")
		if t.govukBanner {
			sb.WriteString(`<div style="background: #0B0C0C; padding: 20px;">` +
				`<span style="color: #FFFFFF; font-size: 19px; font-weight: bold;">GOV.UK</span></div>` + "\n")
		}
		writeBrand(&sb, t.brand)
		sb.WriteString(t.BodyHTML())
		sb.WriteString("</body></html>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeBrand(sb *strings.Builder, brand Brand) {
	if brand.LogoURL == "" && brand.Text == "" {
		return
	}
	style := "padding: 20px 0;"
	if brand.Banner && brand.Colour != "" {
		style = "padding: 20px; background: " + brand.Colour + ";"
	}
	sb.WriteString(`<div style="` + style + `">`)
	if brand.LogoURL != "" {
		sb.WriteString(`<img src="` + html.EscapeString(brand.LogoURL) + `" alt="" height="40">`)
	}
	if brand.Text != "" {
		sb.WriteString(`<span style="font-size: 19px; font-weight: bold;">` + html.EscapeString(brand.Text) + `</span>`)
	}
	sb.WriteString("</div>\n")
}

// Render draws the full HTML document.
func (t *Email) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *Email) String() string {
	return mustRender(t.Component())
}

// EmailPreview renders the metadata table and body shown on the template
// preview page.
type EmailPreview struct {
	*Email
}

// NewEmailPreview wraps an email record for on-screen previewing.
func NewEmailPreview(r Record, opts ...EmailOption) (*EmailPreview, error) {
	t, err := NewEmail(r, opts...)
	if err != nil {
		return nil, err
	}
	return &EmailPreview{Email: t}, nil
}

// Component returns the preview fragment as a templ component.
func (t *EmailPreview) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<table class="email-message-meta">` + "\n")
		writeMetaRow(&sb, "From", t.from)
		writeMetaRow(&sb, "Reply to", t.replyTo)
		writeMetaRow(&sb, "To", t.to)
		writeMetaRow(&sb, "Subject", t.Subject())
		sb.WriteString("</table>\n")
		sb.WriteString(`<div class="email-message-body">` + "\n")
		sb.WriteString(t.BodyHTML())
		sb.WriteString("</div>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

func writeMetaRow(sb *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	sb.WriteString("<tr><th>" + label + "</th><td>" + html.EscapeString(value) + "</td></tr>\n")
}

// Render draws the preview fragment.
func (t *EmailPreview) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *EmailPreview) String() string {
	return mustRender(t.Component())
}
