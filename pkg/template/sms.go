package template

import (
	"context"
	"html"
	"io"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notifykit/pkg/charset"
	"github.com/dmitrymomot/notifykit/pkg/field"
	"github.com/dmitrymomot/notifykit/pkg/pipeline"
)

// MaxSMSChars is the longest message accepted for sending, prefix excluded.
const MaxSMSChars = 918

// Fragment sizes. A single-fragment message fits 160 GSM-7 characters;
// concatenated messages lose 7 characters per fragment to the user-data
// header. UCS-2 halves both.
const (
	gsmFragmentSingle  = 160
	gsmFragmentMulti   = 153
	ucs2FragmentSingle = 70
	ucs2FragmentMulti  = 67
)

var (
	spaceRuns        = regexp.MustCompile(`[ \t]+`)
	excessNewlines   = regexp.MustCompile(`\n{3,}`)
	spaceAroundLines = regexp.MustCompile(` *\n *`)
)

func normaliseSMSWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = spaceRuns.ReplaceAllString(s, " ")
	s = spaceAroundLines.ReplaceAllString(s, "\n")
	s = excessNewlines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// SMSMessage renders a text message ready for dispatch, downgraded to the
// GSM character set.
type SMSMessage struct {
	base
	prefix     string
	showPrefix bool
}

// SMSOption configures the SMS family.
type SMSOption func(*SMSMessage)

// WithPrefix sets the service name prepended to the message as "name: ".
func WithPrefix(prefix string) SMSOption {
	return func(t *SMSMessage) {
		t.prefix = prefix
		t.showPrefix = prefix != ""
	}
}

// WithoutPrefix hides the prefix while keeping it set.
func WithoutPrefix() SMSOption {
	return func(t *SMSMessage) { t.showPrefix = false }
}

// NewSMSMessage wraps an sms record.
func NewSMSMessage(r Record, opts ...SMSOption) (*SMSMessage, error) {
	b, err := newBase(r, TypeSMS, r.Content)
	if err != nil {
		return nil, err
	}
	t := &SMSMessage{base: b}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// rendered substitutes values and applies the prefix. Counting runs on the
// original characters; only the dispatch string is downgraded.
func (t *SMSMessage) rendered(downgrade bool) string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	encode := func(s string) string { return s }
	if downgrade {
		encode = charset.GSM.Encode
	}
	return pipeline.Apply(body,
		t.addPrefix,
		encode,
		normaliseSMSWhitespace,
	)
}

func (t *SMSMessage) addPrefix(body string) string {
	if !t.showPrefix || t.prefix == "" {
		return body
	}
	return t.prefix + ": " + body
}

func (t *SMSMessage) String() string {
	return t.rendered(true)
}

// ContentCount is the character count of the substituted message including
// the prefix.
func (t *SMSMessage) ContentCount() int {
	return utf8.RuneCountInString(t.rendered(false))
}

// ContentCountWithoutPrefix subtracts the prefix and its separator.
func (t *SMSMessage) ContentCountWithoutPrefix() int {
	count := t.ContentCount()
	if t.showPrefix && t.prefix != "" {
		count -= utf8.RuneCountInString(t.prefix) + 2
	}
	return count
}

// IsMessageEmpty reports whether nothing is left once the prefix is
// discounted.
func (t *SMSMessage) IsMessageEmpty() bool {
	return t.ContentCountWithoutPrefix() == 0
}

// IsMessageTooLong reports whether the message exceeds the send limit.
func (t *SMSMessage) IsMessageTooLong() bool {
	return t.ContentCountWithoutPrefix() > MaxSMSChars
}

// FragmentCount is the number of SMS segments the message bills as.
// Extended GSM characters are counted once here; broadcast counting differs.
func (t *SMSMessage) FragmentCount() int {
	content := t.rendered(false)
	n := utf8.RuneCountInString(content)
	if charset.IsPureGSM(content) {
		return fragments(n, gsmFragmentSingle, gsmFragmentMulti)
	}
	return fragments(n, ucs2FragmentSingle, ucs2FragmentMulti)
}

func fragments(n, single, multi int) int {
	if n <= single {
		return int(math.Ceil(float64(n) / float64(single)))
	}
	return int(math.Ceil(float64(n) / float64(multi)))
}

// SMSBodyPreview renders the message body with HTML escaping and redacted
// personalisation, without a prefix.
type SMSBodyPreview struct {
	base
}

// NewSMSBodyPreview wraps an sms record for body-only previewing.
func NewSMSBodyPreview(r Record) (*SMSBodyPreview, error) {
	b, err := newBase(r, TypeSMS, r.Content)
	if err != nil {
		return nil, err
	}
	return &SMSBodyPreview{base: b}, nil
}

func (t *SMSBodyPreview) String() string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.EscapeHTML),
		field.WithRedaction(),
		field.WithPlainMarkers(),
	).String()
	return normaliseSMSWhitespace(body)
}

// SMSPreview renders the message as an HTML fragment styled like a phone
// screen, optionally showing the sender.
type SMSPreview struct {
	base
	sender     string
	showSender bool
	downgrade  bool
	showPrefix bool
	prefix     string
	redactGaps bool
}

// SMSPreviewOption configures an SMSPreview.
type SMSPreviewOption func(*SMSPreview)

// WithSender shows the sender line above the message.
func WithSender(sender string) SMSPreviewOption {
	return func(t *SMSPreview) {
		t.sender = sender
		t.showSender = sender != ""
	}
}

// WithPreviewPrefix prepends the service name like the dispatched message
// would.
func WithPreviewPrefix(prefix string) SMSPreviewOption {
	return func(t *SMSPreview) {
		t.prefix = prefix
		t.showPrefix = prefix != ""
	}
}

// WithoutDowngrade shows the original Unicode instead of the GSM
// transliteration.
func WithoutDowngrade() SMSPreviewOption {
	return func(t *SMSPreview) { t.downgrade = false }
}

// WithRedactedPersonalisation hides placeholder values in the preview.
func WithRedactedPersonalisation() SMSPreviewOption {
	return func(t *SMSPreview) { t.redactGaps = true }
}

// NewSMSPreview wraps an sms record for on-screen previewing.
func NewSMSPreview(r Record, opts ...SMSPreviewOption) (*SMSPreview, error) {
	b, err := newBase(r, TypeSMS, r.Content)
	if err != nil {
		return nil, err
	}
	t := &SMSPreview{base: b, downgrade: true}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Component returns the preview as a templ component.
func (t *SMSPreview) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		opts := []field.Option{field.WithMode(field.EscapeHTML)}
		if t.redactGaps {
			opts = append(opts, field.WithRedaction())
		}
		body := field.New(t.record.Content, t.Values(), opts...).String()
		if t.showPrefix && t.prefix != "" {
			body = html.EscapeString(t.prefix) + ": " + body
		}
		if t.downgrade {
			body = charset.GSM.Encode(body)
		}
		body = strings.ReplaceAll(normaliseSMSWhitespace(body), "\n", "<br>")

		var sb strings.Builder
		sb.WriteString(`<div class="sms-message-wrapper">`)
		if t.showSender {
			sb.WriteString(`<span class="sms-message-sender">` + html.EscapeString(t.sender) + `</span>`)
		}
		sb.WriteString(body)
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Render draws the preview fragment.
func (t *SMSPreview) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *SMSPreview) String() string {
	return mustRender(t.Component())
}
