package template

import (
	"context"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/a-h/templ"
	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/charset"
	"github.com/dmitrymomot/notifykit/pkg/field"
)

// Broadcast content limits. Cell broadcast pages carry 1395 GSM-7
// characters; UCS-2 reduces that to 615. Unlike SMS, extended GSM
// characters count twice against the limit.
const (
	MaxBroadcastGSM  = 1395
	MaxBroadcastUCS2 = 615
)

// Broadcast renders an emergency alert message.
type Broadcast struct {
	base
}

// NewBroadcast wraps a broadcast record.
func NewBroadcast(r Record) (*Broadcast, error) {
	b, err := newBase(r, TypeBroadcast, r.Content)
	if err != nil {
		return nil, err
	}
	return &Broadcast{base: b}, nil
}

// BroadcastFromContent builds a Broadcast around already-written content
// with no stored record behind it.
func BroadcastFromContent(content string) *Broadcast {
	t, _ := NewBroadcast(Record{
		ID:      uuid.Nil,
		Type:    TypeBroadcast,
		Content: content,
	})
	return t
}

// BroadcastFromEvent builds a Broadcast from a broadcast event document.
// The event's transmitted content is already interpolated upstream.
func BroadcastFromEvent(event map[string]any) (*Broadcast, error) {
	transmitted, _ := event["transmitted_content"].(map[string]any)
	body, ok := transmitted["body"].(string)
	if !ok {
		return nil, ErrMissingEventBody
	}
	return BroadcastFromContent(body), nil
}

func (t *Broadcast) rendered(downgrade bool) string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	if downgrade {
		body = charset.BroadcastGSM.Encode(body)
	}
	return normaliseSMSWhitespace(body)
}

func (t *Broadcast) String() string {
	return t.rendered(true)
}

// ContentCount is the character count of the substituted content.
func (t *Broadcast) ContentCount() int {
	return utf8.RuneCountInString(t.rendered(false))
}

// EncodedContentCount counts characters as transmitted. For a pure GSM
// message each extended GSM character occupies two septets.
func (t *Broadcast) EncodedContentCount() int {
	content := t.rendered(false)
	count := utf8.RuneCountInString(content)
	if charset.IsPureGSM(content) {
		count += charset.CountExtendedGSM(content)
	}
	return count
}

// MaxContentCount is the applicable limit for the message's encoding.
func (t *Broadcast) MaxContentCount() int {
	if charset.IsPureGSM(t.rendered(false)) {
		return MaxBroadcastGSM
	}
	return MaxBroadcastUCS2
}

// ContentTooLong reports whether the message exceeds its encoding's limit.
func (t *Broadcast) ContentTooLong() bool {
	return t.EncodedContentCount() > t.MaxContentCount()
}

// IsMessageTooLong applies the SMS character cap, which broadcasts share
// on top of their own encoded limit.
func (t *Broadcast) IsMessageTooLong() bool {
	return t.ContentCount() > MaxSMSChars
}

// IsMessageEmpty reports whether the substituted content is blank.
func (t *Broadcast) IsMessageEmpty() bool { return t.ContentCount() == 0 }

// NonGSMCharacters returns the Welsh characters that fall outside GSM and
// would force the whole alert into UCS-2.
func (t *Broadcast) NonGSMCharacters() []rune {
	return charset.WelshNonGSM(t.rendered(false))
}

// BroadcastPreview renders the alert as an HTML fragment.
type BroadcastPreview struct {
	*Broadcast
}

// NewBroadcastPreview wraps a broadcast record for on-screen previewing.
func NewBroadcastPreview(r Record) (*BroadcastPreview, error) {
	t, err := NewBroadcast(r)
	if err != nil {
		return nil, err
	}
	return &BroadcastPreview{Broadcast: t}, nil
}

// Component returns the preview as a templ component.
func (t *BroadcastPreview) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		body := field.New(t.record.Content, t.Values(),
			field.WithMode(field.EscapeHTML),
		).String()
		body = charset.BroadcastGSM.Encode(body)
		body = strings.ReplaceAll(normaliseSMSWhitespace(body), "\n", "<br>")

		var sb strings.Builder
		sb.WriteString(`<div class="broadcast-message-wrapper">`)
		sb.WriteString(`<h2 class="broadcast-message-heading">Emergency alert</h2>`)
		sb.WriteString(body)
		sb.WriteString(`</div>`)
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Render draws the preview fragment.
func (t *BroadcastPreview) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *BroadcastPreview) String() string {
	return mustRender(t.Component())
}
