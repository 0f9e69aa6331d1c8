package template

import (
	"context"
	"html"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notifykit/pkg/countries"
	"github.com/dmitrymomot/notifykit/pkg/field"
	"github.com/dmitrymomot/notifykit/pkg/markdown"
	"github.com/dmitrymomot/notifykit/pkg/postal"
)

// MaxLetterImagePages caps how many page images a preview shows.
const MaxLetterImagePages = 10

// Letter renders a letter record: address block, contact block, subject
// and Markdown body.
type Letter struct {
	base
	allowInternational bool
}

// LetterOption configures the letter family.
type LetterOption func(*Letter)

// WithInternationalLetters accepts addresses whose last line is a known
// country instead of a UK postcode.
func WithInternationalLetters() LetterOption {
	return func(t *Letter) { t.allowInternational = true }
}

// NewLetter wraps a letter record.
func NewLetter(r Record, opts ...LetterOption) (*Letter, error) {
	b, err := newBase(r, TypeLetter, r.Content, r.Subject, r.ContactBlock)
	if err != nil {
		return nil, err
	}
	t := &Letter{base: b}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Address parses the postal address out of the current values.
func (t *Letter) Address() postal.Address {
	return postal.FromPersonalisation(t.Values(), t.allowInternational)
}

// Subject renders the letter heading with values substituted.
func (t *Letter) Subject() string {
	s := field.New(t.record.Subject, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	return strings.TrimSpace(s)
}

// Postage returns the stamp class. A stored first or second override wins
// for domestic letters; international letters take the destination
// country's zone.
func (t *Letter) Postage() countries.PostageZone {
	addr := t.Address()
	if addr.International() {
		return addr.Postage()
	}
	switch t.record.Postage {
	case string(countries.PostageFirst):
		return countries.PostageFirst
	case string(countries.PostageSecond):
		return countries.PostageSecond
	}
	return countries.PostageSecond
}

// PostageDescription is the human-readable stamp class.
func (t *Letter) PostageDescription() string {
	return t.Postage().Description()
}

// IsMessageEmpty reports whether the substituted body is blank.
func (t *Letter) IsMessageEmpty() bool {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	return strings.TrimSpace(body) == ""
}

// IsMessageTooLong always reports false; letter length is governed by the
// page count of the produced document, not the content.
func (t *Letter) IsMessageTooLong() bool { return false }

// bodyHTML substitutes values verbatim; the Markdown renderer escapes all
// text, so escaping them first would show entities to the reader.
func (t *Letter) bodyHTML() string {
	body := field.New(t.record.Content, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
		field.WithMarkdownLists(),
	).String()
	return markdown.NiceTypography(markdown.LetterPreview(body))
}

func (t *Letter) writeAddressBlock(sb *strings.Builder) {
	sb.WriteString(`<div class="letter-address">` + "\n")
	lines := t.Address().NormalisedLines()
	if len(lines) == 0 {
		// No address values yet; show the numbered placeholders.
		lines = []string{"((address line 1))", "((address line 2))", "((postcode))"}
	}
	for _, line := range lines {
		sb.WriteString("<span>" + html.EscapeString(line) + "</span><br>\n")
	}
	sb.WriteString("</div>\n")
}

func (t *Letter) writeContactBlock(sb *strings.Builder) {
	if t.record.ContactBlock == "" {
		return
	}
	contact := field.New(t.record.ContactBlock, t.Values(),
		field.WithMode(field.Passthrough),
		field.WithPlainMarkers(),
	).String()
	sb.WriteString(`<div class="letter-contact-block">` + "\n")
	sb.WriteString(strings.ReplaceAll(html.EscapeString(contact), "\n", "<br>"))
	sb.WriteString("\n</div>\n")
}

// LetterPreview renders the letter as the HTML shown on the template
// preview page.
type LetterPreview struct {
	*Letter
}

// NewLetterPreview wraps a letter record for on-screen previewing.
func NewLetterPreview(r Record, opts ...LetterOption) (*LetterPreview, error) {
	t, err := NewLetter(r, opts...)
	if err != nil {
		return nil, err
	}
	return &LetterPreview{Letter: t}, nil
}

// Component returns the preview as a templ component.
func (t *LetterPreview) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="letter">` + "\n")
		t.writeContactBlock(&sb)
		t.writeAddressBlock(&sb)
		if subject := t.Subject(); subject != "" {
			sb.WriteString("<h1>" + html.EscapeString(subject) + "</h1>\n")
		}
		sb.WriteString(t.bodyHTML())
		sb.WriteString("</div>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Render draws the preview.
func (t *LetterPreview) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *LetterPreview) String() string {
	return mustRender(t.Component())
}

// LetterPrint renders the print-ready page. The markup matches the preview
// but carries the print stylesheet hooks instead of the on-screen ones.
type LetterPrint struct {
	*Letter
}

// NewLetterPrint wraps a letter record for print rendering.
func NewLetterPrint(r Record, opts ...LetterOption) (*LetterPrint, error) {
	t, err := NewLetter(r, opts...)
	if err != nil {
		return nil, err
	}
	return &LetterPrint{Letter: t}, nil
}

// Component returns the print page as a templ component.
func (t *LetterPrint) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="letter-print">` + "\n")
		t.writeAddressBlock(&sb)
		t.writeContactBlock(&sb)
		sb.WriteString(`<p class="letter-postage">` + html.EscapeString(t.PostageDescription()) + "</p>\n")
		if subject := t.Subject(); subject != "" {
			sb.WriteString("<h1>" + html.EscapeString(subject) + "</h1>\n")
		}
		sb.WriteString(t.bodyHTML())
		sb.WriteString("</div>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Render draws the print page.
func (t *LetterPrint) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *LetterPrint) String() string {
	return mustRender(t.Component())
}

// LetterImage renders page images of an already-produced letter PDF.
type LetterImage struct {
	*Letter
	imageURL  string
	pageCount int
}

// NewLetterImage wraps a letter record whose pages were rendered to images.
// Both the image URL and the page count are required.
func NewLetterImage(r Record, imageURL string, pageCount int, opts ...LetterOption) (*LetterImage, error) {
	if imageURL == "" {
		return nil, ErrMissingImageURL
	}
	if pageCount < 1 {
		return nil, ErrMissingPageCount
	}
	t, err := NewLetter(r, opts...)
	if err != nil {
		return nil, err
	}
	return &LetterImage{Letter: t, imageURL: imageURL, pageCount: pageCount}, nil
}

// PageCount is the number of pages in the produced document.
func (t *LetterImage) PageCount() int { return t.pageCount }

// PageNumbers lists the pages shown, capped at MaxLetterImagePages.
func (t *LetterImage) PageNumbers() []int {
	n := min(t.pageCount, MaxLetterImagePages)
	pages := make([]int, n)
	for i := range pages {
		pages[i] = i + 1
	}
	return pages
}

// Component returns the image tiles as a templ component.
func (t *LetterImage) Component() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var sb strings.Builder
		sb.WriteString(`<div class="letter-images">` + "\n")
		for _, page := range t.PageNumbers() {
			sb.WriteString(`<img src="` + html.EscapeString(t.imageURL) +
				"?page=" + strconv.Itoa(page) + `" alt="Page ` + strconv.Itoa(page) + `">` + "\n")
		}
		sb.WriteString("</div>\n")
		_, err := io.WriteString(w, sb.String())
		return err
	})
}

// Render draws the image tiles.
func (t *LetterImage) Render(ctx context.Context) (string, error) {
	return render(ctx, t.Component())
}

func (t *LetterImage) String() string {
	return mustRender(t.Component())
}
