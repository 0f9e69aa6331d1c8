package postal

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrymomot/notifykit/pkg/charset"
	"github.com/dmitrymomot/notifykit/pkg/countries"
	"github.com/dmitrymomot/notifykit/pkg/insensitive"
	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// Line keys recognised in letter personalisation. The last line can be
// supplied either as address_line_7 or as postcode; address_line_7 wins when
// both are present.
var (
	AddressLineKeys = []string{
		"address_line_1",
		"address_line_2",
		"address_line_3",
		"address_line_4",
		"address_line_5",
		"address_line_6",
	}
	LastLineKeys = []string{"address_line_7", "postcode"}
)

// invalidLineStarts are characters no address line may begin with; the print
// provider's sorting machinery chokes on them.
const invalidLineStarts = `@()=[]"\/,<>~`

const (
	minLineCount = 3
	maxLineCount = 7
)

// Address is a parsed postal address. The zero value is an empty, invalid
// address.
type Address struct {
	lines              []string
	allowInternational bool

	country    countries.Country
	hasCountry bool
}

// NewAddress parses a raw multiline address.
func NewAddress(raw string, allowInternational bool) Address {
	a := Address{allowInternational: allowInternational}

	for line := range strings.SplitSeq(raw, "\n") {
		line = strings.Trim(charset.StripAndRemoveObscureWhitespace(line), " ,\t")
		if line == "" {
			continue
		}
		a.lines = append(a.lines, line)
	}

	if len(a.lines) > 0 {
		if c, err := countries.FindCountry(a.lines[len(a.lines)-1]); err == nil {
			a.country = c
			a.hasCountry = true
		}
	}
	return a
}

// FromPersonalisation assembles an address from address_line_1..7/postcode
// personalisation keys. Keys are matched insensitively.
func FromPersonalisation(values map[string]any, allowInternational bool) Address {
	dict := insensitive.New[any]()
	for k, v := range values {
		dict.Set(k, v)
	}

	var lines []string
	for _, key := range AddressLineKeys {
		lines = append(lines, stringValue(dict, key))
	}

	last := stringValue(dict, "address_line_7")
	if last == "" {
		last = stringValue(dict, "postcode")
	}
	lines = append(lines, last)

	return NewAddress(strings.Join(lines, "\n"), allowInternational)
}

func stringValue(dict *insensitive.Dict[any], key string) string {
	v, ok := dict.Get(key)
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Country returns the destination country. Addresses whose last line is not
// a recognised country are treated as UK.
func (a Address) Country() countries.Country {
	if a.hasCountry {
		return a.country
	}
	return countries.Country{CanonicalName: "United Kingdom", Postage: countries.PostageUK}
}

// International reports whether the address is outside the UK.
func (a Address) International() bool {
	return a.hasCountry && !a.country.IsUK()
}

// Postage returns the zone the letter will be billed against. Domestic
// letters report the united-kingdom zone; the sending service narrows that
// to first or second class.
func (a Address) Postage() countries.PostageZone {
	if a.International() {
		return a.country.Postage
	}
	return countries.PostageUK
}

// postcodeLine is the line checked against UK postcode rules: the last line,
// or the one before it when the last line names a country.
func (a Address) postcodeLine() string {
	lines := a.lines
	if a.hasCountry {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return lines[len(lines)-1]
}

// Postcode returns the formatted UK postcode, or "" for international
// addresses and addresses without a real postcode.
func (a Address) Postcode() string {
	if a.International() {
		return ""
	}
	formatted, ok := validate.FormatPostcode(a.postcodeLine())
	if !ok {
		return ""
	}
	return formatted
}

// NormalisedLines returns the address block ready for rendering: lines
// trimmed, the postcode formatted, an explicit UK country line dropped, and
// an international country line replaced by its canonical name.
func (a Address) NormalisedLines() []string {
	lines := make([]string, len(a.lines))
	copy(lines, a.lines)

	if a.hasCountry {
		if a.country.IsUK() {
			lines = lines[:len(lines)-1]
		} else {
			lines[len(lines)-1] = a.country.CanonicalName
		}
	}

	if !a.International() && len(lines) > 0 {
		if formatted, ok := validate.FormatPostcode(lines[len(lines)-1]); ok {
			lines[len(lines)-1] = formatted
		}
	}
	return lines
}

// AsSingleLine joins the normalised address with commas.
func (a Address) AsSingleLine() string {
	return strings.Join(a.NormalisedLines(), ", ")
}

// AsPersonalisation projects the address back onto address_line_1..7 and
// postcode keys, for templates whose content references individual lines.
func (a Address) AsPersonalisation() map[string]string {
	out := make(map[string]string, 8)
	lines := a.NormalisedLines()

	var last string
	var body []string
	if len(lines) > 0 {
		last = lines[len(lines)-1]
		body = lines[:len(lines)-1]
	}

	for i, key := range AddressLineKeys {
		if i < len(body) {
			out[key] = body[i]
		} else {
			out[key] = ""
		}
	}
	out["address_line_7"] = last

	out["postcode"] = a.Postcode()
	if out["postcode"] == "" {
		out["postcode"] = last
	}
	return out
}

// HasEnoughLines reports at least three populated lines.
func (a Address) HasEnoughLines() bool {
	return len(a.lines) >= minLineCount
}

// HasTooManyLines reports more than seven populated lines.
func (a Address) HasTooManyLines() bool {
	return len(a.lines) > maxLineCount
}

// HasValidPostcode reports whether a UK address ends in a real postcode.
func (a Address) HasValidPostcode() bool {
	if a.International() {
		return false
	}
	return validate.IsUKPostcode(a.postcodeLine())
}

// HasValidLastLine reports whether the address ends acceptably: a real UK
// postcode, or a recognised country when international letters are allowed.
func (a Address) HasValidLastLine() bool {
	if a.International() {
		return a.allowInternational
	}
	return a.HasValidPostcode()
}

// HasInvalidCharacters reports whether any line starts with a character the
// print provider rejects.
func (a Address) HasInvalidCharacters() bool {
	for _, line := range a.lines {
		first, _ := utf8.DecodeRuneInString(line)
		if strings.ContainsRune(invalidLineStarts, first) {
			return true
		}
	}
	return false
}

// Valid reports whether the address can be printed and dispatched.
func (a Address) Valid() bool {
	return a.HasValidLastLine() &&
		a.HasEnoughLines() &&
		!a.HasTooManyLines() &&
		!a.HasInvalidCharacters()
}

// IsEmpty reports whether no lines are populated.
func (a Address) IsEmpty() bool {
	return len(a.lines) == 0
}
