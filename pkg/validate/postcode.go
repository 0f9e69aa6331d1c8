package validate

import (
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ukPostcodeRe matches a normalised (uppercase, no spaces) UK postcode,
// a BFPO number or the GIR 0AA Girobank code.
var ukPostcodeRe = regexp.MustCompile(`^([A-Z]{1,2}[0-9][0-9A-Z]?[0-9][A-BD-HJLNP-UW-Z]{2}|BFPO(C/O)?[0-9]{1,4}|GIR0AA)$`)

// formatCache memoises FormatPostcode. Address previews format the same
// postcode repeatedly within one request.
var formatCache, _ = lru.New[string, string](8)

// NormalisePostcode uppercases and removes all spaces.
func NormalisePostcode(postcode string) string {
	return strings.ReplaceAll(strings.ToUpper(postcode), " ", "")
}

// IsUKPostcode reports whether postcode, once normalised, is a real UK
// postcode.
func IsUKPostcode(postcode string) bool {
	return ukPostcodeRe.MatchString(NormalisePostcode(postcode))
}

// FormatPostcode normalises postcode and inserts the single space before the
// trailing three characters, e.g. "sw1a1aa" → "SW1A 1AA". It returns false
// when the input is not a UK postcode.
func FormatPostcode(postcode string) (string, bool) {
	if cached, ok := formatCache.Get(postcode); ok {
		return cached, cached != ""
	}

	normalised := NormalisePostcode(postcode)
	if !ukPostcodeRe.MatchString(normalised) {
		formatCache.Add(postcode, "")
		return "", false
	}

	formatted := normalised[:len(normalised)-3] + " " + normalised[len(normalised)-3:]
	formatCache.Add(postcode, formatted)
	return formatted, true
}
