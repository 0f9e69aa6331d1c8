package charset

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// gsmDefault is the GSM 03.38 default alphabet.
const gsmDefault = "@£$¥èéùìòÇ\nØø\rÅåΔ_ΦΓΛΩΠΨΣΘΞÆæßÉ !\"#¤%&'()*+,-./0123456789:;<=>?¡ABCDEFGHIJKLMNOPQRSTUVWXYZÄÖÑÜ§¿abcdefghijklmnopqrstuvwxyzäöñüà"

// extendedGSM are the escape-sequence characters. Each costs two 7-bit code
// units on the wire.
const extendedGSM = "^{}\\[~]|€"

// welshDiacritics lists every accented a e i o u w y (grave, acute,
// circumflex, diaeresis) in both cases. Some of these overlap with the GSM
// default alphabet; the rest force UCS-2 encoding.
const welshDiacritics = "àèìòùẁỳÀÈÌÒÙẀỲ" +
	"áéíóúẃýÁÉÍÓÚẂÝ" +
	"âêîôûŵŷÂÊÎÔÛŴŶ" +
	"äëïöüẅÿÄËÏÖÜẄŸ"

// replacements maps characters that cannot be transliterated by Unicode
// decomposition to an explicit substitute.
var replacements = map[rune]string{
	'–':      "-",   // en dash
	'—':      "-",   // em dash
	'…':      "...", // ellipsis
	'‘':      "'",   // left single quote
	'’':      "'",   // right single quote
	'“':      `"`,   // left double quote
	'”':      `"`,   // right double quote
	'᠎':      "",    // mongolian vowel separator
	'​':      "",    // zero width space
	'‌':      "",    // zero width non-joiner
	'‍':      "",    // zero width joiner
	'⁠':      "",    // word joiner
	'\uFEFF': "",    // zero width no-break space
	' ':      " ",   // no-break space
	'\t':     " ",
}

// Encoder reduces arbitrary Unicode text to a channel-compatible character
// set and reports which characters could not be made compatible.
type Encoder struct {
	allowed map[rune]struct{}
}

func newEncoder(alphabets ...string) *Encoder {
	e := &Encoder{allowed: make(map[rune]struct{})}
	for _, alphabet := range alphabets {
		for _, r := range alphabet {
			e.allowed[r] = struct{}{}
		}
	}
	return e
}

func asciiPrintable() string {
	var b strings.Builder
	for r := rune(32); r <= 126; r++ {
		b.WriteRune(r)
	}
	return b.String()
}

var (
	// GSM encodes for SMS delivery: the GSM 03.38 default alphabet, the
	// extended escape characters and Welsh diacritics pass through, as does
	// any extended-language script.
	GSM = newEncoder(gsmDefault, extendedGSM, welshDiacritics)

	// ASCII encodes down to printable ASCII plus extended-language scripts.
	ASCII = newEncoder(asciiPrintable())

	// BroadcastGSM shares the SMS character set; only the fragmentation
	// limits differ, and those live with the broadcast template.
	BroadcastGSM = GSM
)

// Encode transliterates text into the encoder's character set. Characters
// that are neither allowed, extended-language, decomposable to an allowed
// base, nor listed in the replacement table become "?".
func (e *Encoder) Encode(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		b.WriteString(e.encodeRune(r))
	}
	return b.String()
}

// NonCompatible returns the set of characters in text that Encode would
// replace with "?".
func (e *Encoder) NonCompatible(text string) map[rune]struct{} {
	var out map[rune]struct{}
	for _, r := range text {
		if e.encodeRune(r) == "?" && r != '?' {
			if out == nil {
				out = make(map[rune]struct{})
			}
			out[r] = struct{}{}
		}
	}
	return out
}

func (e *Encoder) encodeRune(r rune) string {
	if _, ok := e.allowed[r]; ok {
		return string(r)
	}
	if IsExtendedLanguage(r) {
		return string(r)
	}
	if base, ok := decomposeToBase(r); ok {
		return string(base)
	}
	if repl, ok := replacements[r]; ok {
		return repl
	}
	return "?"
}

// decomposeToBase strips combining marks from a character with a canonical
// decomposition, e.g. é→e, ō→o. Compatibility decompositions (ﬁ, ², …) are
// deliberately not applied; norm.NFD performs canonical decomposition only.
func decomposeToBase(r rune) (rune, bool) {
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 || decomposed[0] == r {
		return 0, false
	}
	return decomposed[0], true
}

var pureGSM = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range gsmDefault + extendedGSM {
		set[r] = struct{}{}
	}
	return set
}()

var extendedGSMSet = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range extendedGSM {
		set[r] = struct{}{}
	}
	return set
}()

// IsPureGSM reports whether text can be carried in GSM-7, i.e. every
// character belongs to the default alphabet or the extended table. Any other
// character forces the whole message into UCS-2.
func IsPureGSM(text string) bool {
	for _, r := range text {
		if _, ok := pureGSM[r]; !ok {
			return false
		}
	}
	return true
}

// CountExtendedGSM counts characters from the extended GSM table. Each of
// them occupies two 7-bit code units when the message is encoded as GSM-7.
func CountExtendedGSM(text string) int {
	n := 0
	for _, r := range text {
		if _, ok := extendedGSMSet[r]; ok {
			n++
		}
	}
	return n
}

// WelshNonGSM returns the Welsh diacritics present in text that fall outside
// the GSM default alphabet, in order of first appearance.
func WelshNonGSM(text string) []rune {
	welsh := make(map[rune]struct{})
	for _, r := range welshDiacritics {
		welsh[r] = struct{}{}
	}
	defaults := make(map[rune]struct{})
	for _, r := range gsmDefault {
		defaults[r] = struct{}{}
	}

	var out []rune
	seen := make(map[rune]struct{})
	for _, r := range text {
		if _, isWelsh := welsh[r]; !isWelsh {
			continue
		}
		if _, isDefault := defaults[r]; isDefault {
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}
	return out
}
