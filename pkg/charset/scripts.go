package charset

import "unicode"

// extendedScripts are the Unicode scripts whose text is delivered verbatim
// rather than transliterated. The list is user-visible policy: a language on
// it is sent without downgrade, a language off it gets "?" for anything the
// channel cannot carry.
var extendedScripts = []*unicode.RangeTable{
	unicode.Hangul,
	unicode.Cyrillic,
	unicode.Arabic,
	unicode.Armenian,
	unicode.Bengali,
	unicode.Gurmukhi,
	unicode.Buhid,
	unicode.Canadian_Aboriginal,
	unicode.Cherokee,
	unicode.Devanagari,
	unicode.Ethiopic,
	unicode.Georgian,
	unicode.Greek,
	unicode.Gujarati,
	unicode.Hanunoo,
	unicode.Hebrew,
	unicode.Limbu,
	unicode.Kannada,
	unicode.Khmer,
	unicode.Lao,
	unicode.Mongolian,
	unicode.Myanmar,
	unicode.Tibetan,
	unicode.Yi,
	unicode.Ogham,
	unicode.Oriya,
	unicode.Sinhala,
	unicode.Syriac,
	unicode.Tagalog,
	unicode.Tagbanwa,
	unicode.Tai_Le,
	unicode.Tamil,
	unicode.Telugu,
	unicode.Thaana,
	unicode.Thai,
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
}

// cjkPunctuation covers the punctuation used alongside Han text, which sits
// outside the Han script table.
const cjkPunctuation = "　、。〃〈〉《》「」『』【】〔〕〜・！？（）：；，"

// vietnamese lists the precomposed Vietnamese letters. Plain Latin letters
// are already in every allowed set; these are the tone- and horn-marked
// forms plus đ.
const vietnamese = "àáạảãâầấậẩẫăằắặẳẵ" +
	"èéẹẻẽêềếệểễ" +
	"ìíịỉĩ" +
	"òóọỏõôồốộổỗơờớợởỡ" +
	"ùúụủũưừứựửữ" +
	"ỳýỵỷỹđ" +
	"ÀÁẠẢÃÂẦẤẬẨẪĂẰẮẶẲẴ" +
	"ÈÉẸẺẼÊỀẾỆỂỄ" +
	"ÌÍỊỈĨ" +
	"ÒÓỌỎÕÔỒỐỘỔỖƠỜỚỢỞỠ" +
	"ÙÚỤỦŨƯỪỨỰỬỮ" +
	"ỲÝỴỶỸĐ"

// turkish lists the letters unique to Turkish orthography. The shared
// accented vowels (ç, ö, ü) are already in the GSM default alphabet.
const turkish = "ğĞıİşŞ"

var extendedExtras = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range cjkPunctuation + vietnamese + turkish {
		set[r] = struct{}{}
	}
	return set
}()

// IsExtendedLanguage reports whether r belongs to a script that is delivered
// without transliteration.
func IsExtendedLanguage(r rune) bool {
	if _, ok := extendedExtras[r]; ok {
		return true
	}
	return unicode.In(r, extendedScripts...)
}
