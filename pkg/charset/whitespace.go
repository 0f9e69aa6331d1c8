package charset

import "strings"

// obscureWhitespace are zero-width or otherwise invisible characters that
// users paste into spreadsheets and email addresses without knowing.
var obscureWhitespace = map[rune]struct{}{
	'᠎':      {}, // mongolian vowel separator
	'​':      {}, // zero width space
	'‌':      {}, // zero width non-joiner
	'‍':      {}, // zero width joiner
	'⁠':      {}, // word joiner
	'\uFEFF': {}, // zero width no-break space
}

// RemoveObscureWhitespace drops zero-width and invisible space characters
// from anywhere in text.
func RemoveObscureWhitespace(text string) string {
	if !strings.ContainsFunc(text, func(r rune) bool {
		_, ok := obscureWhitespace[r]
		return ok
	}) {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if _, ok := obscureWhitespace[r]; ok {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripAndRemoveObscureWhitespace removes obscure whitespace anywhere in
// text and trims ordinary whitespace from both ends. CSV cells and email
// addresses go through this before validation.
func StripAndRemoveObscureWhitespace(text string) string {
	return strings.TrimSpace(RemoveObscureWhitespace(text))
}
