// Package charset reduces arbitrary Unicode text to the character sets the
// delivery channels can carry.
//
// Three encoders share one algorithm parameterised by the allowed set:
//
//   - GSM: the GSM 03.38 default alphabet, the extended escape table and
//     Welsh diacritics (SMS delivery).
//   - ASCII: printable ASCII 32..126.
//   - BroadcastGSM: the same set as GSM; cell-broadcast only differs in how
//     fragments are counted, which lives with the broadcast template.
//
// Every encoder additionally passes extended-language scripts (Hangul,
// Cyrillic, Arabic, Thai, Han and so on) through verbatim, see
// IsExtendedLanguage.
// Anything else is downgraded: first by canonical Unicode decomposition
// (é→e), then via an explicit replacement table (smart quotes, dashes,
// zero-width characters), and finally to "?". NonCompatible reports exactly
// the characters that would end up as "?", so callers can warn before
// sending.
package charset
