// Package insensitive provides an ordered mapping whose keys are compared
// case-, whitespace-, underscore- and hyphen-insensitively.
//
// Personalisation values and CSV column headers arrive from users who write
// "Phone Number", "phone_number" or "phonenumber" interchangeably. Dict
// collapses all of those to one key while preserving insertion order, and
// Key exposes the normalisation on its own for callers that need to compare
// keys without building a Dict.
package insensitive
