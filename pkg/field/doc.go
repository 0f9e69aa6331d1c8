// Package field implements the placeholder grammar used in message
// templates.
//
// A placeholder is ((name)), or the conditional form ((name??text)) which
// renders its text only when the named value reads as true. Field layers
// value substitution, HTML sanitisation, list formatting and redaction on
// top of the grammar; templates for every channel render through it.
package field
