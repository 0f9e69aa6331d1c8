package field

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderRe matches ((body)). Nested brackets are unsupported by design;
// the grammar stays a single regex.
var placeholderRe = regexp.MustCompile(`\(\(([^()]+)\)\)`)

// truthy are the values that switch a conditional placeholder on, compared
// case-insensitively.
var truthy = map[string]struct{}{
	"yes":     {},
	"y":       {},
	"true":    {},
	"t":       {},
	"1":       {},
	"include": {},
	"show":    {},
}

// Placeholder is one parsed ((name)) or ((name??text)) occurrence.
type Placeholder struct {
	body string
}

// ParsePlaceholder strips the enclosing brackets from a regex match.
func ParsePlaceholder(match string) Placeholder {
	return Placeholder{body: strings.TrimSuffix(strings.TrimPrefix(match, "(("), "))")}
}

// Name is everything before the first "??".
func (p Placeholder) Name() string {
	name, _, _ := strings.Cut(p.body, "??")
	return name
}

// IsConditional reports whether the body contains "??".
func (p Placeholder) IsConditional() bool {
	return strings.Contains(p.body, "??")
}

// ConditionalText is everything after the first "??".
func (p Placeholder) ConditionalText() string {
	_, text, _ := strings.Cut(p.body, "??")
	return text
}

// ConditionalBody resolves the conditional against a value: the text when
// the value reads as true, otherwise nothing.
func (p Placeholder) ConditionalBody(value any) string {
	if _, ok := truthy[strings.ToLower(fmt.Sprint(value))]; ok {
		return p.ConditionalText()
	}
	return ""
}
