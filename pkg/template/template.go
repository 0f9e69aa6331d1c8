package template

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/notifykit/pkg/field"
	"github.com/dmitrymomot/notifykit/pkg/insensitive"
)

// base carries the state shared by every channel: the stored record, the
// personalisation values, and the list of record fields placeholders are
// read from.
type base struct {
	record  Record
	values  *insensitive.Dict[any]
	sources []string
}

func newBase(r Record, want Type, sources ...string) (base, error) {
	if r.Type != want {
		return base{}, fmt.Errorf("%w: got %q, want %q", ErrWrongTemplateType, r.Type, want)
	}
	return base{
		record:  r,
		values:  insensitive.New[any](),
		sources: sources,
	}, nil
}

// Record returns the stored record the template was built from.
func (b *base) Record() Record { return b.record }

// SetValues replaces the personalisation values. Keys are matched to
// placeholders case- and separator-insensitively; keys that match no
// placeholder are kept so AdditionalData can report them.
func (b *base) SetValues(values map[string]any) {
	b.values = insensitive.New[any]()
	for k, v := range values {
		b.values.Set(k, v)
	}
}

// Values returns the current personalisation values keyed by their original
// spelling.
func (b *base) Values() map[string]any { return b.values.AsMap() }

// Placeholders returns the unique placeholder names across the template's
// content, subject and contact block, in order of first appearance.
func (b *base) Placeholders() []string {
	var names []string
	seen := make(map[string]struct{})
	for _, source := range b.sources {
		for _, name := range field.New(source, nil).Placeholders() {
			key := insensitive.Key(name)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			names = append(names, name)
		}
	}
	return names
}

// MissingData returns placeholders that have no non-nil value.
func (b *base) MissingData() []string {
	var missing []string
	for _, name := range b.Placeholders() {
		if v, ok := b.values.Get(name); !ok || v == nil {
			missing = append(missing, name)
		}
	}
	return missing
}

// AdditionalData returns value keys that match no placeholder, in insertion
// order and original spelling.
func (b *base) AdditionalData() []string {
	known := make(map[string]struct{})
	for _, name := range b.Placeholders() {
		known[insensitive.Key(name)] = struct{}{}
	}
	var extra []string
	for _, key := range b.values.Keys() {
		if _, ok := known[insensitive.Key(key)]; !ok {
			extra = append(extra, key)
		}
	}
	return extra
}

// Placeholderser is anything that can report its placeholder names. Every
// template in this package satisfies it.
type Placeholderser interface {
	Placeholders() []string
}

// Diff is the change-set between two templates' placeholders.
type Diff struct {
	Added   []string
	Removed []string
}

// DiffFrom reports which placeholders this template adds over, and which it
// drops from, an earlier version.
func (b *base) DiffFrom(previous Placeholderser) Diff {
	mine := b.Placeholders()
	theirs := previous.Placeholders()
	return Diff{
		Added:   subtract(mine, theirs),
		Removed: subtract(theirs, mine),
	}
}

func subtract(from, remove []string) []string {
	gone := make(map[string]struct{}, len(remove))
	for _, name := range remove {
		gone[insensitive.Key(name)] = struct{}{}
	}
	var out []string
	for _, name := range from {
		if _, ok := gone[insensitive.Key(name)]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// render draws a templ component to a string.
func render(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func mustRender(c templ.Component) string {
	s, err := render(context.Background(), c)
	if err != nil {
		// Components in this package only write to an in-memory builder.
		panic(err)
	}
	return s
}
