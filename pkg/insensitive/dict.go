package insensitive

import (
	"iter"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/unicode/norm"
)

// keyCache memoises Key because the hot path (per-cell, per-row CSV
// validation) normalises the same handful of column names over and over.
var keyCache, _ = lru.New[string, string](32)

var keyStripper = strings.NewReplacer(" ", "", "_", "", "-", "")

// Key normalises a lookup key: Unicode NFC, lowercase, with spaces,
// underscores and hyphens removed. "Phone Number", "phone_number" and
// "phonenumber" all normalise to the same key.
func Key(k string) string {
	if cached, ok := keyCache.Get(k); ok {
		return cached
	}

	normalised := keyStripper.Replace(strings.ToLower(norm.NFC.String(k)))
	keyCache.Add(k, normalised)
	return normalised
}

// Dict is an ordered mapping with case-, whitespace-, underscore- and
// hyphen-insensitive keys. Insertion order is preserved; setting an existing
// key overwrites its value without changing its position or the spelling
// it was first inserted under. Keys and All report that first-seen
// spelling, so "First Name" comes back out as the user typed it.
type Dict[V any] struct {
	order []string
	names map[string]string
	items map[string]V
}

// New returns an empty Dict.
func New[V any]() *Dict[V] {
	return &Dict[V]{
		names: make(map[string]string),
		items: make(map[string]V),
	}
}

// FromKeys builds a set-like Dict from keys, preserving first-seen order.
func FromKeys(keys []string) *Dict[struct{}] {
	d := New[struct{}]()
	for _, k := range keys {
		d.Set(k, struct{}{})
	}
	return d
}

// Set stores value under the normalised form of key.
func (d *Dict[V]) Set(key string, value V) {
	k := Key(key)
	if _, exists := d.items[k]; !exists {
		d.order = append(d.order, k)
		d.names[k] = key
	}
	d.items[k] = value
}

// Get returns the value stored under the normalised form of key.
func (d *Dict[V]) Get(key string) (V, bool) {
	v, ok := d.items[Key(key)]
	return v, ok
}

// Has reports whether the normalised form of key is present.
func (d *Dict[V]) Has(key string) bool {
	_, ok := d.items[Key(key)]
	return ok
}

// Delete removes the normalised form of key, if present.
func (d *Dict[V]) Delete(key string) {
	k := Key(key)
	if _, ok := d.items[k]; !ok {
		return
	}
	delete(d.items, k)
	delete(d.names, k)
	for i, existing := range d.order {
		if existing == k {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
}

// Keys returns the first-seen key spellings in insertion order.
func (d *Dict[V]) Keys() []string {
	keys := make([]string, len(d.order))
	for i, k := range d.order {
		keys[i] = d.names[k]
	}
	return keys
}

// Len returns the number of entries.
func (d *Dict[V]) Len() int {
	return len(d.order)
}

// All iterates entries in insertion order, yielding first-seen key
// spellings.
func (d *Dict[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, k := range d.order {
			if !yield(d.names[k], d.items[k]) {
				return
			}
		}
	}
}

// AsMap returns a plain map keyed by the first-seen key spellings.
func (d *Dict[V]) AsMap() map[string]V {
	m := make(map[string]V, len(d.items))
	for k, v := range d.items {
		m[d.names[k]] = v
	}
	return m
}
