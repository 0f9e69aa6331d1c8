package insensitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/insensitive"
)

func TestKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercases",
			input:    "Phone Number",
			expected: "phonenumber",
		},
		{
			name:     "strips underscores and hyphens",
			input:    "phone_number-1",
			expected: "phonenumber1",
		},
		{
			name:     "strips all spacing",
			input:    "  first   name  ",
			expected: "firstname",
		},
		{
			name:     "applies unicode NFC",
			input:    "café", // e + combining acute
			expected: "café",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, insensitive.Key(tt.input))
		})
	}
}

func TestDictSetGet(t *testing.T) {
	d := insensitive.New[string]()
	d.Set("Phone Number", "2028675309")

	for _, alias := range []string{"phone number", "PHONE_NUMBER", "phone-number", "phonenumber"} {
		v, ok := d.Get(alias)
		assert.True(t, ok, alias)
		assert.Equal(t, "2028675309", v)
	}

	_, ok := d.Get("email address")
	assert.False(t, ok)
}

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := insensitive.New[int]()
	d.Set("c", 1)
	d.Set("a", 2)
	d.Set("b", 3)
	d.Set("A", 4) // overwrite keeps position

	assert.Equal(t, []string{"c", "a", "b"}, d.Keys())

	v, _ := d.Get("a")
	assert.Equal(t, 4, v)
}

func TestDictDelete(t *testing.T) {
	d := insensitive.New[int]()
	d.Set("first name", 1)
	d.Set("last name", 2)

	d.Delete("FIRST_NAME")

	assert.Equal(t, []string{"last name"}, d.Keys())
	assert.Equal(t, 1, d.Len())

	// deleting a missing key is a no-op
	d.Delete("nope")
	assert.Equal(t, 1, d.Len())
}

func TestFromKeys(t *testing.T) {
	d := insensitive.FromKeys([]string{"Phone Number", "name", "phone_number"})

	assert.Equal(t, []string{"Phone Number", "name"}, d.Keys())
	assert.True(t, d.Has("phonenumber"))
	assert.True(t, d.Has("NAME"))
}

func TestDictKeepsFirstSeenSpelling(t *testing.T) {
	d := insensitive.New[int]()
	d.Set("First Name", 1)
	d.Set("first_name", 2) // overwrite keeps the original spelling

	assert.Equal(t, []string{"First Name"}, d.Keys())
	assert.Equal(t, map[string]int{"First Name": 2}, d.AsMap())

	var keys []string
	for k := range d.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"First Name"}, keys)
}

func TestDictAll(t *testing.T) {
	d := insensitive.New[int]()
	d.Set("one", 1)
	d.Set("two", 2)

	var keys []string
	var vals []int
	for k, v := range d.All() {
		keys = append(keys, k)
		vals = append(vals, v)
	}

	assert.Equal(t, []string{"one", "two"}, keys)
	assert.Equal(t, []int{1, 2}, vals)
}
