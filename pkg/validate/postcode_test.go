package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/validate"
)

func TestIsUKPostcode(t *testing.T) {
	valid := []string{
		"SW1A 1AA",
		"sw1a1aa",
		"SO14 6WB",
		"so14 6wb",
		"SO146WB",
		"E1 8QS",
		"N5 1QA",
		"GIR 0AA",
		"BFPO 1234",
		"BFPO C/O 1",
	}
	for _, p := range valid {
		assert.True(t, validate.IsUKPostcode(p), p)
	}

	invalid := []string{
		"",
		"not a postcode",
		"SW1A 1A",
		"90210",
		"SW!A 1AA",
		"SW1A 1AC", // C is not a valid final letter
	}
	for _, p := range invalid {
		assert.False(t, validate.IsUKPostcode(p), p)
	}
}

func TestFormatPostcode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"sw1a1aa", "SW1A 1AA"},
		{"sw1a 1aa", "SW1A 1AA"},
		{"SW1A   1AA", "SW1A 1AA"},
		{"e18qs", "E1 8QS"},
		{"gir0aa", "GIR 0AA"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := validate.FormatPostcode(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	t.Run("invalid postcode", func(t *testing.T) {
		_, ok := validate.FormatPostcode("not a postcode")
		assert.False(t, ok)
	})

	// Formatting is stable: formatting an already formatted postcode gives
	// the same result.
	t.Run("round trip", func(t *testing.T) {
		once, ok := validate.FormatPostcode("so146wb")
		assert.True(t, ok)
		twice, ok := validate.FormatPostcode(once)
		assert.True(t, ok)
		assert.Equal(t, once, twice)
	})
}
