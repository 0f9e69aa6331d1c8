package postal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/countries"
	"github.com/dmitrymomot/notifykit/pkg/postal"
)

func TestUKAddressFromPersonalisation(t *testing.T) {
	a := postal.FromPersonalisation(map[string]any{
		"address_line_1": "123 Fake St",
		"address_line_2": "City",
		"postcode":       "sw1a 1aa",
	}, false)

	assert.Equal(t, "SW1A 1AA", a.Postcode())
	assert.Equal(t, countries.PostageUK, a.Postage())
	assert.True(t, a.Valid())
	assert.Equal(t, "123 Fake St, City, SW1A 1AA", a.AsSingleLine())
}

func TestInsensitivePersonalisationKeys(t *testing.T) {
	a := postal.FromPersonalisation(map[string]any{
		"Address Line 1": "123 Fake St",
		"ADDRESS_LINE_2": "City",
		"Post Code":      "e1 8qs",
	}, false)

	assert.Equal(t, "E1 8QS", a.Postcode())
	assert.True(t, a.Valid())
}

func TestAddressLine7TakesPrecedence(t *testing.T) {
	a := postal.FromPersonalisation(map[string]any{
		"address_line_1": "123 Fake St",
		"address_line_2": "City",
		"address_line_7": "n5 1qa",
		"postcode":       "sw1a 1aa",
	}, false)

	assert.Equal(t, "N5 1QA", a.Postcode())
}

func TestInternationalGating(t *testing.T) {
	raw := "123 Main Street\nSuva\nFiji"

	t.Run("blocked when international letters are off", func(t *testing.T) {
		a := postal.NewAddress(raw, false)
		assert.True(t, a.International())
		assert.False(t, a.HasValidLastLine())
		assert.False(t, a.Valid())
	})

	t.Run("allowed when international letters are on", func(t *testing.T) {
		a := postal.NewAddress(raw, true)
		assert.True(t, a.Valid())
		assert.Equal(t, "Fiji", a.Country().CanonicalName)
		assert.Equal(t, countries.PostageRestOfWorld, a.Postage())
		assert.Equal(t, "", a.Postcode())
	})
}

func TestEuropeanPostage(t *testing.T) {
	a := postal.NewAddress("1 Rue Fictive\nParis\nFrance", true)
	assert.Equal(t, countries.PostageEurope, a.Postage())
}

func TestExplicitUKCountryLineIsDropped(t *testing.T) {
	a := postal.NewAddress("123 Fake St\nLondon\nSW1A 1AA\nUnited Kingdom", false)

	assert.False(t, a.International())
	assert.Equal(t, "SW1A 1AA", a.Postcode())
	assert.Equal(t, []string{"123 Fake St", "London", "SW1A 1AA"}, a.NormalisedLines())
	assert.True(t, a.Valid())
}

func TestCountryLineCanonicalised(t *testing.T) {
	a := postal.NewAddress("123 Main Street\nDouala\nRepublique du Cameroun", true)
	// unknown spellings fall back to UK handling
	assert.False(t, a.International())

	a = postal.NewAddress("123 Main Street\nZagreb\ncroatia", true)
	lines := a.NormalisedLines()
	assert.Equal(t, "Croatia", lines[len(lines)-1])
}

func TestLineCountPredicates(t *testing.T) {
	t.Run("too few lines", func(t *testing.T) {
		a := postal.NewAddress("123 Fake St\nSW1A 1AA", false)
		assert.False(t, a.HasEnoughLines())
		assert.False(t, a.Valid())
	})

	t.Run("too many lines", func(t *testing.T) {
		a := postal.NewAddress("1\n2\n3\n4\n5\n6\n7\nSW1A 1AA", false)
		assert.True(t, a.HasTooManyLines())
		assert.False(t, a.Valid())
	})

	t.Run("empty lines elided", func(t *testing.T) {
		a := postal.NewAddress("123 Fake St\n\n\nCity\n\nSW1A 1AA", false)
		assert.True(t, a.HasEnoughLines())
		assert.False(t, a.HasTooManyLines())
		assert.True(t, a.Valid())
	})
}

func TestInvalidCharacters(t *testing.T) {
	a := postal.NewAddress("@123 Fake St\nCity\nSW1A 1AA", false)
	assert.True(t, a.HasInvalidCharacters())
	assert.False(t, a.Valid())

	a = postal.NewAddress("123 Fake St\n(City)\nSW1A 1AA", false)
	assert.True(t, a.HasInvalidCharacters())
}

func TestInvalidPostcode(t *testing.T) {
	a := postal.NewAddress("123 Fake St\nCity\nnot a postcode", false)
	assert.False(t, a.HasValidPostcode())
	assert.False(t, a.HasValidLastLine())
	assert.False(t, a.Valid())
	assert.Equal(t, "", a.Postcode())
}

func TestAsPersonalisation(t *testing.T) {
	a := postal.NewAddress("123 Fake St\nCity\nsw1a1aa", false)
	p := a.AsPersonalisation()

	assert.Equal(t, "123 Fake St", p["address_line_1"])
	assert.Equal(t, "City", p["address_line_2"])
	assert.Equal(t, "", p["address_line_3"])
	assert.Equal(t, "SW1A 1AA", p["postcode"])
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, postal.NewAddress("", false).IsEmpty())
	assert.True(t, postal.NewAddress("\n  \n,,\n", false).IsEmpty())
	assert.False(t, postal.NewAddress("x", false).IsEmpty())
}
