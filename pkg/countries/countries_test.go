package countries_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/countries"
)

func TestFindCountry(t *testing.T) {
	tests := []struct {
		name      string
		search    string
		canonical string
		postage   countries.PostageZone
	}{
		{
			name:      "exact canonical name",
			search:    "Fiji",
			canonical: "Fiji",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "case insensitive",
			search:    "fRaNcE",
			canonical: "France",
			postage:   countries.PostageEurope,
		},
		{
			name:      "synonym",
			search:    "America",
			canonical: "United States",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "ended country maps to successor",
			search:    "Zaire",
			canonical: "Congo (Democratic Republic)",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "uk island collapses to the UK",
			search:    "Guernsey",
			canonical: "United Kingdom",
			postage:   countries.PostageUK,
		},
		{
			name:      "welsh name",
			search:    "Yr Almaen",
			canonical: "Germany",
			postage:   countries.PostageEurope,
		},
		{
			name:      "welsh article optional",
			search:    "Almaen",
			canonical: "Germany",
			postage:   countries.PostageEurope,
		},
		{
			name:      "leading the is optional",
			search:    "Gambia",
			canonical: "The Gambia",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "ampersand reads as and",
			search:    "Trinidad & Tobago",
			canonical: "Trinidad and Tobago",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "accents folded",
			search:    "Reunion",
			canonical: "Réunion",
			postage:   countries.PostageRestOfWorld,
		},
		{
			name:      "punctuation ignored",
			search:    "U.S.A.",
			canonical: "United States",
			postage:   countries.PostageRestOfWorld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := countries.FindCountry(tt.search)
			require.NoError(t, err)
			assert.Equal(t, tt.canonical, c.CanonicalName)
			assert.Equal(t, tt.postage, c.Postage)
		})
	}
}

func TestFindCountryNotFound(t *testing.T) {
	notCountries := []string{
		"",
		"Narnia",
		"123 Fake Street",
		"SW1A 1AA", // postcodes contain digits and short-circuit
	}

	for _, search := range notCountries {
		t.Run(search, func(t *testing.T) {
			_, err := countries.FindCountry(search)
			require.Error(t, err)

			var notFound countries.NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, search, notFound.Search)
		})
	}
}

func TestIsUK(t *testing.T) {
	uk, err := countries.FindCountry("United Kingdom")
	require.NoError(t, err)
	assert.True(t, uk.IsUK())

	fr, err := countries.FindCountry("France")
	require.NoError(t, err)
	assert.False(t, fr.IsUK())
}

func TestPostageZoneDescription(t *testing.T) {
	assert.Equal(t, "first class", countries.PostageFirst.Description())
	assert.Equal(t, "second class", countries.PostageSecond.Description())
	assert.Equal(t, "international (Europe)", countries.PostageEurope.Description())
	assert.Equal(t, "international (rest of world)", countries.PostageRestOfWorld.Description())
}
