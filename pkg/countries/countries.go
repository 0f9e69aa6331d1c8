package countries

import (
	_ "embed"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed data/countries.yaml
var rawData []byte

// Country is a canonical destination with its postage zone.
type Country struct {
	CanonicalName string
	Postage       PostageZone
}

type dataset struct {
	Zones     map[string][]string `yaml:"zones"`
	Synonyms  map[string]string   `yaml:"synonyms"`
	Welsh     map[string]string   `yaml:"welsh"`
	UKIslands []string            `yaml:"uk_islands"`
}

// lookup maps a normalised alias to its country. Built once at load; the
// process never mutates it afterwards.
var lookup = buildLookup()

func buildLookup() map[string]Country {
	var data dataset
	if err := yaml.Unmarshal(rawData, &data); err != nil {
		panic(fmt.Sprintf("countries: malformed embedded dataset: %v", err))
	}

	table := make(map[string]Country)
	byCanonical := make(map[string]Country)

	for zone, names := range data.Zones {
		for _, name := range names {
			c := Country{CanonicalName: name, Postage: PostageZone(zone)}
			table[normaliseKey(name)] = c
			byCanonical[name] = c
		}
	}

	mustCanonical := func(name string) Country {
		c, ok := byCanonical[name]
		if !ok {
			panic(fmt.Sprintf("countries: synonym target %q is not a canonical name", name))
		}
		return c
	}

	for alias, canonical := range data.Synonyms {
		table[normaliseKey(alias)] = mustCanonical(canonical)
	}
	for alias, canonical := range data.Welsh {
		table[normaliseKey(alias)] = mustCanonical(canonical)
	}
	uk := mustCanonical("United Kingdom")
	for _, island := range data.UKIslands {
		table[normaliseKey(island)] = uk
	}

	return table
}

var keyCleaner = strings.NewReplacer(
	"&", "and",
	"+", "and",
	" ", "",
	"_", "",
	"-", "",
	"'", "",
	"’", "",
	",", "",
	".", "",
	"(", "",
	")", "",
)

var asciiFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normaliseKey(name string) string {
	folded, _, err := transform.String(asciiFolder, name)
	if err != nil {
		folded = name
	}
	return keyCleaner.Replace(strings.ToLower(folded))
}

// FindCountry resolves a user-supplied country name to its canonical form.
// Lookup is insensitive to case, punctuation, accents and a leading
// "the"/"yr"/"y" article. Strings containing digits short-circuit to not
// found: address lines ending in a postcode are looked up constantly and
// never match.
func FindCountry(search string) (Country, error) {
	if strings.ContainsFunc(search, unicode.IsDigit) {
		return Country{}, NotFoundError{Search: search}
	}

	key := normaliseKey(search)
	if key == "" {
		return Country{}, NotFoundError{Search: search}
	}

	for _, candidate := range []string{key, "the" + key, "yr" + key, "y" + key} {
		if c, ok := lookup[candidate]; ok {
			return c, nil
		}
	}
	return Country{}, NotFoundError{Search: search}
}

// IsUK reports whether the country is the United Kingdom.
func (c Country) IsUK() bool {
	return c.Postage == PostageUK
}
