// Package countries canonicalises destination country names and classifies
// them into postage zones.
//
// The mapping is embedded as YAML and built once at load. It merges canonical
// names, hand-picked synonyms ("America" → United States), Welsh names, UK
// crown dependencies and islands (which collapse to the United Kingdom), and
// names of countries that no longer exist mapped to their successors.
package countries
