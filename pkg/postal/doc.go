// Package postal parses and validates letter destination addresses.
//
// An Address can be built from a raw multiline string or from
// address_line_1..7/postcode personalisation keys. Validity is expressed as
// predicates rather than errors so that bulk CSV validation can report
// per-row problems without aborting; Valid combines them.
package postal
