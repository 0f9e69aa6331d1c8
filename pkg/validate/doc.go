// Package validate checks and normalises the three recipient identifier
// kinds: phone numbers, email addresses and UK postcodes.
//
// Single-recipient paths raise typed errors whose messages are shown to the
// user verbatim (InvalidPhoneError, InvalidEmailError). Bulk CSV validation
// catches those errors per cell instead of aborting the file.
//
// Phone parsing and classification is delegated to
// github.com/nyaruka/phonenumbers. The US is the default region, and
// international dispatch is deliberately narrowed to country code 1 (the
// North American Numbering Plan); GetInternationalPhoneInfo resolves NANP
// territory area codes to synthetic billing prefixes.
package validate
