package validate

// InvalidPhoneError carries the user-facing reason a phone number was
// rejected. The messages are shown verbatim in per-cell error lists, so they
// read as sentences rather than Go-style errors.
type InvalidPhoneError string

func (e InvalidPhoneError) Error() string { return string(e) }

const (
	ErrPhoneCountryPrefix = InvalidPhoneError("Not a valid country prefix")
	ErrPhoneTooShort      = InvalidPhoneError("Not enough digits")
	ErrPhoneTooLong       = InvalidPhoneError("Too many digits")
	ErrPhoneUnusedRange   = InvalidPhoneError("Phone number range is not in use")
	ErrPhoneNotPossible   = InvalidPhoneError("Phone number is not possible")
	ErrPhoneCountryCode   = InvalidPhoneError("Invalid country code")
	ErrPhoneNotUS         = InvalidPhoneError("Not a US number")
)

// InvalidEmailError is returned for any malformed email address.
type InvalidEmailError struct{}

func (InvalidEmailError) Error() string { return "Not a valid email address" }

// InvalidPostcodeError is returned when a string is not a real UK postcode.
type InvalidPostcodeError struct{}

func (InvalidPostcodeError) Error() string { return "Not a valid postcode" }
