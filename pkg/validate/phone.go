package validate

import (
	"strings"

	"github.com/nyaruka/phonenumbers"

	"github.com/dmitrymomot/notifykit/pkg/charset"
)

const defaultRegion = "US"

// nanpAreaCodes maps NANP area codes that belong to countries other than the
// US (and Canada) to their territory. Billing rates differ per territory, so
// the synthetic prefix returned by GetInternationalPhoneInfo is country code
// plus area code. Kept in sync by hand with the international billing rates
// data.
var nanpAreaCodes = map[string]string{
	"242": "Bahamas",
	"246": "Barbados",
	"264": "Anguilla",
	"268": "Antigua and Barbuda",
	"284": "British Virgin Islands",
	"340": "US Virgin Islands",
	"345": "Cayman Islands",
	"441": "Bermuda",
	"473": "Grenada",
	"649": "Turks and Caicos Islands",
	"658": "Jamaica",
	"664": "Montserrat",
	"670": "Northern Mariana Islands",
	"671": "Guam",
	"684": "American Samoa",
	"721": "Sint Maarten",
	"758": "Saint Lucia",
	"767": "Dominica",
	"784": "Saint Vincent and the Grenadines",
	"787": "Puerto Rico",
	"809": "Dominican Republic",
	"829": "Dominican Republic",
	"849": "Dominican Republic",
	"868": "Trinidad and Tobago",
	"869": "Saint Kitts and Nevis",
	"876": "Jamaica",
	"939": "Puerto Rico",
}

// PhoneInfo describes where a number terminates for billing purposes.
type PhoneInfo struct {
	International bool
	CountryPrefix string
	BillableUnits int
}

// ValidatePhoneNumber checks number and returns it in E.164 format.
//
// With international false, the number must be a valid US number. With
// international true, numbers that do not parse as US are accepted when they
// carry country code 1 and a plausible digit count; dispatch is currently
// narrowed to the North American Numbering Plan.
func ValidatePhoneNumber(number string, international bool) (string, error) {
	number = charset.StripAndRemoveObscureWhitespace(number)

	parsed, err := phonenumbers.Parse(number, defaultRegion)
	if err != nil {
		if international {
			return validateInternational(number)
		}
		return "", InvalidPhoneError(err.Error())
	}

	if international && !isUSNumber(parsed) {
		return validateInternational(number)
	}

	if parsed.GetCountryCode() != 1 {
		return "", ErrPhoneNotUS
	}

	switch phonenumbers.IsPossibleNumberWithReason(parsed) {
	case phonenumbers.IS_POSSIBLE, phonenumbers.IS_POSSIBLE_LOCAL_ONLY:
	case phonenumbers.TOO_SHORT:
		return "", ErrPhoneTooShort
	case phonenumbers.TOO_LONG:
		return "", ErrPhoneTooLong
	case phonenumbers.INVALID_COUNTRY_CODE:
		return "", ErrPhoneCountryPrefix
	default:
		return "", ErrPhoneNotPossible
	}

	if !phonenumbers.IsValidNumber(parsed) {
		return "", ErrPhoneUnusedRange
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func validateInternational(number string) (string, error) {
	normalised := normaliseForInternational(number)
	if !strings.HasPrefix(normalised, "+") {
		normalised = "+" + normalised
	}

	parsed, err := phonenumbers.Parse(normalised, "")
	if err != nil {
		return "", InvalidPhoneError(err.Error())
	}

	if parsed.GetCountryCode() != 1 {
		return "", ErrPhoneCountryCode
	}

	digits := len(strings.TrimPrefix(phonenumbers.Format(parsed, phonenumbers.E164), "+"))
	if digits < 8 {
		return "", ErrPhoneTooShort
	}
	if digits > 15 {
		return "", ErrPhoneTooLong
	}

	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

func normaliseForInternational(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' || r == '+' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isUSNumber(parsed *phonenumbers.PhoneNumber) bool {
	return parsed.GetCountryCode() == 1 &&
		phonenumbers.GetRegionCodeForNumber(parsed) == defaultRegion
}

// GetInternationalPhoneInfo classifies a validated number for billing.
// Every destination currently bills at one unit; the country prefix resolves
// NANP territories to a synthetic country-code-plus-area-code prefix.
func GetInternationalPhoneInfo(number string) (PhoneInfo, error) {
	formatted, err := ValidatePhoneNumber(number, true)
	if err != nil {
		return PhoneInfo{}, err
	}

	parsed, err := phonenumbers.Parse(formatted, "")
	if err != nil {
		return PhoneInfo{}, InvalidPhoneError(err.Error())
	}

	return PhoneInfo{
		International: !isUSNumber(parsed),
		CountryPrefix: countryPrefix(formatted),
		BillableUnits: 1,
	}, nil
}

func countryPrefix(e164 string) string {
	digits := strings.TrimPrefix(e164, "+")
	if len(digits) >= 4 {
		if _, ok := nanpAreaCodes[digits[1:4]]; ok {
			return digits[:4]
		}
	}
	return digits[:1]
}

// FormatPhoneNumberHumanReadable renders domestic numbers in national format
// and anything else in international format.
func FormatPhoneNumberHumanReadable(number string) (string, error) {
	formatted, err := ValidatePhoneNumber(number, true)
	if err != nil {
		return "", err
	}

	parsed, err := phonenumbers.Parse(formatted, "")
	if err != nil {
		return "", InvalidPhoneError(err.Error())
	}

	if isUSNumber(parsed) {
		return phonenumbers.Format(parsed, phonenumbers.NATIONAL), nil
	}
	return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL), nil
}
