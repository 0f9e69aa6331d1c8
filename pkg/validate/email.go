package validate

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"

	"github.com/dmitrymomot/notifykit/pkg/charset"
)

const maxEmailLength = 320

var (
	emailLocalPartRe = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~\\-]+$")
	hostnameLabelRe  = regexp.MustCompile(`^(xn|[a-z0-9]+)(-?-[a-z0-9]+)*$`)
	tldRe            = regexp.MustCompile(`^([a-z]{2,63}|xn--([a-z0-9]+-)*[a-z0-9]+)$`)
)

// ValidateEmailAddress checks address and returns it trimmed of whitespace.
// The hostname is IDNA-encoded before label checks so internationalised
// domains are accepted.
func ValidateEmailAddress(address string) (string, error) {
	address = charset.StripAndRemoveObscureWhitespace(address)

	if address == "" || len(address) > maxEmailLength {
		return "", InvalidEmailError{}
	}
	if strings.Contains(address, "..") {
		return "", InvalidEmailError{}
	}

	parts := strings.Split(address, "@")
	if len(parts) != 2 {
		return "", InvalidEmailError{}
	}
	localPart, hostname := parts[0], parts[1]

	if localPart == "" || !emailLocalPartRe.MatchString(localPart) {
		return "", InvalidEmailError{}
	}
	if localPart[0] == '.' || localPart[len(localPart)-1] == '.' {
		return "", InvalidEmailError{}
	}

	ascii, err := idna.Lookup.ToASCII(hostname)
	if err != nil {
		return "", InvalidEmailError{}
	}

	labels := strings.Split(strings.ToLower(ascii), ".")
	if len(labels) < 2 {
		return "", InvalidEmailError{}
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > 63 || !hostnameLabelRe.MatchString(label) {
			return "", InvalidEmailError{}
		}
	}
	if !tldRe.MatchString(labels[len(labels)-1]) {
		return "", InvalidEmailError{}
	}

	return address, nil
}
