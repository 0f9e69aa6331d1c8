package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/validate"
)

func TestValidateEmailAddress(t *testing.T) {
	valid := []string{
		"email@domain.com",
		"email@domain.COM",
		"firstname.lastname@domain.com",
		"firstname.o'lastname@domain.com",
		"email@subdomain.domain.com",
		"firstname+lastname@domain.com",
		"1234567890@domain.com",
		"email@domain-one.com",
		"_______@domain.com",
		"email@domain.name",
		"email@domain.superlongtld",
		"email@domain.co.jp",
		"info@german-financial-services.vermögensberatung",
		"info@german-financial-services.reallylongarbitrarytldthatiswaytoohugejustincase",
		"email@double--hyphen.com",
	}

	for _, address := range valid {
		t.Run(address, func(t *testing.T) {
			got, err := validate.ValidateEmailAddress(address)
			require.NoError(t, err)
			assert.Equal(t, address, got)
		})
	}
}

func TestValidateEmailAddressInvalid(t *testing.T) {
	invalid := []string{
		"",
		"email@123.123.123.123",
		"email@[123.123.123.123]",
		"plainaddress",
		"@no-local-part.com",
		"Outlook Contact <outlook-contact@domain.com>",
		"no-at.domain.com",
		"no-tld@domain",
		";beginning-semicolon@domain.co.uk",
		"middle-semicolon@domain.co;uk",
		"trailing-semicolon@domain.com;",
		`"email+leading-quotes@domain.com`,
		`email+middle"-quotes@domain.com`,
		`"quoted-local-part"@domain.com`,
		`"quoted@domain.com"`,
		"lots-of-dots@domain..gov..uk",
		"two-dots..in-local@domain.com",
		"multiple@domains@domain.com",
		"spaces in local@domain.com",
		"spaces-in-domain@dom ain.com",
		"underscores-in-domain@dom_ain.com",
		"pipe-in-domain@example.com|gov.uk",
		"comma,in-local@gov.uk",
		"comma-in-domain@domain,gov.uk",
		"pound-sign-in-local£@domain.com",
		"local-with-’-apostrophe@domain.com",
		"email-too-long-" + strings.Repeat("a", 320) + "@example.com",
	}

	for _, address := range invalid {
		t.Run(address, func(t *testing.T) {
			_, err := validate.ValidateEmailAddress(address)
			assert.Error(t, err)
			assert.EqualError(t, err, "Not a valid email address")
		})
	}
}

func TestValidateEmailAddressStripsWhitespace(t *testing.T) {
	got, err := validate.ValidateEmailAddress(" ​email@domain.com\uFEFF ")
	require.NoError(t, err)
	assert.Equal(t, "email@domain.com", got)
}
