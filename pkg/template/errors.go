package template

import "errors"

var (
	// ErrWrongTemplateType is returned when a record's type does not match
	// the constructor it was given to.
	ErrWrongTemplateType = errors.New("template: wrong template type")
	// ErrUnknownTemplateType is returned for a type outside sms, email,
	// letter and broadcast.
	ErrUnknownTemplateType = errors.New("template: unknown template type")
	// ErrMissingContent is returned when a record has no content key.
	ErrMissingContent = errors.New("template: missing content")
	// ErrMissingImageURL is returned when a letter image template is built
	// without an image URL.
	ErrMissingImageURL = errors.New("template: missing image URL")
	// ErrMissingPageCount is returned when a letter image template is built
	// without a page count.
	ErrMissingPageCount = errors.New("template: missing page count")
	// ErrMissingEventBody is returned when a broadcast event carries no
	// transmitted content body.
	ErrMissingEventBody = errors.New("template: missing event body")
)
