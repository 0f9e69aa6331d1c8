package template

import (
	"fmt"

	"github.com/google/uuid"
)

// Type identifies the channel a template renders for.
type Type string

const (
	TypeSMS       Type = "sms"
	TypeEmail     Type = "email"
	TypeLetter    Type = "letter"
	TypeBroadcast Type = "broadcast"
)

func (t Type) valid() bool {
	switch t {
	case TypeSMS, TypeEmail, TypeLetter, TypeBroadcast:
		return true
	}
	return false
}

// Record is a stored template as fetched from whatever store holds it. The
// rendering types in this package wrap a Record together with
// personalisation values.
type Record struct {
	ID        uuid.UUID
	Name      string
	Type      Type
	Content   string
	Subject   string
	CreatedBy string

	// Letter extras.
	LogoFileName string
	ContactBlock string
	Postage      string
}

// RecordFromMap builds a Record from a decoded template document. Content
// and template_type are required; id must parse as a UUID when present.
func RecordFromMap(m map[string]any) (Record, error) {
	content, ok := m["content"].(string)
	if !ok {
		return Record{}, ErrMissingContent
	}

	typ, _ := m["template_type"].(string)
	r := Record{
		Type:    Type(typ),
		Content: content,
	}
	if !r.Type.valid() {
		return Record{}, fmt.Errorf("%w: %q", ErrUnknownTemplateType, typ)
	}

	if raw, ok := m["id"].(string); ok && raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Record{}, fmt.Errorf("template: parse id: %w", err)
		}
		r.ID = id
	}

	r.Name, _ = m["name"].(string)
	r.Subject, _ = m["subject"].(string)
	r.CreatedBy, _ = m["created_by"].(string)
	r.LogoFileName, _ = m["logo_file_name"].(string)
	r.ContactBlock, _ = m["contact_block"].(string)
	r.Postage, _ = m["postage"].(string)
	return r, nil
}
