package recipients

import (
	"strings"

	"github.com/dmitrymomot/notifykit/pkg/insensitive"
	"github.com/dmitrymomot/notifykit/pkg/postal"
	"github.com/dmitrymomot/notifykit/pkg/template"
)

// Row is one validated recipient with its personalisation.
type Row struct {
	// Index is the zero-based position among the data rows.
	Index int

	cells *insensitive.Dict[*Cell]
	// extra holds cells beyond the header row; they have no column to
	// belong to.
	extra []string

	csv *CSV

	messageTooLong bool
	messageEmpty   bool
	badAddress     bool
}

// Get returns the cell for a column, matching the key insensitively.
func (r *Row) Get(column string) *Cell {
	cell, _ := r.cells.Get(column)
	return cell
}

// Recipient returns the row's destination: the phone number or email
// address, or the whole address on one line for letters.
func (r *Row) Recipient() string {
	if r.csv.kind == template.TypeLetter {
		return r.address().AsSingleLine()
	}
	for _, column := range r.csv.recipientColumns {
		if cell := r.Get(column); cell != nil && cell.String() != "" {
			return cell.String()
		}
	}
	return ""
}

func (r *Row) address() postal.Address {
	values := make(map[string]any)
	for _, column := range postal.AddressLineKeys {
		if cell := r.Get(column); cell != nil && cell.Data != nil {
			values[column] = cell.String()
		}
	}
	for _, column := range postal.LastLineKeys {
		if cell := r.Get(column); cell != nil && cell.Data != nil {
			values[column] = cell.String()
		}
	}
	return postal.FromPersonalisation(values, r.csv.allowInternationalLetters)
}

// Personalisation returns the placeholder-column values only.
func (r *Row) Personalisation() map[string]any {
	values := make(map[string]any)
	for column, cell := range r.cells.All() {
		if !r.csv.isPlaceholderColumn(column) || r.csv.isRecipientColumn(column) {
			continue
		}
		values[column] = cell.Data
	}
	if r.csv.kind == template.TypeLetter {
		for k, v := range r.address().AsPersonalisation() {
			values[k] = v
		}
	}
	return values
}

// RecipientAndPersonalisation returns recipient and placeholder values
// together.
func (r *Row) RecipientAndPersonalisation() map[string]any {
	values := r.Personalisation()
	for _, column := range r.csv.recipientColumns {
		if cell := r.Get(column); cell != nil {
			values[column] = cell.Data
		}
	}
	return values
}

// HasError reports whether anything about the row failed validation.
func (r *Row) HasError() bool {
	if r.messageTooLong || r.messageEmpty || r.badAddress {
		return true
	}
	for _, cell := range r.allCells() {
		if cell.HasError() {
			return true
		}
	}
	return false
}

// HasBadRecipient reports whether the destination itself is unusable.
func (r *Row) HasBadRecipient() bool {
	if r.csv.kind == template.TypeLetter {
		return r.badAddress
	}
	for _, column := range r.csv.recipientColumns {
		if cell := r.Get(column); cell.HasError() {
			return true
		}
	}
	return false
}

// HasBadPostalAddress reports whether a letter row's address fails the
// address invariants.
func (r *Row) HasBadPostalAddress() bool { return r.badAddress }

// HasMissingData reports whether any placeholder column is empty.
func (r *Row) HasMissingData() bool {
	for column, cell := range r.cells.All() {
		if !r.csv.isRecipientColumn(column) && cell.IsMissing() {
			return true
		}
	}
	return false
}

// MessageTooLong reports whether the message rendered from this row
// exceeds the channel limit.
func (r *Row) MessageTooLong() bool { return r.messageTooLong }

// MessageEmpty reports whether the message rendered from this row is
// blank.
func (r *Row) MessageEmpty() bool { return r.messageEmpty }

// HasErrorSpanningMultipleCells reports errors that belong to the row as a
// whole rather than one column, like a bad postal address or an over-long
// message.
func (r *Row) HasErrorSpanningMultipleCells() bool {
	return r.badAddress || r.messageTooLong || r.messageEmpty
}

func (r *Row) allCells() []*Cell {
	cells := make([]*Cell, 0, r.cells.Len())
	for _, cell := range r.cells.All() {
		cells = append(cells, cell)
	}
	return cells
}

// normalisedRecipient is the form guestlist comparison runs on: emails
// lowercased, phone numbers reduced to digits with a leading country code 1
// dropped.
func (r *Row) normalisedRecipient() string {
	return normaliseRecipient(r.Recipient(), r.csv.kind)
}

func normaliseRecipient(recipient string, kind template.Type) string {
	switch kind {
	case template.TypeEmail:
		return strings.ToLower(strings.TrimSpace(recipient))
	case template.TypeSMS, template.TypeBroadcast:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, recipient)
		if len(digits) == 11 && strings.HasPrefix(digits, "1") {
			digits = digits[1:]
		}
		return digits
	default:
		return recipient
	}
}
