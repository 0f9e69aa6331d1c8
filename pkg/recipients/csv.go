package recipients

import (
	"encoding/csv"
	"io"
	"strings"
	"sync"

	"github.com/dmitrymomot/notifykit/pkg/charset"
	"github.com/dmitrymomot/notifykit/pkg/insensitive"
	"github.com/dmitrymomot/notifykit/pkg/postal"
	"github.com/dmitrymomot/notifykit/pkg/template"
	"github.com/dmitrymomot/notifykit/pkg/validate"
)

// DefaultMaxRows caps how many data rows are validated. Beyond the cap rows
// are counted but not processed.
const DefaultMaxRows = 100_000

// Default bounds for the error and preview listings shown to the uploader.
const (
	DefaultMaxErrorsShown      = 20
	DefaultMaxInitialRowsShown = 10
)

// MessageTemplate is the contract the validator needs from a template: its
// channel, its placeholders, and the per-row message predicates.
type MessageTemplate interface {
	Record() template.Record
	Placeholders() []string
	SetValues(values map[string]any)
	IsMessageTooLong() bool
	IsMessageEmpty() bool
}

// CSV validates a recipient spreadsheet against a template. Rows
// materialise lazily on first access and are cached; a materialised CSV is
// safe for concurrent reads.
type CSV struct {
	raw  string
	tpl  MessageTemplate
	kind template.Type

	recipientColumns    []string
	recipientColumnKeys map[string]struct{}
	placeholderKeys     map[string]struct{}
	placeholderNames    []string

	allowInternationalSMS     bool
	allowInternationalLetters bool
	guestlist                 map[string]struct{}
	hasGuestlist              bool
	remainingMessages         int
	shouldValidate            bool
	maxErrorsShown            int
	maxInitialRowsShown       int
	maxRows                   int

	once                sync.Once
	headers             []string
	headerKeys          map[string]struct{}
	duplicateRecipients []string
	rows                []*Row
}

// Option configures a CSV.
type Option func(*CSV)

// WithAllowInternationalSMS accepts non-US phone numbers.
func WithAllowInternationalSMS() Option {
	return func(c *CSV) { c.allowInternationalSMS = true }
}

// WithAllowInternationalLetters accepts addresses ending in a known country
// instead of a UK postcode.
func WithAllowInternationalLetters() Option {
	return func(c *CSV) { c.allowInternationalLetters = true }
}

// WithGuestlist restricts recipients to an allow-list. Entries are
// normalised the same way row recipients are.
func WithGuestlist(entries []string) Option {
	return func(c *CSV) {
		c.hasGuestlist = true
		c.guestlist = make(map[string]struct{}, len(entries))
		for _, entry := range entries {
			c.guestlist[normaliseRecipient(entry, c.kind)] = struct{}{}
		}
	}
}

// WithRemainingMessages bounds how many messages the sender may still send.
func WithRemainingMessages(n int) Option {
	return func(c *CSV) { c.remainingMessages = n }
}

// WithoutValidation skips per-cell and per-row validation; rows still
// materialise with their data.
func WithoutValidation() Option {
	return func(c *CSV) { c.shouldValidate = false }
}

// WithMaxErrorsShown bounds InitialRowsWithErrors.
func WithMaxErrorsShown(n int) Option {
	return func(c *CSV) { c.maxErrorsShown = n }
}

// WithMaxInitialRowsShown bounds InitialRows.
func WithMaxInitialRowsShown(n int) Option {
	return func(c *CSV) { c.maxInitialRowsShown = n }
}

// WithMaxRows overrides the row cap.
func WithMaxRows(n int) Option {
	return func(c *CSV) { c.maxRows = n }
}

// New wraps raw spreadsheet data for validation against tpl.
func New(raw string, tpl MessageTemplate, opts ...Option) *CSV {
	kind := tpl.Record().Type
	c := &CSV{
		raw:                 raw,
		tpl:                 tpl,
		kind:                kind,
		remainingMessages:   -1,
		shouldValidate:      true,
		maxErrorsShown:      DefaultMaxErrorsShown,
		maxInitialRowsShown: DefaultMaxInitialRowsShown,
		maxRows:             DefaultMaxRows,
	}
	c.recipientColumns = recipientColumnsFor(kind)
	c.recipientColumnKeys = make(map[string]struct{}, len(c.recipientColumns))
	for _, column := range c.recipientColumns {
		c.recipientColumnKeys[insensitive.Key(column)] = struct{}{}
	}
	c.placeholderNames = tpl.Placeholders()
	c.placeholderKeys = make(map[string]struct{}, len(c.placeholderNames))
	for _, name := range c.placeholderNames {
		c.placeholderKeys[insensitive.Key(name)] = struct{}{}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func recipientColumnsFor(kind template.Type) []string {
	switch kind {
	case template.TypeEmail:
		return []string{"email address"}
	case template.TypeLetter:
		columns := make([]string, 0, len(postal.AddressLineKeys)+len(postal.LastLineKeys))
		columns = append(columns, postal.AddressLineKeys...)
		columns = append(columns, postal.LastLineKeys...)
		return columns
	default:
		return []string{"phone number"}
	}
}

var addressKeys = func() map[string]struct{} {
	keys := make(map[string]struct{})
	for _, column := range postal.AddressLineKeys {
		keys[insensitive.Key(column)] = struct{}{}
	}
	for _, column := range postal.LastLineKeys {
		keys[insensitive.Key(column)] = struct{}{}
	}
	return keys
}()

func isAddressKey(key string) bool {
	_, ok := addressKeys[key]
	return ok
}

func (c *CSV) isRecipientColumn(column string) bool {
	_, ok := c.recipientColumnKeys[insensitive.Key(column)]
	return ok
}

func (c *CSV) isPlaceholderColumn(column string) bool {
	_, ok := c.placeholderKeys[insensitive.Key(column)]
	return ok
}

// ensure materialises headers and rows exactly once.
func (c *CSV) ensure() {
	c.once.Do(c.materialise)
}

func (c *CSV) materialise() {
	raw := strings.TrimPrefix(c.raw, "\uFEFF")
	raw = strings.Trim(raw, " ,\r\n\t")

	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	first, err := reader.Read()
	if err != nil {
		return
	}
	c.headers = make([]string, len(first))
	c.headerKeys = make(map[string]struct{}, len(first))
	for i, header := range first {
		header = charset.StripAndRemoveObscureWhitespace(header)
		c.headers[i] = header
		c.headerKeys[insensitive.Key(header)] = struct{}{}
	}
	c.duplicateRecipients = c.findDuplicateRecipients()

	index := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if index < c.maxRows {
			c.rows = append(c.rows, c.buildRow(index, record))
		} else {
			// Counted but not validated.
			c.rows = append(c.rows, nil)
		}
		index++
	}
}

func (c *CSV) findDuplicateRecipients() []string {
	counts := make(map[string]int)
	for _, header := range c.headers {
		key := insensitive.Key(header)
		if _, ok := c.recipientColumnKeys[key]; ok {
			counts[key]++
		}
	}
	var duplicates []string
	for _, header := range c.headers {
		if counts[insensitive.Key(header)] > 1 {
			duplicates = append(duplicates, header)
		}
	}
	return duplicates
}

func (c *CSV) buildRow(index int, record []string) *Row {
	row := &Row{
		Index: index,
		cells: insensitive.New[*Cell](),
		csv:   c,
	}

	for i, header := range c.headers {
		var data any
		if i < len(record) {
			data = charset.StripAndRemoveObscureWhitespace(record[i])
		}
		existing, seen := row.cells.Get(header)
		switch {
		case !seen:
			row.cells.Set(header, &Cell{Data: data})
		case c.isRecipientColumn(header):
			// Last duplicate recipient column wins.
			existing.Data = data
		default:
			// Repeated placeholder columns collect into a list.
			var list []string
			if prev, ok := existing.Data.(string); ok {
				list = []string{prev}
			} else if prevList, ok := existing.Data.([]string); ok {
				list = prevList
			}
			if s, ok := data.(string); ok {
				list = append(list, s)
			}
			existing.Data = list
		}
	}
	for i := len(c.headers); i < len(record); i++ {
		row.extra = append(row.extra, charset.StripAndRemoveObscureWhitespace(record[i]))
	}

	if c.shouldValidate {
		c.validateRow(row)
	}
	return row
}

func (c *CSV) validateRow(row *Row) {
	for column, cell := range row.cells.All() {
		c.validateCell(column, cell)
	}

	if c.kind == template.TypeLetter {
		row.badAddress = !row.address().Valid()
		return
	}

	c.tpl.SetValues(row.Personalisation())
	if c.kind != template.TypeEmail {
		// Email size is too expensive to check per row in bulk.
		row.messageTooLong = c.tpl.IsMessageTooLong()
	}
	if c.kind == template.TypeSMS || c.kind == template.TypeBroadcast {
		row.messageEmpty = c.tpl.IsMessageEmpty()
	}
}

func (c *CSV) validateCell(column string, cell *Cell) {
	empty := cell.Data == nil || cell.String() == ""

	switch {
	case c.kind == template.TypeLetter && c.isRecipientColumn(column):
		// Address problems span the whole row, never a single cell.
	case c.isRecipientColumn(column):
		if len(c.duplicateRecipients) > 0 {
			// The aggregate duplicate-column error covers these cells.
			return
		}
		if empty {
			cell.Error = MissingError
			return
		}
		cell.Error = c.validateRecipient(cell.String())
	case c.isPlaceholderColumn(column):
		if empty {
			cell.Error = MissingError
		}
	default:
		cell.Ignore = true
	}
}

func (c *CSV) validateRecipient(value string) string {
	var err error
	switch c.kind {
	case template.TypeEmail:
		_, err = validate.ValidateEmailAddress(value)
	default:
		_, err = validate.ValidatePhoneNumber(value, c.allowInternationalSMS)
	}
	if err != nil {
		return err.Error()
	}
	return ""
}

// ColumnHeaders returns the header row verbatim.
func (c *CSV) ColumnHeaders() []string {
	c.ensure()
	return c.headers
}

// Rows returns every materialised row. Rows beyond the cap appear as nil
// sentinels so counting still works.
func (c *CSV) Rows() []*Row {
	c.ensure()
	return c.rows
}

// RowCount counts data rows including those beyond the cap.
func (c *CSV) RowCount() int {
	c.ensure()
	return len(c.rows)
}

// TooManyRows reports whether the file exceeds the row cap.
func (c *CSV) TooManyRows() bool {
	return c.RowCount() > c.maxRows
}

// MissingColumnHeaders returns template placeholders with no matching
// column. Letter address placeholders are exempt; the address block is
// filled from the address columns instead.
func (c *CSV) MissingColumnHeaders() []string {
	c.ensure()
	var missing []string
	for _, name := range c.placeholderNames {
		key := insensitive.Key(name)
		if c.kind == template.TypeLetter && isAddressKey(key) {
			continue
		}
		if _, ok := c.headerKeys[key]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// DuplicateRecipientColumnHeaders returns recipient column headers that
// appear more than once, in header order and original spelling.
func (c *CSV) DuplicateRecipientColumnHeaders() []string {
	c.ensure()
	return c.duplicateRecipients
}

// HasRecipientColumns reports whether the file can address anyone at all.
// Letters need at least three address columns; other channels need their
// one recipient column.
func (c *CSV) HasRecipientColumns() bool {
	c.ensure()
	if c.kind != template.TypeLetter {
		for key := range c.recipientColumnKeys {
			if _, ok := c.headerKeys[key]; ok {
				return true
			}
		}
		return false
	}
	present := 0
	for key := range c.recipientColumnKeys {
		if _, ok := c.headerKeys[key]; ok {
			present++
		}
	}
	return present >= 3
}

// RowsWithErrors returns rows that failed validation for any reason.
func (c *CSV) RowsWithErrors() []*Row {
	return c.filterRows(func(r *Row) bool { return r.HasError() })
}

// RowsWithBadRecipients returns rows whose destination is unusable.
func (c *CSV) RowsWithBadRecipients() []*Row {
	return c.filterRows(func(r *Row) bool { return r.HasBadRecipient() })
}

// RowsWithMissingData returns rows with empty placeholder columns.
func (c *CSV) RowsWithMissingData() []*Row {
	return c.filterRows(func(r *Row) bool { return r.HasMissingData() })
}

// RowsWithMessageTooLong returns rows whose rendered message is over the
// channel limit.
func (c *CSV) RowsWithMessageTooLong() []*Row {
	return c.filterRows(func(r *Row) bool { return r.MessageTooLong() })
}

// RowsWithEmptyMessage returns rows that would send a blank message.
func (c *CSV) RowsWithEmptyMessage() []*Row {
	return c.filterRows(func(r *Row) bool { return r.MessageEmpty() })
}

func (c *CSV) filterRows(keep func(*Row) bool) []*Row {
	c.ensure()
	var out []*Row
	for _, row := range c.rows {
		if row != nil && keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// InitialRows returns the first rows shown on the preview page.
func (c *CSV) InitialRows() []*Row {
	c.ensure()
	n := min(len(c.rows), c.maxInitialRowsShown)
	return c.rows[:n]
}

// InitialRowsWithErrors bounds RowsWithErrors to the error listing size.
func (c *CSV) InitialRowsWithErrors() []*Row {
	rows := c.RowsWithErrors()
	return rows[:min(len(rows), c.maxErrorsShown)]
}

// MoreRowsThanCanSend reports whether the file outnumbers the sender's
// remaining message allowance.
func (c *CSV) MoreRowsThanCanSend() bool {
	return c.remainingMessages >= 0 && c.RowCount() > c.remainingMessages
}

// AllowedToSendTo reports whether every recipient is on the guestlist.
// Letters are always allowed; so is everything when no guestlist is set.
func (c *CSV) AllowedToSendTo() bool {
	if c.kind == template.TypeLetter || !c.hasGuestlist {
		return true
	}
	c.ensure()
	for _, row := range c.rows {
		if row == nil {
			continue
		}
		if _, ok := c.guestlist[row.normalisedRecipient()]; !ok {
			return false
		}
	}
	return true
}

// HasErrors reports whether anything at all blocks sending this file.
func (c *CSV) HasErrors() bool {
	return c.TooManyRows() ||
		c.MoreRowsThanCanSend() ||
		len(c.MissingColumnHeaders()) > 0 ||
		len(c.DuplicateRecipientColumnHeaders()) > 0 ||
		!c.HasRecipientColumns() ||
		!c.AllowedToSendTo() ||
		len(c.RowsWithErrors()) > 0
}
