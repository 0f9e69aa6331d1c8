package recipients

// MissingError is the per-cell message for an empty required column.
const MissingError = "Missing"

// Cell is one value from a recipient spreadsheet, annotated with the
// outcome of validating it.
type Cell struct {
	// Data is the cell's value after whitespace normalisation. It is a
	// string for most cells, a []string when the same placeholder column
	// appears more than once, or nil when the row was shorter than the
	// header row.
	Data any
	// Error is empty when the cell is fine, MissingError when a required
	// value is absent, or a validation message otherwise.
	Error string
	// Ignore marks columns that match neither a placeholder nor a
	// recipient column.
	Ignore bool
}

// HasError reports whether the cell failed validation.
func (c *Cell) HasError() bool {
	return c != nil && c.Error != ""
}

// IsMissing reports whether the cell failed for being empty.
func (c *Cell) IsMissing() bool {
	return c != nil && c.Error == MissingError
}

// String returns the cell's value as a string. For list values the last
// entry wins, matching how duplicate columns read back.
func (c *Cell) String() string {
	if c == nil || c.Data == nil {
		return ""
	}
	switch v := c.Data.(type) {
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[len(v)-1]
	default:
		return ""
	}
}
