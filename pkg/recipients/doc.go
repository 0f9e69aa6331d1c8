// Package recipients validates uploaded recipient spreadsheets against a
// notification template.
//
// A CSV wraps the raw file contents plus the template the messages will
// render from. The first row names the columns; one column must address the
// recipient (phone number, email address, or the letter address columns)
// and the rest supply placeholder values. Column names are matched case-
// and separator-insensitively.
//
//	c := recipients.New(data, tpl, recipients.WithGuestlist(list))
//	if c.HasErrors() {
//	    for _, row := range c.InitialRowsWithErrors() {
//	        ...
//	    }
//	}
//
// Rows materialise lazily on first access and are cached. Files over the
// row cap keep counting rows but stop validating them, so worst-case work
// stays linear in the cap. Per-cell problems (a missing value, a malformed
// phone number) surface on the Cell; whole-row problems (a bad postal
// address, an over-long message) surface on the Row; file-level problems
// (missing columns, duplicate recipient columns, guestlist violations)
// surface on the CSV itself.
package recipients
