package countries

import "fmt"

// NotFoundError is returned when a string cannot be resolved to a country.
// Callers validating letter addresses usually treat it as "UK implied" or as
// an address error, depending on whether international letters are allowed.
type NotFoundError struct {
	Search string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("not a known country or territory: %q", e.Search)
}
