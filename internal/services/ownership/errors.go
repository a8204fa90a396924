package ownership

import "fmt"

// UnknownCompanyError indicates a lookup of a company ID that has no entry
// in the relation graph.
type UnknownCompanyError struct {
	ID string
}

func (e *UnknownCompanyError) Error() string {
	return fmt.Sprintf("company %s not found in relation graph", e.ID)
}
