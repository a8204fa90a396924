package entities

import "fmt"

// Company represents one company node in the corporate ownership graph.
// A node can exist before its own relation record has been seen: when a
// record names a parent that has not appeared yet, the parent is created
// with only its ID known. Name and ParentID are filled in later when/if
// the parent's own record arrives.
type Company struct {
	ID          string   // Company ID (unique, never empty)
	Name        string   // Company name (empty until the company's own record is seen)
	ParentID    string   // Parent company ID (empty means top-level)
	ChildrenIDs []string // IDs of companies that name this company as parent, in first-seen order
}

// IsTopLevel reports whether the company has no parent.
func (c *Company) IsTopLevel() bool {
	return c.ParentID == ""
}

// AddChild appends a child company ID, preserving first-seen order.
func (c *Company) AddChild(childID string) {
	c.ChildrenIDs = append(c.ChildrenIDs, childID)
}

// String returns a string representation of the company
// Format: id (name) parent=parent_id children=n
func (c *Company) String() string {
	name := c.Name
	if name == "" {
		name = "?"
	}
	parent := c.ParentID
	if parent == "" {
		parent = "-"
	}
	return fmt.Sprintf("%s (%s) parent=%s children=%d", c.ID, name, parent, len(c.ChildrenIDs))
}

// Validate checks if the company is valid
func (c *Company) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("company ID is required")
	}
	for _, childID := range c.ChildrenIDs {
		if childID == "" {
			return fmt.Errorf("company %s has an empty child ID", c.ID)
		}
	}
	return nil
}
