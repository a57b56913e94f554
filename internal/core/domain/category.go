package domain

// Category is a named menu section products bind into.
type Category struct {
	// ID is the opaque unique identifier for the category.
	ID string

	// Name is the display name.
	Name string

	// Slug is the URL-friendly identifier.
	Slug string

	// Priority orders categories on the menu (lower = earlier).
	Priority int

	// IsActive marks the category as currently shown.
	IsActive bool

	// ParentID references the parent category for hierarchies.
	// Empty means a root category. The query engine carries it through
	// without interpreting it.
	ParentID string

	// AvailabilityBinds restrict where the category is offered.
	AvailabilityBinds []AvailabilityBind
}

// AvailableAt reports whether the category is offered for the given outlet
// and channel. Empty arguments mean "any".
func (c Category) AvailableAt(outletID string, channel Channel) bool {
	return bindsMatch(c.AvailabilityBinds, outletID, channel)
}
