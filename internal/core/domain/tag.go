package domain

// Tag is a label products carry, such as a dietary marker or a cuisine.
type Tag struct {
	// ID is the opaque unique identifier for the tag.
	ID string

	// Name is the display name.
	Name string

	// Slug is the URL-friendly identifier.
	Slug string
}
