package domain

import (
	"fmt"
	"strings"
)

// Channel identifies a fulfillment channel for availability bindings.
type Channel string

// Recognised fulfillment channels.
const (
	// ChannelDelivery is courier delivery to the customer.
	ChannelDelivery Channel = "delivery"

	// ChannelPickup is customer self-collection at the outlet.
	ChannelPickup Channel = "pickup"

	// ChannelInside is in-house consumption (table service, QR menu).
	ChannelInside Channel = "inside"
)

// IsValid returns true if the channel is recognised.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelDelivery, ChannelPickup, ChannelInside:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c Channel) String() string {
	return string(c)
}

// ParseChannel converts user input into a Channel. Empty input parses to
// the zero value, which filters treat as "any channel".
func ParseChannel(s string) (Channel, error) {
	if s == "" {
		return "", nil
	}
	ch := Channel(strings.ToLower(s))
	if !ch.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownChannel, s)
	}
	return ch, nil
}

// AvailabilityBind ties a product or category to one outlet and one
// fulfillment channel. An entity with no availability binds is visible
// in every outlet and channel.
type AvailabilityBind struct {
	// OutletID identifies the outlet (point of sale).
	OutletID string

	// Channel is the fulfillment channel the bind applies to.
	Channel Channel
}

// CategoryBind associates a product with a category.
// Priority is the product's position inside that category (lower = earlier).
type CategoryBind struct {
	CategoryID string
	Priority   int
}

// TagBind associates a product with a tag by id.
// Priority orders tags for display.
type TagBind struct {
	TagID    string
	Priority int
}

// Nutrition carries the per-serving nutrition facts of a product.
// Every field is optional; nil means the value is not published.
type Nutrition struct {
	Calories     *int
	Protein      *int
	Fat          *int
	Carbohydrate *int
}

// HasAny returns true if at least one nutrition field is populated.
func (n *Nutrition) HasAny() bool {
	if n == nil {
		return false
	}
	return n.Calories != nil || n.Protein != nil || n.Fat != nil || n.Carbohydrate != nil
}

// Image is a product photo reference.
type Image struct {
	URL string
	Alt string
}

// Product represents a sellable catalog item.
type Product struct {
	// ID is the opaque unique identifier for the product.
	ID string

	// Name is the display name.
	Name string

	// Slug is the URL-friendly identifier.
	Slug string

	// Description is optional display text; empty means none.
	Description string

	// IsActive marks the product as currently sellable.
	IsActive bool

	// Price in minor currency units. Nil means the product is not
	// priced for the current context, which is distinct from free (0).
	Price *int64

	// Priority is the product-level popularity rank used by the
	// popularity sort strategy. Zero means unranked.
	Priority int

	// Nutrition facts, if published.
	Nutrition *Nutrition

	// Images attached to the product.
	Images []Image

	// Tags reference Tag entities by id, ordered by bind priority.
	Tags []TagBind

	// CategoryBinds place the product into categories. Entries reference
	// distinct category ids; an empty list means uncategorized.
	CategoryBinds []CategoryBind

	// AvailabilityBinds restrict where the product is offered.
	AvailabilityBinds []AvailabilityBind
}

// TagIDSet returns the product's tag ids as a membership set.
func (p Product) TagIDSet() map[string]bool {
	set := make(map[string]bool, len(p.Tags))
	for _, t := range p.Tags {
		set[t.TagID] = true
	}
	return set
}

// BindPriority returns the product's bind priority for the given category
// and whether such a bind exists.
func (p Product) BindPriority(categoryID string) (int, bool) {
	for _, b := range p.CategoryBinds {
		if b.CategoryID == categoryID {
			return b.Priority, true
		}
	}
	return 0, false
}

// AvailableAt reports whether the product is offered for the given outlet
// and channel. Empty arguments mean "any".
func (p Product) AvailableAt(outletID string, channel Channel) bool {
	return bindsMatch(p.AvailabilityBinds, outletID, channel)
}

// bindsMatch implements the shared availability rule: no binds means
// unrestricted; otherwise a single bind must satisfy both requested parts.
func bindsMatch(binds []AvailabilityBind, outletID string, channel Channel) bool {
	if len(binds) == 0 {
		return true
	}
	for _, b := range binds {
		if outletID != "" && b.OutletID != outletID {
			continue
		}
		if channel != "" && b.Channel != channel {
			continue
		}
		return true
	}
	return false
}
