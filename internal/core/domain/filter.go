package domain

import "fmt"

// SortStrategy names a product ordering inside each category.
type SortStrategy string

// Recognised sort strategies.
const (
	// SortByName orders products alphabetically by display name.
	SortByName SortStrategy = "name"

	// SortByPrice orders products by price. Unpriced products sort as 0.
	SortByPrice SortStrategy = "price"

	// SortByPopularity orders products by their popularity rank,
	// highest first under the ascending default.
	SortByPopularity SortStrategy = "popularity"

	// SortByCategoryPriority orders products by their bind priority
	// within an anchor category.
	SortByCategoryPriority SortStrategy = "categoryPriority"
)

// ParseSortStrategy converts user input into a SortStrategy, accepting
// the aliases "priority" (popularity) and "category" (categoryPriority).
func ParseSortStrategy(s string) (SortStrategy, error) {
	switch s {
	case "name":
		return SortByName, nil
	case "price":
		return SortByPrice, nil
	case "popularity", "priority":
		return SortByPopularity, nil
	case "categoryPriority", "category":
		return SortByCategoryPriority, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSortStrategy, s)
	}
}

// SortOrder is the direction a sort strategy runs in.
type SortOrder string

// Recognised sort orders.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder converts user input into a SortOrder. Empty input
// defaults to ascending.
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "", "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
}

// Filter describes one menu query. Zero values mean "no constraint";
// the engine applies only the dimensions a caller populates.
type Filter struct {
	// SearchTerm is free text matched against product names, slugs,
	// descriptions and tag names. Empty means no text filtering.
	SearchTerm string

	// CategoryID restricts results to exactly one category.
	CategoryID string

	// CategoryIDs restricts results to categories in the set. Combines
	// with CategoryID by AND when both are populated.
	CategoryIDs []string

	// TagIDsAll keeps products carrying every listed tag.
	TagIDsAll []string

	// TagIDsAny keeps products carrying at least one listed tag.
	TagIDsAny []string

	// TagIDsNotAll drops products carrying every listed tag. Carrying
	// some but not all of them is allowed.
	TagIDsNotAll []string

	// TagIDsNotAny drops products carrying any listed tag.
	TagIDsNotAny []string

	// PriceMin and PriceMax bound product price in minor units.
	// Nil means unbounded on that side. Unpriced products always pass.
	PriceMin *int64
	PriceMax *int64

	// OutletID and Channel restrict results to one availability context.
	OutletID string
	Channel  Channel

	// ActiveOnly keeps only active products and categories.
	ActiveOnly bool

	// SortBy selects the product ordering inside each category. Empty
	// keeps the catalog order, or relevance order when searching.
	SortBy SortStrategy

	// SortOrder is the sort direction. Empty means ascending.
	SortOrder SortOrder

	// AnchorCategoryID is the category whose bind priorities drive the
	// categoryPriority strategy for the uncategorized bucket or a flat
	// list. Inside an organized category the category itself anchors.
	AnchorCategoryID string
}

// HasSearch returns true if the filter carries a search term.
func (f Filter) HasSearch() bool {
	return f.SearchTerm != ""
}

// HasCategoryScope returns true if the filter restricts categories.
func (f Filter) HasCategoryScope() bool {
	return f.CategoryID != "" || len(f.CategoryIDs) > 0
}

// HasTagSets returns true if any tag dimension is populated.
func (f Filter) HasTagSets() bool {
	return len(f.TagIDsAll) > 0 || len(f.TagIDsAny) > 0 ||
		len(f.TagIDsNotAll) > 0 || len(f.TagIDsNotAny) > 0
}

// HasPriceRange returns true if either price bound is set.
func (f Filter) HasPriceRange() bool {
	return f.PriceMin != nil || f.PriceMax != nil
}

// HasAvailability returns true if the filter restricts outlet or channel.
func (f Filter) HasAvailability() bool {
	return f.OutletID != "" || f.Channel != ""
}
