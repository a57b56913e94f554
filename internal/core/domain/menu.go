package domain

// OrganizedCategory is one menu section with its products resolved.
type OrganizedCategory struct {
	Category Category
	Products []Product
}

// OrganizedMenu is the structured form of a snapshot: every product
// either sits inside the categories it binds to or in the uncategorized
// bucket, never both.
type OrganizedMenu struct {
	// Categories hold the sections in their given order, each with the
	// products bound to it.
	Categories []OrganizedCategory

	// Uncategorized holds products with no category binds.
	Uncategorized []Product
}

// ProductCount returns the number of distinct products in the menu.
// A product bound to several categories counts once.
func (m OrganizedMenu) ProductCount() int {
	seen := make(map[string]bool)
	for _, c := range m.Categories {
		for _, p := range c.Products {
			seen[p.ID] = true
		}
	}
	for _, p := range m.Uncategorized {
		seen[p.ID] = true
	}
	return len(seen)
}

// TotalPlacements returns the number of product placements, counting a
// product once per category it appears in.
func (m OrganizedMenu) TotalPlacements() int {
	n := len(m.Uncategorized)
	for _, c := range m.Categories {
		n += len(c.Products)
	}
	return n
}

// MenuView is the result of a full menu query: the organized menu plus
// totals and flags describing how the query was resolved.
type MenuView struct {
	Menu OrganizedMenu

	// TotalProducts is the number of distinct products in the result.
	TotalProducts int

	// TotalCategories is the number of categories in the result.
	TotalCategories int

	// SortFallback is true when the requested sort strategy could not be
	// satisfied and the engine fell back to the catalog order.
	SortFallback bool

	// Scores carries per-product relevance scores when the query had a
	// search term, keyed by product id.
	Scores map[string]int
}
