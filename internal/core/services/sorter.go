package services

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// SortProducts returns a copy of products ordered by the given strategy.
// The sort is stable: equal keys keep their input order, which is the
// catalog's canonical order. The boolean is false when the strategy could
// not be satisfied (categoryPriority without an anchor, or an unknown
// strategy) and the copy keeps the input order instead.
func SortProducts(products []domain.Product, strategy domain.SortStrategy, order domain.SortOrder, anchorCategoryID string) ([]domain.Product, bool) {
	out := make([]domain.Product, len(products))
	copy(out, products)

	var less func(a, b domain.Product) bool

	switch strategy {
	case domain.SortByName:
		less = nameLess()

	case domain.SortByPrice:
		less = func(a, b domain.Product) bool {
			return priceOrZero(a) < priceOrZero(b)
		}

	case domain.SortByPopularity:
		// Natural order is most popular first, unranked products last.
		less = func(a, b domain.Product) bool {
			return a.Priority > b.Priority
		}

	case domain.SortByCategoryPriority:
		if anchorCategoryID == "" {
			return out, false
		}
		less = func(a, b domain.Product) bool {
			return bindPriorityOrZero(a, anchorCategoryID) < bindPriorityOrZero(b, anchorCategoryID)
		}

	default:
		return out, false
	}

	if order == domain.SortDesc {
		asc := less
		less = func(a, b domain.Product) bool { return asc(b, a) }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return less(out[i], out[j])
	})

	return out, true
}

// SortMenu orders the products of every bucket by the filter's strategy.
// Each organized category anchors the categoryPriority strategy on itself
// unless the filter names an explicit anchor; the uncategorized bucket has
// no implicit anchor. The boolean is true when any non-empty bucket fell
// back to catalog order.
func SortMenu(menu domain.OrganizedMenu, filter domain.Filter) (domain.OrganizedMenu, bool) {
	if filter.SortBy == "" {
		return menu, false
	}

	fallback := false
	out := domain.OrganizedMenu{
		Categories: make([]domain.OrganizedCategory, len(menu.Categories)),
	}

	for i, c := range menu.Categories {
		anchor := filter.AnchorCategoryID
		if anchor == "" {
			anchor = c.Category.ID
		}
		sorted, ok := SortProducts(c.Products, filter.SortBy, filter.SortOrder, anchor)
		if !ok && len(c.Products) > 0 {
			fallback = true
		}
		out.Categories[i] = domain.OrganizedCategory{
			Category: c.Category,
			Products: sorted,
		}
	}

	sorted, ok := SortProducts(menu.Uncategorized, filter.SortBy, filter.SortOrder, filter.AnchorCategoryID)
	if !ok && len(menu.Uncategorized) > 0 {
		fallback = true
	}
	out.Uncategorized = sorted

	return out, fallback
}

// nameLess builds a locale-aware name comparator. Collators are not safe
// for concurrent use, so every sort gets its own.
func nameLess() func(a, b domain.Product) bool {
	c := collate.New(language.Und, collate.IgnoreCase)
	return func(a, b domain.Product) bool {
		return c.CompareString(a.Name, b.Name) < 0
	}
}

// priceOrZero treats a missing price as 0 for ordering purposes.
func priceOrZero(p domain.Product) int64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}

// bindPriorityOrZero reads the product's bind priority for the anchor
// category, 0 when the product is not bound to it.
func bindPriorityOrZero(p domain.Product, categoryID string) int {
	prio, ok := p.BindPriority(categoryID)
	if !ok {
		return 0
	}
	return prio
}
