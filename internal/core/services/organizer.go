package services

import (
	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// Organize joins products to categories through their category binds.
// Category order and product order within each category follow the
// snapshot's input order. Products with no binds land in the
// uncategorized bucket exactly once. A product whose binds all reference
// categories missing from the snapshot appears in neither bucket: it is
// bound, so it is not uncategorized, but its target is out of scope.
func Organize(snap domain.Snapshot) domain.OrganizedMenu {
	known := make(map[string]bool, len(snap.Categories))
	for _, c := range snap.Categories {
		known[c.ID] = true
	}

	// Index products by category id in one pass over the products.
	byCategory := make(map[string][]domain.Product, len(snap.Categories))
	var uncategorized []domain.Product

	for _, p := range snap.Products {
		if len(p.CategoryBinds) == 0 {
			uncategorized = append(uncategorized, p)
			continue
		}
		// Bind lists carry distinct category ids by contract; placed
		// guards against duplicates anyway so the index stays a
		// membership test, never a multiplier.
		var placed map[string]bool
		for _, b := range p.CategoryBinds {
			if !known[b.CategoryID] || placed[b.CategoryID] {
				continue
			}
			if placed == nil {
				placed = make(map[string]bool, len(p.CategoryBinds))
			}
			placed[b.CategoryID] = true
			byCategory[b.CategoryID] = append(byCategory[b.CategoryID], p)
		}
	}

	organized := make([]domain.OrganizedCategory, len(snap.Categories))
	for i, c := range snap.Categories {
		organized[i] = domain.OrganizedCategory{
			Category: c,
			Products: byCategory[c.ID],
		}
	}

	return domain.OrganizedMenu{
		Categories:    organized,
		Uncategorized: uncategorized,
	}
}
