package services

import (
	"strings"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
	"github.com/8ui/restomenu-core-sub000/internal/logger"
)

// filterStage narrows an organized menu by one filter dimension.
// tagNames maps tag ids to display names for text matching.
type filterStage struct {
	name    string
	applies func(domain.Filter) bool
	apply   func(domain.OrganizedMenu, domain.Filter, map[string]string) domain.OrganizedMenu
}

// filterStages is the reference pipeline order. Dimensions intersect, so
// the final result set does not depend on this order; category scope runs
// early because it discards large portions of the candidate set cheaply.
// New dimensions are added by appending a stage.
var filterStages = []filterStage{
	{"active", func(f domain.Filter) bool { return f.ActiveOnly }, applyActiveOnly},
	{"availability", domain.Filter.HasAvailability, applyAvailability},
	{"search", domain.Filter.HasSearch, applySearch},
	{"category-scope", domain.Filter.HasCategoryScope, applyCategoryScope},
	{"tag-sets", domain.Filter.HasTagSets, applyTagSets},
	{"price-range", domain.Filter.HasPriceRange, applyPriceRange},
}

// ApplyFilters narrows an organized menu by every populated filter
// dimension. Dimensions combine as a logical AND; absent dimensions pass
// everything through unchanged. Categories left without a single matching
// product by a search term are dropped from the result entirely; no other
// dimension removes category shells that way.
func ApplyFilters(menu domain.OrganizedMenu, filter domain.Filter, tagNames map[string]string) domain.OrganizedMenu {
	for _, stage := range filterStages {
		if !stage.applies(filter) {
			continue
		}
		menu = stage.apply(menu, filter, tagNames)
		logger.Debug("Filter stage %s: %d categories, %d placements",
			stage.name, len(menu.Categories), menu.TotalPlacements())
	}

	if filter.HasSearch() {
		menu = dropEmptyCategories(menu)
		logger.Debug("Search retention: %d categories kept", len(menu.Categories))
	}

	return menu
}

// keepProducts returns the products satisfying keep, preserving order.
func keepProducts(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	if len(products) == 0 {
		return nil
	}
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// filterBuckets applies a product predicate to every bucket, keeping
// category shells in place.
func filterBuckets(menu domain.OrganizedMenu, keep func(domain.Product) bool) domain.OrganizedMenu {
	out := domain.OrganizedMenu{
		Categories:    make([]domain.OrganizedCategory, len(menu.Categories)),
		Uncategorized: keepProducts(menu.Uncategorized, keep),
	}
	for i, c := range menu.Categories {
		out.Categories[i] = domain.OrganizedCategory{
			Category: c.Category,
			Products: keepProducts(c.Products, keep),
		}
	}
	return out
}

func applyActiveOnly(menu domain.OrganizedMenu, _ domain.Filter, _ map[string]string) domain.OrganizedMenu {
	kept := menu.Categories[:0:0]
	for _, c := range menu.Categories {
		if c.Category.IsActive {
			kept = append(kept, c)
		}
	}
	menu.Categories = kept
	return filterBuckets(menu, func(p domain.Product) bool { return p.IsActive })
}

func applyAvailability(menu domain.OrganizedMenu, f domain.Filter, _ map[string]string) domain.OrganizedMenu {
	kept := menu.Categories[:0:0]
	for _, c := range menu.Categories {
		if c.Category.AvailableAt(f.OutletID, f.Channel) {
			kept = append(kept, c)
		}
	}
	menu.Categories = kept
	return filterBuckets(menu, func(p domain.Product) bool {
		return p.AvailableAt(f.OutletID, f.Channel)
	})
}

func applySearch(menu domain.OrganizedMenu, f domain.Filter, tagNames map[string]string) domain.OrganizedMenu {
	term := NormalizeTerm(f.SearchTerm)
	if term == "" {
		return menu
	}
	return filterBuckets(menu, func(p domain.Product) bool {
		return productMatchesTerm(p, term, tagNames)
	})
}

// productMatchesTerm reports whether the normalized term is a substring
// of the product's name, slug or description, or of one of its tag names.
func productMatchesTerm(p domain.Product, term string, tagNames map[string]string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Slug), term) {
		return true
	}
	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, t := range p.Tags {
		if name, ok := tagNames[t.TagID]; ok {
			if strings.Contains(strings.ToLower(name), term) {
				return true
			}
		}
	}
	return false
}

func applyCategoryScope(menu domain.OrganizedMenu, f domain.Filter, _ map[string]string) domain.OrganizedMenu {
	scope := make(map[string]bool, len(f.CategoryIDs))
	for _, id := range f.CategoryIDs {
		scope[id] = true
	}

	kept := menu.Categories[:0:0]
	for _, c := range menu.Categories {
		if f.CategoryID != "" && c.Category.ID != f.CategoryID {
			continue
		}
		if len(scope) > 0 && !scope[c.Category.ID] {
			continue
		}
		kept = append(kept, c)
	}
	menu.Categories = kept

	// Category scoping always clears the uncategorized bucket: products
	// without a category cannot belong to any scope.
	menu.Uncategorized = nil
	return menu
}

func applyTagSets(menu domain.OrganizedMenu, f domain.Filter, _ map[string]string) domain.OrganizedMenu {
	return filterBuckets(menu, func(p domain.Product) bool {
		return productMatchesTagSets(p, f)
	})
}

// productMatchesTagSets evaluates the four tag-set operators against the
// product's tag-id set. Operators AND together when several are populated.
func productMatchesTagSets(p domain.Product, f domain.Filter) bool {
	set := p.TagIDSet()

	if len(f.TagIDsAll) > 0 && !containsAll(set, f.TagIDsAll) {
		return false
	}
	if len(f.TagIDsAny) > 0 && !containsAny(set, f.TagIDsAny) {
		return false
	}
	// NotAll rejects only products carrying every listed tag.
	if len(f.TagIDsNotAll) > 0 && containsAll(set, f.TagIDsNotAll) {
		return false
	}
	if len(f.TagIDsNotAny) > 0 && containsAny(set, f.TagIDsNotAny) {
		return false
	}
	return true
}

func containsAll(set map[string]bool, ids []string) bool {
	for _, id := range ids {
		if !set[id] {
			return false
		}
	}
	return true
}

func containsAny(set map[string]bool, ids []string) bool {
	for _, id := range ids {
		if set[id] {
			return true
		}
	}
	return false
}

func applyPriceRange(menu domain.OrganizedMenu, f domain.Filter, _ map[string]string) domain.OrganizedMenu {
	// An inverted range admits no product at all, priced or not.
	if f.PriceMin != nil && f.PriceMax != nil && *f.PriceMin > *f.PriceMax {
		logger.Warn("Price range min %d exceeds max %d, result is empty", *f.PriceMin, *f.PriceMax)
		return filterBuckets(menu, func(domain.Product) bool { return false })
	}

	return filterBuckets(menu, func(p domain.Product) bool {
		// Unpriced products pass through rather than being excluded.
		if p.Price == nil {
			return true
		}
		if f.PriceMin != nil && *p.Price < *f.PriceMin {
			return false
		}
		if f.PriceMax != nil && *p.Price > *f.PriceMax {
			return false
		}
		return true
	})
}

func dropEmptyCategories(menu domain.OrganizedMenu) domain.OrganizedMenu {
	kept := menu.Categories[:0:0]
	for _, c := range menu.Categories {
		if len(c.Products) > 0 {
			kept = append(kept, c)
		}
	}
	menu.Categories = kept
	return menu
}
