package services

import (
	"math"
	"sort"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// ComputeStatistics aggregates product and category counts, the price
// distribution, tag usage and nutrition averages over an organized menu.
// Product-level figures count each distinct product once, however many
// categories it is bound to. The input may already be filtered; the
// aggregation has no dependency on how the view was produced.
func ComputeStatistics(menu domain.OrganizedMenu, tagNames map[string]string) domain.MenuStatistics {
	stats := domain.MenuStatistics{
		TotalCategories:       len(menu.Categories),
		UncategorizedProducts: len(menu.Uncategorized),
		ProductsPerCategory:   make(map[string]int, len(menu.Categories)),
	}

	placements := 0
	for _, c := range menu.Categories {
		stats.ProductsPerCategory[c.Category.ID] = len(c.Products)
		if len(c.Products) > 0 {
			stats.CategoriesWithProducts++
			placements += len(c.Products)
		} else {
			stats.EmptyCategories++
		}
	}
	if stats.CategoriesWithProducts > 0 {
		stats.AvgProductsPerCategory = round2(float64(placements) / float64(stats.CategoriesWithProducts))
	}

	products := distinctProducts(menu)
	stats.TotalProducts = len(products)

	var prices []int64
	tagCounts := make(map[string]int)
	var calSum, protSum, fatSum, carbSum float64
	var calN, protN, fatN, carbN int

	for _, p := range products {
		if p.IsActive {
			stats.ActiveProducts++
		} else {
			stats.InactiveProducts++
		}

		// Distribution covers defined positive prices only.
		if p.Price != nil && *p.Price > 0 {
			stats.PricedProducts++
			prices = append(prices, *p.Price)
		}

		for tagID := range p.TagIDSet() {
			tagCounts[tagID]++
		}

		if len(p.Images) > 0 {
			stats.ProductsWithImages++
		}

		if p.Nutrition.HasAny() {
			stats.ProductsWithNutrition++
			if p.Nutrition.Calories != nil {
				calSum += float64(*p.Nutrition.Calories)
				calN++
			}
			if p.Nutrition.Protein != nil {
				protSum += float64(*p.Nutrition.Protein)
				protN++
			}
			if p.Nutrition.Fat != nil {
				fatSum += float64(*p.Nutrition.Fat)
				fatN++
			}
			if p.Nutrition.Carbohydrate != nil {
				carbSum += float64(*p.Nutrition.Carbohydrate)
				carbN++
			}
		}
	}

	stats.Prices = priceDistribution(prices)
	stats.TagHistogram = tagHistogram(tagCounts, tagNames)
	stats.Nutrition = domain.NutritionAverages{
		Calories:     average(calSum, calN),
		Protein:      average(protSum, protN),
		Fat:          average(fatSum, fatN),
		Carbohydrate: average(carbSum, carbN),
	}

	return stats
}

// distinctProducts collects the menu's products once each, in first-seen
// order.
func distinctProducts(menu domain.OrganizedMenu) []domain.Product {
	seen := make(map[string]bool)
	var out []domain.Product
	for _, c := range menu.Categories {
		for _, p := range c.Products {
			if !seen[p.ID] {
				seen[p.ID] = true
				out = append(out, p)
			}
		}
	}
	for _, p := range menu.Uncategorized {
		if !seen[p.ID] {
			seen[p.ID] = true
			out = append(out, p)
		}
	}
	return out
}

// priceDistribution summarises prices, nil when the input is empty.
func priceDistribution(prices []int64) *domain.PriceDistribution {
	if len(prices) == 0 {
		return nil
	}

	sorted := make([]int64, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var sum int64
	for _, p := range sorted {
		sum += p
	}

	mid := len(sorted) / 2
	median := float64(sorted[mid])
	if len(sorted)%2 == 0 {
		median = float64(sorted[mid-1]+sorted[mid]) / 2
	}

	return &domain.PriceDistribution{
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   round2(float64(sum) / float64(len(sorted))),
		Median: median,
	}
}

// tagHistogram builds the top-10 tag usage rows, ordered by frequency
// descending with ties broken by tag id ascending.
func tagHistogram(counts map[string]int, tagNames map[string]string) []domain.TagUsage {
	if len(counts) == 0 {
		return nil
	}

	rows := make([]domain.TagUsage, 0, len(counts))
	for tagID, count := range counts {
		rows = append(rows, domain.TagUsage{
			TagID: tagID,
			Name:  tagNames[tagID],
			Count: count,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].TagID < rows[j].TagID
	})

	if len(rows) > 10 {
		rows = rows[:10]
	}
	return rows
}

func average(sum float64, n int) *float64 {
	if n == 0 {
		return nil
	}
	avg := round2(sum / float64(n))
	return &avg
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
