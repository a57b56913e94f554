package services

import (
	"strings"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// Relevance point values. Name, slug and tag tiers are exclusive per
// field: an exact match supersedes the weaker rules for that field.
const (
	scoreNameExact    = 100
	scoreNamePrefix   = 80
	scoreNameContains = 60

	scoreSlugExact    = 90
	scoreSlugContains = 50

	scoreDescContains = 30

	scoreTagExact    = 70
	scoreTagContains = 40

	scoreActiveBonus    = 10
	scoreNutrientAspect = 20

	scoreCategoryExact    = 90
	scoreCategoryPrefix   = 70
	scoreCategoryContains = 50
)

// nutrient identifies one nutrition field for keyword scoring.
type nutrient int

const (
	nutrientCalories nutrient = iota
	nutrientProtein
	nutrientFat
	nutrientCarbohydrate
)

// nutritionKeywords maps whole search words to the nutrient they address.
// Matching is word-exact so "carbonara" never counts as a carb query.
var nutritionKeywords = map[string]nutrient{
	"calorie":       nutrientCalories,
	"calories":      nutrientCalories,
	"kcal":          nutrientCalories,
	"protein":       nutrientProtein,
	"proteins":      nutrientProtein,
	"fat":           nutrientFat,
	"fats":          nutrientFat,
	"carb":          nutrientCarbohydrate,
	"carbs":         nutrientCarbohydrate,
	"carbohydrate":  nutrientCarbohydrate,
	"carbohydrates": nutrientCarbohydrate,
}

// NormalizeTerm lowercases and trims a raw search term. All scoring and
// search matching expects terms in this form.
func NormalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// slugifyTerm converts a normalized term to slug form, so multi-word terms
// can match slugs exactly.
func slugifyTerm(term string) string {
	return strings.ReplaceAll(term, " ", "-")
}

// ScoreProduct rates how well a product matches the normalized term.
// Zero means no match and the product must not appear in ranked results.
func ScoreProduct(p domain.Product, term string, tagNames map[string]string) int {
	if term == "" {
		return 0
	}

	score := 0

	name := strings.ToLower(p.Name)
	switch {
	case name == term:
		score += scoreNameExact
	case strings.HasPrefix(name, term):
		score += scoreNamePrefix
	case strings.Contains(name, term):
		score += scoreNameContains
	}

	slug := strings.ToLower(p.Slug)
	slugTerm := slugifyTerm(term)
	switch {
	case slug == slugTerm:
		score += scoreSlugExact
	case strings.Contains(slug, slugTerm):
		score += scoreSlugContains
	}

	if p.Description != "" && strings.Contains(strings.ToLower(p.Description), term) {
		score += scoreDescContains
	}

	score += bestTagScore(p, term, tagNames)
	score += nutritionScore(p, term)

	// The active bonus ranks matches higher. It never turns a non-match
	// into a match, so zero keeps meaning "does not match".
	if score > 0 && p.IsActive {
		score += scoreActiveBonus
	}

	return score
}

// ScoreCategory rates how well a category name matches the normalized term.
func ScoreCategory(c domain.Category, term string) int {
	if term == "" {
		return 0
	}

	name := strings.ToLower(c.Name)
	switch {
	case name == term:
		return scoreCategoryExact
	case strings.HasPrefix(name, term):
		return scoreCategoryPrefix
	case strings.Contains(name, term):
		return scoreCategoryContains
	default:
		return 0
	}
}

// bestTagScore returns the strongest single tag match. Several matching
// tags do not stack; the best one wins.
func bestTagScore(p domain.Product, term string, tagNames map[string]string) int {
	best := 0
	for _, t := range p.Tags {
		name, ok := tagNames[t.TagID]
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		switch {
		case lower == term:
			if best < scoreTagExact {
				best = scoreTagExact
			}
		case strings.Contains(lower, term):
			if best < scoreTagContains {
				best = scoreTagContains
			}
		}
	}
	return best
}

// nutritionScore grants points for every distinct nutrient named in the
// term that the product actually publishes.
func nutritionScore(p domain.Product, term string) int {
	if p.Nutrition == nil {
		return 0
	}

	matched := make(map[nutrient]bool)
	for _, word := range strings.Fields(term) {
		n, ok := nutritionKeywords[word]
		if !ok || matched[n] {
			continue
		}
		if nutrientPopulated(p.Nutrition, n) {
			matched[n] = true
		}
	}

	return len(matched) * scoreNutrientAspect
}

func nutrientPopulated(n *domain.Nutrition, which nutrient) bool {
	switch which {
	case nutrientCalories:
		return n.Calories != nil
	case nutrientProtein:
		return n.Protein != nil
	case nutrientFat:
		return n.Fat != nil
	case nutrientCarbohydrate:
		return n.Carbohydrate != nil
	default:
		return false
	}
}
