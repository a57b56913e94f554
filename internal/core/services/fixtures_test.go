package services

import (
	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// --- Shared fixtures ---

func int64Ptr(v int64) *int64 { return &v }

func intPtr(v int) *int { return &v }

// testSnapshot builds a small but complete catalog: three populated
// categories, one empty category, an uncategorized product and a product
// bound to a category that is not part of the snapshot.
func testSnapshot() domain.Snapshot {
	return domain.Snapshot{
		Categories: []domain.Category{
			{ID: "cat-pizza", Name: "Pizza", Slug: "pizza", Priority: 1, IsActive: true},
			{ID: "cat-salads", Name: "Salads", Slug: "salads", Priority: 2, IsActive: true},
			{ID: "cat-drinks", Name: "Drinks", Slug: "drinks", Priority: 3, IsActive: true},
			{ID: "cat-desserts", Name: "Desserts", Slug: "desserts", Priority: 4, IsActive: true},
		},
		Products: []domain.Product{
			{
				ID: "prod-margherita", Name: "Pizza Margherita", Slug: "pizza-margherita",
				Description: "Tomato, mozzarella and fresh basil",
				IsActive:    true, Price: int64Ptr(1250), Priority: 80,
				Nutrition: &domain.Nutrition{Calories: intPtr(850), Protein: intPtr(32)},
				Images:    []domain.Image{{URL: "https://img.example/margherita.jpg"}},
				Tags: []domain.TagBind{
					{TagID: "tag-italian", Priority: 1},
					{TagID: "tag-vegetarian", Priority: 2},
				},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-pizza", Priority: 1}},
			},
			{
				ID: "prod-pepperoni", Name: "Pizza Pepperoni", Slug: "pizza-pepperoni",
				Description: "Spicy pepperoni with double cheese",
				IsActive:    true, Price: int64Ptr(1450), Priority: 95,
				Images: []domain.Image{{URL: "https://img.example/pepperoni.jpg"}},
				Tags: []domain.TagBind{
					{TagID: "tag-italian", Priority: 1},
					{TagID: "tag-spicy", Priority: 2},
				},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-pizza", Priority: 2}},
			},
			{
				ID: "prod-caesar", Name: "Caesar Salad", Slug: "caesar-salad",
				Description: "Romaine, parmesan and grilled chicken",
				IsActive:    true, Price: int64Ptr(980), Priority: 60,
				Nutrition:     &domain.Nutrition{Calories: intPtr(420), Protein: intPtr(28), Fat: intPtr(18)},
				Tags:          []domain.TagBind{{TagID: "tag-classic", Priority: 1}},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-salads", Priority: 1}},
			},
			{
				ID: "prod-greek", Name: "Greek Salad", Slug: "greek-salad",
				IsActive: false, Price: int64Ptr(890), Priority: 40,
				Tags:          []domain.TagBind{{TagID: "tag-vegetarian", Priority: 1}},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-salads", Priority: 2}},
			},
			{
				ID: "prod-cola", Name: "Cola", Slug: "cola",
				IsActive: true, Price: int64Ptr(350), Priority: 70,
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-drinks", Priority: 1}},
			},
			{
				ID: "prod-water", Name: "Still Water", Slug: "still-water",
				IsActive:      true, // unpriced on purpose
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-drinks", Priority: 2}},
			},
			{
				ID: "prod-special", Name: "Chef Special", Slug: "chef-special",
				IsActive: true, Price: int64Ptr(2100),
				// no category binds: uncategorized
			},
			{
				ID: "prod-ghost", Name: "Ghost Burger", Slug: "ghost-burger",
				IsActive:      true, Price: int64Ptr(1100),
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-retired", Priority: 1}},
			},
		},
		Tags: []domain.Tag{
			{ID: "tag-italian", Name: "Italian", Slug: "italian"},
			{ID: "tag-vegetarian", Name: "Vegetarian", Slug: "vegetarian"},
			{ID: "tag-spicy", Name: "Spicy", Slug: "spicy"},
			{ID: "tag-classic", Name: "Classic", Slug: "classic"},
		},
	}
}

// productIDs extracts ids in order, for concise ordering assertions.
func productIDs(products []domain.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	return ids
}

// categoryIDs extracts the organized category ids in order.
func categoryIDs(categories []domain.OrganizedCategory) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.Category.ID
	}
	return ids
}

// menuProductIDs flattens every bucket of a menu into one id set.
func menuProductIDs(menu domain.OrganizedMenu) map[string]bool {
	ids := make(map[string]bool)
	for _, c := range menu.Categories {
		for _, p := range c.Products {
			ids[p.ID] = true
		}
	}
	for _, p := range menu.Uncategorized {
		ids[p.ID] = true
	}
	return ids
}
