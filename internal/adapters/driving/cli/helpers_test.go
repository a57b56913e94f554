package cli

import (
	"context"
	"errors"

	"github.com/8ui/restomenu-core-sub000/internal/adapters/driven/catalog/memory"
	configmemory "github.com/8ui/restomenu-core-sub000/internal/adapters/driven/config/memory"
	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
	"github.com/8ui/restomenu-core-sub000/internal/core/services"
)

// setupTestServices wires the package-level collaborators against an
// in-memory catalog and config store. The returned cleanup restores
// whatever was wired before.
func setupTestServices() func() {
	oldService := menuService
	oldStore := configStore

	menuService = services.NewMenuService(memory.NewSource(testSnapshot()))
	configStore = configmemory.NewConfigStore()

	return func() {
		menuService = oldService
		configStore = oldStore
	}
}

// testSnapshot builds a small fixed catalog: two populated categories,
// one empty one, an uncategorized product, and enough gaps (a missing
// price, missing images) that validation has findings to report.
func testSnapshot() domain.Snapshot {
	price := func(v int64) *int64 { return &v }
	kcal := func(v int) *int { return &v }

	return domain.Snapshot{
		Tags: []domain.Tag{
			{ID: "tag-veg", Name: "Vegetarian", Slug: "vegetarian"},
			{ID: "tag-spicy", Name: "Spicy", Slug: "spicy"},
		},
		Categories: []domain.Category{
			{ID: "cat-pizza", Name: "Pizza", Slug: "pizza", Priority: 1, IsActive: true},
			{ID: "cat-drinks", Name: "Drinks", Slug: "drinks", Priority: 2, IsActive: true},
			{ID: "cat-seasonal", Name: "Seasonal", Slug: "seasonal", Priority: 3, IsActive: true},
		},
		Products: []domain.Product{
			{
				ID: "prod-margherita", Name: "Margherita", Slug: "margherita",
				IsActive: true, Price: price(1250), Priority: 5,
				Nutrition:     &domain.Nutrition{Calories: kcal(820)},
				Images:        []domain.Image{{URL: "https://img.test/margherita.jpg", Alt: "Margherita"}},
				Tags:          []domain.TagBind{{TagID: "tag-veg", Priority: 1}},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-pizza", Priority: 1}},
			},
			{
				ID: "prod-diavola", Name: "Diavola", Slug: "diavola",
				IsActive: true, Price: price(1450), Priority: 9,
				Tags:          []domain.TagBind{{TagID: "tag-spicy", Priority: 1}},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-pizza", Priority: 2}},
			},
			{
				ID: "prod-cola", Name: "Cola", Slug: "cola",
				IsActive: true, Price: price(300),
				Images:        []domain.Image{{URL: "https://img.test/cola.jpg", Alt: "Cola"}},
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-drinks", Priority: 1}},
			},
			{
				ID: "prod-tea", Name: "Dusty Tea", Slug: "dusty-tea",
				IsActive:      false,
				CategoryBinds: []domain.CategoryBind{{CategoryID: "cat-drinks", Priority: 2}},
			},
			{
				ID: "prod-special", Name: "Chef's Special", Slug: "chefs-special",
				IsActive: true,
			},
		},
	}
}

var errMenuUnavailable = errors.New("catalog backend offline")

// mockMenuServiceError fails every operation, for error-path tests.
type mockMenuServiceError struct{}

func (mockMenuServiceError) QueryMenu(context.Context, domain.Filter) (domain.MenuView, error) {
	return domain.MenuView{}, errMenuUnavailable
}

func (mockMenuServiceError) OrganizeMenu(context.Context) (domain.OrganizedMenu, error) {
	return domain.OrganizedMenu{}, errMenuUnavailable
}

func (mockMenuServiceError) Statistics(context.Context, domain.Filter) (domain.MenuStatistics, error) {
	return domain.MenuStatistics{}, errMenuUnavailable
}

func (mockMenuServiceError) Validate(context.Context) (domain.ValidationReport, error) {
	return domain.ValidationReport{}, errMenuUnavailable
}
