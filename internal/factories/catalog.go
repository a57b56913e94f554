// Package factories generates fake catalog snapshots for the demo
// command and for tests that want a realistic menu without fixtures.
package factories

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

var fake = faker.New()

// menuSections maps section names to their item name pools.
var menuSections = map[string][]string{
	"Pizza":    {"Margherita", "Pepperoni", "Quattro Formaggi", "Hawaiian", "Veggie Supreme", "Diavola"},
	"Pasta":    {"Spaghetti Carbonara", "Penne Arrabbiata", "Lasagna", "Fettuccine Alfredo", "Pesto Linguine"},
	"Salads":   {"Caesar Salad", "Greek Salad", "Cobb Salad", "Quinoa Salad", "Caprese"},
	"Burgers":  {"Classic Cheeseburger", "BBQ Bacon Burger", "Veggie Burger", "Mushroom Swiss Burger"},
	"Soups":    {"Tomato Soup", "Mushroom Cream Soup", "Chicken Noodle Soup", "Pumpkin Soup"},
	"Desserts": {"Tiramisu", "Cheesecake", "Panna Cotta", "Chocolate Fondant", "Apple Pie"},
	"Drinks":   {"Cola", "Fresh Orange Juice", "Still Water", "Iced Tea", "Espresso", "Cappuccino"},
}

// sectionOrder keeps snapshot output stable for a given selection size.
var sectionOrder = []string{"Pizza", "Pasta", "Salads", "Burgers", "Soups", "Desserts", "Drinks"}

var tagNames = []string{
	"Italian", "Vegetarian", "Vegan", "Spicy", "Classic",
	"New", "Gluten Free", "Kids", "Seasonal",
}

// CatalogFactory builds snapshots of fake categories, products and tags.
// One factory keeps slugs unique across everything it creates.
type CatalogFactory struct {
	slugCounts map[string]int
}

// NewCatalogFactory creates a catalog factory.
func NewCatalogFactory() *CatalogFactory {
	return &CatalogFactory{slugCounts: make(map[string]int)}
}

// Snapshot builds a showcase catalog: up to seven populated sections, one
// deliberately empty section, an uncategorized chef's special, and a few
// products with gaps (no price, no images) so statistics and validation
// have something to report.
func (cf *CatalogFactory) Snapshot(sections int) domain.Snapshot {
	if sections <= 0 || sections > len(sectionOrder) {
		sections = len(sectionOrder)
	}

	tags := cf.Tags()

	var snap domain.Snapshot
	snap.Tags = tags

	outlets := []string{uuid.NewString(), uuid.NewString()}

	for i, name := range sectionOrder[:sections] {
		category := cf.Category(name, i+1)
		snap.Categories = append(snap.Categories, category)

		pool := menuSections[name]
		count := fake.IntBetween(3, len(pool))
		for j := 0; j < count; j++ {
			product := cf.Product(pool[j], category.ID, j+1, tags, outlets)
			snap.Products = append(snap.Products, product)
		}
	}

	// An empty section for the validator to flag.
	snap.Categories = append(snap.Categories, cf.Category("Seasonal Specials", sections+1))

	// A chef's special outside every category, unpriced on purpose.
	special := cf.Product("Chef's Special", "", 0, tags, outlets)
	special.CategoryBinds = nil
	special.Price = nil
	snap.Products = append(snap.Products, special)

	return snap
}

// Category builds one category with a fresh id and a unique slug.
func (cf *CatalogFactory) Category(name string, priority int) domain.Category {
	return domain.Category{
		ID:       uuid.NewString(),
		Name:     name,
		Slug:     cf.uniqueSlug(name),
		Priority: priority,
		IsActive: true,
	}
}

// Tags builds the display tag set products bind into.
func (cf *CatalogFactory) Tags() []domain.Tag {
	tags := make([]domain.Tag, len(tagNames))
	for i, name := range tagNames {
		tags[i] = domain.Tag{
			ID:   uuid.NewString(),
			Name: name,
			Slug: cf.uniqueSlug(name),
		}
	}
	return tags
}

// Product builds one product bound to the given category. An empty
// categoryID leaves the product uncategorized. Roughly every tenth
// product ships without a price and every fifth without images, matching
// the rough shape of a real half-maintained catalog.
func (cf *CatalogFactory) Product(name, categoryID string, bindPriority int, tags []domain.Tag, outlets []string) domain.Product {
	p := domain.Product{
		ID:          cuid.New(),
		Name:        name,
		Slug:        cf.uniqueSlug(name),
		Description: fake.Lorem().Sentence(8),
		IsActive:    fake.IntBetween(0, 9) > 0,
		Priority:    fake.IntBetween(0, 100),
		Tags:        pickTagBinds(tags),
	}

	if fake.IntBetween(0, 9) > 0 {
		price := int64(fake.IntBetween(35, 245)) * 10
		p.Price = &price
	}

	if fake.IntBetween(0, 4) > 0 {
		p.Images = []domain.Image{{
			URL: fmt.Sprintf("https://img.restomenu.example/%s.jpg", p.Slug),
			Alt: name,
		}}
	}

	if fake.Bool() {
		p.Nutrition = randomNutrition()
	}

	if categoryID != "" {
		p.CategoryBinds = []domain.CategoryBind{{CategoryID: categoryID, Priority: bindPriority}}
	}

	// Roughly a third of the catalog is outlet- or channel-restricted.
	if fake.IntBetween(0, 2) == 0 {
		p.AvailabilityBinds = []domain.AvailabilityBind{{
			OutletID: outlets[rand.Intn(len(outlets))],
			Channel:  randomChannel(),
		}}
	}

	return p
}

// uniqueSlug derives a slug from a name, suffixing a counter when the
// base form was already handed out.
func (cf *CatalogFactory) uniqueSlug(name string) string {
	base := strings.ToLower(strings.ReplaceAll(name, " ", "-"))
	base = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return -1
	}, base)

	cf.slugCounts[base]++
	if n := cf.slugCounts[base]; n > 1 {
		return fmt.Sprintf("%s-%d", base, n-1)
	}
	return base
}

func pickTagBinds(tags []domain.Tag) []domain.TagBind {
	if len(tags) == 0 {
		return nil
	}
	count := fake.IntBetween(0, 3)
	if count == 0 {
		return nil
	}

	picked := rand.Perm(len(tags))[:min(count, len(tags))]
	binds := make([]domain.TagBind, 0, len(picked))
	for i, idx := range picked {
		binds = append(binds, domain.TagBind{TagID: tags[idx].ID, Priority: i + 1})
	}
	return binds
}

func randomNutrition() *domain.Nutrition {
	n := &domain.Nutrition{}
	calories := fake.IntBetween(120, 1200)
	n.Calories = &calories
	if fake.Bool() {
		protein := fake.IntBetween(2, 60)
		n.Protein = &protein
	}
	if fake.Bool() {
		fat := fake.IntBetween(1, 80)
		n.Fat = &fat
	}
	if fake.Bool() {
		carbs := fake.IntBetween(5, 150)
		n.Carbohydrate = &carbs
	}
	return n
}

func randomChannel() domain.Channel {
	channels := []domain.Channel{domain.ChannelDelivery, domain.ChannelPickup, domain.ChannelInside}
	return channels[rand.Intn(len(channels))]
}
