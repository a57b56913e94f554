package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSnapshot_TagNames tests the tag id to name lookup
func TestSnapshot_TagNames(t *testing.T) {
	snap := Snapshot{
		Tags: []Tag{
			{ID: "tag-1", Name: "Vegan", Slug: "vegan"},
			{ID: "tag-2", Name: "Spicy", Slug: "spicy"},
		},
	}

	names := snap.TagNames()
	require.Len(t, names, 2)
	assert.Equal(t, "Vegan", names["tag-1"])
	assert.Equal(t, "Spicy", names["tag-2"])

	_, ok := names["tag-3"]
	assert.False(t, ok)
}

// TestSnapshot_Clone_Independence tests that mutating a clone leaves the original intact
func TestSnapshot_Clone_Independence(t *testing.T) {
	price := int64(1200)
	calories := 800

	snap := Snapshot{
		Categories: []Category{
			{
				ID:   "cat-1",
				Name: "Pizza",
				AvailabilityBinds: []AvailabilityBind{
					{OutletID: "outlet-1", Channel: ChannelDelivery},
				},
			},
		},
		Products: []Product{
			{
				ID:        "prod-1",
				Name:      "Margherita",
				Price:     &price,
				Nutrition: &Nutrition{Calories: &calories},
				Images:    []Image{{URL: "https://cdn.example.com/margherita.jpg"}},
				Tags:      []TagBind{{TagID: "tag-1", Priority: 1}},
				CategoryBinds: []CategoryBind{
					{CategoryID: "cat-1", Priority: 1},
				},
				AvailabilityBinds: []AvailabilityBind{
					{OutletID: "outlet-1", Channel: ChannelDelivery},
				},
			},
		},
		Tags: []Tag{{ID: "tag-1", Name: "Classic"}},
	}

	clone := snap.Clone()

	// Mutate every nested structure of the clone.
	clone.Categories[0].Name = "Changed"
	clone.Categories[0].AvailabilityBinds[0].OutletID = "outlet-9"
	*clone.Products[0].Price = 9999
	*clone.Products[0].Nutrition.Calories = 1
	clone.Products[0].Images[0].URL = "changed"
	clone.Products[0].Tags[0].TagID = "changed"
	clone.Products[0].CategoryBinds[0].CategoryID = "changed"
	clone.Products[0].AvailabilityBinds[0].OutletID = "changed"
	clone.Tags[0].Name = "Changed"

	assert.Equal(t, "Pizza", snap.Categories[0].Name)
	assert.Equal(t, "outlet-1", snap.Categories[0].AvailabilityBinds[0].OutletID)
	assert.Equal(t, int64(1200), *snap.Products[0].Price)
	assert.Equal(t, 800, *snap.Products[0].Nutrition.Calories)
	assert.Equal(t, "https://cdn.example.com/margherita.jpg", snap.Products[0].Images[0].URL)
	assert.Equal(t, "tag-1", snap.Products[0].Tags[0].TagID)
	assert.Equal(t, "cat-1", snap.Products[0].CategoryBinds[0].CategoryID)
	assert.Equal(t, "outlet-1", snap.Products[0].AvailabilityBinds[0].OutletID)
	assert.Equal(t, "Classic", snap.Tags[0].Name)
}

// TestSnapshot_Clone_NilFields tests cloning products with optional fields unset
func TestSnapshot_Clone_NilFields(t *testing.T) {
	snap := Snapshot{
		Products: []Product{{ID: "prod-1", Name: "Water"}},
	}

	clone := snap.Clone()

	require.Len(t, clone.Products, 1)
	assert.Nil(t, clone.Products[0].Price)
	assert.Nil(t, clone.Products[0].Nutrition)
	assert.Nil(t, clone.Products[0].Images)
	assert.Nil(t, clone.Products[0].CategoryBinds)
}

// TestSnapshot_Clone_Empty tests cloning an empty snapshot
func TestSnapshot_Clone_Empty(t *testing.T) {
	clone := Snapshot{}.Clone()

	assert.Empty(t, clone.Categories)
	assert.Empty(t, clone.Products)
	assert.Empty(t, clone.Tags)
}
