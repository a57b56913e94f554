package file

import (
	"fmt"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// snapshotDocument is the on-disk JSON shape of a catalog snapshot,
// matching the restomenu export format.
type snapshotDocument struct {
	Categories []categoryDocument `json:"categories"`
	Products   []productDocument  `json:"products"`
	Tags       []tagDocument      `json:"tags"`
}

type categoryDocument struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	Priority     int                    `json:"priority"`
	IsActive     bool                   `json:"is_active"`
	ParentID     string                 `json:"parent_id,omitempty"`
	Availability []availabilityDocument `json:"availability,omitempty"`
}

type productDocument struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Slug         string                 `json:"slug"`
	Description  string                 `json:"description,omitempty"`
	IsActive     bool                   `json:"is_active"`
	Price        *int64                 `json:"price,omitempty"`
	Priority     int                    `json:"priority,omitempty"`
	Nutrition    *nutritionDocument     `json:"nutrition,omitempty"`
	Images       []imageDocument        `json:"images,omitempty"`
	Tags         []tagBindDocument      `json:"tags,omitempty"`
	Categories   []categoryBindDocument `json:"categories,omitempty"`
	Availability []availabilityDocument `json:"availability,omitempty"`
}

type tagDocument struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type nutritionDocument struct {
	Calories     *int `json:"calories,omitempty"`
	Protein      *int `json:"protein,omitempty"`
	Fat          *int `json:"fat,omitempty"`
	Carbohydrate *int `json:"carbohydrate,omitempty"`
}

type imageDocument struct {
	URL string `json:"url"`
	Alt string `json:"alt,omitempty"`
}

type tagBindDocument struct {
	TagID    string `json:"tag_id"`
	Priority int    `json:"priority,omitempty"`
}

type categoryBindDocument struct {
	CategoryID string `json:"category_id"`
	Priority   int    `json:"priority,omitempty"`
}

type availabilityDocument struct {
	OutletID string `json:"outlet_id"`
	Channel  string `json:"channel"`
}

// toDomain converts the document into a domain snapshot. Fulfillment
// channels are validated here so a typo in the document fails the load
// instead of silently hiding products.
func (d snapshotDocument) toDomain() (domain.Snapshot, error) {
	var snap domain.Snapshot

	for _, c := range d.Categories {
		binds, err := toAvailabilityBinds(c.Availability)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("category %q: %w", c.ID, err)
		}
		snap.Categories = append(snap.Categories, domain.Category{
			ID:                c.ID,
			Name:              c.Name,
			Slug:              c.Slug,
			Priority:          c.Priority,
			IsActive:          c.IsActive,
			ParentID:          c.ParentID,
			AvailabilityBinds: binds,
		})
	}

	for _, p := range d.Products {
		binds, err := toAvailabilityBinds(p.Availability)
		if err != nil {
			return domain.Snapshot{}, fmt.Errorf("product %q: %w", p.ID, err)
		}
		snap.Products = append(snap.Products, domain.Product{
			ID:                p.ID,
			Name:              p.Name,
			Slug:              p.Slug,
			Description:       p.Description,
			IsActive:          p.IsActive,
			Price:             p.Price,
			Priority:          p.Priority,
			Nutrition:         toNutrition(p.Nutrition),
			Images:            toImages(p.Images),
			Tags:              toTagBinds(p.Tags),
			CategoryBinds:     toCategoryBinds(p.Categories),
			AvailabilityBinds: binds,
		})
	}

	for _, t := range d.Tags {
		snap.Tags = append(snap.Tags, domain.Tag{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	return snap, nil
}

func toAvailabilityBinds(docs []availabilityDocument) ([]domain.AvailabilityBind, error) {
	if len(docs) == 0 {
		return nil, nil
	}
	binds := make([]domain.AvailabilityBind, 0, len(docs))
	for _, a := range docs {
		ch := domain.Channel(a.Channel)
		if !ch.IsValid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownChannel, a.Channel)
		}
		binds = append(binds, domain.AvailabilityBind{OutletID: a.OutletID, Channel: ch})
	}
	return binds, nil
}

func toNutrition(doc *nutritionDocument) *domain.Nutrition {
	if doc == nil {
		return nil
	}
	return &domain.Nutrition{
		Calories:     doc.Calories,
		Protein:      doc.Protein,
		Fat:          doc.Fat,
		Carbohydrate: doc.Carbohydrate,
	}
}

func toImages(docs []imageDocument) []domain.Image {
	if len(docs) == 0 {
		return nil
	}
	images := make([]domain.Image, 0, len(docs))
	for _, img := range docs {
		images = append(images, domain.Image{URL: img.URL, Alt: img.Alt})
	}
	return images
}

func toTagBinds(docs []tagBindDocument) []domain.TagBind {
	if len(docs) == 0 {
		return nil
	}
	binds := make([]domain.TagBind, 0, len(docs))
	for _, b := range docs {
		binds = append(binds, domain.TagBind{TagID: b.TagID, Priority: b.Priority})
	}
	return binds
}

func toCategoryBinds(docs []categoryBindDocument) []domain.CategoryBind {
	if len(docs) == 0 {
		return nil
	}
	binds := make([]domain.CategoryBind, 0, len(docs))
	for _, b := range docs {
		binds = append(binds, domain.CategoryBind{CategoryID: b.CategoryID, Priority: b.Priority})
	}
	return binds
}
