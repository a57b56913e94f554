package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// WriteSnapshot serialises a snapshot to the JSON document format at
// path. The document is written to a temporary file and renamed into
// place, so a watcher on the target never observes a half-written
// catalog.
func WriteSnapshot(path string, snap domain.Snapshot) error {
	doc := fromDomain(snap)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode catalog snapshot: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".catalog-*.json")
	if err != nil {
		return fmt.Errorf("write catalog snapshot: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write catalog snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write catalog snapshot: %w", err)
	}
	return nil
}

// fromDomain converts a domain snapshot into its on-disk document form.
func fromDomain(snap domain.Snapshot) snapshotDocument {
	var doc snapshotDocument

	for _, c := range snap.Categories {
		doc.Categories = append(doc.Categories, categoryDocument{
			ID:           c.ID,
			Name:         c.Name,
			Slug:         c.Slug,
			Priority:     c.Priority,
			IsActive:     c.IsActive,
			ParentID:     c.ParentID,
			Availability: fromAvailabilityBinds(c.AvailabilityBinds),
		})
	}

	for _, p := range snap.Products {
		doc.Products = append(doc.Products, productDocument{
			ID:           p.ID,
			Name:         p.Name,
			Slug:         p.Slug,
			Description:  p.Description,
			IsActive:     p.IsActive,
			Price:        p.Price,
			Priority:     p.Priority,
			Nutrition:    fromNutrition(p.Nutrition),
			Images:       fromImages(p.Images),
			Tags:         fromTagBinds(p.Tags),
			Categories:   fromCategoryBinds(p.CategoryBinds),
			Availability: fromAvailabilityBinds(p.AvailabilityBinds),
		})
	}

	for _, t := range snap.Tags {
		doc.Tags = append(doc.Tags, tagDocument{ID: t.ID, Name: t.Name, Slug: t.Slug})
	}

	return doc
}

func fromAvailabilityBinds(binds []domain.AvailabilityBind) []availabilityDocument {
	if len(binds) == 0 {
		return nil
	}
	docs := make([]availabilityDocument, 0, len(binds))
	for _, b := range binds {
		docs = append(docs, availabilityDocument{OutletID: b.OutletID, Channel: b.Channel.String()})
	}
	return docs
}

func fromNutrition(n *domain.Nutrition) *nutritionDocument {
	if n == nil {
		return nil
	}
	return &nutritionDocument{
		Calories:     n.Calories,
		Protein:      n.Protein,
		Fat:          n.Fat,
		Carbohydrate: n.Carbohydrate,
	}
}

func fromImages(images []domain.Image) []imageDocument {
	if len(images) == 0 {
		return nil
	}
	docs := make([]imageDocument, 0, len(images))
	for _, img := range images {
		docs = append(docs, imageDocument{URL: img.URL, Alt: img.Alt})
	}
	return docs
}

func fromTagBinds(binds []domain.TagBind) []tagBindDocument {
	if len(binds) == 0 {
		return nil
	}
	docs := make([]tagBindDocument, 0, len(binds))
	for _, b := range binds {
		docs = append(docs, tagBindDocument{TagID: b.TagID, Priority: b.Priority})
	}
	return docs
}

func fromCategoryBinds(binds []domain.CategoryBind) []categoryBindDocument {
	if len(binds) == 0 {
		return nil
	}
	docs := make([]categoryBindDocument, 0, len(binds))
	for _, b := range binds {
		docs = append(docs, categoryBindDocument{CategoryID: b.CategoryID, Priority: b.Priority})
	}
	return docs
}
