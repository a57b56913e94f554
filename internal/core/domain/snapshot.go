package domain

// Snapshot is a point-in-time view of the whole catalog. The query engine
// works on snapshots and never mutates them.
type Snapshot struct {
	Categories []Category
	Products   []Product
	Tags       []Tag
}

// TagNames returns a lookup from tag id to display name.
func (s Snapshot) TagNames() map[string]string {
	names := make(map[string]string, len(s.Tags))
	for _, t := range s.Tags {
		names[t.ID] = t.Name
	}
	return names
}

// Clone returns a deep copy of the snapshot. Callers may mutate the copy
// freely without affecting the original.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Categories: make([]Category, len(s.Categories)),
		Products:   make([]Product, len(s.Products)),
		Tags:       make([]Tag, len(s.Tags)),
	}
	for i, c := range s.Categories {
		out.Categories[i] = cloneCategory(c)
	}
	for i, p := range s.Products {
		out.Products[i] = cloneProduct(p)
	}
	copy(out.Tags, s.Tags)
	return out
}

func cloneCategory(c Category) Category {
	out := c
	if c.AvailabilityBinds != nil {
		out.AvailabilityBinds = make([]AvailabilityBind, len(c.AvailabilityBinds))
		copy(out.AvailabilityBinds, c.AvailabilityBinds)
	}
	return out
}

func cloneProduct(p Product) Product {
	out := p
	if p.Price != nil {
		v := *p.Price
		out.Price = &v
	}
	if p.Nutrition != nil {
		n := *p.Nutrition
		if p.Nutrition.Calories != nil {
			v := *p.Nutrition.Calories
			n.Calories = &v
		}
		if p.Nutrition.Protein != nil {
			v := *p.Nutrition.Protein
			n.Protein = &v
		}
		if p.Nutrition.Fat != nil {
			v := *p.Nutrition.Fat
			n.Fat = &v
		}
		if p.Nutrition.Carbohydrate != nil {
			v := *p.Nutrition.Carbohydrate
			n.Carbohydrate = &v
		}
		out.Nutrition = &n
	}
	if p.Images != nil {
		out.Images = make([]Image, len(p.Images))
		copy(out.Images, p.Images)
	}
	if p.Tags != nil {
		out.Tags = make([]TagBind, len(p.Tags))
		copy(out.Tags, p.Tags)
	}
	if p.CategoryBinds != nil {
		out.CategoryBinds = make([]CategoryBind, len(p.CategoryBinds))
		copy(out.CategoryBinds, p.CategoryBinds)
	}
	if p.AvailabilityBinds != nil {
		out.AvailabilityBinds = make([]AvailabilityBind, len(p.AvailabilityBinds))
		copy(out.AvailabilityBinds, p.AvailabilityBinds)
	}
	return out
}
