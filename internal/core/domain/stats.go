package domain

// PriceDistribution summarises the prices of products carrying a defined
// positive price. All values are in minor currency units.
type PriceDistribution struct {
	Min    int64
	Max    int64
	Mean   float64
	Median float64
}

// TagUsage is one row of the tag histogram.
type TagUsage struct {
	TagID string
	Name  string
	Count int
}

// NutritionAverages carries per-field averages across the products that
// publish each field. Nil means no product published that field.
type NutritionAverages struct {
	Calories     *float64
	Protein      *float64
	Fat          *float64
	Carbohydrate *float64
}

// MenuStatistics is the aggregate report computed over an organized menu.
// Product-level counts are distinct by product id, so a product bound to
// several categories contributes once.
type MenuStatistics struct {
	// TotalProducts is the number of distinct products in the view.
	TotalProducts int

	// ActiveProducts counts products flagged active.
	ActiveProducts int

	// InactiveProducts counts products not flagged active.
	InactiveProducts int

	// TotalCategories is the number of categories in the view.
	TotalCategories int

	// CategoriesWithProducts counts categories holding at least one product.
	CategoriesWithProducts int

	// EmptyCategories counts categories holding no products.
	EmptyCategories int

	// UncategorizedProducts counts products in the uncategorized bucket.
	UncategorizedProducts int

	// AvgProductsPerCategory is the mean product count across non-empty
	// categories, rounded to two decimals. Zero when every category
	// is empty.
	AvgProductsPerCategory float64

	// PricedProducts counts products carrying a defined positive price.
	PricedProducts int

	// Prices summarises positively priced products; nil when none exist.
	Prices *PriceDistribution

	// ProductsPerCategory maps category id to the number of products
	// bound to it in the view.
	ProductsPerCategory map[string]int

	// TagHistogram lists the ten most used tags ordered by frequency
	// descending, ties broken by tag id ascending.
	TagHistogram []TagUsage

	// Nutrition averages across products publishing each field.
	Nutrition NutritionAverages

	// ProductsWithImages counts products with at least one image.
	ProductsWithImages int

	// ProductsWithNutrition counts products publishing any nutrition field.
	ProductsWithNutrition int
}
