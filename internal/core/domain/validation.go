package domain

// FindingCode names a class of catalog quality problem.
type FindingCode string

// Recognised finding codes.
const (
	// FindingEmptyCategories flags categories with no products.
	FindingEmptyCategories FindingCode = "empty_categories"

	// FindingUncategorizedProducts flags products outside any category.
	FindingUncategorizedProducts FindingCode = "uncategorized_products"

	// FindingMissingPrice flags products without a price.
	FindingMissingPrice FindingCode = "missing_price"

	// FindingMissingImages flags products without images.
	FindingMissingImages FindingCode = "missing_images"
)

// Finding is one detected catalog quality problem.
type Finding struct {
	Code    FindingCode
	Count   int
	Message string
}

// ValidationReport is the outcome of a catalog quality check.
type ValidationReport struct {
	// IsValid is true when no findings were raised.
	IsValid bool

	// Findings lists the detected problems.
	Findings []Finding

	// Recommendations are human-readable follow-up suggestions, one
	// per finding.
	Recommendations []string
}
