package services

import (
	"fmt"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

// ValidateMenu checks an organized menu for catalog quality problems.
// Every finding maps to exactly one recommendation; a report with no
// findings is valid.
func ValidateMenu(menu domain.OrganizedMenu) domain.ValidationReport {
	var report domain.ValidationReport

	emptyCategories := 0
	for _, c := range menu.Categories {
		if len(c.Products) == 0 {
			emptyCategories++
		}
	}
	if emptyCategories > 0 {
		addFinding(&report, domain.FindingEmptyCategories, emptyCategories,
			fmt.Sprintf("%d categories have no products", emptyCategories),
			"Assign products to empty categories or deactivate them")
	}

	if n := len(menu.Uncategorized); n > 0 {
		addFinding(&report, domain.FindingUncategorizedProducts, n,
			fmt.Sprintf("%d products are not bound to any category", n),
			"Bind uncategorized products to a category so guests can find them")
	}

	missingPrice := 0
	missingImages := 0
	for _, p := range distinctProducts(menu) {
		if p.Price == nil {
			missingPrice++
		}
		if len(p.Images) == 0 {
			missingImages++
		}
	}
	if missingPrice > 0 {
		addFinding(&report, domain.FindingMissingPrice, missingPrice,
			fmt.Sprintf("%d products have no price", missingPrice),
			"Set a price on unpriced products or withdraw them from sale")
	}
	if missingImages > 0 {
		addFinding(&report, domain.FindingMissingImages, missingImages,
			fmt.Sprintf("%d products have no images", missingImages),
			"Add at least one photo to products without images")
	}

	report.IsValid = len(report.Findings) == 0
	return report
}

func addFinding(report *domain.ValidationReport, code domain.FindingCode, count int, message, recommendation string) {
	report.Findings = append(report.Findings, domain.Finding{
		Code:    code,
		Count:   count,
		Message: message,
	})
	report.Recommendations = append(report.Recommendations, recommendation)
}
