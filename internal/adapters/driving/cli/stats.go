package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

var (
	statsFilter filterFlags
	statsJSON   bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [term]",
	Short: "Report catalog statistics",
	Long: `Computes aggregate statistics over the catalog: product and category
counts, the price distribution, the tag histogram and nutrition
averages. Filters narrow the view first, so the report can cover just
one category, outlet or search result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStats,
}

func init() {
	statsFilter.register(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output statistics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	if _, err := ensureConfigStore(); err != nil {
		return err
	}
	service, err := ensureMenuService()
	if err != nil {
		return err
	}

	filter, err := statsFilter.build(cmd, args)
	if err != nil {
		return err
	}

	stats, err := service.Statistics(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("compute statistics: %w", err)
	}

	if statsJSON {
		return outputJSON(cmd, stats)
	}
	return outputStatistics(cmd, stats)
}

func outputStatistics(cmd *cobra.Command, stats domain.MenuStatistics) error {
	cmd.Println("Products")
	cmd.Printf("  Total: %d (%d active, %d inactive)\n",
		stats.TotalProducts, stats.ActiveProducts, stats.InactiveProducts)
	cmd.Printf("  Priced: %d | With images: %d | With nutrition: %d\n",
		stats.PricedProducts, stats.ProductsWithImages, stats.ProductsWithNutrition)
	cmd.Printf("  Uncategorized: %d\n", stats.UncategorizedProducts)
	cmd.Println()

	cmd.Println("Categories")
	cmd.Printf("  Total: %d (%d with products, %d empty)\n",
		stats.TotalCategories, stats.CategoriesWithProducts, stats.EmptyCategories)
	cmd.Printf("  Average products per non-empty category: %.2f\n", stats.AvgProductsPerCategory)
	cmd.Println()

	if stats.Prices != nil {
		cmd.Println("Prices")
		cmd.Printf("  Min: %s | Max: %s | Mean: %.2f | Median: %.2f\n",
			formatPrice(stats.Prices.Min), formatPrice(stats.Prices.Max),
			stats.Prices.Mean/100, stats.Prices.Median/100)
		cmd.Println()
	}

	if len(stats.TagHistogram) > 0 {
		cmd.Println("Top tags")
		for _, row := range stats.TagHistogram {
			name := row.Name
			if name == "" {
				name = row.TagID
			}
			cmd.Printf("  %-20s %d\n", name, row.Count)
		}
		cmd.Println()
	}

	printNutritionAverages(cmd, stats.Nutrition)
	return nil
}

func printNutritionAverages(cmd *cobra.Command, n domain.NutritionAverages) {
	if n.Calories == nil && n.Protein == nil && n.Fat == nil && n.Carbohydrate == nil {
		return
	}

	cmd.Println("Nutrition averages")
	if n.Calories != nil {
		cmd.Printf("  Calories: %.2f\n", *n.Calories)
	}
	if n.Protein != nil {
		cmd.Printf("  Protein: %.2f\n", *n.Protein)
	}
	if n.Fat != nil {
		cmd.Printf("  Fat: %.2f\n", *n.Fat)
	}
	if n.Carbohydrate != nil {
		cmd.Printf("  Carbohydrate: %.2f\n", *n.Carbohydrate)
	}
}
