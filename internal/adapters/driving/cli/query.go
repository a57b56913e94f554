package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/8ui/restomenu-core-sub000/internal/core/domain"
)

var (
	queryFilter filterFlags
	queryJSON   bool
)

var queryCmd = &cobra.Command{
	Use:   "query [term]",
	Short: "Query the menu",
	Long: `Organizes the catalog into menu sections and narrows them by the given
filters. A search term ranks products by relevance; every filter
dimension combines with the others by AND.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryFilter.register(queryCmd)
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output the menu view as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	if _, err := ensureConfigStore(); err != nil {
		return err
	}
	service, err := ensureMenuService()
	if err != nil {
		return err
	}

	filter, err := queryFilter.build(cmd, args)
	if err != nil {
		return err
	}

	view, err := service.QueryMenu(context.Background(), filter)
	if err != nil {
		return fmt.Errorf("query menu: %w", err)
	}

	if queryJSON {
		return outputJSON(cmd, view)
	}
	return outputMenuView(cmd, view)
}

// outputJSON prints any result as indented JSON.
func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputMenuView(cmd *cobra.Command, view domain.MenuView) error {
	if view.TotalProducts == 0 {
		cmd.Println("No products match.")
		return nil
	}

	cmd.Printf("Menu: %d products across %d categories\n", view.TotalProducts, view.TotalCategories)
	if view.SortFallback {
		cmd.Println("(requested sort could not be satisfied, catalog order kept)")
	}
	cmd.Println()

	for _, c := range view.Menu.Categories {
		cmd.Printf("%s\n", c.Category.Name)
		printProducts(cmd, c.Products, view.Scores)
		cmd.Println()
	}

	if len(view.Menu.Uncategorized) > 0 {
		cmd.Println("Uncategorized")
		printProducts(cmd, view.Menu.Uncategorized, view.Scores)
		cmd.Println()
	}

	return nil
}

func printProducts(cmd *cobra.Command, products []domain.Product, scores map[string]int) {
	for i, p := range products {
		var details []string
		if p.Price != nil {
			details = append(details, formatPrice(*p.Price))
		}
		if !p.IsActive {
			details = append(details, "inactive")
		}
		if scores != nil {
			details = append(details, fmt.Sprintf("score %d", scores[p.ID]))
		}

		line := fmt.Sprintf("  [%d] %s", i+1, p.Name)
		if len(details) > 0 {
			line += "  (" + strings.Join(details, ", ") + ")"
		}
		cmd.Println(line)
	}
}

// formatPrice renders minor currency units as a decimal amount.
func formatPrice(minor int64) string {
	return fmt.Sprintf("%d.%02d", minor/100, minor%100)
}
