package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check catalog quality",
	Long: `Checks the catalog for structural problems: empty categories,
uncategorized products, missing prices and missing images. Each finding
comes with a recommendation.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	service, err := ensureMenuService()
	if err != nil {
		return err
	}

	report, err := service.Validate(context.Background())
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	if validateJSON {
		return outputJSON(cmd, report)
	}

	if report.IsValid {
		cmd.Println("Catalog is valid, no findings.")
		return nil
	}

	cmd.Printf("Found %d issues:\n\n", len(report.Findings))
	for i, finding := range report.Findings {
		cmd.Printf("  [%d] %s\n", i+1, finding.Message)
		cmd.Printf("      -> %s\n", report.Recommendations[i])
	}
	return nil
}
