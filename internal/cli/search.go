package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/model"
	"github.com/afmdw/asset-hub/internal/query"
)

// NewSearchCmd creates the 'search' command for single-field substring
// search.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <field> <term>",
		Short: "Search assets by a single field",
		Long: `Search the collection by case-insensitive substring match on one field.

Fields: ` + strings.Join(query.SearchFields, ", "),
		Example: `  asset-hub search owner ali
  asset-hub search status repair`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(args[0], args[1])
		},
	}

	return cmd
}

func runSearch(field, term string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	results, err := app.engine.Search(field, term)
	if err != nil {
		return err
	}

	printResults(results)
	return nil
}

// NewQueryCmd creates the 'query' command for multi-criteria filtering.
func NewQueryCmd() *cobra.Command {
	var criteria query.Criteria

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Filter assets by multiple criteria",
		Long: `Filter the collection by status, type, owner, and cost range.

Criteria are combined with AND. Omitted criteria (or "All") match
everything; a cost bound that does not parse as a number is ignored.`,
		Example: `  asset-hub query --status Active --type Hardware
  asset-hub query --owner Alice --min-cost 500 --max-cost 2000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(criteria)
		},
	}

	cmd.Flags().StringVar(&criteria.Status, "status", "All", "Status to match exactly")
	cmd.Flags().StringVar(&criteria.Type, "type", "All", "Asset type to match exactly")
	cmd.Flags().StringVar(&criteria.Owner, "owner", "All", "Owner to match exactly")
	cmd.Flags().StringVar(&criteria.MinCost, "min-cost", "", "Minimum cost, inclusive")
	cmd.Flags().StringVar(&criteria.MaxCost, "max-cost", "", "Maximum cost, inclusive")
	return cmd
}

func runQuery(criteria query.Criteria) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	printResults(app.engine.Filter(criteria))
	return nil
}

func printResults(results []model.Asset) {
	fmt.Printf("Found %d matching asset(s)\n\n", len(results))
	for _, a := range results {
		fmt.Printf("  %s  %s\n", a.ID, a.Name)
		fmt.Printf("    Type: %s  Status: %s  Owner: %s  Location: %s\n",
			a.Type, a.Status, a.Owner, a.Location)
		if a.Cost != "" {
			fmt.Printf("    Cost: %s\n", a.Cost)
		}
		fmt.Println()
	}
}
