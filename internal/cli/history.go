package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/model"
)

// NewHistoryCmd creates the 'history' command for inspecting the query
// log.
func NewHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent query history",
		Long:  `Display the most recent recorded searches and filters, newest first.`,
		Example: `  asset-hub history
  asset-hub history --limit 10
  asset-hub history clear`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 50, "Maximum entries to show")
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func runHistory(limit int) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	entries, err := app.history.Recent(limit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No query history found.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.CreatedDate.Format(model.TimestampLayout), e.QueryType)
		fmt.Printf("  Parameters: %s\n", e.Params)
		fmt.Printf("  Results:    %d\n\n", e.ResultCount)
	}
	return nil
}

func newHistoryClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete the entire query history",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			if err := app.history.Clear(); err != nil {
				return fmt.Errorf("failed to clear history: %w", err)
			}

			fmt.Println("✓ Query history cleared")
			return nil
		},
	}
}
