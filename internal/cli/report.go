package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/export"
	"github.com/afmdw/asset-hub/internal/report"
)

// NewReportCmd creates the 'report' command group.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate aggregate reports",
		Long:  `Generate summary, owner, status, warranty, and cost reports over the collection.`,
		Example: `  asset-hub report summary
  asset-hub report warranty
  asset-hub report cost`,
	}

	cmd.AddCommand(newSummaryReportCmd())
	cmd.AddCommand(newOwnerReportCmd())
	cmd.AddCommand(newStatusReportCmd())
	cmd.AddCommand(newWarrantyReportCmd())
	cmd.AddCommand(newCostReportCmd())
	return cmd
}

func newSummaryReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Asset summary report",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			s := report.BuildSummary(app.repo.List())

			printReportHeader("ASSET SUMMARY REPORT")
			fmt.Printf("Total Assets: %d\n", s.TotalAssets)
			if s.TotalAssets > 0 {
				fmt.Printf("Total Cost: %s\n\n", export.FormatCurrency(s.TotalCost))
				fmt.Println("Assets by Type:")
				for _, g := range s.ByType {
					fmt.Printf("  %s: %d\n", g.Key, g.Count)
				}
				fmt.Println("\nAssets by Status:")
				for _, g := range s.ByStatus {
					fmt.Printf("  %s: %d\n", g.Key, g.Count)
				}
			}
			return nil
		},
	}
}

func newOwnerReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "owners",
		Short: "Asset distribution by owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			groups := report.BuildOwnerDistribution(app.repo.List())

			printReportHeader("OWNER DISTRIBUTION REPORT")
			if len(groups) == 0 {
				fmt.Println("No assets assigned to owners.")
				return nil
			}
			for _, g := range groups {
				fmt.Printf("\nOwner: %s\n", g.Owner)
				fmt.Printf("  Total Assets: %d\n", g.Count)
				fmt.Printf("  Total Cost: %s\n", export.FormatCurrency(g.TotalCost))
				fmt.Println("  Assets:")
				for _, a := range g.Assets {
					fmt.Printf("    - %s (%s)\n", a.Name, a.ID)
				}
			}
			return nil
		},
	}
}

func newStatusReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Asset status report",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			groups := report.BuildStatusReport(app.repo.List())

			printReportHeader("ASSET STATUS REPORT")
			if len(groups) == 0 {
				fmt.Println("No assets found.")
				return nil
			}
			for _, g := range groups {
				fmt.Printf("\n%s: %d asset(s)\n", g.Status, len(g.Assets))
				for _, a := range g.Assets {
					fmt.Printf("  - %s (ID: %s)\n", a.Name, a.ID)
				}
			}
			return nil
		},
	}
}

func newWarrantyReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "warranty",
		Short: "Warranty status report",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			rep := report.BuildWarranty(app.repo.List(), time.Now())

			printReportHeader("WARRANTY STATUS REPORT")
			fmt.Printf("Valid Warranty: %d\n", len(rep.Valid))
			fmt.Printf("Expiring Soon (< %d days): %d\n", report.ExpiringSoonDays, len(rep.ExpiringSoon))
			fmt.Printf("Expired: %d\n", len(rep.Expired))

			if len(rep.Expired) > 0 {
				fmt.Println("\nEXPIRED WARRANTIES:")
				for _, item := range rep.Expired {
					fmt.Printf("  - %s (expired %d days ago)\n", item.Asset.Name, -item.Days)
				}
			}
			if len(rep.ExpiringSoon) > 0 {
				fmt.Println("\nEXPIRING SOON:")
				for _, item := range rep.ExpiringSoon {
					fmt.Printf("  - %s (expires in %d days)\n", item.Asset.Name, item.Days)
				}
			}
			return nil
		},
	}
}

func newCostReportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cost",
		Short: "Cost analysis report",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			ca := report.BuildCostAnalysis(app.repo.List())

			printReportHeader("COST ANALYSIS REPORT")
			fmt.Printf("Total Assets: %d\n", ca.TotalAssets)
			fmt.Printf("Total Cost: %s\n", export.FormatCurrency(ca.TotalCost))
			fmt.Printf("Average Cost: %s\n\n", export.FormatCurrency(ca.AverageCost))

			fmt.Println("Cost by Type:")
			for _, tc := range ca.ByType {
				fmt.Printf("  %s: %s\n", tc.Type, export.FormatCurrency(tc.Cost))
			}
			return nil
		},
	}
}

func printReportHeader(title string) {
	fmt.Println(title)
	fmt.Printf("Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
}
