/*
Package main is the entry point for the asset-hub CLI.

asset-hub tracks physical and software assets for an organization:
asset records, an owner registry, multi-criteria queries, aggregate
reports, and an append-only query history.

Usage:
  asset-hub [command]

Available Commands:
  add         Add a new asset
  update      Update an existing asset
  remove      Remove an asset
  list        List all assets
  owner       Manage the owner registry
  search      Search assets by a single field
  query       Filter assets by multiple criteria
  report      Generate aggregate reports
  export      Export the collection
  import      Import a bundle
  backup      Write a timestamped bundle
  history     Show recent query history
  help        Help about any command

Examples:
  # Register an asset
  asset-hub add LAP-001 --name "Dell XPS 13" --type Hardware --status Active

  # Find everything assigned to Alice
  asset-hub search owner alice

  # Warranty overview
  asset-hub report warranty
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/cli"
)

// Version information (set via ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "asset-hub",
		Short: "Track assets, owners, and warranties from the command line",
		Long: `asset-hub is a single-user asset tracker. It keeps the collection in
plain JSON files under the data directory, records every search and
filter in a local query history, and computes cost, status, owner, and
warranty reports on demand.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	}

	rootCmd.PersistentFlags().StringVar(&cli.DataDir, "data-dir", "",
		"Data directory (default ~/.asset-hub)")

	rootCmd.AddCommand(cli.NewAddCmd())
	rootCmd.AddCommand(cli.NewUpdateCmd())
	rootCmd.AddCommand(cli.NewRemoveCmd())
	rootCmd.AddCommand(cli.NewListCmd())
	rootCmd.AddCommand(cli.NewOwnerCmd())
	rootCmd.AddCommand(cli.NewSearchCmd())
	rootCmd.AddCommand(cli.NewQueryCmd())
	rootCmd.AddCommand(cli.NewReportCmd())
	rootCmd.AddCommand(cli.NewExportCmd())
	rootCmd.AddCommand(cli.NewImportCmd())
	rootCmd.AddCommand(cli.NewBackupCmd())
	rootCmd.AddCommand(cli.NewHistoryCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
