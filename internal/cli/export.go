package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/export"
)

// NewExportCmd creates the 'export' command group.
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the collection",
		Long:  `Export assets and owners as a JSON bundle, a CSV table, or a per-asset document.`,
		Example: `  asset-hub export bundle assets.json
  asset-hub export csv assets.csv
  asset-hub export doc LAP-001`,
	}

	cmd.AddCommand(newExportBundleCmd())
	cmd.AddCommand(newExportCSVCmd())
	cmd.AddCommand(newExportDocCmd())
	return cmd
}

func newExportBundleCmd() *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "bundle <file>",
		Short: "Export assets and owners as a single bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()

			if asCSV {
				err = export.WriteBundleCSV(f, app.repo.List(), app.reg.All(), time.Now())
			} else {
				err = export.WriteBundle(f, app.repo.List(), app.reg.All(), time.Now())
			}
			if err != nil {
				return err
			}

			fmt.Printf("✓ Exported %d asset(s) and %d owner(s) to %s\n",
				app.repo.Count(), len(app.reg.Names()), args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Write a sectioned CSV bundle instead of JSON")
	return cmd
}

func newExportCSVCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "csv <file>",
		Short: "Export assets as a flat CSV table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			f, err := os.Create(args[0])
			if err != nil {
				return fmt.Errorf("failed to create export file: %w", err)
			}
			defer f.Close()

			if err := export.WriteCSV(f, app.repo.List()); err != nil {
				return err
			}

			fmt.Printf("✓ Exported %d asset(s) to %s\n", app.repo.Count(), args[0])
			return nil
		},
	}
}

func newExportDocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doc <id>",
		Short: "Print one asset as a field/value document",
		Long: `Print a single asset as ordered field/value rows, the layout
document renderers consume.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			asset, ok := app.repo.FindByID(args[0])
			if !ok {
				return fmt.Errorf("asset '%s' not found", args[0])
			}

			for _, row := range export.AssetDocument(asset) {
				fmt.Printf("%-20s %s\n", row.Label, row.Value)
			}
			return nil
		},
	}
}

// NewImportCmd creates the 'import' command for restoring a bundle.
func NewImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bundle, replacing the collection",
		Long: `Import a previously exported JSON bundle. The current assets and
owners are replaced by the bundle's contents.`,
		Example: `  asset-hub import assets.json`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open bundle: %w", err)
			}
			defer f.Close()

			bundle, err := export.ReadBundle(f)
			if err != nil {
				return err
			}

			if err := app.repo.Replace(bundle.Assets); err != nil {
				return err
			}
			if err := app.reg.Replace(bundle.Owners); err != nil {
				return err
			}

			fmt.Printf("✓ Imported %d asset(s) and %d owner(s)\n",
				len(bundle.Assets), len(bundle.Owners))
			return nil
		},
	}
}

// NewBackupCmd creates the 'backup' command.
func NewBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write a timestamped bundle into the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			path, err := export.Backup(app.store.Dir(), app.repo.List(), app.reg.All(), time.Now())
			if err != nil {
				return err
			}

			fmt.Printf("✓ Backup created: %s\n", path)
			return nil
		},
	}
}
