package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/afmdw/asset-hub/internal/model"
)

// assetFlags holds the field flags shared by 'add' and 'update'.
type assetFlags struct {
	name      string
	assetType string
	status    string
	owner     string
	location  string
	acquired  string
	released  string
	cost      string
	warranty  string
	notes     string
}

func (f *assetFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Asset name (required for add)")
	cmd.Flags().StringVarP(&f.assetType, "type", "t", "", "Asset type: "+strings.Join(model.AssetTypes, ", "))
	cmd.Flags().StringVarP(&f.status, "status", "s", "", "Status: "+strings.Join(model.AssetStatuses, ", "))
	cmd.Flags().StringVarP(&f.owner, "owner", "o", "", "Owner name")
	cmd.Flags().StringVarP(&f.location, "location", "l", "", "Location")
	cmd.Flags().StringVar(&f.acquired, "acquired", "", "Acquisition date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.released, "released", "", "Release date (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&f.cost, "cost", "c", "", "Acquisition cost")
	cmd.Flags().StringVarP(&f.warranty, "warranty", "w", "", "Warranty length in months")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
}

func (f *assetFlags) asset(id string) model.Asset {
	return model.Asset{
		ID:              id,
		Name:            f.name,
		Type:            f.assetType,
		Status:          f.status,
		Owner:           f.owner,
		Location:        f.location,
		AcquisitionDate: f.acquired,
		ReleaseDate:     f.released,
		Cost:            f.cost,
		Warranty:        f.warranty,
		Notes:           f.notes,
	}
}

// NewAddCmd creates the 'add' command for registering a new asset.
func NewAddCmd() *cobra.Command {
	var flags assetFlags

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a new asset",
		Long:  `Add a new asset to the collection. The ID must be unique.`,
		Example: `  asset-hub add LAP-001 --name "Dell XPS 13" --type Hardware --status Active \
    --owner Alice --acquired 2024-01-15 --cost 1499.99 --warranty 36`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(args[0], &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runAdd(id string, flags *assetFlags) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	asset, err := app.repo.Create(flags.asset(id))
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added asset '%s' (%s)\n", asset.ID, asset.Name)
	return nil
}

// NewUpdateCmd creates the 'update' command. Update replaces every
// field except the ID, so omitted flags clear their fields. This is
// whole-record replacement, not a patch.
func NewUpdateCmd() *cobra.Command {
	var flags assetFlags

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an existing asset",
		Long: `Replace every field of an existing asset except its ID.
Omitted flags clear the corresponding field.`,
		Example: `  asset-hub update LAP-001 --name "Dell XPS 13" --status "In Repair" --owner Bob`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(args[0], &flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func runUpdate(id string, flags *assetFlags) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	asset, err := app.repo.Update(id, flags.asset(id))
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated asset '%s'\n", asset.ID)
	return nil
}

// NewRemoveCmd creates the 'remove' command for deleting assets.
func NewRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an asset",
		Long:    `Remove an asset from the collection.`,
		Example: `  asset-hub remove LAP-001
  asset-hub rm LAP-001`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(args[0])
		},
	}

	return cmd
}

func runRemove(id string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	removed, err := app.repo.Delete(id)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Removed asset '%s' (%s)\n", removed.ID, removed.Name)
	return nil
}

// NewListCmd creates the 'list' command for listing the collection.
func NewListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all assets",
		Long:    `Display the asset collection in insertion order.`,
		Example: `  asset-hub list
  asset-hub ls --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(jsonOutput)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	return cmd
}

func runList(jsonOutput bool) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.close()

	assets := app.repo.List()

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(assets)
	}

	if len(assets) == 0 {
		fmt.Println("No assets registered.")
		fmt.Println("Run 'asset-hub add' to register one.")
		return nil
	}

	fmt.Printf("Assets (%d):\n\n", len(assets))
	for _, a := range assets {
		printAsset(a)
	}
	return nil
}

func printAsset(a model.Asset) {
	fmt.Printf("  %s  %s\n", a.ID, a.Name)
	fmt.Printf("    Type:     %s\n", a.Type)
	fmt.Printf("    Status:   %s\n", a.Status)
	if a.Owner != "" {
		fmt.Printf("    Owner:    %s\n", a.Owner)
	}
	if a.Location != "" {
		fmt.Printf("    Location: %s\n", a.Location)
	}
	fmt.Println()
}
