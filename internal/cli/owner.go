package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewOwnerCmd creates the 'owner' command group for managing the owner
// registry.
func NewOwnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owner",
		Short: "Manage the owner registry",
		Long: `Manage the named owners assets can be assigned to.

Removing an owner does not touch assets still assigned to the name;
the owner reference on an asset is by name only.`,
		Example: `  asset-hub owner add Alice
  asset-hub owner remove Alice
  asset-hub owner list`,
	}

	cmd.AddCommand(newOwnerAddCmd())
	cmd.AddCommand(newOwnerRemoveCmd())
	cmd.AddCommand(newOwnerListCmd())
	return cmd
}

func newOwnerAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new owner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			if _, err := app.reg.Add(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Added owner '%s'\n", args[0])
			return nil
		},
	}
}

func newOwnerRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove an owner from the registry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			if _, err := app.reg.Remove(args[0]); err != nil {
				return err
			}
			fmt.Printf("✓ Removed owner '%s'\n", args[0])
			return nil
		},
	}
}

func newOwnerListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List registered owners",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := openApp()
			if err != nil {
				return err
			}
			defer app.close()

			names := app.reg.Names()
			if len(names) == 0 {
				fmt.Println("No owners registered yet.")
				return nil
			}

			fmt.Printf("Owners (%d):\n\n", len(names))
			for _, name := range names {
				owner, _ := app.reg.Get(name)
				fmt.Printf("  %s\n", name)
				fmt.Printf("    Created: %s\n", owner.CreatedDate)
			}
			return nil
		},
	}
}
