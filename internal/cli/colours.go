package cli

import (
	"github.com/spf13/cobra"

	"github.com/blipradar/blipradar/pkg/errors"
	"github.com/blipradar/blipradar/pkg/host"
)

// coloursCommand creates the colours command for managing stored sector
// colours. Stored colours survive dataset rebuilds and override the
// generated palette.
func (c *CLI) coloursCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colours",
		Short: "Manage stored sector colours",
	}

	cmd.AddCommand(c.coloursListCommand())
	cmd.AddCommand(c.coloursSetCommand())
	cmd.AddCommand(c.coloursDeleteCommand())
	cmd.AddCommand(c.coloursClearCommand())

	return cmd
}

// openFileColourStore opens the persistent colour store, failing loudly
// instead of falling back; colour editing needs the real file.
func openFileColourStore() (*host.FileStore, error) {
	path, err := coloursPath()
	if err != nil {
		return nil, err
	}
	return host.OpenFileStore(path)
}

// coloursListCommand creates the "colours list" subcommand.
func (c *CLI) coloursListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored sector colours",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileColourStore()
			if err != nil {
				return err
			}

			ids := store.SectorIDs()
			if len(ids) == 0 {
				printInfo("No stored colours")
				return nil
			}
			printInfo("Stored colours:")
			for _, id := range ids {
				if colour, ok := store.Colour(id); ok {
					printColour(id, colour)
				}
			}
			return nil
		},
	}
}

// coloursSetCommand creates the "colours set" subcommand.
func (c *CLI) coloursSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [sector-id] [colour]",
		Short: "Store a colour for a sector",
		Long: `Set stores a hex colour for a sector id. The id is the slug form of
the sector name: lowercased, with non-alphanumeric runs collapsed to
single hyphens (e.g. "Tools & Frameworks" becomes "tools-frameworks").`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, colour := args[0], args[1]
			if err := errors.ValidateSectorID(id); err != nil {
				return err
			}
			if err := errors.ValidateColour(colour); err != nil {
				return err
			}

			store, err := openFileColourStore()
			if err != nil {
				return err
			}
			if err := store.Set(id, colour); err != nil {
				return err
			}
			printSuccess("Stored colour for %s", id)
			printColour(id, colour)
			return nil
		},
	}
}

// coloursDeleteCommand creates the "colours delete" subcommand.
func (c *CLI) coloursDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [sector-id]",
		Short: "Remove the stored colour for a sector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileColourStore()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			printSuccess("Removed colour for %s", args[0])
			printDetail("The sector falls back to a generated colour")
			return nil
		},
	}
}

// coloursClearCommand creates the "colours clear" subcommand.
func (c *CLI) coloursClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored colours",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openFileColourStore()
			if err != nil {
				return err
			}
			if err := store.Clear(); err != nil {
				return err
			}
			printSuccess("Cleared stored colours")
			return nil
		},
	}
}
