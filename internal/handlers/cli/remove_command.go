package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRemoveCommand creates the 'remove' subcommand.
func NewRemoveCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remove <name|alias>",
		Aliases: []string{"rm"},
		Short:   "Remove a component together with all of its aliases.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registrySvc := service()
			removed, ok, err := registrySvc.Unregister(args[0])
			if err != nil {
				return fmt.Errorf("could not remove component: %w", err)
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), ui.InfoColor(fmt.Sprintf("No component named '%s'. Nothing removed.", args[0])))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf("Component '%s' removed from %s.", removed.Name, registrySvc.Location())))
			return nil
		},
	}
	return cmd
}
