package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewSuggestCommand creates the 'suggest' subcommand.
func NewSuggestCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <name|alias>",
		Short: "Suggest aliases for a component that no other component uses.",
		Long: `Derives short aliases from the component's name and command and keeps
only those not taken by any registered name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registrySvc := service()
			c, err := registrySvc.Resolve(args[0])
			if err != nil {
				return err
			}
			suggestions, err := registrySvc.SuggestAliases(c.Name)
			if err != nil {
				return fmt.Errorf("could not get suggestions: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No free alias suggestions for '%s'.", c.Name)))
				return nil
			}
			fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Suggested aliases for %s:", ui.ComponentNameColor(c.Name))))
			for _, s := range suggestions {
				fmt.Fprintf(out, "  %s\n", ui.AliasColor(s))
			}
			return nil
		},
	}
	return cmd
}
