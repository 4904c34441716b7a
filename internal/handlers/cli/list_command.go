package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'list' subcommand.
func NewListCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered components.",
		Long:  `Displays every registered component with its aliases, in registration order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runListCmd(cmd, args, service())
		},
	}
	return cmd
}

func runListCmd(cmd *cobra.Command, _ []string, registrySvc ports.RegistryService) error {
	components, err := registrySvc.ListComponents()
	if err != nil {
		return fmt.Errorf("could not list components: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(components) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No components registered in %s.", registrySvc.Location())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Registered Components (%s):", registrySvc.Location())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Name", "Aliases", "Command", "Description"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, c := range components {
		table.Append([]string{c.Name, strings.Join(c.Aliases, ", "), c.Command, c.Description})
	}
	table.Render()
	return nil
}
