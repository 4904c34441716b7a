package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewShowCommand creates the 'show' subcommand.
func NewShowCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <name|alias>",
		Short: "Show a component by its name or any of its aliases.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := service().Resolve(args[0])
			if err != nil {
				return err
			}
			printComponent(cmd.OutOrStdout(), c)
			return nil
		},
	}
	return cmd
}

func printComponent(out io.Writer, c component.Component) {
	fmt.Fprintf(out, "%s %s\n", ui.HeaderColor("Name:"), ui.ComponentNameColor(c.Name))
	if len(c.Aliases) > 0 {
		aliases := make([]string, len(c.Aliases))
		for i, a := range c.Aliases {
			aliases[i] = ui.AliasColor(a)
		}
		fmt.Fprintf(out, "%s %s\n", ui.HeaderColor("Aliases:"), strings.Join(aliases, ", "))
	}
	if c.Command != "" {
		fmt.Fprintf(out, "%s %s\n", ui.HeaderColor("Command:"), ui.CodeColor(c.Command))
	}
	if c.Description != "" {
		fmt.Fprintf(out, "%s %s\n", ui.HeaderColor("Description:"), ui.DetailColor(c.Description))
	}
}
