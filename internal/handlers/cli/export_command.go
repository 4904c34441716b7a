package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/spf13/cobra"
)

// NewExportCommand creates the 'export' subcommand.
func NewExportCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print shell alias definitions for every component with a command.",
		Long: `Prints one 'alias' line per name of each component that has a command,
ready to be sourced from ~/.bashrc or ~/.zshrc:

  eval "$(aliasmap export)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			components, err := service().ListComponents()
			if err != nil {
				return fmt.Errorf("could not export components: %w", err)
			}
			out := cmd.OutOrStdout()
			for _, c := range components {
				if c.Command == "" {
					continue
				}
				for _, name := range c.Names() {
					fmt.Fprintf(out, "alias %s=%s\n", name, shellQuote(c.Command))
				}
			}
			return nil
		},
	}
	return cmd
}

// shellQuote wraps s in single quotes for POSIX shells.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
