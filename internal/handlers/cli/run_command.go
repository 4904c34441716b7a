package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewRunCommand creates the 'run' subcommand.
func NewRunCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <name|alias>",
		Short: "Run the command of a component.",
		Long:  `Runs the component's command through your shell ($SHELL, or /bin/sh) and prints its output.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			result, err := service().Run(cmd.Context(), args[0])
			if verbose && result.Component.Command != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.DetailColor(fmt.Sprintf("$ %s", result.Component.Command)))
			}
			fmt.Fprint(cmd.OutOrStdout(), result.Stdout)
			fmt.Fprint(cmd.ErrOrStderr(), result.Stderr)
			return err
		},
	}
	cmd.Flags().BoolP("verbose", "v", false, "Print the command before its output.")
	return cmd
}
