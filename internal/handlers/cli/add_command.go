package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/AntonioJCosta/aliasmap/pkg/aliasmap"
	"github.com/spf13/cobra"
)

// NewAddCommand creates the 'add' subcommand.
func NewAddCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Register a new component.",
		Long: `Registers a component under <name> and the given aliases.
A component whose name is already registered is left untouched. Names used by
another component are rejected.`,
		Example: `  aliasmap add kube-pods -a kgp -a pods -c "kubectl get pods"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAddCmd(cmd, args, service())
		},
	}

	cmd.Flags().StringSliceP("alias", "a", nil, "Alias for the component. Repeat or separate with commas.")
	cmd.Flags().StringP("command", "c", "", "Command the component stands for.")
	cmd.Flags().StringP("description", "d", "", "Short description.")

	return cmd
}

func runAddCmd(cmd *cobra.Command, args []string, registrySvc ports.RegistryService) error {
	c := parseAddCommandFlags(cmd, args[0])
	out := cmd.OutOrStdout()

	added, err := registrySvc.Register(c)
	if err != nil {
		if errors.Is(err, aliasmap.ErrNameConflict) {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("A name is already taken. Use 'aliasmap show <name>' to see which component owns it."))
		}
		return fmt.Errorf("could not add component: %w", err)
	}
	if !added {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Component '%s' already exists in %s. Skipped.", strings.TrimSpace(c.Name), registrySvc.Location())))
		return nil
	}

	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Component '%s' registered in %s.", strings.TrimSpace(c.Name), registrySvc.Location())))
	return nil
}

func parseAddCommandFlags(cmd *cobra.Command, name string) component.Component {
	aliases, _ := cmd.Flags().GetStringSlice("alias")
	command, _ := cmd.Flags().GetString("command")
	description, _ := cmd.Flags().GetString("description")

	return component.Component{
		Name:        name,
		Aliases:     aliases,
		Command:     strings.TrimSpace(command),
		Description: strings.TrimSpace(description),
	}
}
