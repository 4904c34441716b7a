package cli

import (
	"bufio"
	"fmt"
	"slices"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// NewImportCommand creates the 'import' subcommand.
func NewImportCommand(service func() ports.RegistryService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [name...]",
		Short: "Register components from the built-in catalog.",
		Long: `Offers the catalog components whose names are all free. Name them as
arguments, pass --all, or pick them interactively by number.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImportCmd(cmd, args, service())
		},
	}
	cmd.Flags().Bool("all", false, "Import every available catalog component without asking.")
	return cmd
}

func runImportCmd(cmd *cobra.Command, args []string, registrySvc ports.RegistryService) error {
	out := cmd.OutOrStdout()
	importAll, _ := cmd.Flags().GetBool("all")

	available, total, err := registrySvc.Catalog()
	if err != nil {
		return fmt.Errorf("could not read catalog: %w", err)
	}
	if total == 0 {
		fmt.Fprintln(out, ui.InfoColor("The component catalog is empty."))
		return nil
	}
	if len(available) == 0 {
		fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("%d catalog components were found, but all of them clash with registered names.", total)))
		return nil
	}

	var selected []component.Component
	switch {
	case len(args) > 0:
		selected, err = pickByName(available, args)
		if err != nil {
			return err
		}
	case importAll:
		selected = available
	default:
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Found %d catalog components. %d are available:", total, len(available))))
		selected, err = selectComponentsNumerically(cmd, available)
		if err != nil {
			return fmt.Errorf("invalid selection: %w", err)
		}
	}

	if len(selected) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No components were selected to be imported."))
		return nil
	}

	added, skipped, firstErr := registerSelected(cmd, selected, registrySvc)
	printImportOutcome(cmd, added, skipped, registrySvc.Location())
	return firstErr
}

// pickByName returns the available components matching names, by primary name or alias.
func pickByName(available []component.Component, names []string) ([]component.Component, error) {
	var picked []component.Component
	for _, name := range names {
		i := slices.IndexFunc(available, func(c component.Component) bool {
			return slices.Contains(c.Names(), name)
		})
		if i < 0 {
			return nil, fmt.Errorf("'%s' is not an available catalog component", name)
		}
		if !slices.ContainsFunc(picked, func(c component.Component) bool { return c.Name == available[i].Name }) {
			picked = append(picked, available[i])
		}
	}
	return picked, nil
}

func selectComponentsNumerically(cmd *cobra.Command, available []component.Component) ([]component.Component, error) {
	out := cmd.OutOrStdout()
	displayComponentsForNumericSelection(out, available)

	fmt.Fprint(out, ui.PromptColor("Your choice: "))
	input, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && input == "" {
		return nil, fmt.Errorf("failed to read selection: %w", err)
	}

	indices, err := parseNumericSelectionInput(input, len(available))
	if err != nil {
		return nil, err
	}
	chosen := make([]component.Component, 0, len(indices))
	for _, idx := range indices {
		chosen = append(chosen, available[idx])
	}
	return chosen, nil
}

func registerSelected(cmd *cobra.Command, selected []component.Component, registrySvc ports.RegistryService) (added, skipped int, firstErr error) {
	for _, c := range selected {
		ok, err := registrySvc.Register(c)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.ErrorColor(fmt.Sprintf("Error importing component '%s': %v", c.Name, err)))
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if ok {
			added++
		} else {
			skipped++
		}
	}
	return added, skipped, firstErr
}

func printImportOutcome(cmd *cobra.Command, added, skipped int, location string) {
	out := cmd.OutOrStdout()
	if added > 0 {
		fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("%d component(s) imported into %s.", added, location)))
	}
	if skipped > 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("%d component(s) were skipped because they already exist.", skipped)))
	}
}
