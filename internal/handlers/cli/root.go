package cli

import (
	"fmt"

	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ServiceFactory builds the registry service for the component file given by
// --file. An empty path selects the default location. warn prints recoverable
// problems found while reading the file.
type ServiceFactory func(componentFile string, warn ports.WarnFunc) (ports.RegistryService, error)

// NewRootCommand wires the subcommands. The service is built once, before the
// first subcommand runs, so --file is honoured by all of them.
func NewRootCommand(version string, newService ServiceFactory) *cobra.Command {
	var (
		componentFile string
		registrySvc   ports.RegistryService
	)
	service := func() ports.RegistryService { return registrySvc }

	rootCmd := &cobra.Command{
		Use:   "aliasmap",
		Short: "aliasmap keeps a registry of named components reachable by aliases.",
		Long: `aliasmap stores components (a name, its aliases and a command) in a
YAML or TOML file. Any alias resolves to its component, so you can show, run
or remove a component by whichever name you remember.`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if newService == nil {
				return fmt.Errorf("registry service not initialized for command %s", cmd.Name())
			}
			warn := func(message string) {
				fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("Warning: "+message))
			}
			svc, err := newService(componentFile, warn)
			if err != nil {
				return fmt.Errorf("could not open component registry: %w", err)
			}
			registrySvc = svc
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVarP(&componentFile, "file", "f", "",
		"Component file (.yaml, .yml or .toml). Defaults to $ALIASMAP_FILE or ~/.aliasmap/components.yaml.")

	rootCmd.AddCommand(NewListCommand(service))
	rootCmd.AddCommand(NewShowCommand(service))
	rootCmd.AddCommand(NewAddCommand(service))
	rootCmd.AddCommand(NewRemoveCommand(service))
	rootCmd.AddCommand(NewRunCommand(service))
	rootCmd.AddCommand(NewSuggestCommand(service))
	rootCmd.AddCommand(NewImportCommand(service))
	rootCmd.AddCommand(NewExportCommand(service))

	return rootCmd
}
