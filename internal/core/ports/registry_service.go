package ports

import (
	"context"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
)

// RunResult holds the output of a component command.
type RunResult struct {
	Component component.Component
	Stdout    string
	Stderr    string
}

// WarnFunc receives messages about recoverable problems, such as components
// skipped while loading.
type WarnFunc func(message string)

// RegistryService defines the contract for managing registered components.
type RegistryService interface {
	// ListComponents returns all components in registration order.
	ListComponents() ([]component.Component, error)

	// Resolve finds a component by primary name or alias.
	Resolve(nameOrAlias string) (component.Component, error)

	// Register adds c and persists it.
	// It returns false without error if a component with the same primary name exists.
	Register(c component.Component) (bool, error)

	// Unregister removes the component addressed by nameOrAlias and persists the change.
	// It returns the removed component and whether anything was removed.
	Unregister(nameOrAlias string) (component.Component, bool, error)

	// SuggestAliases proposes unused aliases for the component addressed by nameOrAlias.
	SuggestAliases(nameOrAlias string) ([]string, error)

	// Run executes the command of the component addressed by nameOrAlias.
	Run(ctx context.Context, nameOrAlias string) (RunResult, error)

	// Catalog returns the catalog components that can still be registered
	// without clashing with registered names, and the size of the whole catalog.
	Catalog() (available []component.Component, total int, err error)

	// Location describes where components are stored.
	Location() string
}
