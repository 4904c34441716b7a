package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
	"github.com/AntonioJCosta/aliasmap/pkg/aliasmap"
)

// ErrComponentNotFound is returned when no component is registered under a name or alias.
var ErrComponentNotFound = errors.New("component not found")

// ErrInvalidComponent is returned when a component cannot be registered as given.
var ErrInvalidComponent = errors.New("invalid component")

// ErrNoCommand is returned by Run for components without a command.
var ErrNoCommand = errors.New("component has no command")

type service struct {
	repository ports.ComponentRepository
	generator  ports.AliasGenerator
	executor   ports.CommandExecutor
	catalog    ports.ComponentCatalog
	warn       ports.WarnFunc
}

// NewService creates a new registry service.
// It panics if the repository or the alias generator is nil. The executor may
// be nil, in which case Run always fails, and the catalog may be nil, in which
// case Catalog is empty. warn receives messages about components skipped while
// loading; nil discards them.
func NewService(
	repo ports.ComponentRepository,
	gen ports.AliasGenerator,
	exec ports.CommandExecutor,
	catalog ports.ComponentCatalog,
	warn ports.WarnFunc,
) ports.RegistryService {
	if repo == nil {
		panic("repository cannot be nil")
	}
	if gen == nil {
		panic("aliasGenerator cannot be nil")
	}
	if warn == nil {
		warn = func(string) {}
	}
	return &service{repository: repo, generator: gen, executor: exec, catalog: catalog, warn: warn}
}

// ListComponents returns the registered components in registration order.
func (s *service) ListComponents() ([]component.Component, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	return collect(snap.components), nil
}

// Resolve finds a component by primary name or alias.
func (s *service) Resolve(nameOrAlias string) (component.Component, error) {
	snap, err := s.load()
	if err != nil {
		return component.Component{}, err
	}
	return lookup(snap.components, nameOrAlias)
}

// Register validates c against the registered names and persists it.
// It returns false if a component with the same primary name already exists.
// Entries skipped while loading are written back unchanged.
func (s *service) Register(c component.Component) (bool, error) {
	c = normalize(c)
	if name, invalid := s.invalidName(c); invalid {
		return false, fmt.Errorf("%w: name %q must be non-empty and use only letters, digits, '.', '_' or '-'", ErrInvalidComponent, name)
	}

	snap, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := snap.components.Key(c.Name); exists {
		return false, nil
	}
	for _, name := range c.Names() {
		if owner := snap.skippedOwner(name); owner != "" {
			return false, fmt.Errorf("failed to register component '%s': %w: '%s' is used by component '%s', which is skipped until it is fixed",
				c.Name, aliasmap.ErrNameConflict, name, owner)
		}
	}
	if err := snap.components.Add(c); err != nil {
		if errors.Is(err, aliasmap.ErrInvalidArgument) {
			return false, fmt.Errorf("%w: %w", ErrInvalidComponent, err)
		}
		return false, fmt.Errorf("failed to register component '%s': %w", c.Name, err)
	}
	if err := s.repository.SaveComponents(snap.with(c)); err != nil {
		return false, fmt.Errorf("failed to save component '%s': %w", c.Name, err)
	}
	return true, nil
}

// Unregister removes the component addressed by nameOrAlias and persists the change.
// Every definition of its primary name is dropped from the file; other entries
// skipped while loading are kept.
func (s *service) Unregister(nameOrAlias string) (component.Component, bool, error) {
	snap, err := s.load()
	if err != nil {
		return component.Component{}, false, err
	}
	primary, ok := snap.components.Resolve(strings.TrimSpace(nameOrAlias))
	if !ok {
		return component.Component{}, false, nil
	}
	removed, _ := snap.components.Get(primary)

	if err := s.repository.SaveComponents(snap.without(primary)); err != nil {
		return component.Component{}, false, fmt.Errorf("failed to save after removing component '%s': %w", primary, err)
	}
	return removed, true, nil
}

// SuggestAliases proposes aliases that no component in the file uses yet.
func (s *service) SuggestAliases(nameOrAlias string) ([]string, error) {
	snap, err := s.load()
	if err != nil {
		return nil, err
	}
	c, err := lookup(snap.components, nameOrAlias)
	if err != nil {
		return nil, err
	}
	return s.generator.Suggest(c, snap), nil
}

// Run executes the command of the component addressed by nameOrAlias.
func (s *service) Run(ctx context.Context, nameOrAlias string) (ports.RunResult, error) {
	c, err := s.Resolve(nameOrAlias)
	if err != nil {
		return ports.RunResult{}, err
	}
	result := ports.RunResult{Component: c}
	if strings.TrimSpace(c.Command) == "" {
		return result, fmt.Errorf("%w: '%s'", ErrNoCommand, c.Name)
	}
	if s.executor == nil {
		return result, fmt.Errorf("no command executor configured")
	}

	result.Stdout, result.Stderr, err = s.executor.Execute(ctx, c.Command)
	if err != nil {
		return result, fmt.Errorf("failed to run component '%s': %w", c.Name, err)
	}
	return result, nil
}

// Catalog filters the catalog down to components whose names are all free.
func (s *service) Catalog() ([]component.Component, int, error) {
	if s.catalog == nil {
		return []component.Component{}, 0, nil
	}
	entries, err := s.catalog.CatalogComponents()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read component catalog: %w", err)
	}
	snap, err := s.load()
	if err != nil {
		return nil, 0, err
	}

	available := []component.Component{}
	for _, c := range entries {
		c = normalize(c)
		if slices.ContainsFunc(c.Names(), snap.Has) {
			continue
		}
		available = append(available, c)
	}
	return available, len(entries), nil
}

// Location describes where components are stored.
func (s *service) Location() string {
	return s.repository.Location()
}
