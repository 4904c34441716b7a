package registry

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/pkg/aliasmap"
)

/*
snapshot is one read of the component file.

stored holds the entries exactly as read, including those that could not be
indexed. Writes start from stored so that entries skipped while loading stay
in the file for the user to fix.
*/
type snapshot struct {
	components *aliasmap.Map[component.Component]
	stored     []component.Component
	skipped    []component.Component
}

// Has reports whether name is used by an indexed or a skipped component.
// It lets a snapshot serve as a ports.NameChecker.
func (s *snapshot) Has(name string) bool {
	return s.components.Has(name) || s.skippedOwner(name) != ""
}

// skippedOwner returns the primary name of the skipped component using name.
func (s *snapshot) skippedOwner(name string) string {
	for _, c := range s.skipped {
		if slices.Contains(c.Names(), name) {
			return c.Name
		}
	}
	return ""
}

// with returns the stored entries followed by c.
func (s *snapshot) with(c component.Component) []component.Component {
	return append(slices.Clone(s.stored), c)
}

// without returns the stored entries minus every definition of primary.
func (s *snapshot) without(primary string) []component.Component {
	return slices.DeleteFunc(slices.Clone(s.stored), func(c component.Component) bool {
		return strings.TrimSpace(c.Name) == primary
	})
}

/*
load reads the repository into an alias map.

The file is edited by hand, so a component that is invalid or clashes with an
earlier one is skipped with a warning instead of failing the whole load. Names
inside the map are unique under RejectConflicts, which keeps Register from
silently taking names away from existing components.
*/
func (s *service) load() (*snapshot, error) {
	loaded, err := s.repository.LoadComponents()
	if err != nil {
		return nil, fmt.Errorf("failed to load components: %w", err)
	}

	snap := &snapshot{
		components: aliasmap.New[component.Component](aliasmap.WithConflictPolicy(aliasmap.RejectConflicts)),
		stored:     loaded,
	}
	for _, c := range loaded {
		c = normalize(c)
		if err := s.index(snap.components, c); err != nil {
			s.warn(fmt.Sprintf("skipping component '%s' from %s: %v", c.Name, s.repository.Location(), err))
			snap.skipped = append(snap.skipped, c)
		}
	}
	return snap, nil
}

func (s *service) index(components *aliasmap.Map[component.Component], c component.Component) error {
	if _, dup := components.Key(c.Name); dup {
		return fmt.Errorf("defined more than once, keeping the first definition")
	}
	if name, ok := s.invalidName(c); ok {
		return fmt.Errorf("%w: name %q must be non-empty and use only letters, digits, '.', '_' or '-'", ErrInvalidComponent, name)
	}
	return components.Add(c)
}

// invalidName returns the first name of c that cannot be used as a shell alias.
func (s *service) invalidName(c component.Component) (string, bool) {
	for _, name := range c.Names() {
		if !s.generator.IsValidAliasName(name, nil) {
			return name, true
		}
	}
	return "", false
}

// normalize trims whitespace around names and drops blank aliases and
// aliases repeating the primary name.
func normalize(c component.Component) component.Component {
	c.Name = strings.TrimSpace(c.Name)
	aliases := make([]string, 0, len(c.Aliases))
	for _, a := range c.Aliases {
		a = strings.TrimSpace(a)
		if a == "" || a == c.Name || slices.Contains(aliases, a) {
			continue
		}
		aliases = append(aliases, a)
	}
	if len(aliases) == 0 {
		aliases = nil
	}
	c.Aliases = aliases
	return c
}

// collect returns the components in map order.
func collect(components *aliasmap.Map[component.Component]) []component.Component {
	return slices.Collect(components.Values())
}

func lookup(components *aliasmap.Map[component.Component], nameOrAlias string) (component.Component, error) {
	c, ok := components.Get(strings.TrimSpace(nameOrAlias))
	if !ok {
		return component.Component{}, fmt.Errorf("%w: '%s'", ErrComponentNotFound, nameOrAlias)
	}
	return c, nil
}
