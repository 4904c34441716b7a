package ports

import "github.com/AntonioJCosta/aliasmap/internal/core/domain/component"

/*
ComponentRepository defines the interface for reading and writing the
component file. This is a driven port, implemented by a repository adapter
that understands the file formats.
*/
type ComponentRepository interface {
	/*
	   LoadComponents returns the components in file order.
	   A missing or empty file yields an empty list and no error.
	*/
	LoadComponents() ([]component.Component, error)

	// SaveComponents replaces the file content with components.
	SaveComponents(components []component.Component) error

	// Location returns a user friendly description of where components are stored.
	Location() string
}
