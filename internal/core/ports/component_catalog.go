package ports

import "github.com/AntonioJCosta/aliasmap/internal/core/domain/component"

// ComponentCatalog provides ready-made components that can be imported into the registry.
type ComponentCatalog interface {
	CatalogComponents() ([]component.Component, error)
}
