package testutil

import (
	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// MockComponentCatalog is a mock implementation of ports.ComponentCatalog.
type MockComponentCatalog struct {
	CatalogComponentsFunc func() ([]component.Component, error)
}

// CatalogComponents returns an empty catalog when CatalogComponentsFunc is not set.
func (m *MockComponentCatalog) CatalogComponents() ([]component.Component, error) {
	if m.CatalogComponentsFunc != nil {
		return m.CatalogComponentsFunc()
	}
	return []component.Component{}, nil
}

var _ ports.ComponentCatalog = (*MockComponentCatalog)(nil)
