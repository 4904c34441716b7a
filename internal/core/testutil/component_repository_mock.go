package testutil

import (
	"errors"
	"slices"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
)

// MockComponentRepository is a mock implementation of ports.ComponentRepository for testing.
type MockComponentRepository struct {
	LoadComponentsFunc func() ([]component.Component, error)
	SaveComponentsFunc func(components []component.Component) error
	LocationValue      string

	// Saved records every slice passed to SaveComponents.
	Saved [][]component.Component
}

// NewInMemoryComponentRepository returns a mock whose Load returns what was last saved,
// starting with initial.
func NewInMemoryComponentRepository(initial ...component.Component) *MockComponentRepository {
	stored := slices.Clone(initial)
	m := &MockComponentRepository{LocationValue: "memory"}
	m.LoadComponentsFunc = func() ([]component.Component, error) {
		return slices.Clone(stored), nil
	}
	m.SaveComponentsFunc = func(components []component.Component) error {
		stored = slices.Clone(components)
		return nil
	}
	return m
}

func (m *MockComponentRepository) LoadComponents() ([]component.Component, error) {
	if m.LoadComponentsFunc != nil {
		return m.LoadComponentsFunc()
	}
	return nil, errors.New("MockComponentRepository: LoadComponentsFunc not implemented")
}

func (m *MockComponentRepository) SaveComponents(components []component.Component) error {
	m.Saved = append(m.Saved, slices.Clone(components))
	if m.SaveComponentsFunc != nil {
		return m.SaveComponentsFunc(components)
	}
	return errors.New("MockComponentRepository: SaveComponentsFunc not implemented")
}

func (m *MockComponentRepository) Location() string {
	return m.LocationValue
}
