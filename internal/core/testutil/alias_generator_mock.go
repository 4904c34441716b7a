package testutil

import (
	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// MockAliasGenerator is a mock implementation of ports.AliasGenerator.
type MockAliasGenerator struct {
	SuggestFunc          func(c component.Component, taken ports.NameChecker) []string
	IsValidAliasNameFunc func(name string, taken ports.NameChecker) bool
}

func (m *MockAliasGenerator) Suggest(c component.Component, taken ports.NameChecker) []string {
	if m.SuggestFunc != nil {
		return m.SuggestFunc(c, taken)
	}
	return []string{}
}

// IsValidAliasName defaults to true when IsValidAliasNameFunc is not set.
func (m *MockAliasGenerator) IsValidAliasName(name string, taken ports.NameChecker) bool {
	if m.IsValidAliasNameFunc != nil {
		return m.IsValidAliasNameFunc(name, taken)
	}
	return true
}
