package ports

import "github.com/AntonioJCosta/aliasmap/internal/core/domain/component"

// NameChecker reports whether a name is already registered, as a primary name or an alias.
// *aliasmap.Map satisfies it.
type NameChecker interface {
	Has(name string) bool
}

/*
AliasGenerator defines the contract for a service that proposes aliases for a
component. This is a driven port, representing a domain capability.
*/
type AliasGenerator interface {
	// Suggest returns alias candidates for c, best first, skipping names taken.
	Suggest(c component.Component, taken NameChecker) []string

	// IsValidAliasName checks a user supplied alias against the naming rules and taken.
	IsValidAliasName(name string, taken NameChecker) bool
}
