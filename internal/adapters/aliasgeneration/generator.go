package aliasgeneration

import (
	"regexp"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/component"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// AliasGenerator proposes short aliases for components.
type AliasGenerator struct {
	analyzer ports.CommandAnalyzer
}

// NewAliasGenerator creates a new AliasGenerator.
func NewAliasGenerator(analyzer ports.CommandAnalyzer) ports.AliasGenerator {
	return &AliasGenerator{analyzer: analyzer}
}

// Suggest builds alias candidates for c using several strategies, best first.
func (g *AliasGenerator) Suggest(c component.Component, taken ports.NameChecker) []string {
	if c.Name == "" {
		return []string{}
	}
	// Tracks names proposed in this run so two strategies don't return the same alias.
	proposed := make(map[string]bool)
	suggestions := []string{}

	candidates := []string{
		segmentInitials(c.Name),       // "kube-control" -> "kc"
		consonantAbbreviation(c.Name), // "deploy" -> "dpl"
		leadingLetters(c.Name, 2),     // "terraform" -> "te"
		g.commandInitials(c.Command),  // "kubectl get pods" -> "kgp"
	}
	for _, candidate := range candidates {
		if g.isProposedNameValid(candidate, c.Name, taken, proposed) {
			suggestions = append(suggestions, candidate)
			proposed[candidate] = true
		}
	}
	return suggestions
}

// validAliasCharsRegex matches names users may register as aliases.
// A leading '-' would be read as an option by the shell's alias builtin.
var validAliasCharsRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]*$`)

// IsValidAliasName checks if name is suitable as an alias: non-empty, made of
// allowed characters and not registered yet.
func (g *AliasGenerator) IsValidAliasName(name string, taken ports.NameChecker) bool {
	if !validAliasCharsRegex.MatchString(name) {
		return false
	}
	if taken != nil && taken.Has(name) {
		return false
	}
	return true
}
