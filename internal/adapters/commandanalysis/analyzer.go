package commandanalysis

import (
	"strings"

	"github.com/AntonioJCosta/aliasmap/internal/core/domain/command"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// BasicAnalyzer splits command lines the way a simple shell would.
type BasicAnalyzer struct{}

// NewBasicAnalyzer creates a new BasicAnalyzer.
func NewBasicAnalyzer() ports.CommandAnalyzer {
	return &BasicAnalyzer{}
}

// Analyze breaks a component command into executable and arguments.
func (a *BasicAnalyzer) Analyze(commandLine string) command.Analysis {
	trimmed := strings.TrimSpace(commandLine)
	if trimmed == "" {
		return command.Analysis{Original: commandLine}
	}

	words := splitWords(trimmed)
	result := command.Analysis{
		Original: commandLine,
		Complex:  isComplex(trimmed, words),
	}
	if len(words) > 0 {
		result.Executable = strings.TrimPrefix(words[0], "./")
		if len(words) > 1 {
			result.Args = words[1:]
		}
	}
	return result
}
