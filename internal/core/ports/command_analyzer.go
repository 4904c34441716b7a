package ports

import "github.com/AntonioJCosta/aliasmap/internal/core/domain/command"

/*
CommandAnalyzer defines the contract for a service that analyzes a component's
command line. This is a driven port, representing a domain capability.
*/
type CommandAnalyzer interface {
	Analyze(commandLine string) command.Analysis
}
