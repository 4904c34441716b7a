package testutil

import (
	"github.com/AntonioJCosta/aliasmap/internal/core/domain/command"
	"github.com/AntonioJCosta/aliasmap/internal/core/ports"
)

// MockCommandAnalyzer is a mock implementation of ports.CommandAnalyzer.
type MockCommandAnalyzer struct {
	// AnalyzeFunc allows you to set a custom function for the Analyze method.
	AnalyzeFunc func(commandLine string) command.Analysis
	// AnalyzeCalls keeps track of the arguments passed to Analyze.
	AnalyzeCalls []string
}

// NewMockCommandAnalyzer creates a new MockCommandAnalyzer.
func NewMockCommandAnalyzer() *MockCommandAnalyzer {
	return &MockCommandAnalyzer{
		AnalyzeCalls: make([]string, 0),
	}
}

// Analyze calls AnalyzeFunc if it's set, otherwise returns a zero-value Analysis.
func (m *MockCommandAnalyzer) Analyze(commandLine string) command.Analysis {
	m.AnalyzeCalls = append(m.AnalyzeCalls, commandLine)
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(commandLine)
	}
	return command.Analysis{}
}

var _ ports.CommandAnalyzer = (*MockCommandAnalyzer)(nil)
