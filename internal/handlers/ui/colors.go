package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	PromptColor  = color.New(color.FgMagenta).SprintFunc()
	CodeColor    = color.New(color.FgWhite).SprintFunc()   // For commands
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For descriptions and file locations
)

// Component Specific Colors
var (
	ComponentNameColor = color.New(color.FgBlue, color.Bold).SprintFunc()
	AliasColor         = color.New(color.FgYellow).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
