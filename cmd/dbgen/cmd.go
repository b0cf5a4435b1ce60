package main

import "github.com/charmbracelet/lipgloss"

// CLI defines the root command structure with subcommands
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate debug gate file pairs for every scope in the manifest"`
	Check    CheckCmd    `cmd:"" help:"Resolve the manifest without writing files"`
}

var (
	scopeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
