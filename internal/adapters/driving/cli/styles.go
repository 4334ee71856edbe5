package cli

import "github.com/charmbracelet/lipgloss"

// Finding and status styles for CLI output.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleOK      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleEntity  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleHeading = lipgloss.NewStyle().Bold(true)
)
