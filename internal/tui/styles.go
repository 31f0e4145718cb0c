package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles. Pages stay monochrome so the tables line up in
// any terminal; emphasis comes from bold/faint only.
var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
