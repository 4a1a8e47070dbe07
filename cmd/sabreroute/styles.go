package main

import "github.com/charmbracelet/lipgloss"

// Lipgloss styles used by the summary panel, grounded on the bordered
// panel convention of the retrieval pack's terminal-UI examples.
var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff9e64"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7dcfff"))

	swapStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0af68"))

	gateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#73daca"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#565f89"))
)
