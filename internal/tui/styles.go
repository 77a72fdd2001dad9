package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	accent   = lipgloss.Color("#7AA2F7")
	moved    = lipgloss.Color("#9ECE6A")
	caution  = lipgloss.Color("#E0AF68")
	failure  = lipgloss.Color("#F7768E")
	subtle   = lipgloss.Color("#565F89")
	fg       = lipgloss.Color("#C0CAF5")
	fgFaint  = lipgloss.Color("#A9B1D6")
	yesColor = lipgloss.Color("#2E4F2A")
	noColor  = lipgloss.Color("#5C2630")
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent)
	subtitleStyle = lipgloss.NewStyle().Foreground(fgFaint).Italic(true)
	faintStyle    = lipgloss.NewStyle().Foreground(fgFaint)
	countStyle    = lipgloss.NewStyle().Foreground(accent).Bold(true)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(moved).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(subtle).
			MarginTop(1)

	sourceStyle      = lipgloss.NewStyle().Foreground(fg)
	destinationStyle = lipgloss.NewStyle().Foreground(subtle)

	successStyle = lipgloss.NewStyle().Foreground(moved).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(failure).Bold(true)
	promptStyle  = lipgloss.NewStyle().Foreground(caution).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			MarginTop(1)

	spinnerStyle = lipgloss.NewStyle().Foreground(accent)
	helpStyle    = lipgloss.NewStyle().Foreground(subtle).MarginTop(1)
)

const (
	iconDone   = "✓"
	iconFailed = "✗"
	iconMove   = "→"
)
