package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#1D4ED8")).
			Padding(0, 1)

	questionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E2E8F0"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#60A5FA")).Bold(true)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)

	lookupStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#34D399")).
			Padding(0, 1)
)
